package systems

import (
	"fmt"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// DefeatSystem handles dice that ran out of hit points. Enemies are removed
// from the world; a defeated player ends the game.
type DefeatSystem struct {
	logger *zap.Logger
}

// NewDefeatSystem creates a new defeat system
func NewDefeatSystem(logger *zap.Logger) *DefeatSystem {
	return &DefeatSystem{logger: orNop(logger)}
}

// Update reacts to damage events that left their target at zero. The events
// stay in the queue for later systems.
func (s *DefeatSystem) Update(world *ecs.World, dt float64) {
	world.Events().Each(func(ev ecs.Event) bool {
		if hit, ok := ev.(DamageDealtEvent); ok && hit.Remaining <= 0 {
			s.handleDefeat(world, hit)
		}
		return false
	})
}

func (s *DefeatSystem) handleDefeat(world *ecs.World, hit DamageDealtEvent) {
	if !world.IsAlive(hit.Target) {
		return
	}

	// Get entity names for logging
	entityName := getEntityName(world, hit.Target)
	killerName := getEntityName(world, hit.Attacker)
	log := GetMessageLog(world)

	if isPlayer(world, hit.Target) {
		if ts, ok := ecs.GetResource[components.TurnStateComponent](world); ok {
			if ts.GameOver {
				return
			}
			ts.GameOver = true
		}
		log.AddAlert(fmt.Sprintf("%s were knocked out by %s!", entityName, killerName))
		log.AddAlert("Game Over!")
		world.Emit(DefeatedEvent{Entity: hit.Target, KillerID: hit.Attacker, Player: true})
		s.logger.Info("player defeated", zap.Stringer("killer", hit.Attacker))
		return
	}

	log.AddAlert(fmt.Sprintf("%s was knocked out by %s!", entityName, killerName))
	if occ, ok := GetTileOccupancy(world); ok {
		occ.remove(hit.Target)
	}
	world.DestroyEntity(hit.Target)
	world.Emit(DefeatedEvent{Entity: hit.Target, KillerID: hit.Attacker})
	s.logger.Debug("entity defeated", zap.Stringer("entity", hit.Target), zap.Stringer("killer", hit.Attacker))
}
