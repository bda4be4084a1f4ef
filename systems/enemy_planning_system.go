package systems

import (
	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// EnemyPlanningSystem plans one patrol step for every AI die at the start
// of a planning phase. Planned targets are what the player may not enter.
type EnemyPlanningSystem struct {
	logger *zap.Logger
}

// NewEnemyPlanningSystem creates a new enemy planning system
func NewEnemyPlanningSystem(logger *zap.Logger) *EnemyPlanningSystem {
	return &EnemyPlanningSystem{logger: orNop(logger)}
}

// Update produces the plan once per planning phase
func (s *EnemyPlanningSystem) Update(world *ecs.World, dt float64) {
	ts, ok := ecs.GetResource[components.TurnStateComponent](world)
	if !ok || ts.Phase != components.PhasePlanning || ts.PlanReady || ts.GameOver {
		return
	}

	blocked := barrierTiles(world)
	open := func(i, j int) bool {
		if !inGrid(world, i, j) {
			return false
		}
		_, wall := blocked[Tile{i, j}]
		return !wall
	}

	// Walkers plan in store order; two walkers may claim the same tile
	for _, e := range world.EntitiesWith(components.AIWalker.ID(), components.Position.ID()) {
		patrol, ok := components.Patrol.Get(world, e)
		if !ok {
			patrol = components.Patrol.Add(world, e, components.DefaultPatrol())
		}
		if !isUnitStep(patrol.DI, patrol.DJ) {
			continue
		}
		pos, _ := components.Position.Get(world, e)

		if !open(pos.I+patrol.DI, pos.J+patrol.DJ) {
			patrol.Reverse()
			if !open(pos.I+patrol.DI, pos.J+patrol.DJ) {
				s.logger.Debug("walker boxed in", zap.Stringer("entity", e))
				continue
			}
		}

		ts.Planned = append(ts.Planned, components.PlannedMove{
			Entity:  e,
			DI:      patrol.DI,
			DJ:      patrol.DJ,
			TargetI: pos.I + patrol.DI,
			TargetJ: pos.J + patrol.DJ,
		})
	}

	ts.PlanReady = true
	s.logger.Debug("enemy plan ready", zap.Int("turn", ts.Turn), zap.Int("moves", len(ts.Planned)))
}
