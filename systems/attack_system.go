package systems

import (
	"fmt"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// AttackEffectSystem applies the attacks of the face that landed on top
type AttackEffectSystem struct {
	logger *zap.Logger
}

// NewAttackEffectSystem creates a new attack effect system
func NewAttackEffectSystem(logger *zap.Logger) *AttackEffectSystem {
	return &AttackEffectSystem{logger: orNop(logger)}
}

// Update resolves attacks for every move completed this frame
func (s *AttackEffectSystem) Update(world *ecs.World, dt float64) {
	world.Events().Each(func(ev ecs.Event) bool {
		done, ok := ev.(*MoveCompleteEvent)
		if !ok || done.AttackResolved {
			return false
		}
		done.AttackResolved = true
		s.resolve(world, done)
		// Occupancy still needs the landing
		return false
	})
}

func (s *AttackEffectSystem) resolve(world *ecs.World, done *MoveCompleteEvent) {
	effects := GetAttackEffects(world, done.Entity)
	if len(effects) == 0 {
		return
	}

	for _, target := range GetAttackTargets(effects, done.DI, done.DJ, done.I, done.J) {
		for _, victim := range world.EntitiesWith(components.HP.ID(), components.Position.ID()) {
			if victim == done.Entity {
				continue
			}
			pos, _ := components.Position.Get(world, victim)
			if pos.I != target.I || pos.J != target.J {
				continue
			}
			s.damage(world, done.Entity, victim, target)
		}
	}
}

func (s *AttackEffectSystem) damage(world *ecs.World, attacker, victim ecs.Entity, target AttackTarget) {
	hp, _ := components.HP.Get(world, victim)
	applied := hp.Damage(target.Strength)
	if applied == 0 {
		return
	}

	GetMessageLog(world).AddCombat(fmt.Sprintf("%s hits %s for %d (%s).",
		getEntityName(world, attacker), getEntityName(world, victim), applied, target.TargetType))
	s.logger.Debug("damage dealt",
		zap.Stringer("attacker", attacker),
		zap.Stringer("target", victim),
		zap.Int("amount", applied),
		zap.Int("remaining", hp.Current))

	// Defeat is resolved later in this frame
	world.EmitNow(DamageDealtEvent{
		Attacker:  attacker,
		Target:    victim,
		Amount:    applied,
		Remaining: hp.Current,
		I:         target.I,
		J:         target.J,
	})
}
