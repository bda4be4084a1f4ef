package systems

import (
	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// PlayerTurnCommitSystem turns a player move intent into the moves of a
// whole turn: the player's own step plus every planned enemy step.
type PlayerTurnCommitSystem struct {
	rejectionLog
	logger *zap.Logger
}

// NewPlayerTurnCommitSystem creates a new player turn commit system
func NewPlayerTurnCommitSystem(logger *zap.Logger) *PlayerTurnCommitSystem {
	return &PlayerTurnCommitSystem{logger: orNop(logger)}
}

// Update commits at most one intent per frame
func (s *PlayerTurnCommitSystem) Update(world *ecs.World, dt float64) {
	s.resetRejections()

	ts, ok := ecs.GetResource[components.TurnStateComponent](world)
	if !ok {
		world.Events().Each(func(ev ecs.Event) bool {
			intent, ok := ev.(PlayerMoveIntentEvent)
			if ok {
				s.reject(s.logger, intent.Entity, intent.DI, intent.DJ, RejectNoTurnState)
			}
			return ok
		})
		return
	}

	planning := ts.Phase == components.PhasePlanning
	if planning {
		ts.PlanningElapsed += dt
	}
	hasWalkers := components.AIWalker.Store(world).Len() > 0

	world.Events().Each(func(ev ecs.Event) bool {
		intent, ok := ev.(PlayerMoveIntentEvent)
		if !ok {
			return false
		}

		switch {
		case ts.GameOver:
			s.reject(s.logger, intent.Entity, intent.DI, intent.DJ, RejectGameOver)
		case ts.Phase != components.PhasePlanning:
			s.reject(s.logger, intent.Entity, intent.DI, intent.DJ, RejectWrongPhase)
		case (hasWalkers && !ts.PlanReady) || ts.PlanningElapsed < components.MinPlanningTime:
			// Try again next frame
			world.Emit(intent)
		default:
			s.commit(world, ts, intent)
		}
		return true
	})
}

func (s *PlayerTurnCommitSystem) commit(world *ecs.World, ts *components.TurnStateComponent, intent PlayerMoveIntentEvent) {
	player := intent.Entity
	if !player.Valid() {
		var ok bool
		if player, ok = firstPlayer(world); !ok {
			s.reject(s.logger, intent.Entity, intent.DI, intent.DJ, RejectNoPlayer)
			return
		}
	}

	pos, ok := components.Position.Get(world, player)
	if !ok {
		s.reject(s.logger, player, intent.DI, intent.DJ, RejectNoPosition)
		return
	}
	if !isUnitStep(intent.DI, intent.DJ) {
		s.reject(s.logger, player, intent.DI, intent.DJ, RejectBadDirection)
		return
	}

	ti, tj := pos.I+intent.DI, pos.J+intent.DJ
	if _, wall := barrierTiles(world)[Tile{ti, tj}]; wall {
		s.reject(s.logger, player, intent.DI, intent.DJ, RejectBarrier)
		return
	}
	if !inGrid(world, ti, tj) {
		s.reject(s.logger, player, intent.DI, intent.DJ, RejectOutOfBounds)
		return
	}
	// Enemies have priority on contested tiles
	if _, claimed := ts.ClaimedBy(ti, tj); claimed {
		s.reject(s.logger, player, intent.DI, intent.DJ, RejectContested)
		return
	}

	world.Emit(MoveRequestEvent{Entity: player, DI: intent.DI, DJ: intent.DJ})
	for _, plan := range ts.Planned {
		world.Emit(MoveRequestEvent{Entity: plan.Entity, DI: plan.DI, DJ: plan.DJ})
	}
	ts.Phase = components.PhaseExecuting

	s.logger.Debug("turn committed",
		zap.Int("turn", ts.Turn),
		zap.Stringer("player", player),
		zap.Int("di", intent.DI),
		zap.Int("dj", intent.DJ),
		zap.Int("enemy_moves", len(ts.Planned)))
}
