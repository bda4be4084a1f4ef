package systems

import (
	"fmt"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// TurnAdvanceSystem returns to planning once every move of the turn has
// finished animating.
type TurnAdvanceSystem struct {
	logger *zap.Logger
}

// NewTurnAdvanceSystem creates a new turn advance system
func NewTurnAdvanceSystem(logger *zap.Logger) *TurnAdvanceSystem {
	return &TurnAdvanceSystem{logger: orNop(logger)}
}

// Update ends the turn when the movement pipeline has drained
func (s *TurnAdvanceSystem) Update(world *ecs.World, dt float64) {
	ts, ok := ecs.GetResource[components.TurnStateComponent](world)
	if !ok || ts.Phase != components.PhaseExecuting {
		return
	}
	if components.GridMove.Store(world).Len() > 0 || components.TumbleAnim.Store(world).Len() > 0 {
		return
	}

	ts.Turn++
	ts.ResetPlanning()
	world.Emit(TurnEndedEvent{Turn: ts.Turn})

	GetMessageLog(world).AddTyped(MessageTypeTurn, fmt.Sprintf("Turn %d ends.", ts.Turn))
	s.logger.Debug("turn ended", zap.Int("turn", ts.Turn))
}
