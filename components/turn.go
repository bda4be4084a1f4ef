package components

import "dicewalk/ecs"

// Phase is the turn state machine position
type Phase string

const (
	PhasePlanning  Phase = "planning"
	PhaseExecuting Phase = "executing"
)

// MinPlanningTime is how long a planning phase lasts before a player intent
// can be committed, so attack previews get at least one drawn frame.
const MinPlanningTime = 0.05

// PlannedMove is an enemy move chosen during planning
type PlannedMove struct {
	Entity  ecs.Entity
	DI, DJ  int
	TargetI int
	TargetJ int
}

// TurnStateComponent is the world's turn state machine. It is installed once
// as a world resource.
type TurnStateComponent struct {
	Phase           Phase
	Planned         []PlannedMove
	PlanningElapsed float64
	// PlanReady is set once enemy planning ran for this phase, even when no
	// enemy could move
	PlanReady bool
	Turn      int
	GameOver  bool
}

// NewTurnStateComponent starts in planning
func NewTurnStateComponent() *TurnStateComponent {
	return &TurnStateComponent{Phase: PhasePlanning}
}

// ClaimedBy returns the planned move targeting (i, j), if any
func (t *TurnStateComponent) ClaimedBy(i, j int) (PlannedMove, bool) {
	for _, p := range t.Planned {
		if p.TargetI == i && p.TargetJ == j {
			return p, true
		}
	}
	return PlannedMove{}, false
}

// ResetPlanning returns to the planning phase with an empty plan
func (t *TurnStateComponent) ResetPlanning() {
	t.Phase = PhasePlanning
	t.Planned = t.Planned[:0]
	t.PlanningElapsed = 0
	t.PlanReady = false
}
