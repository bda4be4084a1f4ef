package systems

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dicewalk/components"
	"dicewalk/ecs"
	"dicewalk/spawners"
)

const testGridSize = 8

// movementWorld runs only the movement and attack systems
func movementWorld(t *testing.T) (*ecs.World, *Pipeline) {
	t.Helper()
	w := ecs.NewWorld()
	p := NewPipeline(zaptest.NewLogger(t))
	w.AddSystem(p.Request)
	w.AddSystem(p.Progress)
	w.AddSystem(p.Orientation)
	w.AddSystem(p.Attack)
	w.AddSystem(p.Occupancy)
	return w, p
}

// turnWorld runs the whole pipeline on a bounded grid
func turnWorld(t *testing.T) (*ecs.World, *Pipeline) {
	t.Helper()
	w := ecs.NewWorld()
	spawners.SetupTurnState(w)
	spawners.SetupGrid(w, testGridSize, 800, 600)
	spawners.SpawnBoundaryBarriers(w, testGridSize)
	return w, InstallPipeline(w, zaptest.NewLogger(t))
}

func step(w *ecs.World, dt float64, frames int) {
	for i := 0; i < frames; i++ {
		w.Update(dt)
	}
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) (int, int) {
	t.Helper()
	pos, ok := components.Position.Get(w, e)
	require.True(t, ok)
	return pos.I, pos.J
}

func hp(t *testing.T, w *ecs.World, e ecs.Entity) int {
	t.Helper()
	h, ok := components.HP.Get(w, e)
	require.True(t, ok)
	return h.Current
}

func turnState(t *testing.T, w *ecs.World) *components.TurnStateComponent {
	t.Helper()
	ts, ok := ecs.GetResource[components.TurnStateComponent](w)
	require.True(t, ok)
	return ts
}

// playTurn sends one player intent and runs frames until the turn ends. It
// returns the commit rejections seen on the way.
func playTurn(t *testing.T, w *ecs.World, p *Pipeline, di, dj int) []MoveRejection {
	t.Helper()
	ts := turnState(t, w)
	start := ts.Turn
	w.Emit(PlayerMoveIntentEvent{DI: di, DJ: dj})

	var rejected []MoveRejection
	for i := 0; i < 200 && ts.Turn == start; i++ {
		w.Update(0.02)
		rejected = append(rejected, p.Commit.Rejections()...)
		if len(rejected) > 0 && ts.Phase == components.PhasePlanning && ts.Turn == start {
			return rejected
		}
	}
	require.Greater(t, ts.Turn, start, "turn never ended")
	return rejected
}
