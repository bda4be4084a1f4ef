package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicewalk/data"
)

func TestBoundaryRingEnclosesGrid(t *testing.T) {
	ring := BoundaryRing(3)
	assert.Len(t, ring, 16)

	seen := make(map[data.Point]bool)
	for _, p := range ring {
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
		outside := p.I == -1 || p.I == 3 || p.J == -1 || p.J == 3
		assert.True(t, outside, "%v is inside the grid", p)
	}
	for _, corner := range []data.Point{{I: -1, J: -1}, {I: -1, J: 3}, {I: 3, J: -1}, {I: 3, J: 3}} {
		assert.True(t, seen[corner], "corner %v", corner)
	}
	assert.True(t, seen[data.Point{I: -1, J: 0}])
	assert.True(t, seen[data.Point{I: 1, J: 3}])

	assert.Empty(t, BoundaryRing(0))
}

func courtyard() *data.Level {
	return &data.Level{
		Name:      "test",
		Size:      6,
		Seed:      11,
		Obstacles: 5,
		Player:    data.Placement{Template: "player", I: 0, J: 0},
		Enemies:   []data.Placement{{Template: "green", I: 4, J: 4}},
		Barriers:  []data.Point{{I: 2, J: 2}},
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	a := NewBoardGenerator().Generate(courtyard())
	b := NewBoardGenerator().Generate(courtyard())
	assert.Equal(t, a.Interior, b.Interior)

	other := courtyard()
	other.Seed = 12
	c := NewBoardGenerator().Generate(other)
	assert.Len(t, c.Interior, len(a.Interior))
}

func TestGenerateKeepsReservedTilesAndConnectivity(t *testing.T) {
	level := courtyard()
	board := NewBoardGenerator().Generate(level)

	require.Len(t, board.Interior, 1+level.Obstacles)
	assert.Equal(t, data.Point{I: 2, J: 2}, board.Interior[0], "listed barriers come first")
	assert.Len(t, board.Barriers(), len(board.Ring)+len(board.Interior))

	blocked := make(map[data.Point]bool)
	for _, p := range board.Interior {
		assert.False(t, blocked[p], "duplicate barrier %v", p)
		blocked[p] = true
		assert.True(t, level.InBounds(p))
	}
	assert.False(t, blocked[level.Player.Tile()])
	assert.False(t, blocked[level.Enemies[0].Tile()])
	assert.True(t, connected(level.Size, blocked))
}

func TestScatterNeverSplitsTheBoard(t *testing.T) {
	g := NewBoardGenerator()
	g.SetSeed(1)
	placed := g.ScatterObstacles(3, 20, map[data.Point]bool{{I: 1, J: 1}: true}, nil)
	assert.LessOrEqual(t, len(placed), 8)

	blocked := make(map[data.Point]bool)
	for _, p := range placed {
		assert.NotEqual(t, data.Point{I: 1, J: 1}, p)
		blocked[p] = true
	}
	assert.True(t, connected(3, blocked))
	assert.Empty(t, g.ScatterObstacles(3, 0, nil, nil))
}

func TestConnected(t *testing.T) {
	assert.True(t, connected(3, nil))
	wall := map[data.Point]bool{{I: 1, J: 0}: true, {I: 1, J: 1}: true, {I: 1, J: 2}: true}
	assert.False(t, connected(3, wall))
	all := make(map[data.Point]bool)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			all[data.Point{I: i, J: j}] = true
		}
	}
	assert.True(t, connected(2, all))
}
