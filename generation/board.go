package generation

import (
	"math/rand"
	"time"

	"dicewalk/data"
)

// Board is the barrier layout of a level
type Board struct {
	Size int
	// Ring holds the sentinels one tile outside the grid
	Ring []data.Point
	// Interior holds the level's own barriers followed by scattered ones
	Interior []data.Point
}

// Barriers returns every barrier tile, ring first
func (b *Board) Barriers() []data.Point {
	out := make([]data.Point, 0, len(b.Ring)+len(b.Interior))
	out = append(out, b.Ring...)
	return append(out, b.Interior...)
}

// BoardGenerator handles procedural placement of barriers
type BoardGenerator struct {
	rng *rand.Rand
}

// NewBoardGenerator creates a new board generator
func NewBoardGenerator() *BoardGenerator {
	return &BoardGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible boards
func (g *BoardGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// BoundaryRing returns every tile with i or j equal to -1 or size, corners
// included.
func BoundaryRing(size int) []data.Point {
	if size <= 0 {
		return nil
	}
	ring := make([]data.Point, 0, 4*size+4)
	ring = append(ring,
		data.Point{I: -1, J: -1},
		data.Point{I: -1, J: size},
		data.Point{I: size, J: -1},
		data.Point{I: size, J: size},
	)
	for k := 0; k < size; k++ {
		ring = append(ring,
			data.Point{I: -1, J: k},
			data.Point{I: size, J: k},
			data.Point{I: k, J: -1},
			data.Point{I: k, J: size},
		)
	}
	return ring
}

// Generate lays out a level's barriers. Scattered obstacles use the level
// seed, so the same level file always yields the same board.
func (g *BoardGenerator) Generate(level *data.Level) *Board {
	g.SetSeed(level.Seed)

	board := &Board{
		Size: level.Size,
		Ring: BoundaryRing(level.Size),
	}
	board.Interior = append(board.Interior, level.Barriers...)
	board.Interior = append(board.Interior, g.ScatterObstacles(level.Size, level.Obstacles, level.Occupied(), level.Barriers)...)
	return board
}

// ScatterObstacles picks up to count free tiles. Reserved tiles are never
// used, and a candidate is skipped if blocking it would split the open
// tiles (everything but walls and obstacles) into separate regions.
func (g *BoardGenerator) ScatterObstacles(size, count int, reserved map[data.Point]bool, walls []data.Point) []data.Point {
	if count <= 0 || size <= 0 {
		return nil
	}

	blocked := make(map[data.Point]bool, len(walls)+count)
	for _, w := range walls {
		blocked[w] = true
	}
	var candidates []data.Point
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			p := data.Point{I: i, J: j}
			if !reserved[p] {
				candidates = append(candidates, p)
			}
		}
	}
	g.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})

	// Boards already split by walls are left to the level author
	keepConnected := connected(size, blocked)

	var placed []data.Point
	for _, p := range candidates {
		if len(placed) == count {
			break
		}
		blocked[p] = true
		if keepConnected && !connected(size, blocked) {
			delete(blocked, p)
			continue
		}
		placed = append(placed, p)
	}
	return placed
}

// connected reports whether the unblocked tiles form a single region
func connected(size int, blocked map[data.Point]bool) bool {
	var start *data.Point
	open := 0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			p := data.Point{I: i, J: j}
			if blocked[p] {
				continue
			}
			open++
			if start == nil {
				start = &p
			}
		}
	}
	if start == nil {
		return true
	}

	seen := map[data.Point]bool{*start: true}
	queue := []data.Point{*start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]data.Point{{I: 1}, {I: -1}, {J: 1}, {J: -1}} {
			n := data.Point{I: p.I + d.I, J: p.J + d.J}
			if n.I < 0 || n.J < 0 || n.I >= size || n.J >= size || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen) == open
}
