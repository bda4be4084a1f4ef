package iso

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicewalk/components"
)

func projector() Projector {
	return NewProjector(components.NewGridGeometry(8, 800, 600), 600)
}

func quadFor(t *testing.T, quads []Quad, f components.Face) Quad {
	t.Helper()
	for _, q := range quads {
		if q.Face == f {
			return q
		}
	}
	require.Failf(t, "missing face", "%v", f)
	return Quad{}
}

func samePoints(t *testing.T, want, got [4][2]float64) {
	t.Helper()
	key := func(p [4][2]float64) [][2]float64 {
		out := append([][2]float64(nil), p[:]...)
		sort.Slice(out, func(a, b int) bool {
			if math.Abs(out[a][0]-out[b][0]) > 1e-6 {
				return out[a][0] < out[b][0]
			}
			return out[a][1] < out[b][1]
		})
		return out
	}
	w, g := key(want), key(got)
	for k := range w {
		assert.InDelta(t, w[k][0], g[k][0], 1e-6)
		assert.InDelta(t, w[k][1], g[k][1], 1e-6)
	}
}

func TestPoint(t *testing.T) {
	p := projector()
	x, y := p.Point(0, 0, 0)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 510, y, 1e-6)

	x, y = p.Point(1, 0, 0)
	assert.InDelta(t, 460, x, 1e-6)
	assert.InDelta(t, 480, y, 1e-6)

	x, y = p.Point(0, 1, 0)
	assert.InDelta(t, 340, x, 1e-6)
	assert.InDelta(t, 480, y, 1e-6)

	_, y = p.Point(0, 0, 1)
	assert.InDelta(t, 450, y, 1e-6, "height raises the point")
}

func TestTileCorners(t *testing.T) {
	p := projector()
	c := p.TileCorners(0, 0)
	x, y := p.Point(1, 1, 0)
	assert.InDelta(t, x, c[2][0], 1e-9)
	assert.InDelta(t, y, c[2][1], 1e-9)
}

func TestRestingCubeDrawsTopLast(t *testing.T) {
	quads := projector().Cube(2, 3, 0.8)
	require.Len(t, quads, 6)
	assert.Equal(t, components.FaceBottom, quads[0].Face)
	assert.Equal(t, components.FaceTop, quads[5].Face)

	top := quadFor(t, quads, components.FaceTop)
	x, y := projector().Point(2.5, 3.5, 0.8)
	var cx, cy float64
	for _, pt := range top.Points {
		cx += pt[0] / 4
		cy += pt[1] / 4
	}
	assert.InDelta(t, x, cx, 1e-6)
	assert.InDelta(t, y, cy, 1e-6)
}

func TestTumbleStartsUpright(t *testing.T) {
	p := projector()
	anim := &components.TumbleAnimComponent{StartI: 2, StartJ: 2, DI: 1, Duration: 0.35, Scale: 0.8}
	rolling := p.TumblingCube(anim)
	resting := p.Cube(2, 2, 0.8)
	for _, f := range components.AllFaces {
		samePoints(t, quadFor(t, resting, f).Points, quadFor(t, rolling, f).Points)
	}
}

func TestTumbleEndsOnNextTile(t *testing.T) {
	p := projector()
	cases := []struct {
		name   string
		di, dj int
		// pre-roll face that ends on top
		up components.Face
	}{
		{"east", 1, 0, components.FaceWest},
		{"west", -1, 0, components.FaceEast},
		{"north", 0, 1, components.FaceSouth},
		{"south", 0, -1, components.FaceNorth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anim := &components.TumbleAnimComponent{
				StartI: 3, StartJ: 3, DI: c.di, DJ: c.dj,
				Duration: 0.35, Elapsed: 0.35, Scale: 0.8,
			}
			rolling := p.TumblingCube(anim)
			landed := p.Cube(3+c.di, 3+c.dj, 0.8)
			samePoints(t, quadFor(t, landed, components.FaceTop).Points, quadFor(t, rolling, c.up).Points)
		})
	}
}

func TestTumbleDrawOrder(t *testing.T) {
	p := projector()
	east := p.TumblingCube(&components.TumbleAnimComponent{DI: 1, Duration: 1, Elapsed: 0.5, Scale: 1})
	assert.Equal(t, components.FaceNorth, east[0].Face)
	assert.Equal(t, components.FaceWest, east[5].Face)

	west := p.TumblingCube(&components.TumbleAnimComponent{DI: -1, Duration: 1, Elapsed: 0.5, Scale: 1})
	assert.Equal(t, components.FaceTop, west[5].Face)
}

func TestDepth(t *testing.T) {
	assert.True(t, Depth(3, 3, 1, 1), "far before near")
	assert.False(t, Depth(1, 1, 3, 3))
	assert.True(t, Depth(2, 0, 1, 1), "ties go by i")
	assert.False(t, Depth(1, 1, 1, 1))
}

func TestSortSprites(t *testing.T) {
	sprites := []Sprite{
		{I: 1, J: 1, Layer: 1, Ref: 0},
		{I: 1, J: 1, Layer: 0, Ref: 1},
		{I: 4, J: 0, Layer: 1, Ref: 2},
		{I: 2, J: 2, Layer: 1, ZBias: 0.5, Ref: 3},
		{I: 2, J: 2, Layer: 1, Ref: 4},
	}
	SortSprites(sprites)

	refs := make([]int, len(sprites))
	for k, s := range sprites {
		refs[k] = s.Ref
	}
	assert.Equal(t, []int{2, 4, 3, 1, 0}, refs)
}
