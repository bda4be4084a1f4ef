// Package iso projects grid coordinates onto the screen and builds the
// polygons of upright and tumbling dice.
package iso

import (
	"math"
	"sort"

	"dicewalk/components"
)

// Projector maps grid space (i, j, height) to screen pixels. Height is in
// tile heights; the screen y axis grows downwards.
type Projector struct {
	TileWidth    float64
	TileHeight   float64
	OriginX      float64
	OriginY      float64
	ScreenHeight float64
}

// NewProjector builds a projector for a grid drawn on a screen of the given
// height.
func NewProjector(g *components.GridGeometryComponent, screenHeight float64) Projector {
	return Projector{
		TileWidth:    g.TileWidth,
		TileHeight:   g.TileHeight,
		OriginX:      g.OriginX,
		OriginY:      g.OriginY,
		ScreenHeight: screenHeight,
	}
}

// Point projects a grid point
func (p Projector) Point(i, j, z float64) (x, y float64) {
	x = p.OriginX + (i-j)*p.TileWidth/2
	up := p.OriginY + (i+j)*p.TileHeight/2 + z*p.TileHeight
	return x, p.ScreenHeight - up
}

// TileCorners returns the diamond of tile (i, j) at ground level
func (p Projector) TileCorners(i, j int) [4][2]float64 {
	fi, fj := float64(i), float64(j)
	var out [4][2]float64
	for k, c := range [4][2]float64{{fi, fj}, {fi + 1, fj}, {fi + 1, fj + 1}, {fi, fj + 1}} {
		out[k][0], out[k][1] = p.Point(c[0], c[1], 0)
	}
	return out
}

// Vec3 is a point in grid space
type Vec3 struct {
	I, J, Z float64
}

// Quad is one projected face of a cube
type Quad struct {
	Face   components.Face
	Points [4][2]float64
}

// Vertex indices of each cube face
var faceVertices = [...]struct {
	face components.Face
	idx  [4]int
}{
	{components.FaceBottom, [4]int{0, 1, 3, 2}},
	{components.FaceTop, [4]int{4, 5, 7, 6}},
	{components.FaceWest, [4]int{0, 1, 5, 4}},
	{components.FaceEast, [4]int{2, 3, 7, 6}},
	{components.FaceSouth, [4]int{0, 2, 6, 4}},
	{components.FaceNorth, [4]int{1, 3, 7, 5}},
}

// Draw order of faces, hidden ones first
var (
	restingOrder   = faceOrder(components.FaceBottom, components.FaceEast, components.FaceNorth, components.FaceSouth, components.FaceWest, components.FaceTop)
	forwardOrder   = faceOrder(components.FaceNorth, components.FaceEast, components.FaceBottom, components.FaceTop, components.FaceSouth, components.FaceWest)
	westOrder      = faceOrder(components.FaceNorth, components.FaceBottom, components.FaceEast, components.FaceWest, components.FaceSouth, components.FaceTop)
	southwardOrder = faceOrder(components.FaceBottom, components.FaceEast, components.FaceNorth, components.FaceSouth, components.FaceTop, components.FaceWest)
)

func faceOrder(faces ...components.Face) map[components.Face]int {
	out := make(map[components.Face]int, len(faces))
	for rank, f := range faces {
		out[f] = rank
	}
	return out
}

// cubeVertices returns the corners of an upright cube of the given scale
// centred on (ci, cj)
func cubeVertices(ci, cj, scale float64) [8]Vec3 {
	half := scale / 2
	return [8]Vec3{
		{ci - half, cj - half, 0}, {ci - half, cj + half, 0},
		{ci + half, cj - half, 0}, {ci + half, cj + half, 0},
		{ci - half, cj - half, scale}, {ci - half, cj + half, scale},
		{ci + half, cj - half, scale}, {ci + half, cj + half, scale},
	}
}

func (p Projector) quads(verts [8]Vec3, order map[components.Face]int) []Quad {
	var screen [8][2]float64
	for k, v := range verts {
		screen[k][0], screen[k][1] = p.Point(v.I, v.J, v.Z)
	}
	out := make([]Quad, 0, len(faceVertices))
	for _, fv := range faceVertices {
		q := Quad{Face: fv.face}
		for k, idx := range fv.idx {
			q.Points[k] = screen[idx]
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return order[out[a].Face] < order[out[b].Face]
	})
	return out
}

// Cube returns the faces of a die resting on tile (i, j), in draw order
func (p Projector) Cube(i, j int, scale float64) []Quad {
	return p.quads(cubeVertices(float64(i)+0.5, float64(j)+0.5, scale), restingOrder)
}

// TumblingCube returns the faces of a die rolling over its leading bottom
// edge. The die rotates a quarter turn over the animation and, in the second
// half, slides so that a die smaller than a tile still lands centred.
func (p Projector) TumblingCube(anim *components.TumbleAnimComponent) []Quad {
	t := anim.Progress()
	angle := math.Pi / 2 * t
	di, dj := float64(anim.DI), float64(anim.DJ)
	half := anim.Scale / 2

	ci := float64(anim.StartI) + 0.5
	cj := float64(anim.StartJ) + 0.5
	if t > 0.5 {
		raw := (t - 0.5) / 0.5
		slide := 1 - (1-raw)*(1-raw)
		correction := (1 - anim.Scale) * slide
		ci += di * correction
		cj += dj * correction
	}

	verts := cubeVertices(ci, cj, anim.Scale)
	sin, cos := math.Sincos(angle)
	switch {
	case anim.DI != 0:
		pivot := ci + half*di
		for k := range verts {
			off, z := verts[k].I-pivot, verts[k].Z
			verts[k].I = pivot + off*cos + z*sin*di
			verts[k].Z = -off*sin*di + z*cos
		}
	case anim.DJ != 0:
		pivot := cj + half*dj
		for k := range verts {
			off, z := verts[k].J-pivot, verts[k].Z
			verts[k].J = pivot + off*cos + z*sin*dj
			verts[k].Z = -off*sin*dj + z*cos
		}
	}

	return p.quads(verts, tumbleOrder(anim.DI, anim.DJ))
}

func tumbleOrder(di, dj int) map[components.Face]int {
	switch {
	case di == 1 || dj == 1:
		return forwardOrder
	case di == -1:
		return westOrder
	case dj == -1:
		return southwardOrder
	}
	return restingOrder
}

// Depth orders dice from far to near: larger i+j first, then larger i
func Depth(ai, aj, bi, bj int) bool {
	if ai+aj != bi+bj {
		return ai+aj > bi+bj
	}
	return ai > bi
}

// Sprite is one thing to draw on a tile
type Sprite struct {
	I, J  int
	Layer int
	ZBias float64
	// Index into the caller's own slice
	Ref int
}

// SortSprites orders sprites for painting: by Depth, then lower layers first,
// then by ZBias. Equal sprites keep their order.
func SortSprites(sprites []Sprite) {
	sort.SliceStable(sprites, func(a, b int) bool {
		x, y := sprites[a], sprites[b]
		if x.I != y.I || x.J != y.J {
			return Depth(x.I, x.J, y.I, y.J)
		}
		if x.Layer != y.Layer {
			return x.Layer < y.Layer
		}
		return x.ZBias < y.ZBias
	})
}
