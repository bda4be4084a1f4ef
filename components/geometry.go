package components

// GridGeometryComponent holds the grid size and projection constants. Logic
// only uses Size for bounds; the rest is for the renderer.
type GridGeometryComponent struct {
	Size       int
	TileHeight float64
	TileWidth  float64
	OriginX    float64
	OriginY    float64
}

// NewGridGeometry derives tile metrics for a screen the way the level view
// lays out an N×N diamond.
func NewGridGeometry(size int, screenWidth, screenHeight float64) *GridGeometryComponent {
	g := &GridGeometryComponent{Size: size}
	if size > 1 {
		g.TileHeight = 0.7 * screenHeight / float64(size-1)
	} else {
		g.TileHeight = 0.7 * screenHeight
	}
	g.TileWidth = 2 * g.TileHeight
	g.OriginX = screenWidth / 2
	g.OriginY = screenHeight/2 - float64(size-1)*g.TileHeight/2
	return g
}

// InBounds reports whether (i, j) is a playable tile
func (g *GridGeometryComponent) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < g.Size && j < g.Size
}
