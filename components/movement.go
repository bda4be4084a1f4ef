package components

// MoveDuration is how long one tumble takes, in seconds of accumulated dt
const MoveDuration = 0.35

// GridMoveComponent is the logical state of a move in flight. It exists from
// the accepted request until the duration has elapsed.
type GridMoveComponent struct {
	StartI, StartJ int
	DI, DJ         int
	Duration       float64
	Elapsed        float64
}

// NewGridMoveComponent starts a tumble from (i, j) along (di, dj)
func NewGridMoveComponent(i, j, di, dj int) *GridMoveComponent {
	return &GridMoveComponent{
		StartI:   i,
		StartJ:   j,
		DI:       di,
		DJ:       dj,
		Duration: MoveDuration,
	}
}

// Done reports whether the move has run its full duration
func (m *GridMoveComponent) Done() bool {
	return m.Elapsed >= m.Duration
}

// Target returns the destination tile
func (m *GridMoveComponent) Target() (int, int) {
	return m.StartI + m.DI, m.StartJ + m.DJ
}

// TumbleAnimComponent mirrors a GridMove for drawing. It keeps the faces as
// they were before the roll and outlives the GridMove until the die has been
// reoriented, so the renderer never shows rotated faces early.
type TumbleAnimComponent struct {
	StartI, StartJ int
	DI, DJ         int
	Duration       float64
	Elapsed        float64
	Scale          float64
	// Faces before the roll; HasSnapshot is false for entities without dice
	FacesSnapshot Sides
	HasSnapshot   bool
}

// Progress returns the animation position in [0, 1]
func (a *TumbleAnimComponent) Progress() float64 {
	if a.Duration <= 0 {
		return 1
	}
	t := a.Elapsed / a.Duration
	if t > 1 {
		return 1
	}
	return t
}
