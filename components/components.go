package components

// PositionComponent stores the grid tile an entity stands on
type PositionComponent struct {
	I, J int
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// BarrierComponent marks the entity's tile as impassable
type BarrierComponent struct{}

// NameComponent stores a display name used in the message log
type NameComponent struct {
	Value string
}

// HPComponent stores hit points
type HPComponent struct {
	Current int
	Max     int
}

// Damage subtracts amount, never going below zero, and returns what was
// actually removed.
func (h *HPComponent) Damage(amount int) int {
	if amount <= 0 || h.Current <= 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Defeated reports whether the entity has no hit points left
func (h *HPComponent) Defeated() bool {
	return h.Current <= 0
}

// AIWalkerComponent marks an entity as AI controlled
type AIWalkerComponent struct{}

// PatrolComponent is the heading an AI entity keeps walking along
type PatrolComponent struct {
	DI, DJ int
}

// DefaultPatrol heads east
func DefaultPatrol() *PatrolComponent {
	return &PatrolComponent{DI: 1, DJ: 0}
}

// Reverse flips the heading on both axes
func (p *PatrolComponent) Reverse() {
	p.DI, p.DJ = -p.DI, -p.DJ
}

// Render kinds used for draw ordering
const (
	RenderKindTile    = "tile"
	RenderKindBarrier = "barrier"
	RenderKindDice    = "dice"
)

// RenderableComponent stores draw ordering metadata
type RenderableComponent struct {
	Kind  string
	Layer int
	ZBias float64
}

// RenderCubeComponent stores the cube size relative to a tile
type RenderCubeComponent struct {
	Scale float64
}

// DefaultCubeScale is used when an entity has no RenderCube
const DefaultCubeScale = 0.8
