package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BaseScreen gives embedding screens a fixed logical resolution and no-op
// Update and Draw. A zero size means the screen is an overlay and follows
// whatever it is drawn over.
type BaseScreen struct {
	width, height int
}

// NewBaseScreen creates a base screen with the given logical size
func NewBaseScreen(width, height int) *BaseScreen {
	return &BaseScreen{width: width, height: height}
}

func (s *BaseScreen) Update() error { return nil }

func (s *BaseScreen) Draw(*ebiten.Image) {}

// Layout lets ebiten scale the fixed resolution to the window
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.width <= 0 || s.height <= 0 {
		return outsideWidth, outsideHeight
	}
	return s.width, s.height
}

// GetWidth returns the logical width
func (s *BaseScreen) GetWidth() int { return s.width }

// GetHeight returns the logical height
func (s *BaseScreen) GetHeight() int { return s.height }
