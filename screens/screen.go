package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen transitions are reported through Update's error
var (
	// ErrCloseScreen pops the screen that returned it
	ErrCloseScreen = errors.New("close screen")
	ErrNewGame     = errors.New("new game")
	ErrRestart     = errors.New("restart")
	ErrQuit        = errors.New("quit")
)

// Screen is one layer of the UI: a menu, the board or a panel over it
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack routes input to the top screen and draws every layer
type ScreenStack struct {
	layers []Screen
}

// NewScreenStack creates an empty stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

// Push opens a screen above the current one
func (s *ScreenStack) Push(screen Screen) {
	s.layers = append(s.layers, screen)
}

// Pop closes the top screen and returns it, or nil when empty
func (s *ScreenStack) Pop() Screen {
	top := s.Peek()
	if top != nil {
		s.layers = s.layers[:len(s.layers)-1]
	}
	return top
}

// Replace drops every layer and opens screen
func (s *ScreenStack) Replace(screen Screen) {
	s.layers = append(s.layers[:0], screen)
}

// Peek returns the top screen, or nil when empty
func (s *ScreenStack) Peek() Screen {
	if n := len(s.layers); n > 0 {
		return s.layers[n-1]
	}
	return nil
}

// Len returns the number of open screens
func (s *ScreenStack) Len() int {
	return len(s.layers)
}

// Update runs the top screen only. ErrCloseScreen is handled here; every
// other transition goes to the caller.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	if err := top.Update(); !errors.Is(err, ErrCloseScreen) {
		return err
	}
	s.Pop()
	return nil
}

// Draw paints the layers bottom up
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, layer := range s.layers {
		layer.Draw(screen)
	}
}

// Layout asks the top screen; an empty stack keeps the window size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
