package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type menuItem struct {
	label string
	// Returned from Update when chosen; nil opens the help panel
	result error
}

var menuMarker = color.RGBA{255, 230, 150, 255}

// StartScreen is the title menu
type StartScreen struct {
	*BaseScreen
	items    []menuItem
	cursor   int
	overlays *ScreenStack
}

// NewStartScreen creates a new start screen
func NewStartScreen(width, height int) *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(width, height),
		items: []menuItem{
			{label: "New Game", result: ErrNewGame},
			{label: "How to Play"},
			{label: "Quit", result: ErrQuit},
		},
		overlays: NewScreenStack(),
	}
}

// Update moves the cursor and reports the chosen item
func (s *StartScreen) Update() error {
	if s.overlays.Len() > 0 {
		return s.overlays.Update()
	}

	n := len(s.items)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.cursor = (s.cursor + n - 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.cursor = (s.cursor + 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		item := s.items[s.cursor]
		if item.result == nil {
			s.overlays.Push(NewHelpScreen())
		}
		return item.result
	}
	return nil
}

// Draw renders the title and the menu
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cx, cy := s.GetWidth()/2, s.GetHeight()/2

	const title = "D I C E W A L K"
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-80)

	const spacing = 30
	top := cy - len(s.items)*spacing/2
	for k, item := range s.items {
		x, y := cx-len(item.label)*3, top+k*spacing
		if k == s.cursor {
			vector.DrawFilledRect(screen, float32(x-14), float32(y+4), 6, 6, menuMarker, false)
		}
		ebitenutil.DebugPrintAt(screen, item.label, x, y)
	}

	s.overlays.Draw(screen)
}
