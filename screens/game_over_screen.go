package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen is shown over the board once the player die is knocked out
type GameOverScreen struct {
	*BaseScreen
	turns int
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(turns int) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(0, 0),
		turns:      turns,
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ErrRestart
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrQuit
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	x, y := drawPanel(screen, 260, 80)
	text := fmt.Sprintf("Game Over!\n\nYou lasted %d turns.\nR: play again  Esc: quit", s.turns)
	ebitenutil.DebugPrintAt(screen, text, x+12, y+10)
}
