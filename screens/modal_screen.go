package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelBackground = color.RGBA{0, 0, 0, 200}
	panelBorder     = color.RGBA{255, 255, 255, 255}
)

// ModalScreen is a text panel drawn over the screens below it. Escape or
// one of its close keys dismisses it.
type ModalScreen struct {
	*BaseScreen
	title     string
	content   string
	width     int
	height    int
	closeKeys []ebiten.Key
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(0, 0),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		closeKeys:  append([]ebiten.Key{ebiten.KeyEscape}, closeKeys...),
	}
}

// NewHelpScreen explains the controls and the rules
func NewHelpScreen() *ModalScreen {
	return NewModalScreen("HOW TO PLAY", helpText, 460, 240, ebiten.KeyH)
}

const helpText = `Arrows, WASD or hjkl roll your die one tile.
Enemy dice roll along their patrol at the same time
and always win a contested tile.

After a roll the face on top decides where the die
strikes: forward, left or right of where it landed.
Red tiles show where the enemies will hit next.

R      restart the level
F1     message history
H/Esc  close this panel`

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	x, y := drawPanel(screen, s.width, s.height)

	titleX := x + (s.width-len(s.title)*6)/2 // Approximate text width
	ebitenutil.DebugPrintAt(screen, s.title, titleX, y+10)
	ebitenutil.DebugPrintAt(screen, s.content, x+10, y+30)
}

// drawPanel draws a centred framed box and returns its top left corner
func drawPanel(screen *ebiten.Image, width, height int) (int, int) {
	b := screen.Bounds()
	x := (b.Dx() - width) / 2
	y := (b.Dy() - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), panelBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, panelBorder, false)
	return x, y
}
