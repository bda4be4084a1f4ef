package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dicewalk/config"
	"dicewalk/systems"
)

// HistoryScreen shows the whole message log, oldest first, with scrolling
type HistoryScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
}

// NewHistoryScreen creates a history view over a message log
func NewHistoryScreen(log *systems.MessageLog) *HistoryScreen {
	return &HistoryScreen{
		BaseScreen: NewBaseScreen(0, 0),
		log:        log,
		width:      600,
		height:     400,
	}
}

// Update handles scrolling; F1 or Escape closes the view
func (s *HistoryScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

func (s *HistoryScreen) maxLines() int {
	return (s.height - 50) / config.LineHeight
}

// Draw renders the history panel
func (s *HistoryScreen) Draw(screen *ebiten.Image) {
	x, y := drawPanel(screen, s.width, s.height)

	title := "MESSAGE HISTORY"
	ebitenutil.DebugPrintAt(screen, title, x+(s.width-len(title)*6)/2, y+8)

	messages := s.log.Messages
	maxLines := s.maxLines()
	start := s.scrollOffset
	if start > len(messages)-maxLines {
		start = max(len(messages)-maxLines, 0)
	}

	top := y + 30
	for k := 0; k < maxLines && start+k < len(messages); k++ {
		msg := messages[start+k]
		lineY := top + k*config.LineHeight
		vector.DrawFilledRect(screen, float32(x+10), float32(lineY+4), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, x+22, lineY)
	}

	if len(messages) > maxLines {
		area := float32(maxLines * config.LineHeight)
		barHeight := float32(maxLines) / float32(len(messages)) * area
		barY := float32(top) + float32(start)/float32(len(messages))*area
		vector.DrawFilledRect(screen, float32(x+s.width-10), barY, 5, barHeight, panelBorder, false)
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: scroll  F1/Esc: close", x+10, y+s.height-20)
}
