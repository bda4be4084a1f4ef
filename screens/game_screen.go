package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/data"
	"dicewalk/ecs"
	"dicewalk/render"
	"dicewalk/session"
	"dicewalk/systems"
)

// moveKeys maps keys to a one tile roll. Up goes north along j.
var moveKeys = []struct {
	keys   []ebiten.Key
	di, dj int
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, 0, 1},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, 0, -1},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, 1, 0},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, -1, 0},
}

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	session       *session.Session
	renderer      *render.RenderSystem
	overlays      *ScreenStack
	watcher       *data.Watcher
	logger        *zap.Logger
	gameOverShown bool
}

// NewGameScreen creates a new game screen. watcher may be nil.
func NewGameScreen(s *session.Session, width, height int, watcher *data.Watcher, logger *zap.Logger) *GameScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameScreen{
		BaseScreen: NewBaseScreen(width, height),
		session:    s,
		renderer:   render.NewRenderSystem(),
		overlays:   NewScreenStack(),
		watcher:    watcher,
		logger:     logger,
	}
}

// Update handles game updates
func (g *GameScreen) Update() error {
	g.pollReload()

	if top := g.overlays.Peek(); top != nil {
		err := g.overlays.Update()
		if errors.Is(err, ErrRestart) {
			g.restart()
			return nil
		}
		if err != nil {
			return err
		}
		// Panels pause the board; the game over screen does not
		if _, over := top.(*GameOverScreen); !over {
			return nil
		}
	} else if err := g.handleInput(); err != nil {
		return err
	}

	g.session.Update(1 / float64(ebiten.TPS()))

	if g.session.GameOver() && !g.gameOverShown {
		g.gameOverShown = true
		turns := 0
		if ts, ok := ecs.GetResource[components.TurnStateComponent](g.session.World); ok {
			turns = ts.Turn
		}
		g.overlays.Push(NewGameOverScreen(turns))
	}
	return nil
}

func (g *GameScreen) handleInput() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.overlays.Push(NewHistoryScreen(systems.GetMessageLog(g.session.World)))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.overlays.Push(NewHelpScreen())
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.renderer.ShowPreview = !g.renderer.ShowPreview
		return nil
	}

	for _, m := range moveKeys {
		for _, key := range m.keys {
			if inpututil.IsKeyJustPressed(key) {
				g.session.Move(m.di, m.dj)
				return nil
			}
		}
	}
	return nil
}

func (g *GameScreen) restart() {
	if err := g.session.Restart(); err != nil {
		g.logger.Error("restart failed", zap.Error(err))
		return
	}
	g.resetOverlays()
}

func (g *GameScreen) resetOverlays() {
	g.overlays = NewScreenStack()
	g.gameOverShown = false
}

// pollReload rebuilds the board when a watched file changed
func (g *GameScreen) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info("file changed", zap.String("path", name))
			if err := g.session.Reload(); err == nil {
				g.resetOverlays()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watcher error", zap.Error(err))
			}
			return
		default:
			return
		}
	}
}

// Draw draws the board and any open panels
func (g *GameScreen) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.session.World, screen)
	g.overlays.Draw(screen)
}
