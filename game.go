package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"dicewalk/config"
	"dicewalk/data"
	"dicewalk/screens"
	"dicewalk/session"
	"dicewalk/sfx"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg     config.Config
	logger  *zap.Logger
	session *session.Session
	watcher *data.Watcher
	screens *screens.ScreenStack
}

// NewGame loads the level and opens the start menu. Asset errors surface
// here, before a window exists.
func NewGame(cfg config.Config, logger *zap.Logger) (*Game, error) {
	sess, err := session.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		session: sess,
		screens: screens.NewScreenStack(),
	}
	if cfg.Watch {
		g.watcher, err = data.NewWatcher(cfg.WatchPaths()...)
		if err != nil {
			return nil, fmt.Errorf("hot reload: %w", err)
		}
		logger.Info("watching for changes", zap.Strings("paths", cfg.WatchPaths()))
	}

	if cfg.Volume > 0 {
		sess.Attach(sfx.NewSoundSystem(cfg.Volume))
	}

	g.screens.Push(screens.NewStartScreen(cfg.WindowWidth, cfg.WindowHeight))
	return g, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screens.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.screens.Replace(screens.NewGameScreen(g.session, g.cfg.WindowWidth, g.cfg.WindowHeight, g.watcher, g.logger.Named("game")))
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// Close stops hot reload
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
