// Package session owns the running game: the loaded level and templates, the
// world built from them and its system pipeline. It knows nothing about the
// window, so restart and hot reload can be exercised headless.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/config"
	"dicewalk/data"
	"dicewalk/ecs"
	"dicewalk/spawners"
	"dicewalk/systems"
)

// Session is one playthrough of a level
type Session struct {
	cfg    config.Config
	logger *zap.Logger

	level     *data.Level
	templates *data.TemplateManager

	World    *ecs.World
	Pipeline *systems.Pipeline
	Entities *spawners.LevelEntities

	// Run after the pipeline in every world this session builds
	attached []ecs.System
}

// New loads the configured level and templates and builds the first world
func New(cfg config.Config, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{cfg: cfg, logger: logger}

	level, templates, err := LoadAssets(cfg)
	if err != nil {
		return nil, err
	}
	if err := s.build(level, templates); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadAssets reads the level and templates named by the config, falling back
// to the embedded ones. A non-zero seed in the config overrides the level's.
func LoadAssets(cfg config.Config) (*data.Level, *data.TemplateManager, error) {
	templates, err := data.DefaultTemplates()
	if err != nil {
		return nil, nil, err
	}
	if cfg.TemplatesDir != "" {
		if err := templates.LoadTemplatesFromDirectory(cfg.TemplatesDir); err != nil {
			return nil, nil, fmt.Errorf("load templates: %w", err)
		}
	}

	var level *data.Level
	if cfg.LevelPath != "" {
		level, err = data.LoadLevel(cfg.LevelPath)
	} else {
		level, err = data.DefaultLevel()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load level: %w", err)
	}
	if cfg.Seed != 0 {
		level.Seed = cfg.Seed
	}
	return level, templates, nil
}

func (s *Session) build(level *data.Level, templates *data.TemplateManager) error {
	world := ecs.NewWorld()
	entities, err := spawners.BuildLevel(world, level, templates,
		float64(s.cfg.WindowWidth), float64(s.cfg.WindowHeight), s.logger.Named("level"))
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}
	pipeline := systems.InstallPipeline(world, s.logger.Named("systems"))
	for _, system := range s.attached {
		world.AddSystem(system)
	}

	log := systems.GetMessageLog(world)
	log.Add(fmt.Sprintf("Welcome to %s.", level.Name))
	log.Add("Roll into the enemy dice. The face on top decides where you strike.")

	s.level = level
	s.templates = templates
	s.World = world
	s.Pipeline = pipeline
	s.Entities = entities
	return nil
}

// Attach adds a system to the current world and to every rebuilt one
func (s *Session) Attach(system ecs.System) {
	s.attached = append(s.attached, system)
	s.World.AddSystem(system)
}

// Level returns the level the current world was built from
func (s *Session) Level() *data.Level {
	return s.level
}

// Restart rebuilds the world from the level already loaded
func (s *Session) Restart() error {
	if err := s.build(s.level, s.templates); err != nil {
		return err
	}
	s.logger.Info("level restarted", zap.String("level", s.level.Name))
	return nil
}

// Reload reads the level and templates again and rebuilds the world. On
// failure the running world is kept and the error is shown in its log.
func (s *Session) Reload() error {
	level, templates, err := LoadAssets(s.cfg)
	if err == nil {
		err = s.build(level, templates)
	}
	if err != nil {
		s.logger.Warn("reload failed", zap.Error(err))
		systems.GetMessageLog(s.World).AddAlert("Reload failed: " + err.Error())
		return err
	}
	s.logger.Info("level reloaded", zap.String("level", level.Name))
	return nil
}

// Move asks for the player to roll one tile. The turn systems decide whether
// and when it happens.
func (s *Session) Move(di, dj int) {
	s.World.Emit(systems.PlayerMoveIntentEvent{Entity: s.Entities.Player, DI: di, DJ: dj})
}

// Update advances the world by dt seconds
func (s *Session) Update(dt float64) {
	s.World.Update(dt)
}

// GameOver reports whether the player die has been knocked out
func (s *Session) GameOver() bool {
	ts, ok := ecs.GetResource[components.TurnStateComponent](s.World)
	return ok && ts.GameOver
}
