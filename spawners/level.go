package spawners

import (
	"fmt"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/data"
	"dicewalk/ecs"
	"dicewalk/generation"
)

// LevelEntities lists what BuildLevel created
type LevelEntities struct {
	Player   ecs.Entity
	Enemies  []ecs.Entity
	Barriers []ecs.Entity
	Board    *generation.Board
}

// BuildLevel populates an empty world from a level: barriers (boundary ring,
// listed and scattered), the player, the enemies, the turn state and the
// grid geometry for a screen of the given pixel size.
func BuildLevel(world *ecs.World, level *data.Level, templates *data.TemplateManager, screenWidth, screenHeight float64, logger *zap.Logger) (*LevelEntities, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	merged, err := mergeTemplates(templates, level.Templates)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}
	spawner := NewEntitySpawner(world, merged, logger)

	// Resolve every template before touching the world
	if _, err := merged.Template(level.Player.Template); err != nil {
		return nil, fmt.Errorf("level %q: player: %w", level.Name, err)
	}
	for idx, enemy := range level.Enemies {
		if _, err := merged.Template(enemy.Template); err != nil {
			return nil, fmt.Errorf("level %q: enemy %d: %w", level.Name, idx, err)
		}
	}

	SetupTurnState(world)
	SetupGrid(world, level.Size, screenWidth, screenHeight)

	out := &LevelEntities{Board: generation.NewBoardGenerator().Generate(level)}
	for _, p := range out.Board.Barriers() {
		out.Barriers = append(out.Barriers, spawner.CreateBarrier(p.I, p.J))
	}

	out.Player, err = spawner.CreatePlayer(level.Player.Template, level.Player.I, level.Player.J)
	if err != nil {
		return nil, err
	}
	applyPlacement(world, out.Player, level.Player)

	for _, placement := range level.Enemies {
		e, err := spawner.CreateEnemy(placement.Template, placement.I, placement.J)
		if err != nil {
			return nil, err
		}
		applyPlacement(world, e, placement)
		out.Enemies = append(out.Enemies, e)
	}

	logger.Info("level built",
		zap.String("level", level.Name),
		zap.Int("size", level.Size),
		zap.Int("enemies", len(out.Enemies)),
		zap.Int("obstacles", len(out.Board.Interior)))
	return out, nil
}

// applyPlacement applies per-placement overrides
func applyPlacement(world *ecs.World, e ecs.Entity, p data.Placement) {
	if p.Name != "" {
		components.Name.Add(world, e, &components.NameComponent{Value: p.Name})
	}
	if p.Patrol != nil {
		if patrol, ok := components.Patrol.Get(world, e); ok {
			patrol.DI, patrol.DJ = p.Patrol.DI, p.Patrol.DJ
		}
	}
}

// mergeTemplates returns base plus the level's own templates. The base
// manager is left untouched.
func mergeTemplates(base *data.TemplateManager, extra []data.DieTemplate) (*data.TemplateManager, error) {
	if base == nil {
		base = DefaultTemplates()
	}
	if len(extra) == 0 {
		return base, nil
	}
	merged := data.NewTemplateManager()
	for id, t := range base.Templates {
		merged.Templates[id] = t
	}
	if err := merged.Add(extra...); err != nil {
		return nil, err
	}
	return merged, nil
}
