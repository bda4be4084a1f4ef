package spawners

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/data"
	"dicewalk/ecs"
	"dicewalk/generation"
)

// Default template ids in the embedded dice file
const (
	PlayerTemplateID = "player"
	EnemyTemplateID  = "green"
)

// Render layers
const (
	LayerBarrier = 0
	LayerDice    = 1
)

var defaultTemplates = sync.OnceValues(data.DefaultTemplates)

// DefaultTemplates returns the embedded die templates. They are parsed once.
func DefaultTemplates() *data.TemplateManager {
	m, err := defaultTemplates()
	if err != nil {
		// The embedded file is part of the binary
		panic(err)
	}
	return m
}

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world     *ecs.World
	templates *data.TemplateManager
	logger    *zap.Logger
}

// NewEntitySpawner creates a new entity spawner. A nil template manager
// falls back to the embedded templates.
func NewEntitySpawner(world *ecs.World, templates *data.TemplateManager, logger *zap.Logger) *EntitySpawner {
	if templates == nil {
		templates = DefaultTemplates()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntitySpawner{
		world:     world,
		templates: templates,
		logger:    logger,
	}
}

// CreatePlayer creates the player die at the given tile
func (s *EntitySpawner) CreatePlayer(templateID string, i, j int) (ecs.Entity, error) {
	template, err := s.templates.Template(templateID)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("create player: %w", err)
	}
	e := s.CreateDie(template, i, j)
	components.Player.Add(s.world, e, &components.PlayerComponent{})
	// Players never patrol
	components.AIWalker.Remove(s.world, e)
	components.Patrol.Remove(s.world, e)

	s.logger.Debug("player created", zap.Stringer("entity", e), zap.Int("i", i), zap.Int("j", j))
	return e, nil
}

// CreateEnemy creates a die from a template at the given tile
func (s *EntitySpawner) CreateEnemy(templateID string, i, j int) (ecs.Entity, error) {
	template, err := s.templates.Template(templateID)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("create enemy: %w", err)
	}
	e := s.CreateDie(template, i, j)
	s.logger.Debug("enemy created",
		zap.String("template", templateID),
		zap.Stringer("entity", e),
		zap.Int("i", i),
		zap.Int("j", j))
	return e, nil
}

// CreateDie builds a die with every component its template implies
func (s *EntitySpawner) CreateDie(template *data.DieTemplate, i, j int) ecs.Entity {
	w := s.world
	e := w.CreateEntity()

	components.Position.Add(w, e, &components.PositionComponent{I: i, J: j})
	components.DieFaces.Add(w, e, &components.DieFacesComponent{Sides: template.Sides()})
	components.HP.Add(w, e, &components.HPComponent{Current: template.HP, Max: template.HP})
	components.AttackSet.Add(w, e, template.AttackSet())

	scale := template.Scale
	if scale == 0 {
		scale = components.DefaultCubeScale
	}
	components.RenderCube.Add(w, e, &components.RenderCubeComponent{Scale: scale})
	components.Renderable.Add(w, e, &components.RenderableComponent{Kind: components.RenderKindDice, Layer: LayerDice})

	// Add name component for display in messages
	if template.Name != "" {
		components.Name.Add(w, e, &components.NameComponent{Value: template.Name})
	}

	if template.AI {
		components.AIWalker.Add(w, e, &components.AIWalkerComponent{})
		patrol := components.DefaultPatrol()
		if template.Patrol != nil {
			patrol = &components.PatrolComponent{DI: template.Patrol.DI, DJ: template.Patrol.DJ}
		}
		components.Patrol.Add(w, e, patrol)
	}
	return e
}

// CreateBarrier creates a barrier entity at the given tile
func (s *EntitySpawner) CreateBarrier(i, j int) ecs.Entity {
	return CreateBarrier(s.world, i, j)
}

// CreatePlayerDie creates a player die from the embedded player template
func CreatePlayerDie(world *ecs.World, i, j int) ecs.Entity {
	e, err := NewEntitySpawner(world, nil, nil).CreatePlayer(PlayerTemplateID, i, j)
	if err != nil {
		panic(err)
	}
	return e
}

// CreateEnemyDie creates an enemy die from the embedded enemy template. With
// ai false the die never plans moves of its own.
func CreateEnemyDie(world *ecs.World, i, j int, ai bool) ecs.Entity {
	e, err := NewEntitySpawner(world, nil, nil).CreateEnemy(EnemyTemplateID, i, j)
	if err != nil {
		panic(err)
	}
	if !ai {
		components.AIWalker.Remove(world, e)
		components.Patrol.Remove(world, e)
	}
	return e
}

// CreateBarrier creates a barrier entity at the given tile
func CreateBarrier(world *ecs.World, i, j int) ecs.Entity {
	e := world.CreateEntity()
	components.Position.Add(world, e, &components.PositionComponent{I: i, J: j})
	components.Barrier.Add(world, e, &components.BarrierComponent{})
	components.Renderable.Add(world, e, &components.RenderableComponent{Kind: components.RenderKindBarrier, Layer: LayerBarrier})
	return e
}

// SpawnBoundaryBarriers rings an N×N grid with barriers
func SpawnBoundaryBarriers(world *ecs.World, size int) []ecs.Entity {
	ring := generation.BoundaryRing(size)
	out := make([]ecs.Entity, 0, len(ring))
	for _, p := range ring {
		out = append(out, CreateBarrier(world, p.I, p.J))
	}
	return out
}

// SetupTurnState installs a fresh turn state resource
func SetupTurnState(world *ecs.World) *components.TurnStateComponent {
	return ecs.SetResource(world, components.NewTurnStateComponent())
}

// SetupGrid installs the grid geometry resource for a board of the given
// size drawn on a screen of the given pixel size.
func SetupGrid(world *ecs.World, size int, screenWidth, screenHeight float64) *components.GridGeometryComponent {
	return ecs.SetResource(world, components.NewGridGeometry(size, screenWidth, screenHeight))
}
