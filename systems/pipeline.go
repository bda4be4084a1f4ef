package systems

import (
	"go.uber.org/zap"

	"dicewalk/ecs"
)

// Pipeline holds the game systems in the order they must run. Orientation
// needs the landing before attacks read the top face, and the turn systems
// read what the movement systems left behind.
type Pipeline struct {
	Request     *MovementRequestSystem
	Progress    *MovementProgressSystem
	Orientation *OrientationSystem
	Attack      *AttackEffectSystem
	Occupancy   *TileOccupancySystem
	Planning    *EnemyPlanningSystem
	Advance     *TurnAdvanceSystem
	Commit      *PlayerTurnCommitSystem
	Defeat      *DefeatSystem
}

// NewPipeline builds every system with a shared logger
func NewPipeline(logger *zap.Logger) *Pipeline {
	logger = orNop(logger)
	return &Pipeline{
		Request:     NewMovementRequestSystem(logger.Named("movement")),
		Progress:    NewMovementProgressSystem(logger.Named("movement")),
		Orientation: NewOrientationSystem(),
		Attack:      NewAttackEffectSystem(logger.Named("attack")),
		Occupancy:   NewTileOccupancySystem(),
		Planning:    NewEnemyPlanningSystem(logger.Named("turn")),
		Advance:     NewTurnAdvanceSystem(logger.Named("turn")),
		Commit:      NewPlayerTurnCommitSystem(logger.Named("turn")),
		Defeat:      NewDefeatSystem(logger.Named("defeat")),
	}
}

// Systems returns the systems in run order
func (p *Pipeline) Systems() []ecs.System {
	return []ecs.System{
		p.Request,
		p.Progress,
		p.Orientation,
		p.Attack,
		p.Occupancy,
		p.Planning,
		p.Advance,
		p.Commit,
		p.Defeat,
	}
}

// Install registers the systems on a world
func (p *Pipeline) Install(world *ecs.World) {
	for _, system := range p.Systems() {
		world.AddSystem(system)
	}
}

// InstallPipeline builds and installs the full pipeline
func InstallPipeline(world *ecs.World, logger *zap.Logger) *Pipeline {
	p := NewPipeline(logger)
	p.Install(world)
	return p
}
