package components

import (
	"dicewalk/ecs"
)

// Component kinds used by the game. Each handle reaches its typed store in any
// world, e.g. components.Position.Get(world, e).
var (
	Position   = ecs.NewComponentType[PositionComponent]("Position")
	DieFaces   = ecs.NewComponentType[DieFacesComponent]("DieFaces")
	HP         = ecs.NewComponentType[HPComponent]("HP")
	AttackSet  = ecs.NewComponentType[AttackSetComponent]("AttackSet")
	AttackSide = ecs.NewComponentType[AttackSideComponent]("AttackSide")
	Barrier    = ecs.NewComponentType[BarrierComponent]("Barrier")
	AIWalker   = ecs.NewComponentType[AIWalkerComponent]("AIWalker")
	Patrol     = ecs.NewComponentType[PatrolComponent]("Patrol")
	Player     = ecs.NewComponentType[PlayerComponent]("Player")
	GridMove   = ecs.NewComponentType[GridMoveComponent]("GridMove")
	TumbleAnim = ecs.NewComponentType[TumbleAnimComponent]("TumbleAnim")
	Renderable = ecs.NewComponentType[RenderableComponent]("Renderable")
	RenderCube = ecs.NewComponentType[RenderCubeComponent]("RenderCube")
	Name       = ecs.NewComponentType[NameComponent]("Name")
)
