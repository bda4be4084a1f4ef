package systems

import (
	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// MovementRequestSystem turns MOVE_REQUEST events into GridMove and
// TumbleAnim components. It is the only admission check for movement.
type MovementRequestSystem struct {
	rejectionLog
	logger *zap.Logger
}

// NewMovementRequestSystem creates a new movement request system
func NewMovementRequestSystem(logger *zap.Logger) *MovementRequestSystem {
	return &MovementRequestSystem{logger: orNop(logger)}
}

// Update consumes every move request of the frame
func (s *MovementRequestSystem) Update(world *ecs.World, dt float64) {
	s.resetRejections()

	var blocked map[Tile]struct{}
	world.Events().Each(func(ev ecs.Event) bool {
		req, ok := ev.(MoveRequestEvent)
		if !ok {
			return false
		}
		if blocked == nil {
			blocked = barrierTiles(world)
		}
		s.processRequest(world, req, blocked)
		return true
	})
}

func (s *MovementRequestSystem) processRequest(world *ecs.World, req MoveRequestEvent, blocked map[Tile]struct{}) {
	e := req.Entity

	// Already moving or still waiting for its faces to turn
	if components.GridMove.Has(world, e) || components.TumbleAnim.Has(world, e) {
		s.reject(s.logger, e, req.DI, req.DJ, RejectBusy)
		return
	}

	pos, ok := components.Position.Get(world, e)
	if !ok {
		s.reject(s.logger, e, req.DI, req.DJ, RejectNoPosition)
		return
	}

	if !isUnitStep(req.DI, req.DJ) {
		s.reject(s.logger, e, req.DI, req.DJ, RejectBadDirection)
		return
	}

	if _, ok := blocked[Tile{pos.I + req.DI, pos.J + req.DJ}]; ok {
		s.reject(s.logger, e, req.DI, req.DJ, RejectBarrier)
		return
	}

	move := components.GridMove.Add(world, e, components.NewGridMoveComponent(pos.I, pos.J, req.DI, req.DJ))

	anim := &components.TumbleAnimComponent{
		StartI:   pos.I,
		StartJ:   pos.J,
		DI:       req.DI,
		DJ:       req.DJ,
		Duration: move.Duration,
		Scale:    components.DefaultCubeScale,
	}
	if cube, ok := components.RenderCube.Get(world, e); ok {
		anim.Scale = cube.Scale
	}
	if faces, ok := components.DieFaces.Get(world, e); ok {
		anim.FacesSnapshot = faces.Sides
		anim.HasSnapshot = true
	}
	components.TumbleAnim.Add(world, e, anim)

	world.Emit(MoveStartedEvent{
		Entity: e,
		FromI:  pos.I,
		FromJ:  pos.J,
		DI:     req.DI,
		DJ:     req.DJ,
	})
}

// MovementProgressSystem advances moves in flight and commits the new
// Position once a move has run its duration.
type MovementProgressSystem struct {
	logger *zap.Logger
}

// NewMovementProgressSystem creates a new movement progress system
func NewMovementProgressSystem(logger *zap.Logger) *MovementProgressSystem {
	return &MovementProgressSystem{logger: orNop(logger)}
}

// Update advances every GridMove by dt
func (s *MovementProgressSystem) Update(world *ecs.World, dt float64) {
	components.GridMove.Store(world).Each(func(e ecs.Entity, move *components.GridMoveComponent) {
		move.Elapsed += dt

		// The renderer interpolates from the animation
		if anim, ok := components.TumbleAnim.Get(world, e); ok {
			anim.Elapsed = move.Elapsed
		}

		if !move.Done() {
			return
		}

		i, j := move.Target()
		if pos, ok := components.Position.Get(world, e); ok {
			pos.I, pos.J = i, j
		}
		components.GridMove.Remove(world, e)

		// Orientation and attack run later in this frame
		world.EmitNow(&MoveCompleteEvent{
			Entity: e,
			I:      i,
			J:      j,
			DI:     move.DI,
			DJ:     move.DJ,
		})
		s.logger.Debug("move complete", zap.Stringer("entity", e), zap.Int("i", i), zap.Int("j", j))
	})
}
