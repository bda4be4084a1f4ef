package systems

import (
	"dicewalk/components"
	"dicewalk/ecs"
)

// OrientationSystem rolls die faces once a move completes. The MOVE_COMPLETE
// event is tagged and left in the queue for the attack and occupancy systems.
type OrientationSystem struct{}

// NewOrientationSystem creates a new orientation system
func NewOrientationSystem() *OrientationSystem {
	return &OrientationSystem{}
}

// Update rotates the faces of every die that landed this frame
func (s *OrientationSystem) Update(world *ecs.World, dt float64) {
	world.Events().Each(func(ev ecs.Event) bool {
		done, ok := ev.(*MoveCompleteEvent)
		if !ok || done.OrientationDone {
			return false
		}

		if faces, ok := components.DieFaces.Get(world, done.Entity); ok {
			faces.Tumble(done.DI, done.DJ)
			done.OrientationDone = true
		}

		// The renderer may now show the new faces
		components.TumbleAnim.Remove(world, done.Entity)
		return false
	})
}
