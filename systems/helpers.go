package systems

import (
	"fmt"

	"go.uber.org/zap"

	"dicewalk/components"
	"dicewalk/ecs"
)

// Tile is a grid coordinate
type Tile struct {
	I, J int
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.I, t.J)
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// isUnitStep reports whether (di, dj) is one of the four axis-aligned steps
func isUnitStep(di, dj int) bool {
	return (di == 0) != (dj == 0) && di >= -1 && di <= 1 && dj >= -1 && dj <= 1
}

// barrierTiles collects every tile blocked by a Barrier
func barrierTiles(world *ecs.World) map[Tile]struct{} {
	blocked := make(map[Tile]struct{})
	for _, e := range world.EntitiesWith(components.Barrier.ID(), components.Position.ID()) {
		pos, _ := components.Position.Get(world, e)
		blocked[Tile{pos.I, pos.J}] = struct{}{}
	}
	return blocked
}

// inGrid reports whether a tile is inside the grid. Without a GridGeometry
// resource every tile counts as inside and only barriers bound movement.
func inGrid(world *ecs.World, i, j int) bool {
	geom, ok := ecs.GetResource[components.GridGeometryComponent](world)
	if !ok {
		return true
	}
	return geom.InBounds(i, j)
}

// firstPlayer returns the earliest created player entity
func firstPlayer(world *ecs.World) (ecs.Entity, bool) {
	e, _, ok := components.Player.Store(world).First()
	return e, ok
}

func isPlayer(world *ecs.World, e ecs.Entity) bool {
	return components.Player.Has(world, e)
}

// getEntityName returns a display name for the message log
func getEntityName(world *ecs.World, e ecs.Entity) string {
	if name, ok := components.Name.Get(world, e); ok && name.Value != "" {
		return name.Value
	}
	if isPlayer(world, e) {
		return "You"
	}
	return "die " + e.String()
}
