package systems

import (
	"dicewalk/components"
	"dicewalk/ecs"
)

// TileOccupancy indexes which dice stand on which tile. It is a world
// resource owned by TileOccupancySystem; everything else only reads it.
type TileOccupancy struct {
	tiles map[Tile][]ecs.Entity
	where map[ecs.Entity]Tile
}

func newTileOccupancy() *TileOccupancy {
	return &TileOccupancy{
		tiles: make(map[Tile][]ecs.Entity),
		where: make(map[ecs.Entity]Tile),
	}
}

// At returns the entities on a tile in arrival order
func (o *TileOccupancy) At(i, j int) []ecs.Entity {
	list := o.tiles[Tile{i, j}]
	if len(list) == 0 {
		return nil
	}
	out := make([]ecs.Entity, len(list))
	copy(out, list)
	return out
}

// TileOf returns the tile an entity is indexed on
func (o *TileOccupancy) TileOf(e ecs.Entity) (Tile, bool) {
	t, ok := o.where[e]
	return t, ok
}

// Len returns the number of indexed entities
func (o *TileOccupancy) Len() int {
	return len(o.where)
}

func (o *TileOccupancy) place(e ecs.Entity, t Tile) {
	if cur, ok := o.where[e]; ok {
		if cur == t {
			return
		}
		o.remove(e)
	}
	o.tiles[t] = append(o.tiles[t], e)
	o.where[e] = t
}

func (o *TileOccupancy) remove(e ecs.Entity) {
	t, ok := o.where[e]
	if !ok {
		return
	}
	delete(o.where, e)
	list := o.tiles[t]
	for idx, other := range list {
		if other == e {
			list = append(list[:idx], list[idx+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(o.tiles, t)
		return
	}
	o.tiles[t] = list
}

// GetTileOccupancy returns the occupancy index if the system has built it
func GetTileOccupancy(world *ecs.World) (*TileOccupancy, bool) {
	return ecs.GetResource[TileOccupancy](world)
}

// TileOccupancySystem maintains the TileOccupancy resource
type TileOccupancySystem struct{}

// NewTileOccupancySystem creates a new tile occupancy system
func NewTileOccupancySystem() *TileOccupancySystem {
	return &TileOccupancySystem{}
}

// Update moves dice that landed this frame to their new tile
func (s *TileOccupancySystem) Update(world *ecs.World, dt float64) {
	occ := ecs.EnsureResource(world, newTileOccupancy)

	s.reconcile(world, occ)

	world.Events().Each(func(ev ecs.Event) bool {
		done, ok := ev.(*MoveCompleteEvent)
		if !ok || !components.DieFaces.Has(world, done.Entity) {
			return false
		}
		if pos, ok := components.Position.Get(world, done.Entity); ok {
			occ.place(done.Entity, Tile{pos.I, pos.J})
		}
		return false
	})
}

// reconcile indexes dice the index has not seen yet and drops entities that
// are gone. An empty index is built from scratch this way.
func (s *TileOccupancySystem) reconcile(world *ecs.World, occ *TileOccupancy) {
	for e := range occ.where {
		if !world.IsAlive(e) || !components.DieFaces.Has(world, e) || !components.Position.Has(world, e) {
			occ.remove(e)
		}
	}
	for _, e := range world.EntitiesWith(components.Position.ID(), components.DieFaces.ID()) {
		if _, ok := occ.where[e]; ok {
			continue
		}
		pos, _ := components.Position.Get(world, e)
		occ.place(e, Tile{pos.I, pos.J})
	}
}
