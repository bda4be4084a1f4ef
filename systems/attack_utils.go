package systems

import (
	"dicewalk/components"
	"dicewalk/ecs"
)

// AttackTarget is one tile hit by one effect
type AttackTarget struct {
	Tile
	TargetType string
	Strength   int
}

// GetAttackEffects returns the effects bound to the entity's current top face
func GetAttackEffects(world *ecs.World, e ecs.Entity) []components.AttackEffect {
	faces, ok := components.DieFaces.Get(world, e)
	if !ok {
		return nil
	}
	return effectsForFace(world, e, faces.Top().FaceID)
}

// effectsForFace looks up an AttackSet first and falls back to AttackSide
func effectsForFace(world *ecs.World, e ecs.Entity, faceID string) []components.AttackEffect {
	if faceID == "" {
		return nil
	}
	if set, ok := components.AttackSet.Get(world, e); ok {
		effects := set.Effects[faceID]
		out := make([]components.AttackEffect, len(effects))
		copy(out, effects)
		return out
	}
	if side, ok := components.AttackSide.Get(world, e); ok && side.FaceID == faceID {
		return []components.AttackEffect{side.Effect}
	}
	return nil
}

// lateral returns the left and right offsets for a heading
func lateral(di, dj int) (left, right Tile) {
	switch {
	case di == 1:
		return Tile{0, -1}, Tile{0, 1}
	case di == -1:
		return Tile{0, 1}, Tile{0, -1}
	case dj == 1:
		return Tile{1, 0}, Tile{-1, 0}
	case dj == -1:
		return Tile{-1, 0}, Tile{1, 0}
	}
	return Tile{}, Tile{}
}

// GetAttackTargets computes the tiles hit by effects for a mover that landed
// on (i, j) travelling along (di, dj). Effects with an unknown target type
// hit nothing.
func GetAttackTargets(effects []components.AttackEffect, di, dj, i, j int) []AttackTarget {
	if !isUnitStep(di, dj) {
		return nil
	}
	left, right := lateral(di, dj)

	var targets []AttackTarget
	for _, effect := range effects {
		var offset Tile
		switch effect.TargetType {
		case components.TargetForwardSingle:
			offset = Tile{di, dj}
		case components.TargetLeftSingle:
			offset = left
		case components.TargetRightSingle:
			offset = right
		default:
			continue
		}
		targets = append(targets, AttackTarget{
			Tile:       Tile{i + offset.I, j + offset.J},
			TargetType: effect.TargetType,
			Strength:   effect.Strength,
		})
	}
	return targets
}

// PreviewTarget is a predicted attack tile for a move that has not happened
type PreviewTarget struct {
	AttackTarget
	Entity ecs.Entity
}

// AttackPreview predicts where the planned enemy moves, and optionally a
// pending player move, will strike. It reads the world and changes nothing.
func AttackPreview(world *ecs.World, pending *components.PlannedMove) []PreviewTarget {
	var moves []components.PlannedMove
	if ts, ok := ecs.GetResource[components.TurnStateComponent](world); ok {
		moves = append(moves, ts.Planned...)
	}
	if pending != nil {
		moves = append(moves, *pending)
	}

	var out []PreviewTarget
	for _, move := range moves {
		for _, target := range previewMove(world, move) {
			out = append(out, PreviewTarget{AttackTarget: target, Entity: move.Entity})
		}
	}
	return out
}

func previewMove(world *ecs.World, move components.PlannedMove) []AttackTarget {
	faces, ok := components.DieFaces.Get(world, move.Entity)
	if !ok {
		return nil
	}
	pos, ok := components.Position.Get(world, move.Entity)
	if !ok {
		return nil
	}
	rolled, ok := faces.Sides.Tumbled(move.DI, move.DJ)
	if !ok {
		return nil
	}
	effects := effectsForFace(world, move.Entity, rolled[components.FaceTop].FaceID)
	return GetAttackTargets(effects, move.DI, move.DJ, pos.I+move.DI, pos.J+move.DJ)
}
