package spawners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dicewalk/components"
	"dicewalk/data"
	"dicewalk/ecs"
)

func TestCreatePlayerDie(t *testing.T) {
	w := ecs.NewWorld()
	e := CreatePlayerDie(w, 2, 3)

	pos, ok := components.Position.Get(w, e)
	require.True(t, ok)
	assert.Equal(t, components.PositionComponent{I: 2, J: 3}, *pos)

	faces, ok := components.DieFaces.Get(w, e)
	require.True(t, ok)
	assert.Equal(t, "yellow", faces.Top().FaceID)
	assert.Equal(t, "blue", faces.Side(components.FaceSouth).FaceID)

	h, _ := components.HP.Get(w, e)
	assert.Equal(t, components.HPComponent{Current: 10, Max: 10}, *h)
	cube, _ := components.RenderCube.Get(w, e)
	assert.Equal(t, 0.8, cube.Scale)

	assert.True(t, components.Player.Has(w, e))
	assert.True(t, components.AttackSet.Has(w, e))
	assert.False(t, components.AIWalker.Has(w, e))
	assert.False(t, components.Patrol.Has(w, e))
	assert.False(t, components.Name.Has(w, e))
}

func TestCreateEnemyDie(t *testing.T) {
	w := ecs.NewWorld()
	walker := CreateEnemyDie(w, 1, 1, true)
	still := CreateEnemyDie(w, 4, 4, false)

	assert.True(t, components.AIWalker.Has(w, walker))
	patrol, ok := components.Patrol.Get(w, walker)
	require.True(t, ok)
	assert.Equal(t, components.PatrolComponent{DI: 1}, *patrol)

	assert.False(t, components.AIWalker.Has(w, still))
	assert.False(t, components.Patrol.Has(w, still))

	h, _ := components.HP.Get(w, walker)
	assert.Equal(t, 5, h.Current)
	name, _ := components.Name.Get(w, walker)
	assert.Equal(t, "Green die", name.Value)
	assert.False(t, components.Player.Has(w, walker))
}

func TestSpawnerUnknownTemplate(t *testing.T) {
	s := NewEntitySpawner(ecs.NewWorld(), data.NewTemplateManager(), zaptest.NewLogger(t))
	_, err := s.CreatePlayer("player", 0, 0)
	assert.ErrorIs(t, err, data.ErrUnknownTemplate)
	_, err = s.CreateEnemy("green", 0, 0)
	assert.ErrorIs(t, err, data.ErrUnknownTemplate)
}

func TestSpawnBoundaryBarriers(t *testing.T) {
	w := ecs.NewWorld()
	ring := SpawnBoundaryBarriers(w, 4)
	assert.Len(t, ring, 20)
	for _, e := range ring {
		assert.True(t, components.Barrier.Has(w, e))
		r, _ := components.Renderable.Get(w, e)
		assert.Equal(t, components.RenderKindBarrier, r.Kind)
	}
}

func TestBuildDefaultLevel(t *testing.T) {
	level, err := data.DefaultLevel()
	require.NoError(t, err)

	w := ecs.NewWorld()
	built, err := BuildLevel(w, level, nil, 800, 600, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.True(t, components.Player.Has(w, built.Player))
	require.Len(t, built.Enemies, 2)
	patrol, _ := components.Patrol.Get(w, built.Enemies[1])
	assert.Equal(t, components.PatrolComponent{DJ: -1}, *patrol, "placement patrol overrides the template")

	assert.Len(t, built.Barriers, 4*level.Size+4+1+level.Obstacles)
	assert.Equal(t, len(built.Barriers), components.Barrier.Store(w).Len())

	ts, ok := ecs.GetResource[components.TurnStateComponent](w)
	require.True(t, ok)
	assert.Equal(t, components.PhasePlanning, ts.Phase)
	geom, ok := ecs.GetResource[components.GridGeometryComponent](w)
	require.True(t, ok)
	assert.Equal(t, 8, geom.Size)

	// Nothing shares a tile with a barrier
	walls := make(map[[2]int]bool)
	for _, e := range built.Barriers {
		pos, _ := components.Position.Get(w, e)
		walls[[2]int{pos.I, pos.J}] = true
	}
	for _, e := range append([]ecs.Entity{built.Player}, built.Enemies...) {
		pos, _ := components.Position.Get(w, e)
		assert.False(t, walls[[2]int{pos.I, pos.J}])
	}
}

func TestBuildLevelInlineTemplatesAndNames(t *testing.T) {
	level := &data.Level{
		Name:   "inline",
		Size:   4,
		Player: data.Placement{Template: "player", I: 0, J: 0, Name: "Hero"},
		Enemies: []data.Placement{
			{Template: "stone", I: 3, J: 3},
		},
		Templates: []data.DieTemplate{{
			ID: "stone",
			HP: 2,
			Faces: map[string]data.FaceTemplate{
				"top": {ID: "s1"}, "bottom": {ID: "s2"}, "north": {ID: "s3"},
				"south": {ID: "s4"}, "east": {ID: "s5"}, "west": {ID: "s6"},
			},
		}},
	}

	w := ecs.NewWorld()
	built, err := BuildLevel(w, level, nil, 640, 480, nil)
	require.NoError(t, err)

	name, _ := components.Name.Get(w, built.Player)
	assert.Equal(t, "Hero", name.Value)
	h, _ := components.HP.Get(w, built.Enemies[0])
	assert.Equal(t, 2, h.Current)
	assert.False(t, components.AIWalker.Has(w, built.Enemies[0]))

	_, ok := DefaultTemplates().GetTemplate("stone")
	assert.False(t, ok, "inline templates do not leak into the defaults")
}

func TestBuildLevelErrors(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildLevel(w, &data.Level{Size: 1}, nil, 800, 600, nil)
	assert.ErrorIs(t, err, data.ErrInvalidLevel)

	level := &data.Level{Size: 4, Player: data.Placement{Template: "ghost"}}
	_, err = BuildLevel(w, level, nil, 800, 600, nil)
	assert.ErrorIs(t, err, data.ErrUnknownTemplate)
	assert.Zero(t, w.EntityCount(), "nothing is created for a bad level")
}
