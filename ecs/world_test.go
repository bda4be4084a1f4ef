package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPos struct{ I, J int }
type testTag struct{}

var (
	testPosType = NewComponentType[testPos]("TestPos")
	testTagType = NewComponentType[testTag]("TestTag")
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				require.True(t, e.Valid())
				ents = append(ents, e)
			}
			assert.Equal(t, c.create, w.EntityCount())
			if c.destroyIndex >= 0 {
				assert.True(t, w.DestroyEntity(ents[c.destroyIndex]))
				assert.False(t, w.IsAlive(ents[c.destroyIndex]))
				assert.False(t, w.DestroyEntity(ents[c.destroyIndex]), "second destroy must fail")
				assert.Equal(t, c.create-1, w.EntityCount())
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	testPosType.Add(w, a, &testPos{1, 1})
	require.True(t, w.DestroyEntity(a))

	b := w.CreateEntity()
	assert.Equal(t, a.Index(), b.Index(), "slot should be recycled")
	assert.NotEqual(t, a, b)
	assert.False(t, testPosType.Has(w, b), "components must not leak into the new entity")

	// a stale handle cannot reach the recycled slot
	testPosType.Add(w, a, &testPos{9, 9})
	assert.False(t, testPosType.Has(w, b))
}

func TestComponentOverwriteAndRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	testPosType.Add(w, e, &testPos{1, 2})
	testPosType.Add(w, e, &testPos{3, 4})
	assert.Equal(t, 1, testPosType.Store(w).Len(), "add must overwrite, never duplicate")

	p, ok := testPosType.Get(w, e)
	require.True(t, ok)
	assert.Equal(t, testPos{3, 4}, *p)

	p.I = 7
	p2, _ := testPosType.Get(w, e)
	assert.Equal(t, 7, p2.I, "components are mutated in place")

	assert.True(t, testPosType.Remove(w, e))
	assert.False(t, testPosType.Has(w, e))
	assert.False(t, testPosType.Remove(w, e))
}

func TestMissingComponentsAreNotErrors(t *testing.T) {
	w := NewWorld()
	_, ok := testTagType.Get(w, Entity(42))
	assert.False(t, ok)
	assert.False(t, testTagType.Has(w, NilEntity))
	assert.NotNil(t, testTagType.Store(w), "store is created on first request")
}

func TestEntitiesWithKeepsInsertionOrder(t *testing.T) {
	w := NewWorld()
	var want []Entity
	for i := 0; i < 6; i++ {
		e := w.CreateEntity()
		testPosType.Add(w, e, &testPos{i, i})
		if i%2 == 0 {
			testTagType.Add(w, e, &testTag{})
			want = append(want, e)
		}
	}
	got := w.EntitiesWith(testPosType.ID(), testTagType.ID())
	assert.Equal(t, want, got)
	assert.Nil(t, w.EntitiesWith())
}

func TestStoreRemoveKeepsOrder(t *testing.T) {
	w := NewWorld()
	var ents []Entity
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		testPosType.Add(w, e, &testPos{I: i})
		ents = append(ents, e)
	}
	testPosType.Remove(w, ents[1])

	var order []int
	testPosType.Store(w).Each(func(_ Entity, p *testPos) { order = append(order, p.I) })
	assert.Equal(t, []int{0, 2, 3}, order)

	first, p, ok := testPosType.Store(w).First()
	require.True(t, ok)
	assert.Equal(t, ents[0], first)
	assert.Equal(t, 0, p.I)
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	testPosType.Add(w, e, &testPos{})
	testTagType.Add(w, e, &testTag{})
	require.True(t, w.DestroyEntity(e))
	assert.False(t, w.HasComponent(e, testPosType.ID()))
	assert.False(t, w.HasComponent(e, testTagType.ID()))
}

type counter struct{ n int }

func TestResources(t *testing.T) {
	w := NewWorld()
	_, ok := GetResource[counter](w)
	assert.False(t, ok)

	c := EnsureResource(w, func() *counter { return &counter{n: 1} })
	c.n++
	again := EnsureResource(w, func() *counter { return &counter{n: 100} })
	assert.Same(t, c, again, "only one instance per world")
	assert.Equal(t, 2, again.n)

	RemoveResource[counter](w)
	_, ok = GetResource[counter](w)
	assert.False(t, ok)
}

func TestSystemsRunInRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var calls []string
	w.AddSystem(SystemFunc(func(_ *World, _ float64) { calls = append(calls, "a") }))
	w.AddSystem(nil)
	w.AddSystem(SystemFunc(func(_ *World, _ float64) { calls = append(calls, "b") }))
	w.Update(0.1)
	w.Update(0.1)
	assert.Equal(t, []string{"a", "b", "a", "b"}, calls)
	assert.Len(t, w.GetSystems(), 2)
	assert.Equal(t, uint64(2), w.Frame())
}
