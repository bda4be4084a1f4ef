package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicewalk/components"
	"dicewalk/ecs"
	"dicewalk/spawners"
)

func collectDefeats(w *ecs.World) *[]DefeatedEvent {
	var out []DefeatedEvent
	w.AddSystem(ecs.SystemFunc(func(w *ecs.World, _ float64) {
		w.Events().Each(func(ev ecs.Event) bool {
			if d, ok := ev.(DefeatedEvent); ok {
				out = append(out, d)
			}
			return false
		})
	}))
	return &out
}

func TestDefeatedEnemyIsRemoved(t *testing.T) {
	w, p := turnWorld(t)
	player := spawners.CreatePlayerDie(w, 2, 2)
	enemy := spawners.CreateEnemyDie(w, 2, 4, false)
	h, _ := components.HP.Get(w, enemy)
	h.Current = 1
	defeats := collectDefeats(w)

	w.Update(0.02)
	occ, ok := GetTileOccupancy(w)
	require.True(t, ok)
	_, indexed := occ.TileOf(enemy)
	require.True(t, indexed)

	playTurn(t, w, p, 0, 1)
	// Defeat notices are read a frame later
	w.Update(0.02)

	assert.False(t, w.IsAlive(enemy))
	_, indexed = occ.TileOf(enemy)
	assert.False(t, indexed)
	assert.Empty(t, occ.At(2, 4))
	assert.Equal(t, []DefeatedEvent{{Entity: enemy, KillerID: player}}, *defeats)
	assert.False(t, turnState(t, w).GameOver)

	msgs := GetMessageLog(w).Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, MessageTypeCombat, msgs[0].Type)
	assert.Equal(t, MessageTypeTurn, msgs[1].Type)
	assert.Contains(t, msgs[2].Text, "knocked out")
}

func TestPlayerDefeatEndsGame(t *testing.T) {
	w, p := turnWorld(t)
	player := spawners.CreatePlayerDie(w, 5, 2)
	enemy := spawners.CreateEnemyDie(w, 3, 3, true)
	h, _ := components.HP.Get(w, player)
	h.Current = 1
	defeats := collectDefeats(w)

	// The enemy lands on (4,3) and its forward strike hits (5,3)
	playTurn(t, w, p, 0, 1)
	w.Update(0.02)

	ts := turnState(t, w)
	require.True(t, ts.GameOver)
	assert.True(t, w.IsAlive(player), "the player die stays on the board")
	assert.Equal(t, 0, hp(t, w, player))
	assert.Equal(t, []DefeatedEvent{{Entity: player, KillerID: enemy, Player: true}}, *defeats)

	recent := GetMessageLog(w).RecentMessages(3)
	require.Len(t, recent, 3)
	assert.Equal(t, ColoredMessage{Text: "Game Over!", Type: MessageTypeAlert}, recent[0])
	assert.Contains(t, recent[1].Text, "knocked out")
	assert.Equal(t, "Turn 1 ends.", recent[2].Text)

	// No more planning, no more moves
	w.Emit(PlayerMoveIntentEvent{DI: -1})
	w.Update(0.02)
	assert.Equal(t, []MoveRejection{{DI: -1, Reason: RejectGameOver}}, p.Commit.Rejections())
	assert.False(t, ts.PlanReady)
	step(w, 0.02, 30)
	i, j := position(t, w, player)
	assert.Equal(t, [2]int{5, 3}, [2]int{i, j})
}

func TestSurvivingTargetIsNotDefeated(t *testing.T) {
	w, p := turnWorld(t)
	spawners.CreatePlayerDie(w, 2, 2)
	enemy := spawners.CreateEnemyDie(w, 2, 4, false)
	defeats := collectDefeats(w)

	playTurn(t, w, p, 0, 1)
	assert.True(t, w.IsAlive(enemy))
	assert.Equal(t, 4, hp(t, w, enemy))
	assert.Empty(t, *defeats)
}

func TestKillingHitStaysVisibleToLaterSystems(t *testing.T) {
	w, p := turnWorld(t)
	player := spawners.CreatePlayerDie(w, 2, 2)
	enemy := spawners.CreateEnemyDie(w, 2, 4, false)
	h, _ := components.HP.Get(w, enemy)
	h.Current = 1

	var hits []DamageDealtEvent
	w.AddSystem(ecs.SystemFunc(func(w *ecs.World, _ float64) {
		w.Events().Each(func(ev ecs.Event) bool {
			if hit, ok := ev.(DamageDealtEvent); ok {
				hits = append(hits, hit)
			}
			return false
		})
	}))

	playTurn(t, w, p, 0, 1)
	w.Update(0.02)

	require.Len(t, hits, 1)
	assert.Equal(t, enemy, hits[0].Target)
	assert.Equal(t, player, hits[0].Attacker)
	assert.Equal(t, 0, hits[0].Remaining)
	assert.False(t, w.IsAlive(enemy))
}
