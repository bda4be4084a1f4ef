package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevel(t *testing.T) {
	level, err := DefaultLevel()
	require.NoError(t, err)
	assert.Equal(t, "courtyard", level.Name)
	assert.Equal(t, 8, level.Size)
	assert.Equal(t, Placement{Template: "player", I: 1, J: 1}, level.Player)
	require.Len(t, level.Enemies, 2)
	require.NotNil(t, level.Enemies[1].Patrol)
	assert.Equal(t, PatrolTemplate{DJ: -1}, *level.Enemies[1].Patrol)

	occupied := level.Occupied()
	assert.Len(t, occupied, 4)
	assert.True(t, occupied[Point{4, 4}])
}

func TestParseLevelRejectsUnknownKeys(t *testing.T) {
	_, err := ParseLevel([]byte("size: 4\nplayer: {template: p, i: 1, j: 1}\nwalls: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "walls")
}

func TestLevelValidation(t *testing.T) {
	base := func() Level {
		return Level{
			Size:    6,
			Player:  Placement{Template: "player", I: 1, J: 1},
			Enemies: []Placement{{Template: "green", I: 3, J: 3}},
		}
	}
	require.NoError(t, func() error { l := base(); return l.Validate() }())

	cases := []struct {
		name   string
		mutate func(*Level)
	}{
		{"too_small", func(l *Level) { l.Size = 1 }},
		{"no_player_template", func(l *Level) { l.Player.Template = "" }},
		{"player_off_board", func(l *Level) { l.Player.I = 6 }},
		{"enemy_on_player", func(l *Level) { l.Enemies[0].I, l.Enemies[0].J = 1, 1 }},
		{"enemy_no_template", func(l *Level) { l.Enemies[0].Template = "" }},
		{"enemy_diagonal_patrol", func(l *Level) { l.Enemies[0].Patrol = &PatrolTemplate{DI: 1, DJ: -1} }},
		{"enemy_long_patrol", func(l *Level) { l.Enemies[0].Patrol = &PatrolTemplate{DI: 2} }},
		{"barrier_on_enemy", func(l *Level) { l.Barriers = []Point{{3, 3}} }},
		{"barrier_off_board", func(l *Level) { l.Barriers = []Point{{-1, 0}} }},
		{"negative_obstacles", func(l *Level) { l.Obstacles = -1 }},
		{"too_many_obstacles", func(l *Level) { l.Obstacles = 35 }},
		{"bad_inline_template", func(l *Level) { l.Templates = []DieTemplate{{ID: "x", HP: 1}} }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := base()
			c.mutate(&l)
			assert.ErrorIs(t, l.Validate(), ErrInvalidLevel)
		})
	}
}

func TestInlineTemplateErrorWrapsBoth(t *testing.T) {
	l := Level{Size: 4, Player: Placement{Template: "p"}, Templates: []DieTemplate{{ID: "x", HP: 1}}}
	err := l.Validate()
	assert.ErrorIs(t, err, ErrInvalidLevel)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: tiny
size: 3
player: {template: player, i: 0, j: 0}
barriers:
  - {i: 1, j: 1}
`), 0o644))

	level, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", level.Name)
	assert.Equal(t, []Point{{1, 1}}, level.Barriers)

	_, err = LoadLevel(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("size: 1\nplayer: {template: p}\n"), 0o644))
	_, err = LoadLevel(path)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}
