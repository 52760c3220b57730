package ecs

import (
	"testing"

	"glass-oak/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *World {
	w := NewWorld(&Entity{Name: "player", Blocks: true, Alive: true,
		Fighter: &component.Fighter{MaxHP: 30, HP: 30, Power: 5}})
	w.Append(&Entity{Name: "orc", Pos: component.Position{X: 1, Y: 0}, Blocks: true,
		Fighter: &component.Fighter{MaxHP: 10, HP: 10}, AI: component.BasicAI()})
	w.Append(&Entity{Name: "potion", Pos: component.Position{X: 2, Y: 0},
		Item: &component.Item{Kind: component.ItemHeal}})
	w.Append(&Entity{Name: "troll", Pos: component.Position{X: 3, Y: 0}, Blocks: true,
		Fighter: &component.Fighter{MaxHP: 16, HP: 16}, AI: component.BasicAI()})
	return w
}

func TestRemovePreservesOrder(t *testing.T) {
	w := newTestWorld()
	got := w.Remove(2)
	assert.Equal(t, "potion", got.Name)
	require.Equal(t, 3, w.Len())
	assert.Equal(t, "player", w.At(0).Name)
	assert.Equal(t, "orc", w.At(1).Name)
	assert.Equal(t, "troll", w.At(2).Name)
}

func TestRemovePlayerPanics(t *testing.T) {
	w := newTestWorld()
	assert.Panics(t, func() { w.Remove(PlayerIndex) })
}

func TestTruncateKeepsPlayer(t *testing.T) {
	w := newTestWorld()
	w.Truncate(1)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, "player", w.Player().Name)
	assert.Panics(t, func() { w.Truncate(0) })
}

func TestPair(t *testing.T) {
	w := newTestWorld()
	a, b := w.Pair(0, 3)
	assert.Equal(t, "player", a.Name)
	assert.Equal(t, "troll", b.Name)

	// Order of the returned pair follows the order of the arguments.
	b, a = w.Pair(3, 0)
	assert.Equal(t, "player", a.Name)
	assert.Equal(t, "troll", b.Name)

	assert.Panics(t, func() { w.Pair(1, 1) })
}

func TestBlockingAt(t *testing.T) {
	w := newTestWorld()
	assert.True(t, w.BlockingAt(1, 0))
	assert.False(t, w.BlockingAt(2, 0), "items do not block")
	assert.False(t, w.BlockingAt(9, 9))
}

func TestFighterAndItemAt(t *testing.T) {
	w := newTestWorld()
	assert.Equal(t, 1, w.FighterAt(1, 0, PlayerIndex))
	assert.Equal(t, -1, w.FighterAt(0, 0, PlayerIndex), "the excluded index is skipped")
	assert.Equal(t, -1, w.FighterAt(2, 0, PlayerIndex))
	assert.Equal(t, 2, w.ItemAt(2, 0))
	assert.Equal(t, -1, w.ItemAt(1, 0))
}

func TestFromEntities(t *testing.T) {
	_, err := FromEntities(nil)
	assert.Error(t, err)
	_, err = FromEntities([]*Entity{{Name: "player"}, nil})
	assert.Error(t, err)
	w, err := FromEntities([]*Entity{{Name: "player"}})
	require.NoError(t, err)
	assert.Equal(t, "player", w.Player().Name)
}

func TestCloneIsIndependent(t *testing.T) {
	w := newTestWorld()
	w.At(1).AI = component.Confuse(w.At(1).AI, 4)
	c := w.Clone()
	require.Equal(t, w.Entities(), c.Entities())

	c.At(1).Fighter.HP = 1
	c.At(1).AI.Previous.Kind = component.AIConfused
	assert.Equal(t, 10, w.At(1).Fighter.HP)
	assert.Equal(t, component.AIBasic, w.At(1).AI.Previous.Kind)
}
