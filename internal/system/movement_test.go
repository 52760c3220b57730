package system

import (
	"testing"

	"glass-oak/internal/ecs"
	"glass-oak/internal/factory"
	"glass-oak/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveBySucceeds(t *testing.T) {
	ctx := newTestContext(3, 3)
	require.True(t, MoveBy(ctx, ecs.PlayerIndex, 1, 0))
	assert.True(t, ctx.Player().At(4, 3))
}

func TestMoveByBlockedByWall(t *testing.T) {
	ctx := newTestContext(3, 3)
	ctx.Session.Map.Set(4, 3, gamemap.Wall())
	assert.False(t, MoveBy(ctx, ecs.PlayerIndex, 1, 0))
	assert.True(t, ctx.Player().At(3, 3))
}

func TestMoveByOffMapIsBlocked(t *testing.T) {
	ctx := newTestContext(0, 0)
	assert.False(t, MoveBy(ctx, ecs.PlayerIndex, -1, 0))
	assert.True(t, ctx.Player().At(0, 0))
}

func TestMoveByBlockedByEntity(t *testing.T) {
	ctx := newTestContext(3, 3)
	addOrc(ctx, 4, 3)
	assert.False(t, MoveBy(ctx, ecs.PlayerIndex, 1, 0))
}

func TestItemsDoNotBlock(t *testing.T) {
	ctx := newTestContext(3, 3)
	ctx.World.Append(factory.NewItem(0, 4, 3))
	assert.True(t, PlayerMoveOrAttack(ctx, 1, 0))
	assert.True(t, ctx.Player().At(4, 3))
}

func TestPlayerBumpAttacks(t *testing.T) {
	ctx := newTestContext(3, 3)
	orc := addOrc(ctx, 4, 3)
	require.True(t, PlayerMoveOrAttack(ctx, 1, 0))
	assert.True(t, ctx.Player().At(3, 3), "attacking must not move the player")
	assert.Equal(t, 16, ctx.World.At(orc).Fighter.HP)
}

func TestPlayerWalksOverCorpse(t *testing.T) {
	ctx := newTestContext(3, 3)
	orc := addOrc(ctx, 4, 3)
	TakeDamage(ctx, orc, 100)
	require.True(t, PlayerMoveOrAttack(ctx, 1, 0))
	assert.True(t, ctx.Player().At(4, 3))
}

func TestWallBumpCostsNoTurn(t *testing.T) {
	ctx := newTestContext(3, 3)
	ctx.Session.Map.Set(3, 2, gamemap.Wall())
	assert.False(t, PlayerMoveOrAttack(ctx, 0, -1))
}

func TestMoveTowardsDiagonal(t *testing.T) {
	ctx := newTestContext(10, 10)
	orc := addOrc(ctx, 5, 5)
	require.True(t, MoveTowards(ctx, orc, 10, 10))
	assert.True(t, ctx.World.At(orc).At(6, 6))
}

func TestMoveTowardsRoundsUnitVector(t *testing.T) {
	ctx := newTestContext(10, 10)
	orc := addOrc(ctx, 2, 9)
	// (8,1)/|.| rounds to (1,0)
	require.True(t, MoveTowards(ctx, orc, 10, 10))
	assert.True(t, ctx.World.At(orc).At(3, 9))
}
