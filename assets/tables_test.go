package assets

import (
	"math/rand"
	"testing"

	"glass-oak/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDepth(t *testing.T) {
	table := []Step{{2, 1}, {3, 4}, {5, 6}}
	cases := []struct {
		depth uint
		want  int
	}{
		{0, 0},
		{1, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{6, 5},
		{40, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FromDepth(table, c.depth), "depth %d", c.depth)
	}
}

func TestChooseSkipsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	choices := []Weighted[string]{{"never", 0}, {"always", 5}, {"negative", -3}}
	for range 200 {
		v, ok := Choose(choices, rng)
		require.True(t, ok)
		assert.Equal(t, "always", v)
	}
}

func TestChooseAllZero(t *testing.T) {
	_, ok := Choose([]Weighted[int]{{1, 0}}, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestTrollsAppearOnlyFromDepthThree(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for range 500 {
		s, ok := Choose(MonsterWeights(2), rng)
		require.True(t, ok)
		assert.Equal(t, SpeciesOrc, s)
	}
	w := MonsterWeights(7)
	assert.Equal(t, 60, w[1].Weight)
}

func TestItemWeightsScaleWithDepth(t *testing.T) {
	shallow := ItemWeights(1)
	for _, w := range shallow[1:] {
		assert.Zero(t, w.Weight, "only potions on the first level, got %v", w.Value)
	}
	deep := ItemWeights(6)
	kinds := map[component.ItemKind]int{}
	for _, w := range deep {
		kinds[w.Value] = w.Weight
	}
	assert.Equal(t, 25, kinds[component.ItemFireball])
	assert.Equal(t, 10, kinds[component.ItemConfuse])
}
