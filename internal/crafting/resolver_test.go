package crafting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhaven/gearplan/internal/crafting"
	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
	"github.com/velhaven/gearplan/internal/testutils"
)

func TestResolveNeeded_OneEntryPerPopulatedStat(t *testing.T) {
	b := testutils.SampleBuild()
	idx := testutils.SampleRecipeIndex()

	needed := crafting.ResolveNeeded(b, idx)

	// helmet has 2 stats, chestplate 1, boots 1: no dedup at this stage
	require.Len(t, needed, 4)

	assert.Equal(t, build.StatToughness, needed[0].Modifier)
	assert.Equal(t, "Helmet", needed[0].SlotName)
	assert.Equal(t, 35, needed[0].PowerBit)

	assert.Equal(t, build.StatToughness, needed[2].Modifier)
	assert.Equal(t, "Chestplate", needed[2].SlotName)
	assert.Equal(t, 33, needed[2].PowerBit)
}

func TestResolveNeeded_BothOrientations(t *testing.T) {
	idx := catalog.NewRecipeIndex(map[string]map[string]catalog.Recipe{
		"X": {"Y": {Name: "Foo"}},
		"Z": {"Y": {Name: "Foo"}},
	})

	pairs := idx.PairsFor("Foo")
	require.Len(t, pairs, 2)
	assert.Equal(t, catalog.Pair{MaterialA: "X", MaterialB: "Y"}, pairs[0])
	assert.Equal(t, catalog.Pair{MaterialA: "Z", MaterialB: "Y"}, pairs[1])

	// reverse orientation must be found too
	reversed := catalog.NewRecipeIndex(map[string]map[string]catalog.Recipe{
		"Y": {"X": {Name: "Foo"}},
	})
	pairs = reversed.PairsFor("Foo")
	require.Len(t, pairs, 1)
	assert.Equal(t, catalog.Pair{MaterialA: "Y", MaterialB: "X"}, pairs[0])
}

func TestResolveNeeded_PairStoredBothWaysDeduplicated(t *testing.T) {
	idx := catalog.NewRecipeIndex(map[string]map[string]catalog.Recipe{
		"X": {"Y": {Name: "Foo"}},
		"Y": {"X": {Name: "Foo"}},
	})

	pairs := idx.PairsFor("Foo")
	assert.Len(t, pairs, 1)
}

func TestResolveNeeded_NoRecipeDegradesToEmpty(t *testing.T) {
	b := build.New()
	require.NoError(t, b.AddStat(build.SlotWeapon, build.SlotStat{Modifier: "Unobtainium"}))

	needed := crafting.ResolveNeeded(b, testutils.SampleRecipeIndex())

	require.Len(t, needed, 1)
	assert.Empty(t, needed[0].CandidatePairs)
}

func TestCompatibleSecondItems(t *testing.T) {
	idx := testutils.SampleRecipeIndex()

	// Bone Dust pairs with Iron Shard (forward) and Granite Core (reverse)
	partners := crafting.CompatibleSecondItems("Bone Dust", build.StatToughness, idx, nil)
	assert.Equal(t, []string{"Granite Core", "Iron Shard"}, partners)

	// pool restricts the result
	partners = crafting.CompatibleSecondItems("Bone Dust", build.StatToughness, idx, []string{"Granite Core"})
	assert.Equal(t, []string{"Granite Core"}, partners)

	// wrong modifier yields nothing
	partners = crafting.CompatibleSecondItems("Bone Dust", build.StatEndurance, idx, nil)
	assert.Empty(t, partners)
}
