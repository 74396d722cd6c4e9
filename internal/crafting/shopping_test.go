package crafting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhaven/gearplan/internal/crafting"
	"github.com/velhaven/gearplan/internal/domain/catalog"
)

func TestShoppingList_SharedMaterialAccumulates(t *testing.T) {
	groups := []*crafting.Group{
		{
			ID: "a", Modifier: "Foo", Count: 2,
			SelectedA: "Widget", SelectedB: "Bolt",
			CandidatePairs: []catalog.Pair{{MaterialA: "Widget", MaterialB: "Bolt"}},
		},
		{
			ID: "b", Modifier: "Bar", Count: 3,
			SelectedA: "Widget", SelectedB: "Spring",
			CandidatePairs: []catalog.Pair{{MaterialA: "Widget", MaterialB: "Spring"}},
		},
	}

	list := crafting.ShoppingList(groups)

	widget, ok := list["Widget"]
	require.True(t, ok)
	assert.Equal(t, 5, widget.Qty)
	assert.Equal(t, []string{"Bar", "Foo"}, widget.ForStats)

	assert.Equal(t, 2, list["Bolt"].Qty)
	assert.Equal(t, []string{"Foo"}, list["Bolt"].ForStats)
	assert.Equal(t, 3, list["Spring"].Qty)
}

func TestShoppingList_IncompleteSelectionContributesNothing(t *testing.T) {
	groups := []*crafting.Group{
		{
			ID: "a", Modifier: "Foo", Count: 2,
			SelectedA: "Widget", // second material never chosen
			CandidatePairs: []catalog.Pair{{MaterialA: "Widget", MaterialB: "Bolt"}},
		},
	}

	list := crafting.ShoppingList(groups)
	assert.Empty(t, list)
}

func TestShoppingList_DefaultSelectionCounts(t *testing.T) {
	groups := []*crafting.Group{
		{
			ID: "a", Modifier: "Foo", Count: 4,
			CandidatePairs: []catalog.Pair{
				{MaterialA: "Widget", MaterialB: "Bolt"},
				{MaterialA: "Gear", MaterialB: "Bolt"},
			},
		},
	}

	list := crafting.ShoppingList(groups)

	// first pair in index-iteration order is the default
	assert.Equal(t, 4, list["Widget"].Qty)
	assert.Equal(t, 4, list["Bolt"].Qty)
	_, gear := list["Gear"]
	assert.False(t, gear)
}

func TestShoppingList_NonCraftableGroupSkipped(t *testing.T) {
	groups := []*crafting.Group{
		{ID: "a", Modifier: "Unobtainium", Count: 1},
	}

	list := crafting.ShoppingList(groups)
	assert.Empty(t, list)
}
