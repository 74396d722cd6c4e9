package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
	"github.com/velhaven/gearplan/internal/stats"
	"github.com/velhaven/gearplan/internal/testutils"
)

func TestCalculateStatValue(t *testing.T) {
	tests := []struct {
		name     string
		powerBit int
		ratio    int
		want     int
	}{
		{"ratio one passes through", 35, 1, 35},
		{"floor division", 35, 2, 17},
		{"ratio larger than power", 30, 31, 0},
		{"zero ratio treated as one", 33, 0, 33},
		{"negative ratio treated as one", 33, -2, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.CalculateStatValue(tt.powerBit, tt.ratio))
		})
	}
}

func TestAggregate_SlotsAndExternal(t *testing.T) {
	b := testutils.SampleBuild()
	cat := testutils.SampleCatalog()

	external := []build.StatValue{
		{Modifier: build.StatToughness, Value: 25},
		{Modifier: build.StatOpportune, Value: 10},
	}

	totals := stats.Aggregate(b, cat, external)

	// helmet 35 + chestplate 33 + external 25
	assert.Equal(t, 93, totals[build.StatToughness])
	assert.Equal(t, 35, totals[build.StatEndurance])
	assert.Equal(t, 30, totals[build.StatGeneralDefense])
	assert.Equal(t, 10, totals[build.StatOpportune])
}

func TestAggregate_RatioFallbackOrder(t *testing.T) {
	cat := catalog.New([]catalog.Modifier{
		{Name: "Known", Ratio: 5},
	})

	b := build.New()
	b.Slots[build.SlotWeapon] = &build.SlotState{
		PowerBit: 35,
		Stats: []build.SlotStat{
			// catalog ratio wins over the entry ratio
			{Modifier: "Known", Ratio: 2},
			// no catalog entry, entry ratio applies
			{Modifier: "EntryOnly", Ratio: 7},
			// neither, defaults to 1
			{Modifier: "Unknown"},
		},
	}

	totals := stats.Aggregate(b, cat, nil)

	assert.Equal(t, 7, totals["Known"])    // floor(35/5)
	assert.Equal(t, 5, totals["EntryOnly"]) // floor(35/7)
	assert.Equal(t, 35, totals["Unknown"])
}

func TestAggregate_ZeroContributionsAbsent(t *testing.T) {
	cat := catalog.New([]catalog.Modifier{
		{Name: "Diluted", Ratio: 40},
	})

	b := build.New()
	b.Slots[build.SlotWeapon] = &build.SlotState{
		PowerBit: 30,
		Stats:    []build.SlotStat{{Modifier: "Diluted"}},
	}

	totals := stats.Aggregate(b, cat, nil)

	_, present := totals["Diluted"]
	assert.False(t, present, "floor(30/40)=0 must stay absent, not present with value 0")
}

func TestAggregate_EmptyInputs(t *testing.T) {
	totals := stats.Aggregate(nil, nil, nil)
	require.NotNil(t, totals)
	assert.Empty(t, totals)

	totals = stats.Aggregate(build.New(), testutils.SampleCatalog(), nil)
	assert.Empty(t, totals)
}

func TestAggregate_IsPure(t *testing.T) {
	b := testutils.SampleBuild()
	cat := testutils.SampleCatalog()

	first := stats.Aggregate(b, cat, nil)
	second := stats.Aggregate(b, cat, nil)

	assert.Equal(t, first, second)
}
