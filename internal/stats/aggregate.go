// Package stats implements the pure calculation core of the planner:
// stat aggregation, threshold classification and derived-pool math.
package stats

import (
	"sort"

	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
)

// Totals maps modifier name to its aggregated stat value. Stats that
// contribute nothing are absent, never present with value 0.
type Totals map[string]int

// CalculateStatValue converts a slot's power bit into stat points for a
// given ratio. Ratios below 1 are treated as 1.
func CalculateStatValue(powerBit, ratio int) int {
	if ratio < 1 {
		ratio = 1
	}
	return powerBit / ratio
}

// Aggregate sums effective stat contributions from every equipment slot plus
// the pre-merged flat external stat list (buffs, jewelry, backpack). Pure
// function of its inputs.
func Aggregate(b *build.Build, cat *catalog.Catalog, external []build.StatValue) Totals {
	totals := make(Totals)
	if b != nil {
		for _, info := range build.Slots {
			state, ok := b.Slots[info.ID]
			if !ok {
				continue
			}
			for _, stat := range state.Stats {
				ratio := stat.Ratio
				if cat != nil {
					ratio = cat.RatioFor(stat.Modifier, stat.Ratio)
				}
				totals[stat.Modifier] += CalculateStatValue(state.PowerBit, ratio)
			}
		}
	}

	for _, ext := range external {
		if ext.Modifier == "" || ext.Value <= 0 {
			continue
		}
		totals[ext.Modifier] += ext.Value
	}

	// zero-contribution entries stay absent from the result
	for name, total := range totals {
		if total <= 0 {
			delete(totals, name)
		}
	}

	return totals
}

// Names returns the stat names present in the totals, sorted.
func (t Totals) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
