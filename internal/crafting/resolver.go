// Package crafting implements the combination resolver: locating raw
// material pairs for slotted modifiers, consolidating and splitting request
// groups, and aggregating the shopping list for a session's selections.
package crafting

import (
	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
)

// Need is one populated stat slot's crafting requirement. Needs are not
// deduplicated at this stage; Consolidate merges them.
type Need struct {
	Modifier       string         `json:"modifier"`
	SlotName       string         `json:"slot_name"`
	PowerBit       int            `json:"power_bit"`
	CandidatePairs []catalog.Pair `json:"candidate_pairs"`
}

// ResolveNeeded walks every populated stat slot of the build and resolves
// its candidate material pairs from the recipe index. A modifier with no
// known recipe is reported with an empty candidate list, never an error.
func ResolveNeeded(b *build.Build, idx *catalog.RecipeIndex) []Need {
	if b == nil || idx == nil {
		return nil
	}

	var needed []Need
	for _, info := range build.Slots {
		state, ok := b.Slots[info.ID]
		if !ok {
			continue
		}
		for _, stat := range state.Stats {
			needed = append(needed, Need{
				Modifier:       stat.Modifier,
				SlotName:       info.Name,
				PowerBit:       state.PowerBit,
				CandidatePairs: idx.PairsFor(stat.Modifier),
			})
		}
	}
	return needed
}

// CompatibleSecondItems returns, sorted, every material that paired with the
// chosen first item produces the target modifier. A non-nil pool restricts
// the result to materials in the pool.
func CompatibleSecondItems(firstItem, modifier string, idx *catalog.RecipeIndex, pool []string) []string {
	if idx == nil {
		return nil
	}

	partners := idx.CompatiblePartners(firstItem, modifier)
	if pool == nil {
		return partners
	}

	allowed := make(map[string]bool, len(pool))
	for _, p := range pool {
		allowed[p] = true
	}

	filtered := partners[:0]
	for _, p := range partners {
		if allowed[p] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
