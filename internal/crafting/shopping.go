package crafting

import "sort"

// ShoppingItem is one raw material line of the aggregated shopping list.
type ShoppingItem struct {
	Qty int `json:"qty"`

	// ForStats lists, sorted, the modifiers this material is needed for.
	ForStats []string `json:"for_stats"`
}

// ShoppingList aggregates raw material needs across every group with a
// complete material selection. Both materials of a group's pair are counted
// by the group's instance count; groups with an incomplete selection
// contribute nothing.
func ShoppingList(groups []*Group) map[string]ShoppingItem {
	quantities := make(map[string]int)
	forStats := make(map[string]map[string]bool)

	add := func(material, modifier string, qty int) {
		quantities[material] += qty
		if forStats[material] == nil {
			forStats[material] = make(map[string]bool)
		}
		forStats[material][modifier] = true
	}

	for _, g := range groups {
		if g.Count <= 0 {
			continue
		}
		pair, ok := g.EffectivePair()
		if !ok {
			continue
		}
		add(pair.MaterialA, g.Modifier, g.Count)
		add(pair.MaterialB, g.Modifier, g.Count)
	}

	list := make(map[string]ShoppingItem, len(quantities))
	for material, qty := range quantities {
		stats := make([]string, 0, len(forStats[material]))
		for s := range forStats[material] {
			stats = append(stats, s)
		}
		sort.Strings(stats)
		list[material] = ShoppingItem{Qty: qty, ForStats: stats}
	}
	return list
}
