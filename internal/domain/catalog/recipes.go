package catalog

import "sort"

// Recipe is the product of combining a pair of raw materials. Ratio is
// optional reference data; 0 means unspecified.
type Recipe struct {
	Name  string `json:"name"`
	Ratio int    `json:"ratio,omitempty"`
}

// Pair is an unordered pair of raw materials, recorded in the orientation it
// was found in the index.
type Pair struct {
	MaterialA string `json:"material_a"`
	MaterialB string `json:"material_b"`
}

// RecipeIndex is the immutable material->material->recipe reference mapping.
// A pair may be stored under either material ordering, never both reliably,
// so every lookup scans both orientations.
type RecipeIndex struct {
	entries map[string]map[string]Recipe

	// sorted outer keys, for deterministic iteration
	materials []string
}

// NewRecipeIndex wraps the raw nested mapping. The mapping is not copied;
// callers must treat it as immutable after construction.
func NewRecipeIndex(entries map[string]map[string]Recipe) *RecipeIndex {
	if entries == nil {
		entries = map[string]map[string]Recipe{}
	}

	materials := make([]string, 0, len(entries))
	for m := range entries {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	return &RecipeIndex{entries: entries, materials: materials}
}

// PairsFor returns every material pair that produces the named modifier,
// scanning both stored orientations and de-duplicating pairs stored twice.
// Iteration order is stable (sorted material names), which fixes the default
// selection when no prior choice exists. An unknown modifier yields nil.
func (ri *RecipeIndex) PairsFor(modifier string) []Pair {
	if modifier == "" {
		return nil
	}

	seen := make(map[[2]string]bool)
	var pairs []Pair

	for _, a := range ri.materials {
		inner := ri.entries[a]

		partners := make([]string, 0, len(inner))
		for b := range inner {
			partners = append(partners, b)
		}
		sort.Strings(partners)

		for _, b := range partners {
			if inner[b].Name != modifier {
				continue
			}
			key := pairKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, Pair{MaterialA: a, MaterialB: b})
		}
	}

	return pairs
}

// Produces returns the recipe for combining two materials, checking both
// stored orientations.
func (ri *RecipeIndex) Produces(a, b string) (Recipe, bool) {
	if inner, ok := ri.entries[a]; ok {
		if r, ok := inner[b]; ok {
			return r, true
		}
	}
	if inner, ok := ri.entries[b]; ok {
		if r, ok := inner[a]; ok {
			return r, true
		}
	}
	return Recipe{}, false
}

// CompatiblePartners returns, sorted, every material that combined with
// first (in either orientation) produces the named modifier.
func (ri *RecipeIndex) CompatiblePartners(first, modifier string) []string {
	if first == "" || modifier == "" {
		return nil
	}

	set := make(map[string]bool)

	// forward: first stored as outer key
	for b, r := range ri.entries[first] {
		if r.Name == modifier {
			set[b] = true
		}
	}

	// reverse: first stored as inner key
	for _, a := range ri.materials {
		if a == first {
			continue
		}
		if r, ok := ri.entries[a][first]; ok && r.Name == modifier {
			set[a] = true
		}
	}

	partners := make([]string, 0, len(set))
	for p := range set {
		partners = append(partners, p)
	}
	sort.Strings(partners)
	return partners
}

// Materials returns the sorted outer material names of the index.
func (ri *RecipeIndex) Materials() []string {
	out := make([]string, len(ri.materials))
	copy(out, ri.materials)
	return out
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
