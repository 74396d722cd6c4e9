package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Modifier is a single entry of the static modifier reference data.
type Modifier struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Ratio    int    `json:"ratio"`
	IsCore   bool   `json:"is_core"`
}

// Catalog holds the immutable modifier reference data, loaded once at startup.
type Catalog struct {
	modifiers []Modifier
	byName    map[string]Modifier
}

// New builds a catalog from an ordered modifier list. Later duplicates of a
// name are ignored.
func New(modifiers []Modifier) *Catalog {
	c := &Catalog{
		modifiers: make([]Modifier, 0, len(modifiers)),
		byName:    make(map[string]Modifier, len(modifiers)),
	}

	for _, m := range modifiers {
		if m.Name == "" {
			continue
		}
		if _, exists := c.byName[m.Name]; exists {
			continue
		}
		c.byName[m.Name] = m
		c.modifiers = append(c.modifiers, m)
	}

	return c
}

// Lookup returns the modifier with the given name.
func (c *Catalog) Lookup(name string) (Modifier, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// RatioFor resolves the power-to-stat ratio for a modifier. Resolution order:
// catalog entry, then the entry-level fallback, then 1. Unknown or custom
// modifiers never fail aggregation.
func (c *Catalog) RatioFor(name string, fallback int) int {
	if m, ok := c.byName[name]; ok && m.Ratio > 0 {
		return m.Ratio
	}
	if fallback > 0 {
		return fallback
	}
	return 1
}

// Modifiers returns the catalog entries in load order.
func (c *Catalog) Modifiers() []Modifier {
	out := make([]Modifier, len(c.modifiers))
	copy(out, c.modifiers)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.modifiers)
}

// Search returns up to limit modifiers ranked by how closely their name
// matches the query. Exact and substring matches rank ahead of fuzzy ones.
func (c *Catalog) Search(query string, limit int) []Modifier {
	if query == "" || limit <= 0 {
		return nil
	}

	q := strings.ToLower(query)

	type scored struct {
		modifier Modifier
		score    int
	}

	var results []scored
	for _, m := range c.modifiers {
		name := strings.ToLower(m.Name)
		switch {
		case name == q:
			results = append(results, scored{m, 0})
		case strings.Contains(name, q):
			results = append(results, scored{m, 1})
		default:
			dist := levenshtein.ComputeDistance(q, name)
			if dist <= searchDistanceLimit(len(name)) {
				results = append(results, scored{m, 1 + dist})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score < results[j].score
		}
		return results[i].modifier.Name < results[j].modifier.Name
	})

	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]Modifier, len(results))
	for i, r := range results {
		out[i] = r.modifier
	}
	return out
}

// searchDistanceLimit scales the tolerated edit distance with name length so
// short names do not match everything.
func searchDistanceLimit(nameLen int) int {
	switch {
	case nameLen <= 4:
		return 1
	case nameLen <= 8:
		return 2
	default:
		return 3
	}
}
