package crafting

import (
	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
	apperr "github.com/velhaven/gearplan/internal/errors"
	"github.com/velhaven/gearplan/internal/uuid"
)

// Group is a set of identical crafting requests sourced together. A
// consolidated group carries every slot-instance of one modifier; split
// subgroups carve instances off so each can pick a different material pair.
type Group struct {
	ID       string `json:"id"`
	Modifier string `json:"modifier"`
	Count    int    `json:"count"`

	// Slots lists the contributing slot names, one per counted instance.
	Slots []string `json:"slots"`

	// MaxPowerBit is display-only: the strongest slot in the group.
	MaxPowerBit int `json:"max_power_bit"`

	CandidatePairs []catalog.Pair `json:"candidate_pairs"`

	// Split marks a carved-off subgroup; the consolidated remainder of a
	// modifier keeps Split false and is the target of further splits.
	Split bool `json:"split,omitempty"`

	// Selected materials for this group's pair. Both must be set (or a
	// default pair must exist) before the group contributes to the
	// shopping list.
	SelectedA string `json:"selected_a,omitempty"`
	SelectedB string `json:"selected_b,omitempty"`
}

// EffectivePair returns the material pair sourcing this group: the explicit
// selection when complete, the first candidate pair when nothing was chosen
// yet, and nothing for a half-made selection.
func (g *Group) EffectivePair() (catalog.Pair, bool) {
	if g.SelectedA != "" && g.SelectedB != "" {
		return catalog.Pair{MaterialA: g.SelectedA, MaterialB: g.SelectedB}, true
	}
	if g.SelectedA == "" && g.SelectedB == "" && len(g.CandidatePairs) > 0 {
		return g.CandidatePairs[0], true
	}
	return catalog.Pair{}, false
}

// Craftable reports whether any recipe produces this group's modifier.
func (g *Group) Craftable() bool {
	return len(g.CandidatePairs) > 0
}

// Session is the explicit session-scoped state of the crafting explorer:
// the current group layout and per-group material selections. It replaces
// any implicit shared state; callers pass it into and receive it back from
// every resolver operation.
type Session struct {
	ID     string   `json:"id"`
	Groups []*Group `json:"groups"`
}

// Consolidate merges per-slot needs into one group per modifier, in
// first-seen order, carrying the instance count, contributing slot names and
// the maximum power bit.
func Consolidate(needed []Need, gen uuid.Generator) []*Group {
	byModifier := make(map[string]*Group)
	var groups []*Group

	for _, need := range needed {
		group, ok := byModifier[need.Modifier]
		if !ok {
			group = &Group{
				ID:             gen.New(),
				Modifier:       need.Modifier,
				CandidatePairs: need.CandidatePairs,
			}
			byModifier[need.Modifier] = group
			groups = append(groups, group)
		}
		group.Count++
		group.Slots = append(group.Slots, need.SlotName)
		if need.PowerBit > group.MaxPowerBit {
			group.MaxPowerBit = need.PowerBit
		}
	}

	return groups
}

// NewSession resolves and consolidates a build's needs into a fresh session.
func NewSession(id string, b *build.Build, idx *catalog.RecipeIndex, gen uuid.Generator) *Session {
	return &Session{
		ID:     id,
		Groups: Consolidate(ResolveNeeded(b, idx), gen),
	}
}

// Group returns the session group with the given ID.
func (s *Session) Group(id string) (*Group, bool) {
	for _, g := range s.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// Split partitions the identified consolidated group into subgroups of the
// requested sizes, in order. Each size is clamped to [1, remaining]; any
// remainder stays one consolidated subgroup, so sequential splits accumulate.
// New subgroups get their own identity and a cleared selection.
func (s *Session) Split(groupID string, splitCounts []int, gen uuid.Generator) error {
	idx := -1
	for i, g := range s.Groups {
		if g.ID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFoundf("group '%s' not found in session", groupID)
	}

	group := s.Groups[idx]
	if group.Count <= 1 {
		return apperr.Validationf("group '%s' has nothing to split", groupID)
	}

	remaining := group.Count
	remainingSlots := group.Slots
	var subgroups []*Group

	for _, want := range splitCounts {
		if remaining == 0 {
			break
		}
		size := clamp(want, 1, remaining)

		sub := &Group{
			ID:             gen.New(),
			Modifier:       group.Modifier,
			Count:          size,
			Slots:          append([]string(nil), remainingSlots[:size]...),
			MaxPowerBit:    group.MaxPowerBit,
			CandidatePairs: group.CandidatePairs,
			Split:          true,
		}
		subgroups = append(subgroups, sub)

		remaining -= size
		remainingSlots = remainingSlots[size:]
	}

	if len(subgroups) == 0 {
		return nil
	}

	if remaining > 0 {
		// the remainder keeps the original group identity and selection
		group.Count = remaining
		group.Slots = append([]string(nil), remainingSlots...)
		subgroups = append(subgroups, group)
	}

	s.Groups = append(s.Groups[:idx], append(subgroups, s.Groups[idx+1:]...)...)
	return nil
}

// Merge collapses every group of a modifier back into one consolidated
// group, discarding split metadata and all prior material selections.
func (s *Session) Merge(modifier string) error {
	var merged *Group
	var out []*Group

	for _, g := range s.Groups {
		if g.Modifier != modifier {
			out = append(out, g)
			continue
		}
		if merged == nil {
			merged = &Group{
				ID:             g.ID,
				Modifier:       g.Modifier,
				CandidatePairs: g.CandidatePairs,
			}
			out = append(out, merged)
		}
		merged.Count += g.Count
		merged.Slots = append(merged.Slots, g.Slots...)
		if g.MaxPowerBit > merged.MaxPowerBit {
			merged.MaxPowerBit = g.MaxPowerBit
		}
	}

	if merged == nil {
		return apperr.NotFoundf("no groups for modifier '%s'", modifier)
	}

	s.Groups = out
	return nil
}

// SelectMaterials records a group's material pair choice. The pair must
// produce the group's modifier in the recipe index (either orientation).
// Passing an empty second material records a partial selection.
func (s *Session) SelectMaterials(groupID, first, second string, idx *catalog.RecipeIndex) error {
	group, ok := s.Group(groupID)
	if !ok {
		return apperr.NotFoundf("group '%s' not found in session", groupID)
	}
	if first == "" {
		return apperr.InvalidArgument("first material is required")
	}

	if second != "" {
		recipe, found := idx.Produces(first, second)
		if !found || recipe.Name != group.Modifier {
			return apperr.Validationf("'%s' + '%s' does not produce '%s'", first, second, group.Modifier)
		}
	}

	group.SelectedA = first
	group.SelectedB = second
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
