package build

import (
	"time"

	apperr "github.com/velhaven/gearplan/internal/errors"
)

// Power bit bounds per equipment slot.
const (
	MinPowerBit = 30
	MaxPowerBit = 35
)

// MaxStatsPerSlot caps the distinct stats one slot can carry.
const MaxStatsPerSlot = 3

// SlotStat is one stat entry on an equipment slot. Ratio is an optional
// override used only when the catalog has no entry for the modifier; 0 means
// unset.
type SlotStat struct {
	Modifier string `json:"modifier"`
	Ratio    int    `json:"ratio,omitempty"`
}

// SlotState is the mutable state of one equipment slot.
type SlotState struct {
	PowerBit int        `json:"power_bit"`
	Stats    []SlotStat `json:"stats"`
}

// BuffSource tags where an external buff comes from.
type BuffSource string

const (
	SourceBackpack BuffSource = "backpack"
	SourceJewelry  BuffSource = "jewelry"
	SourceArmor    BuffSource = "armor"
	SourceFood     BuffSource = "food"
	SourceClass    BuffSource = "class"
	SourceUnknown  BuffSource = "unknown"
)

// ExternalBuff is a flat, unscaled stat contribution outside the slot system.
type ExternalBuff struct {
	Modifier string     `json:"modifier"`
	Value    int        `json:"value"`
	Source   BuffSource `json:"source"`
}

// StatValue is a resolved flat {modifier, value} contribution.
type StatValue struct {
	Modifier string `json:"modifier"`
	Value    int    `json:"value"`
}

// GearSet is a jewelry or backpack loadout: either a named preset reference
// or a custom stat list. Preset takes precedence when both are set.
type GearSet struct {
	Preset string      `json:"preset,omitempty"`
	Custom []StatValue `json:"custom,omitempty"`
}

// IsEmpty reports whether the gear set carries nothing.
func (g GearSet) IsEmpty() bool {
	return g.Preset == "" && len(g.Custom) == 0
}

// Build is the root mutable entity a planning session operates on. It is
// never persisted server-side; its only external representation is the
// encoded URL string.
type Build struct {
	ID      string `json:"id,omitempty"`
	OwnerID string `json:"owner_id,omitempty"`
	Name    string `json:"name,omitempty"`

	Slots         map[SlotID]*SlotState `json:"slots"`
	ExternalBuffs []ExternalBuff        `json:"external_buffs,omitempty"`
	Jewelry       GearSet               `json:"jewelry,omitempty"`
	Backpack      GearSet               `json:"backpack,omitempty"`
	ArmorBonusHP  int                   `json:"armor_bonus_hp,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// New creates an empty build with every slot at maximum power and no stats.
func New() *Build {
	slots := make(map[SlotID]*SlotState, len(Slots))
	for _, info := range Slots {
		slots[info.ID] = &SlotState{PowerBit: MaxPowerBit}
	}
	return &Build{Slots: slots}
}

// Slot returns the state for a slot ID, creating it lazily for builds
// restored from partial data.
func (b *Build) Slot(id SlotID) (*SlotState, error) {
	if _, ok := SlotByID(id); !ok {
		return nil, apperr.InvalidArgumentf("unknown slot '%s'", id)
	}
	if b.Slots == nil {
		b.Slots = make(map[SlotID]*SlotState)
	}
	state, ok := b.Slots[id]
	if !ok {
		state = &SlotState{PowerBit: MaxPowerBit}
		b.Slots[id] = state
	}
	return state, nil
}

// SetPowerBit sets a slot's power bit, enforcing the [30,35] range.
func (b *Build) SetPowerBit(id SlotID, power int) error {
	if power < MinPowerBit || power > MaxPowerBit {
		return apperr.Validationf("power bit %d out of range [%d,%d]", power, MinPowerBit, MaxPowerBit).
			WithMeta("slot", string(id))
	}

	state, err := b.Slot(id)
	if err != nil {
		return err
	}
	state.PowerBit = power
	return nil
}

// AddStat adds a stat entry to a slot. Non-exotic slots only accept core
// armor stats; a slot holds at most 3 distinct stats and never the same
// modifier twice.
func (b *Build) AddStat(id SlotID, stat SlotStat) error {
	if stat.Modifier == "" {
		return apperr.InvalidArgument("modifier name is required")
	}

	info, ok := SlotByID(id)
	if !ok {
		return apperr.InvalidArgumentf("unknown slot '%s'", id)
	}

	if !info.Exotic && !IsCoreArmorStat(stat.Modifier) {
		return apperr.Validationf("'%s' is not a core armor stat and slot '%s' is not exotic", stat.Modifier, id).
			WithMeta("slot", string(id)).
			WithMeta("modifier", stat.Modifier)
	}

	state, err := b.Slot(id)
	if err != nil {
		return err
	}

	if len(state.Stats) >= MaxStatsPerSlot {
		return apperr.Validationf("slot '%s' already holds %d stats", id, MaxStatsPerSlot)
	}
	for _, existing := range state.Stats {
		if existing.Modifier == stat.Modifier {
			return apperr.AlreadyExistsf("slot '%s' already has '%s'", id, stat.Modifier)
		}
	}

	state.Stats = append(state.Stats, stat)
	return nil
}

// RemoveStat removes a modifier from a slot. Removing an absent modifier is
// a no-op.
func (b *Build) RemoveStat(id SlotID, modifier string) {
	state, ok := b.Slots[id]
	if !ok {
		return
	}
	for i, s := range state.Stats {
		if s.Modifier == modifier {
			state.Stats = append(state.Stats[:i], state.Stats[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the build.
func (b *Build) Clone() *Build {
	if b == nil {
		return nil
	}

	clone := *b
	clone.Slots = make(map[SlotID]*SlotState, len(b.Slots))
	for id, state := range b.Slots {
		stats := make([]SlotStat, len(state.Stats))
		copy(stats, state.Stats)
		clone.Slots[id] = &SlotState{PowerBit: state.PowerBit, Stats: stats}
	}

	clone.ExternalBuffs = append([]ExternalBuff(nil), b.ExternalBuffs...)
	clone.Jewelry.Custom = append([]StatValue(nil), b.Jewelry.Custom...)
	clone.Backpack.Custom = append([]StatValue(nil), b.Backpack.Custom...)
	return &clone
}
