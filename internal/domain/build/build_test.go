package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhaven/gearplan/internal/domain/build"
	apperr "github.com/velhaven/gearplan/internal/errors"
)

func TestNew_AllSlotsAtMaxPower(t *testing.T) {
	b := build.New()

	require.Len(t, b.Slots, 12)
	for _, info := range build.Slots {
		state := b.Slots[info.ID]
		require.NotNil(t, state)
		assert.Equal(t, build.MaxPowerBit, state.PowerBit)
		assert.Empty(t, state.Stats)
	}
}

func TestSetPowerBit_Range(t *testing.T) {
	b := build.New()

	require.NoError(t, b.SetPowerBit(build.SlotHelmet, 30))
	require.NoError(t, b.SetPowerBit(build.SlotHelmet, 35))

	err := b.SetPowerBit(build.SlotHelmet, 29)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	assert.Error(t, b.SetPowerBit(build.SlotHelmet, 36))
	assert.Error(t, b.SetPowerBit("no-such-slot", 32))
}

func TestAddStat_CoreRestriction(t *testing.T) {
	b := build.New()

	// core stat on a core-restricted slot
	require.NoError(t, b.AddStat(build.SlotHelmet, build.SlotStat{Modifier: build.StatToughness}))

	// non-core stat rejected on a core-restricted slot
	err := b.AddStat(build.SlotHelmet, build.SlotStat{Modifier: "Stealth Field"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	// exotic slot accepts anything
	require.NoError(t, b.AddStat(build.SlotWeapon, build.SlotStat{Modifier: "Stealth Field"}))
}

func TestAddStat_SlotLimits(t *testing.T) {
	b := build.New()

	require.NoError(t, b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatToughness}))
	require.NoError(t, b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatEndurance}))

	// duplicate modifier within one slot
	err := b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatToughness})
	require.Error(t, err)
	assert.True(t, apperr.IsAlreadyExists(err))

	require.NoError(t, b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatWillpower}))

	// fourth distinct stat rejected
	err = b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatOpportune})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestAddStat_InvalidInputs(t *testing.T) {
	b := build.New()

	assert.Error(t, b.AddStat(build.SlotBelt, build.SlotStat{}))
	assert.Error(t, b.AddStat("no-such-slot", build.SlotStat{Modifier: build.StatToughness}))
}

func TestRemoveStat(t *testing.T) {
	b := build.New()
	require.NoError(t, b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatToughness}))
	require.NoError(t, b.AddStat(build.SlotBelt, build.SlotStat{Modifier: build.StatEndurance}))

	b.RemoveStat(build.SlotBelt, build.StatToughness)

	state := b.Slots[build.SlotBelt]
	require.Len(t, state.Stats, 1)
	assert.Equal(t, build.StatEndurance, state.Stats[0].Modifier)

	// removing an absent modifier is a no-op
	b.RemoveStat(build.SlotBelt, build.StatToughness)
	b.RemoveStat(build.SlotHelmet, build.StatToughness)
}

func TestClone_IsDeep(t *testing.T) {
	b := build.New()
	require.NoError(t, b.AddStat(build.SlotHelmet, build.SlotStat{Modifier: build.StatToughness}))
	b.ExternalBuffs = []build.ExternalBuff{{Modifier: build.StatToughness, Value: 10, Source: build.SourceFood}}
	b.Jewelry = build.GearSet{Custom: []build.StatValue{{Modifier: build.StatEndurance, Value: 5}}}

	clone := b.Clone()

	require.NoError(t, clone.AddStat(build.SlotHelmet, build.SlotStat{Modifier: build.StatEndurance}))
	clone.ExternalBuffs[0].Value = 99
	clone.Jewelry.Custom[0].Value = 99

	assert.Len(t, b.Slots[build.SlotHelmet].Stats, 1)
	assert.Equal(t, 10, b.ExternalBuffs[0].Value)
	assert.Equal(t, 5, b.Jewelry.Custom[0].Value)
}

func TestIsCoreArmorStat(t *testing.T) {
	for _, name := range build.CoreArmorStats {
		assert.True(t, build.IsCoreArmorStat(name))
	}
	assert.False(t, build.IsCoreArmorStat("Stealth Field"))
	assert.False(t, build.IsCoreArmorStat(""))
}

func TestGearSet_IsEmpty(t *testing.T) {
	assert.True(t, build.GearSet{}.IsEmpty())
	assert.False(t, build.GearSet{Preset: "raider"}.IsEmpty())
	assert.False(t, build.GearSet{Custom: []build.StatValue{{Modifier: "x", Value: 1}}}.IsEmpty())
}
