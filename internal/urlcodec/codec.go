// Package urlcodec serializes a build into the compact delimited string
// embedded in a share URL, and restores builds from both the current and the
// legacy format. Decoding degrades field by field: an unparsable power bit
// defaults to 35 and malformed stat or buff tokens are skipped, so a damaged
// string still yields a usable build.
package urlcodec

import (
	"strconv"
	"strings"

	"github.com/velhaven/gearplan/internal/domain/build"
)

// Format discriminates the wire format of an encoded build string.
type Format int

const (
	// FormatLegacy is the original slots-only encoding with no version tag.
	FormatLegacy Format = iota

	// FormatV2 is the current sectioned encoding, tagged with version "2".
	FormatV2
)

// Delimiters of the v2 grammar. Modifier, preset and material names must not
// contain any of them.
const (
	sectionSep = "~"
	entrySep   = "!"
	fieldSep   = ";"
	statSep    = ","
	valueSep   = "="
)

const versionTag = "2"

// DetectFormat classifies an encoded string by its version discriminator.
func DetectFormat(encoded string) Format {
	head, _, found := strings.Cut(encoded, sectionSep)
	if found && head == versionTag {
		return FormatV2
	}
	return FormatLegacy
}

// Encode serializes a build into the current format. Cosmetic fields (name,
// IDs, timestamps) are not part of the wire representation.
func Encode(b *build.Build) string {
	if b == nil {
		return ""
	}

	sections := []string{
		versionTag,
		encodeSlots(b),
		encodeBuffs(b.ExternalBuffs),
		encodeGearSet(b.Jewelry),
		encodeGearSet(b.Backpack),
		strconv.Itoa(b.ArmorBonusHP),
	}
	return strings.Join(sections, sectionSep)
}

// Decode restores a build from an encoded string of either format.
func Decode(encoded string) *build.Build {
	if DetectFormat(encoded) == FormatV2 {
		return decodeV2(encoded)
	}
	return decodeLegacy(encoded)
}

func encodeSlots(b *build.Build) string {
	var entries []string
	for _, info := range build.Slots {
		state, ok := b.Slots[info.ID]
		if !ok {
			continue
		}
		// empty slots at default power carry no information
		if len(state.Stats) == 0 && state.PowerBit == build.MaxPowerBit {
			continue
		}

		stats := make([]string, 0, len(state.Stats))
		for _, s := range state.Stats {
			if s.Ratio > 0 {
				stats = append(stats, s.Modifier+valueSep+strconv.Itoa(s.Ratio))
			} else {
				stats = append(stats, s.Modifier)
			}
		}

		entry := strings.Join([]string{
			string(info.ID),
			strconv.Itoa(state.PowerBit),
			strings.Join(stats, statSep),
		}, fieldSep)
		entries = append(entries, entry)
	}
	return strings.Join(entries, entrySep)
}

func encodeBuffs(buffs []build.ExternalBuff) string {
	entries := make([]string, 0, len(buffs))
	for _, buff := range buffs {
		entries = append(entries, buff.Modifier+valueSep+strconv.Itoa(buff.Value)+fieldSep+string(buff.Source))
	}
	return strings.Join(entries, entrySep)
}

func encodeGearSet(g build.GearSet) string {
	if g.Preset != "" {
		return "p" + fieldSep + g.Preset
	}
	if len(g.Custom) == 0 {
		return ""
	}

	entries := make([]string, 0, len(g.Custom))
	for _, sv := range g.Custom {
		entries = append(entries, sv.Modifier+valueSep+strconv.Itoa(sv.Value))
	}
	return "c" + fieldSep + strings.Join(entries, statSep)
}

func decodeV2(encoded string) *build.Build {
	sections := strings.Split(encoded, sectionSep)

	b := build.New()
	if len(sections) > 1 {
		decodeSlotsInto(b, sections[1])
	}
	if len(sections) > 2 {
		b.ExternalBuffs = decodeBuffs(sections[2])
	}
	if len(sections) > 3 {
		b.Jewelry = decodeGearSet(sections[3])
	}
	if len(sections) > 4 {
		b.Backpack = decodeGearSet(sections[4])
	}
	if len(sections) > 5 {
		if hp, err := strconv.Atoi(sections[5]); err == nil && hp >= 0 {
			b.ArmorBonusHP = hp
		}
	}
	return b
}

// decodeLegacy handles the untagged original format: a bare slots section.
func decodeLegacy(encoded string) *build.Build {
	b := build.New()
	decodeSlotsInto(b, encoded)
	return b
}

func decodeSlotsInto(b *build.Build, section string) {
	if section == "" {
		return
	}

	for _, entry := range strings.Split(section, entrySep) {
		fields := strings.Split(entry, fieldSep)
		if len(fields) == 0 {
			continue
		}

		id := build.SlotID(fields[0])
		state, err := b.Slot(id)
		if err != nil {
			// unknown slot segment, skip it
			continue
		}

		state.PowerBit = build.MaxPowerBit
		if len(fields) > 1 {
			if power, err := strconv.Atoi(fields[1]); err == nil &&
				power >= build.MinPowerBit && power <= build.MaxPowerBit {
				state.PowerBit = power
			}
		}

		if len(fields) > 2 && fields[2] != "" {
			state.Stats = decodeSlotStats(fields[2])
		}
	}
}

func decodeSlotStats(field string) []build.SlotStat {
	var stats []build.SlotStat
	for _, token := range strings.Split(field, statSep) {
		if token == "" {
			continue
		}
		if len(stats) == build.MaxStatsPerSlot {
			break
		}

		name, ratioStr, hasRatio := strings.Cut(token, valueSep)
		if name == "" {
			continue
		}

		stat := build.SlotStat{Modifier: name}
		if hasRatio {
			ratio, err := strconv.Atoi(ratioStr)
			if err != nil {
				// malformed ratio, keep the stat with catalog fallback
				ratio = 0
			}
			stat.Ratio = ratio
		}
		stats = append(stats, stat)
	}
	return stats
}

func decodeBuffs(section string) []build.ExternalBuff {
	if section == "" {
		return nil
	}

	var buffs []build.ExternalBuff
	for _, entry := range strings.Split(section, entrySep) {
		body, sourceStr, _ := strings.Cut(entry, fieldSep)
		name, valueStr, hasValue := strings.Cut(body, valueSep)
		if name == "" || !hasValue {
			continue
		}

		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 0 {
			continue
		}

		source := build.BuffSource(sourceStr)
		switch source {
		case build.SourceBackpack, build.SourceJewelry, build.SourceArmor,
			build.SourceFood, build.SourceClass:
		default:
			source = build.SourceUnknown
		}

		buffs = append(buffs, build.ExternalBuff{Modifier: name, Value: value, Source: source})
	}
	return buffs
}

func decodeGearSet(section string) build.GearSet {
	if section == "" {
		return build.GearSet{}
	}

	kind, body, found := strings.Cut(section, fieldSep)
	if !found {
		return build.GearSet{}
	}

	switch kind {
	case "p":
		return build.GearSet{Preset: body}
	case "c":
		var custom []build.StatValue
		for _, token := range strings.Split(body, statSep) {
			name, valueStr, hasValue := strings.Cut(token, valueSep)
			if name == "" || !hasValue {
				continue
			}
			value, err := strconv.Atoi(valueStr)
			if err != nil || value < 0 {
				continue
			}
			custom = append(custom, build.StatValue{Modifier: name, Value: value})
		}
		return build.GearSet{Custom: custom}
	default:
		return build.GearSet{}
	}
}
