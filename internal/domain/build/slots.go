package build

// SlotID identifies one of the fixed equipment slots.
type SlotID string

const (
	SlotHelmet      SlotID = "helmet"
	SlotChestplate  SlotID = "chestplate"
	SlotLeggings    SlotID = "leggings"
	SlotBoots       SlotID = "boots"
	SlotGloves      SlotID = "gloves"
	SlotBelt        SlotID = "belt"
	SlotLeftBracer  SlotID = "left_bracer"
	SlotRightBracer SlotID = "right_bracer"
	SlotLeftBicep   SlotID = "left_bicep"
	SlotRightBicep  SlotID = "right_bicep"
	SlotShirt       SlotID = "shirt"
	SlotWeapon      SlotID = "weapon"
)

// SlotInfo describes a fixed equipment slot. Exotic slots accept any
// modifier; the rest are restricted to the core armor stat list.
type SlotInfo struct {
	ID     SlotID
	Name   string
	Exotic bool
}

// Slots is the fixed equipment slot table, in display order.
var Slots = []SlotInfo{
	{ID: SlotHelmet, Name: "Helmet"},
	{ID: SlotChestplate, Name: "Chestplate"},
	{ID: SlotLeggings, Name: "Leggings"},
	{ID: SlotBoots, Name: "Boots"},
	{ID: SlotGloves, Name: "Gloves"},
	{ID: SlotBelt, Name: "Belt"},
	{ID: SlotLeftBracer, Name: "Left Bracer"},
	{ID: SlotRightBracer, Name: "Right Bracer"},
	{ID: SlotLeftBicep, Name: "Left Bicep"},
	{ID: SlotRightBicep, Name: "Right Bicep"},
	{ID: SlotShirt, Name: "Shirt", Exotic: true},
	{ID: SlotWeapon, Name: "Weapon", Exotic: true},
}

var slotsByID = func() map[SlotID]SlotInfo {
	m := make(map[SlotID]SlotInfo, len(Slots))
	for _, s := range Slots {
		m[s.ID] = s
	}
	return m
}()

// SlotByID returns the slot table entry for an ID.
func SlotByID(id SlotID) (SlotInfo, bool) {
	info, ok := slotsByID[id]
	return info, ok
}

// Core armor stat names eligible for non-exotic slots.
const (
	StatToughness      = "Toughness"
	StatEndurance      = "Endurance"
	StatGeneralDefense = "General Defense"
	StatRangedDefense  = "Ranged Defense"
	StatMeleeDefense   = "Melee Defense"
	StatOpportune      = "Opportune Chance"
	StatWillpower      = "Willpower"
)

// CoreArmorStats is the allow-list for core-restricted slots.
var CoreArmorStats = []string{
	StatToughness,
	StatEndurance,
	StatGeneralDefense,
	StatRangedDefense,
	StatMeleeDefense,
	StatOpportune,
	StatWillpower,
}

var coreArmorStatSet = func() map[string]bool {
	m := make(map[string]bool, len(CoreArmorStats))
	for _, s := range CoreArmorStats {
		m[s] = true
	}
	return m
}()

// IsCoreArmorStat reports whether a modifier may be slotted into a
// core-restricted slot.
func IsCoreArmorStat(name string) bool {
	return coreArmorStatSet[name]
}
