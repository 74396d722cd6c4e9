package stats

import "github.com/velhaven/gearplan/internal/domain/build"

// Diminishing-returns knee and pool base.
const (
	effectiveKnee = 250
	basePool      = 3500
)

// Effective applies the diminishing-returns transform to a raw stat total.
// Below the knee the value passes through unchanged; above it the payoff
// curve flattens. Integer floor semantics are a strict contract: the two
// branches agree exactly at the knee.
func Effective(x int) int {
	if x <= effectiveKnee {
		return x
	}
	return 750 * x / (500 + x)
}

// Pools are the secondary values derived from the six transformed stats.
type Pools struct {
	Health int `json:"health"`
	Action int `json:"action"`
	Mind   int `json:"mind"`

	RegenPercent float64 `json:"regen_percent"`

	Defense     int `json:"defense"`
	StateResist int `json:"state_resist"`

	CritChance    int `json:"crit_chance"`
	CritReduction int `json:"crit_reduction"`

	RangedAccuracy int `json:"ranged_accuracy"`
	RangedSpeed    int `json:"ranged_speed"`
	MeleeAccuracy  int `json:"melee_accuracy"`
	MeleeSpeed     int `json:"melee_speed"`
}

// Derive computes the secondary pools from aggregated totals. armorBonusHP
// is a flat health bonus added untouched, never passed through the
// diminishing-returns transform. All scaled values use truncating integer
// division.
func Derive(totals Totals, armorBonusHP int) Pools {
	toughness := Effective(totals[build.StatToughness])
	endurance := Effective(totals[build.StatEndurance])
	defense := Effective(totals[build.StatGeneralDefense])
	ranged := Effective(totals[build.StatRangedDefense])
	melee := Effective(totals[build.StatMeleeDefense])
	opportune := Effective(totals[build.StatOpportune])

	return Pools{
		Health: basePool + toughness*2 + armorBonusHP,
		Action: basePool + endurance,
		Mind:   basePool + endurance,

		RegenPercent: float64(endurance) / 10,

		Defense:     defense * 33 / 100,
		StateResist: (toughness + defense) / 100,

		CritChance:    opportune / 100,
		CritReduction: opportune / 100,

		RangedAccuracy: ranged * 33 / 100,
		RangedSpeed:    ranged * 25 / 100,
		MeleeAccuracy:  melee * 33 / 100,
		MeleeSpeed:     melee * 25 / 100,
	}
}
