package build

// Presets holds the static named stat-bundles for jewelry, backpacks and
// armor builds. Loaded once at startup, immutable thereafter. The core
// treats every bundle as an opaque {modifier, value} list.
type Presets struct {
	Jewelry  map[string][]StatValue `yaml:"jewelry"`
	Backpack map[string][]StatValue `yaml:"backpack"`
	Armor    map[string][]StatValue `yaml:"armor"`
}

// ResolveJewelry flattens a jewelry gear set against the preset bundles. An
// unknown preset name resolves to nothing rather than failing.
func (p *Presets) ResolveJewelry(g GearSet) []StatValue {
	return p.resolve(p.Jewelry, g)
}

// ResolveBackpack flattens a backpack gear set against the preset bundles.
func (p *Presets) ResolveBackpack(g GearSet) []StatValue {
	return p.resolve(p.Backpack, g)
}

func (p *Presets) resolve(bundles map[string][]StatValue, g GearSet) []StatValue {
	if g.Preset != "" {
		if p == nil {
			return nil
		}
		return bundles[g.Preset]
	}
	return g.Custom
}
