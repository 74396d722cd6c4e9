package testutils

import (
	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
)

// SampleCatalog returns a small modifier catalog covering the core armor
// stats plus a couple of exotic-only modifiers.
func SampleCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Modifier{
		{Name: build.StatToughness, Category: "survival", Ratio: 1, IsCore: true},
		{Name: build.StatEndurance, Category: "survival", Ratio: 1, IsCore: true},
		{Name: build.StatGeneralDefense, Category: "defense", Ratio: 1, IsCore: true},
		{Name: build.StatRangedDefense, Category: "defense", Ratio: 1, IsCore: true},
		{Name: build.StatMeleeDefense, Category: "defense", Ratio: 1, IsCore: true},
		{Name: build.StatOpportune, Category: "offense", Ratio: 1, IsCore: true},
		{Name: build.StatWillpower, Category: "survival", Ratio: 1, IsCore: true},
		{Name: "Stealth Field", Category: "utility", Ratio: 5},
		{Name: "Luck", Category: "utility", Ratio: 7},
	})
}

// SampleRecipeIndex returns a recipe index exercising both stored
// orientations: Toughness is reachable forward and in reverse.
func SampleRecipeIndex() *catalog.RecipeIndex {
	return catalog.NewRecipeIndex(map[string]map[string]catalog.Recipe{
		"Iron Shard": {
			"Bone Dust":  {Name: build.StatToughness, Ratio: 1},
			"Moss Fiber": {Name: build.StatEndurance, Ratio: 1},
		},
		"Granite Core": {
			"Bone Dust": {Name: build.StatToughness, Ratio: 1},
		},
		"Moss Fiber": {
			// reverse orientation entry for General Defense
			"Silver Thread": {Name: build.StatGeneralDefense, Ratio: 1},
		},
		"Silver Thread": {
			"Glass Bead": {Name: "Luck", Ratio: 7},
		},
	})
}

// SampleBuild returns a build with three populated core slots and two
// external buffs.
func SampleBuild() *build.Build {
	b := build.New()

	_ = b.SetPowerBit(build.SlotHelmet, 35)
	_ = b.AddStat(build.SlotHelmet, build.SlotStat{Modifier: build.StatToughness})
	_ = b.AddStat(build.SlotHelmet, build.SlotStat{Modifier: build.StatEndurance})

	_ = b.SetPowerBit(build.SlotChestplate, 33)
	_ = b.AddStat(build.SlotChestplate, build.SlotStat{Modifier: build.StatToughness})

	_ = b.SetPowerBit(build.SlotBoots, 30)
	_ = b.AddStat(build.SlotBoots, build.SlotStat{Modifier: build.StatGeneralDefense})

	b.ExternalBuffs = []build.ExternalBuff{
		{Modifier: build.StatToughness, Value: 25, Source: build.SourceFood},
		{Modifier: build.StatOpportune, Value: 10, Source: build.SourceClass},
	}
	return b
}
