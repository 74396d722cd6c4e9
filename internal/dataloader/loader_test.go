package dataloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velhaven/gearplan/internal/dataloader"
)

const modifiersJSON = `[
	{"name": "Toughness", "category": "survival", "ratio": 1, "is_core": true},
	{"name": "Luck", "category": "utility", "ratio": 7},
	{"name": "Ratioless", "category": "utility"},
	{"category": "nameless entries are skipped", "ratio": 3}
]`

const recipesJSON = `{
	"Iron Shard": {
		"Bone Dust": {"name": "Toughness", "ratio": 1},
		"Moss Fiber": {"name": "Endurance"}
	},
	"Silver Thread": {
		"Glass Bead": {"name": "Luck", "ratio": 7},
		"Broken Leaf": {}
	}
}`

const presetsYAML = `
jewelry:
  raider:
    - modifier: Toughness
      value: 30
    - modifier: Luck
      value: 5
backpack:
  scout:
    - modifier: Endurance
      value: 20
armor:
  bulwark:
    - modifier: General Defense
      value: 45
`

func TestParseModifiers(t *testing.T) {
	modifiers, err := dataloader.ParseModifiers([]byte(modifiersJSON))
	require.NoError(t, err)
	require.Len(t, modifiers, 3)

	assert.Equal(t, "Toughness", modifiers[0].Name)
	assert.True(t, modifiers[0].IsCore)
	assert.Equal(t, 7, modifiers[1].Ratio)

	// missing ratio stays 0 and resolves through the fallback chain later
	assert.Zero(t, modifiers[2].Ratio)
}

func TestParseModifiers_NotAnArray(t *testing.T) {
	_, err := dataloader.ParseModifiers([]byte(`{"name": "nope"}`))
	assert.Error(t, err)
}

func TestParseRecipes(t *testing.T) {
	entries, err := dataloader.ParseRecipes([]byte(recipesJSON))
	require.NoError(t, err)

	require.Contains(t, entries, "Iron Shard")
	assert.Equal(t, "Toughness", entries["Iron Shard"]["Bone Dust"].Name)
	assert.Equal(t, 1, entries["Iron Shard"]["Bone Dust"].Ratio)

	// optional ratio defaults to 0
	assert.Zero(t, entries["Iron Shard"]["Moss Fiber"].Ratio)

	// leaves without a produced-modifier name are skipped
	_, ok := entries["Silver Thread"]["Broken Leaf"]
	assert.False(t, ok)
}

func TestParseRecipes_NotAnObject(t *testing.T) {
	_, err := dataloader.ParseRecipes([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestParsePresets(t *testing.T) {
	presets, err := dataloader.ParsePresets([]byte(presetsYAML))
	require.NoError(t, err)

	require.Contains(t, presets.Jewelry, "raider")
	require.Len(t, presets.Jewelry["raider"], 2)
	assert.Equal(t, "Toughness", presets.Jewelry["raider"][0].Modifier)
	assert.Equal(t, 30, presets.Jewelry["raider"][0].Value)

	assert.Contains(t, presets.Backpack, "scout")
	assert.Contains(t, presets.Armor, "bulwark")
}

func TestParsePresets_Malformed(t *testing.T) {
	_, err := dataloader.ParsePresets([]byte("jewelry: [not: valid"))
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataloader.ModifiersFile), []byte(modifiersJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataloader.RecipesFile), []byte(recipesJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataloader.PresetsFile), []byte(presetsYAML), 0o644))

	bundle, err := dataloader.New(dir).LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, bundle.Catalog.Len())
	assert.NotEmpty(t, bundle.Recipes.PairsFor("Toughness"))
	assert.Contains(t, bundle.Presets.Jewelry, "raider")
}

func TestLoadAll_PresetsOptional(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataloader.ModifiersFile), []byte(modifiersJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataloader.RecipesFile), []byte(recipesJSON), 0o644))

	bundle, err := dataloader.New(dir).LoadAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bundle.Presets)
	assert.Empty(t, bundle.Presets.Jewelry)
}

func TestLoadAll_MissingCatalogFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataloader.RecipesFile), []byte(recipesJSON), 0o644))

	_, err := dataloader.New(dir).LoadAll(context.Background())
	assert.Error(t, err)
}
