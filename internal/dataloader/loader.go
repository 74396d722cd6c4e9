// Package dataloader reads the static reference data files: the modifier
// catalog and recipe index (JSON, walked leniently since older data dumps
// omit optional fields) and the preset bundles (YAML).
package dataloader

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
	apperr "github.com/velhaven/gearplan/internal/errors"
)

// Default data file names inside the data directory.
const (
	ModifiersFile = "modifiers.json"
	RecipesFile   = "recipes.json"
	PresetsFile   = "presets.yaml"
)

// Bundle is everything LoadAll produces.
type Bundle struct {
	Catalog *catalog.Catalog
	Recipes *catalog.RecipeIndex
	Presets *build.Presets
}

// Loader reads reference data from a directory.
type Loader struct {
	dir string
}

// New creates a loader rooted at the given data directory.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// LoadAll reads the three reference data files concurrently. The presets
// file is optional; missing catalog or recipe files are errors.
func (l *Loader) LoadAll(ctx context.Context) (*Bundle, error) {
	bundle := &Bundle{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := os.ReadFile(filepath.Join(l.dir, ModifiersFile))
		if err != nil {
			return apperr.Wrapf(err, "reading %s", ModifiersFile)
		}
		modifiers, err := ParseModifiers(data)
		if err != nil {
			return err
		}
		bundle.Catalog = catalog.New(modifiers)
		return nil
	})

	g.Go(func() error {
		data, err := os.ReadFile(filepath.Join(l.dir, RecipesFile))
		if err != nil {
			return apperr.Wrapf(err, "reading %s", RecipesFile)
		}
		entries, err := ParseRecipes(data)
		if err != nil {
			return err
		}
		bundle.Recipes = catalog.NewRecipeIndex(entries)
		return nil
	})

	g.Go(func() error {
		data, err := os.ReadFile(filepath.Join(l.dir, PresetsFile))
		if err != nil {
			if os.IsNotExist(err) {
				bundle.Presets = &build.Presets{}
				return nil
			}
			return apperr.Wrapf(err, "reading %s", PresetsFile)
		}
		presets, err := ParsePresets(data)
		if err != nil {
			return err
		}
		bundle.Presets = presets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// ParseModifiers parses the modifier catalog JSON: an array of objects with
// name, category, ratio and is_core fields. Entries without a name are
// skipped; a missing ratio stays 0 and resolves through the usual fallback
// chain at aggregation time.
func ParseModifiers(data []byte) ([]catalog.Modifier, error) {
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, apperr.Validation("modifier catalog must be a JSON array")
	}

	var modifiers []catalog.Modifier
	root.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if name == "" {
			return true
		}
		modifiers = append(modifiers, catalog.Modifier{
			Name:     name,
			Category: v.Get("category").String(),
			Ratio:    int(v.Get("ratio").Int()),
			IsCore:   v.Get("is_core").Bool(),
		})
		return true
	})
	return modifiers, nil
}

// ParseRecipes parses the nested material -> material -> recipe mapping.
// The ratio field is optional. Leaves without a produced-modifier name are
// skipped.
func ParseRecipes(data []byte) (map[string]map[string]catalog.Recipe, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apperr.Validation("recipe index must be a JSON object")
	}

	entries := make(map[string]map[string]catalog.Recipe)
	root.ForEach(func(outer, inner gjson.Result) bool {
		if !inner.IsObject() {
			return true
		}
		inner.ForEach(func(partner, leaf gjson.Result) bool {
			name := leaf.Get("name").String()
			if name == "" {
				return true
			}
			materialA := outer.String()
			if entries[materialA] == nil {
				entries[materialA] = make(map[string]catalog.Recipe)
			}
			entries[materialA][partner.String()] = catalog.Recipe{
				Name:  name,
				Ratio: int(leaf.Get("ratio").Int()),
			}
			return true
		})
		return true
	})
	return entries, nil
}

// ParsePresets parses the YAML preset bundles.
func ParsePresets(data []byte) (*build.Presets, error) {
	var presets build.Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, apperr.Wrap(err, "parsing preset bundles")
	}
	return &presets, nil
}
