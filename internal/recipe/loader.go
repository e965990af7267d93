package recipe

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// catalogFile is the top-level structure of a YAML seed file.
type catalogFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// LoadCatalogFile reads a YAML seed file and returns its recipes. Entries
// without an id get one assigned; entries without a title or with negative
// calories are rejected.
func LoadCatalogFile(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if len(file.Recipes) == 0 {
		return nil, fmt.Errorf("no recipes found in %s", path)
	}

	for i := range file.Recipes {
		rec := &file.Recipes[i]
		if rec.Title == "" {
			return nil, fmt.Errorf("recipe %d in %s has no title", i+1, path)
		}
		if rec.Calories < 0 {
			return nil, fmt.Errorf("recipe %q has negative calories", rec.Title)
		}
		if rec.MealType != "" {
			if _, err := ParseMealType(string(rec.MealType)); err != nil {
				return nil, fmt.Errorf("recipe %q: %w", rec.Title, err)
			}
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
	}

	return file.Recipes, nil
}
