package recipe

import (
	"os"
	"path/filepath"
	"testing"
)

const seedYAML = `recipes:
  - id: oatmeal-1
    title: Overnight Oats
    calories: 420
    meal_type: breakfast
    ingredients: [oats, milk, honey]
    cook_time: 10
    tags: [vegetarian]
  - title: Lentil Soup
    calories: 380
    meal_type: lunch
    ingredients: [lentils, carrot, onion]
    cook_time: 45
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}
	return path
}

func TestLoadCatalogFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		recipes, err := LoadCatalogFile(writeSeedFile(t, seedYAML))
		if err != nil {
			t.Fatalf("LoadCatalogFile failed: %v", err)
		}
		if len(recipes) != 2 {
			t.Fatalf("Expected 2 recipes, got %d", len(recipes))
		}
		if recipes[0].ID != "oatmeal-1" {
			t.Errorf("Expected explicit id to be kept, got '%s'", recipes[0].ID)
		}
		if recipes[1].ID == "" {
			t.Error("Expected missing id to be assigned")
		}
		if recipes[0].MealType != MealBreakfast {
			t.Errorf("Expected meal_type breakfast, got '%s'", recipes[0].MealType)
		}
		if len(recipes[1].Ingredients) != 3 {
			t.Errorf("Expected 3 ingredients, got %d", len(recipes[1].Ingredients))
		}
	})

	t.Run("MissingTitle", func(t *testing.T) {
		_, err := LoadCatalogFile(writeSeedFile(t, "recipes:\n  - calories: 100\n    ingredients: [rice]\n"))
		if err == nil {
			t.Fatal("Expected an error for a recipe without a title, got nil")
		}
	})

	t.Run("BadMealType", func(t *testing.T) {
		_, err := LoadCatalogFile(writeSeedFile(t, "recipes:\n  - title: X\n    meal_type: brunch\n    ingredients: [egg]\n"))
		if err == nil {
			t.Fatal("Expected an error for an unknown meal type, got nil")
		}
	})

	t.Run("EmptyFile", func(t *testing.T) {
		_, err := LoadCatalogFile(writeSeedFile(t, "recipes: []\n"))
		if err == nil {
			t.Fatal("Expected an error for an empty catalog, got nil")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("Expected an error for a missing file, got nil")
		}
	})
}

func TestParseMealType(t *testing.T) {
	for _, valid := range []string{"breakfast", "lunch", "dinner", "snack"} {
		if _, err := ParseMealType(valid); err != nil {
			t.Errorf("Expected '%s' to parse, got %v", valid, err)
		}
	}
	if _, err := ParseMealType(""); err == nil {
		t.Error("Expected empty meal type to be rejected")
	}
	if _, err := ParseMealType("brunch"); err == nil {
		t.Error("Expected 'brunch' to be rejected")
	}
}
