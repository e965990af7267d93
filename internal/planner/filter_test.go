package planner

import (
	"reflect"
	"testing"

	"github.com/bastian87/NutriMate-sub000/internal/profile"
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

func TestFilterCandidates(t *testing.T) {
	catalog := []recipe.Recipe{
		{ID: "1", Title: "Peanut Noodles", Ingredients: []string{"noodles", "Peanuts", "soy sauce"}},
		{ID: "2", Title: "Tomato Soup", Ingredients: []string{"tomato", "cream"}},
		{ID: "3", Title: "Mushroom Risotto", Ingredients: []string{"rice", "mushrooms"}},
		{ID: "4", Title: "Fruit Bowl", Ingredients: []string{"apple", "banana"}},
	}

	constraints := profile.DietaryConstraints{
		Allergies:           []string{"peanuts"},
		ExcludedIngredients: []string{"Mushrooms"},
	}

	t.Run("RemovesExcluded", func(t *testing.T) {
		got := FilterCandidates(catalog, constraints)
		if len(got) != 2 {
			t.Fatalf("Expected 2 eligible recipes, got %d", len(got))
		}
		if got[0].ID != "2" || got[1].ID != "4" {
			t.Errorf("Expected recipes [2 4] in input order, got [%s %s]", got[0].ID, got[1].ID)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := FilterCandidates(catalog, profile.DietaryConstraints{Intolerances: []string{"CREAM"}})
		for _, rec := range got {
			if rec.ID == "2" {
				t.Error("Expected recipe with 'cream' to be filtered by intolerance 'CREAM'")
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := FilterCandidates(catalog, constraints)
		twice := FilterCandidates(once, constraints)
		if !reflect.DeepEqual(once, twice) {
			t.Error("Expected filtering an already-filtered list to be a no-op")
		}
	})

	t.Run("NoExclusionsCopiesInput", func(t *testing.T) {
		got := FilterCandidates(catalog, profile.DietaryConstraints{})
		if len(got) != len(catalog) {
			t.Fatalf("Expected all %d recipes, got %d", len(catalog), len(got))
		}
		got[0].ID = "mutated"
		if catalog[0].ID == "mutated" {
			t.Error("Expected filter output to be independent of the input slice")
		}
	})
}
