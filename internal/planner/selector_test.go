package planner

import (
	"testing"

	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

func lunchPool() []recipe.Recipe {
	return []recipe.Recipe{
		{ID: "A", Title: "Salad", Calories: 500, MealType: recipe.MealLunch},
		{ID: "B", Title: "Bowl", Calories: 650, MealType: recipe.MealLunch},
	}
}

func TestSelectRecipe(t *testing.T) {
	t.Run("ClosestCalorieMatch", func(t *testing.T) {
		// |500-620|=120, |650-620|=30 → B
		pick := selectRecipe(620, recipe.MealLunch, lunchPool(), newUsageTracker())
		if pick == nil || pick.ID != "B" {
			t.Fatalf("Expected pick B, got %v", pick)
		}
	})

	t.Run("TieGoesToFirstSeen", func(t *testing.T) {
		pool := []recipe.Recipe{
			{ID: "low", Calories: 580, MealType: recipe.MealLunch},
			{ID: "high", Calories: 620, MealType: recipe.MealLunch},
		}
		pick := selectRecipe(600, recipe.MealLunch, pool, newUsageTracker())
		if pick == nil || pick.ID != "low" {
			t.Fatalf("Expected first-seen pick 'low', got %v", pick)
		}
	})

	t.Run("ExactTypeBeatsUntagged", func(t *testing.T) {
		pool := []recipe.Recipe{
			{ID: "untagged", Calories: 600},
			{ID: "tagged", Calories: 900, MealType: recipe.MealLunch},
		}
		pick := selectRecipe(600, recipe.MealLunch, pool, newUsageTracker())
		if pick == nil || pick.ID != "tagged" {
			t.Fatalf("Expected tagged recipe despite worse calorie fit, got %v", pick)
		}
	})

	t.Run("FallsBackToUntaggedOnly", func(t *testing.T) {
		pool := []recipe.Recipe{
			{ID: "untagged", Calories: 600},
			{ID: "dinner", Calories: 600, MealType: recipe.MealDinner},
		}
		pick := selectRecipe(600, recipe.MealLunch, pool, newUsageTracker())
		if pick == nil || pick.ID != "untagged" {
			t.Fatalf("Expected fallback to untagged candidate, got %v", pick)
		}
	})

	t.Run("EmptyPool", func(t *testing.T) {
		pool := []recipe.Recipe{
			{ID: "dinner", Calories: 600, MealType: recipe.MealDinner},
		}
		if pick := selectRecipe(600, recipe.MealLunch, pool, newUsageTracker()); pick != nil {
			t.Fatalf("Expected nil pick for an empty pool, got %v", pick)
		}
	})

	t.Run("AvoidsRepeatsWithinWeek", func(t *testing.T) {
		used := newUsageTracker()
		first := selectRecipe(620, recipe.MealLunch, lunchPool(), used)
		second := selectRecipe(620, recipe.MealLunch, lunchPool(), used)
		if first == nil || second == nil {
			t.Fatal("Expected both selections to succeed")
		}
		if first.ID == second.ID {
			t.Errorf("Expected different recipes while the pool has variety, got %s twice", first.ID)
		}
	})

	t.Run("AllowsRepeatWhenPoolExhausted", func(t *testing.T) {
		used := newUsageTracker()
		picks := make(map[string]int)
		for i := 0; i < 3; i++ {
			pick := selectRecipe(620, recipe.MealLunch, lunchPool(), used)
			if pick == nil {
				t.Fatalf("Expected a pick on iteration %d, got nil", i)
			}
			picks[pick.ID]++
		}
		if picks["B"] != 2 || picks["A"] != 1 {
			t.Errorf("Expected forced repeat of closest match B, got %v", picks)
		}
	})

	t.Run("UsageIsPerMealType", func(t *testing.T) {
		used := newUsageTracker()
		pool := []recipe.Recipe{
			{ID: "X", Calories: 600, MealType: recipe.MealLunch},
			{ID: "X2", Calories: 600, MealType: recipe.MealDinner},
		}
		lunch := selectRecipe(600, recipe.MealLunch, pool, used)
		dinner := selectRecipe(600, recipe.MealDinner, pool, used)
		if lunch == nil || dinner == nil {
			t.Fatal("Expected picks for both meal types")
		}
		if used.used(recipe.MealDinner, lunch.ID) {
			t.Error("Expected lunch usage not to leak into dinner tracking")
		}
	})
}
