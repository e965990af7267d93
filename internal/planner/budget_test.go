package planner

import (
	"math"
	"testing"

	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

func TestDefaultDistribution(t *testing.T) {
	t.Run("WithoutSnacks", func(t *testing.T) {
		dist := DefaultDistribution(false)
		if len(dist) != 3 {
			t.Fatalf("Expected 3 slots, got %d", len(dist))
		}
		if dist[recipe.MealBreakfast] != 0.3 || dist[recipe.MealLunch] != 0.4 || dist[recipe.MealDinner] != 0.3 {
			t.Errorf("Expected 0.3/0.4/0.3 split, got %v", dist)
		}
		if err := ValidateDistribution(dist); err != nil {
			t.Errorf("Expected default distribution to validate, got %v", err)
		}
	})

	t.Run("WithSnacks", func(t *testing.T) {
		dist := DefaultDistribution(true)
		if len(dist) != 4 {
			t.Fatalf("Expected 4 slots, got %d", len(dist))
		}
		var sum float64
		for _, f := range dist {
			sum += f
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Expected fractions to sum to 1.0, got %g", sum)
		}
		if dist[recipe.MealSnack] != 0.10 {
			t.Errorf("Expected snack fraction 0.10, got %g", dist[recipe.MealSnack])
		}
	})
}

func TestAllocateBudget(t *testing.T) {
	t.Run("DefaultNoSnacks", func(t *testing.T) {
		budgets := AllocateBudget(2000, DefaultDistribution(false))
		if budgets[recipe.MealBreakfast] != 600 {
			t.Errorf("Expected breakfast 600, got %d", budgets[recipe.MealBreakfast])
		}
		if budgets[recipe.MealLunch] != 800 {
			t.Errorf("Expected lunch 800, got %d", budgets[recipe.MealLunch])
		}
		if budgets[recipe.MealDinner] != 600 {
			t.Errorf("Expected dinner 600, got %d", budgets[recipe.MealDinner])
		}
	})

	t.Run("CustomDistribution", func(t *testing.T) {
		custom := map[recipe.MealType]float64{
			recipe.MealBreakfast: 0.5,
			recipe.MealDinner:    0.5,
		}
		budgets := AllocateBudget(1801, custom)
		if budgets[recipe.MealBreakfast] != 901 { // round(900.5)
			t.Errorf("Expected breakfast 901, got %d", budgets[recipe.MealBreakfast])
		}
		if _, ok := budgets[recipe.MealLunch]; ok {
			t.Error("Expected no lunch budget for a distribution without lunch")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		dist := DefaultDistribution(true)
		first := AllocateBudget(2200, dist)
		second := AllocateBudget(2200, dist)
		for mealType, want := range first {
			if second[mealType] != want {
				t.Errorf("Expected identical budgets on repeat, got %d vs %d for %s", want, second[mealType], mealType)
			}
		}
	})
}

func TestValidateDistribution(t *testing.T) {
	t.Run("SumOffByTooMuch", func(t *testing.T) {
		bad := map[recipe.MealType]float64{
			recipe.MealBreakfast: 0.5,
			recipe.MealLunch:     0.6,
		}
		if err := ValidateDistribution(bad); err == nil {
			t.Error("Expected an error for fractions summing to 1.1, got nil")
		}
	})

	t.Run("WithinTolerance", func(t *testing.T) {
		ok := map[recipe.MealType]float64{
			recipe.MealBreakfast: 0.33,
			recipe.MealLunch:     0.33,
			recipe.MealDinner:    0.335,
		}
		if err := ValidateDistribution(ok); err != nil {
			t.Errorf("Expected distribution within tolerance to validate, got %v", err)
		}
	})

	t.Run("NegativeFraction", func(t *testing.T) {
		bad := map[recipe.MealType]float64{
			recipe.MealBreakfast: -0.2,
			recipe.MealLunch:     1.2,
		}
		if err := ValidateDistribution(bad); err == nil {
			t.Error("Expected an error for a negative fraction, got nil")
		}
	})

	t.Run("UnknownMealType", func(t *testing.T) {
		bad := map[recipe.MealType]float64{
			recipe.MealType("brunch"): 1.0,
		}
		if err := ValidateDistribution(bad); err == nil {
			t.Error("Expected an error for an unknown meal type, got nil")
		}
	})
}
