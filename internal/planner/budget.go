package planner

import (
	"fmt"
	"math"

	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// distributionTolerance is how far from 1.0 the fractions of a custom
// distribution may sum before ValidateDistribution rejects it.
const distributionTolerance = 0.01

// DefaultDistribution returns the default meal-budget split. Without snacks
// the split is 30/40/30; with snacks, breakfast and lunch each give up five
// points to fund a 10% snack slot.
func DefaultDistribution(includeSnacks bool) map[recipe.MealType]float64 {
	if includeSnacks {
		return map[recipe.MealType]float64{
			recipe.MealBreakfast: 0.25,
			recipe.MealLunch:     0.35,
			recipe.MealDinner:    0.30,
			recipe.MealSnack:     0.10,
		}
	}
	return map[recipe.MealType]float64{
		recipe.MealBreakfast: 0.3,
		recipe.MealLunch:     0.4,
		recipe.MealDinner:    0.3,
	}
}

// AllocateBudget splits the daily calorie target across meal slots. The
// distribution is trusted as-is: callers supplying a custom one are
// responsible for making its fractions sum to 1.0.
func AllocateBudget(target int, dist map[recipe.MealType]float64) map[recipe.MealType]int {
	budgets := make(map[recipe.MealType]int, len(dist))
	for mealType, fraction := range dist {
		budgets[mealType] = int(math.Round(float64(target) * fraction))
	}
	return budgets
}

// ValidateDistribution checks a caller-supplied distribution: every fraction
// in [0,1], keys limited to known meal types, and the sum within tolerance
// of 1.0. The allocator itself does not call this.
func ValidateDistribution(dist map[recipe.MealType]float64) error {
	var sum float64
	for mealType, fraction := range dist {
		if _, err := recipe.ParseMealType(string(mealType)); err != nil {
			return err
		}
		if fraction < 0 || fraction > 1 {
			return fmt.Errorf("fraction for %s must be in [0,1], got %g", mealType, fraction)
		}
		sum += fraction
	}
	if math.Abs(sum-1.0) > distributionTolerance {
		return fmt.Errorf("distribution fractions must sum to 1.0, got %g", sum)
	}
	return nil
}
