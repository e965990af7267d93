package planner

import (
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// usageTracker records which recipes were already assigned to each meal type
// within the week being generated. It is created per plan-generation call and
// never shared across invocations, so the assembler stays reentrant.
type usageTracker map[recipe.MealType]map[string]struct{}

func newUsageTracker() usageTracker {
	return make(usageTracker)
}

func (t usageTracker) used(mealType recipe.MealType, recipeID string) bool {
	_, ok := t[mealType][recipeID]
	return ok
}

func (t usageTracker) record(mealType recipe.MealType, recipeID string) {
	if t[mealType] == nil {
		t[mealType] = make(map[string]struct{})
	}
	t[mealType][recipeID] = struct{}{}
}

// selectRecipe picks the candidate closest in calories to the slot's target.
//
// Narrowing order: candidates tagged with the slot's meal type; if none carry
// the tag, untagged candidates only. Recipes already used for this meal type
// this week are excluded unless that would empty the pool, in which case a
// repeat is allowed. Ties go to the first-seen candidate, so input order must
// be deterministic.
//
// Returns nil when the pool is empty even after the untagged fallback; the
// caller decides whether an unfilled slot is an error.
func selectRecipe(target int, mealType recipe.MealType, candidates []recipe.Recipe, used usageTracker) *recipe.Recipe {
	pool := make([]recipe.Recipe, 0, len(candidates))
	for _, rec := range candidates {
		if rec.MealType == mealType {
			pool = append(pool, rec)
		}
	}

	if len(pool) == 0 {
		for _, rec := range candidates {
			if rec.MealType == "" {
				pool = append(pool, rec)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	fresh := make([]recipe.Recipe, 0, len(pool))
	for _, rec := range pool {
		if !used.used(mealType, rec.ID) {
			fresh = append(fresh, rec)
		}
	}
	// Variety exhausted: allow a repeat rather than leave the slot empty.
	if len(fresh) > 0 {
		pool = fresh
	}

	pick := closestMatch(target, pool)
	used.record(mealType, pick.ID)
	return pick
}

// closestMatch returns the candidate minimizing |calories - target|, first
// seen winning ties. Returns nil for an empty pool.
func closestMatch(target int, pool []recipe.Recipe) *recipe.Recipe {
	var best *recipe.Recipe
	bestDiff := 0
	for i := range pool {
		diff := pool[i].Calories - target
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = &pool[i]
			bestDiff = diff
		}
	}
	return best
}
