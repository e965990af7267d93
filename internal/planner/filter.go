package planner

import (
	"strings"

	"github.com/bastian87/NutriMate-sub000/internal/profile"
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// FilterCandidates removes recipes whose ingredients intersect the user's
// excluded ingredients, allergies or intolerances (case-insensitively).
// Tag and prep-time filtering belong to the catalog fetch, not here.
// The input slice is not mutated and its order is preserved.
func FilterCandidates(catalog []recipe.Recipe, constraints profile.DietaryConstraints) []recipe.Recipe {
	exclusions := constraints.ExclusionSet()
	if len(exclusions) == 0 {
		out := make([]recipe.Recipe, len(catalog))
		copy(out, catalog)
		return out
	}

	eligible := make([]recipe.Recipe, 0, len(catalog))
	for _, rec := range catalog {
		if containsExcluded(rec.Ingredients, exclusions) {
			continue
		}
		eligible = append(eligible, rec)
	}
	return eligible
}

func containsExcluded(ingredients []string, exclusions map[string]struct{}) bool {
	for _, name := range ingredients {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, found := exclusions[name]; found {
			return true
		}
	}
	return false
}
