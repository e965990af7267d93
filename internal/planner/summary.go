package planner

import (
	"fmt"
	"strings"
)

// buildSummaryPrompt renders the prompt for the optional plan summary.
func buildSummaryPrompt(plan *MealPlan, calorieTarget int) string {
	var sb strings.Builder
	for _, entry := range plan.Entries {
		fmt.Fprintf(&sb, "Day %d %s: %s (%d kcal)\n", entry.Day, entry.MealType, entry.RecipeTitle, entry.Calories)
	}

	return fmt.Sprintf(`You are a friendly nutrition coach. Summarize the following weekly meal plan
in two or three sentences for the user. Mention the overall style of the week
and roughly how it tracks the daily target of %d kcal. Do not list every meal.

%s`, calorieTarget, sb.String())
}
