package planner

import (
	"time"

	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// planDays is the fixed planning horizon.
const planDays = 7

// MealAssignment is one (recipe, day, meal slot) cell of a weekly plan.
type MealAssignment struct {
	Day         int             `json:"day"` // 1..7
	MealType    recipe.MealType `json:"meal_type"`
	RecipeID    string          `json:"recipe_id"`
	RecipeTitle string          `json:"recipe_title"`
	Calories    int             `json:"calories"`
}

// MealPlan is a generated weekly plan. Entries are ordered by day, then by
// slot (breakfast, lunch, dinner, snack); slots with no eligible candidate
// are simply absent.
type MealPlan struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	Name       string           `json:"name"`
	Summary    string           `json:"summary,omitempty"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    time.Time        `json:"end_date"`
	Entries    []MealAssignment `json:"entries"`
	SlotsTotal int              `json:"slots_total"`
	CreatedAt  time.Time        `json:"created_at"`
}

// UnfilledSlots reports how many slots had no eligible candidate.
func (p *MealPlan) UnfilledSlots() int {
	return p.SlotsTotal - len(p.Entries)
}
