package recipe

import "fmt"

// MealType is the slot a recipe is intended for. The zero value means the
// recipe is untagged and only eligible as a fallback.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ParseMealType validates a meal type coming from the outside (API request,
// CLI flag). The empty string is not a valid external value.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// Recipe is a single catalog entry.
type Recipe struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Calories    int      `json:"calories" yaml:"calories"`
	MealType    MealType `json:"meal_type,omitempty" yaml:"meal_type,omitempty"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	CookTime    int      `json:"cook_time" yaml:"cook_time"` // minutes
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// CatalogFilter narrows a catalog fetch. Both fields are optional; tag and
// cook-time filtering happen here, upstream of the ingredient filter.
type CatalogFilter struct {
	Tags        []string
	MaxCookTime int
}
