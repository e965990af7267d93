package profile

import (
	"fmt"
	"strings"
)

// Sex is the biological sex category used by the BMR formula.
// Only "male" and "female" affect the formula; anything else is treated
// as "female" by the estimator.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel describes habitual physical activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the user's health goal driving the calorie target.
type Goal string

const (
	GoalWeightLoss        Goal = "weight_loss"
	GoalMuscleGain        Goal = "muscle_gain"
	GoalMaintenance       Goal = "maintenance"
	GoalHealthImprovement Goal = "health_improvement"
	GoalEnergyBoost       Goal = "energy_boost"
)

// UserProfile holds the physiological data needed to estimate energy needs.
type UserProfile struct {
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	HeightCM      float64       `json:"height_cm"`
	WeightKG      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// Validate checks the numeric invariants of the profile. Enum values are
// validated by the estimator, which owns the known sets.
func (p UserProfile) Validate() error {
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative, got %d", p.Age)
	}
	if p.HeightCM <= 0 {
		return fmt.Errorf("height must be positive, got %.1f", p.HeightCM)
	}
	if p.WeightKG <= 0 {
		return fmt.Errorf("weight must be positive, got %.1f", p.WeightKG)
	}
	return nil
}

// DietaryConstraints captures what the user will not (or cannot) eat and
// how the week should be shaped.
type DietaryConstraints struct {
	IncludeSnacks       bool     `json:"include_snacks"`
	ExcludedIngredients []string `json:"excluded_ingredients"`
	Allergies           []string `json:"allergies"`
	Intolerances        []string `json:"intolerances"`
	DietaryPreferences  []string `json:"dietary_preferences"`
	MaxPrepTime         int      `json:"max_prep_time"`
}

// ExclusionSet returns the case-folded union of excluded ingredients,
// allergies and intolerances for membership checks.
func (c DietaryConstraints) ExclusionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.ExcludedIngredients)+len(c.Allergies)+len(c.Intolerances))
	for _, group := range [][]string{c.ExcludedIngredients, c.Allergies, c.Intolerances} {
		for _, name := range group {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			set[name] = struct{}{}
		}
	}
	return set
}

// Preferences bundles everything the engine needs to know about a user.
type Preferences struct {
	Profile     UserProfile        `json:"profile"`
	Constraints DietaryConstraints `json:"constraints"`
}
