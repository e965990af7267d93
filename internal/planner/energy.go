package planner

import (
	"fmt"
	"math"

	"github.com/bastian87/NutriMate-sub000/internal/profile"
)

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels.
var activityMultipliers = map[profile.ActivityLevel]float64{
	profile.ActivitySedentary:  1.2,
	profile.ActivityLight:      1.375,
	profile.ActivityModerate:   1.55,
	profile.ActivityActive:     1.725,
	profile.ActivityVeryActive: 1.9,
}

// goalAdjustments maps health goals to the factor applied to TDEE:
// a 20% deficit for weight loss, a 10% surplus for muscle gain, TDEE
// unchanged otherwise.
var goalAdjustments = map[profile.Goal]float64{
	profile.GoalWeightLoss:        0.8,
	profile.GoalMuscleGain:        1.1,
	profile.GoalMaintenance:       1.0,
	profile.GoalHealthImprovement: 1.0,
	profile.GoalEnergyBoost:       1.0,
}

// UnknownEnumError reports a profile field whose value is outside the known
// set. The estimator refuses to guess a multiplier rather than produce a
// misleading calorie target.
type UnknownEnumError struct {
	Field string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unrecognized %s %q", e.Field, e.Value)
}

// BMR computes the Basal Metabolic Rate via Mifflin-St Jeor. Sex values
// other than "male" use the female offset; this matches the original
// behavior and is intentional.
func BMR(p profile.UserProfile) float64 {
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == profile.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// TDEE computes the Total Daily Energy Expenditure from the profile.
func TDEE(p profile.UserProfile) (float64, error) {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return 0, &UnknownEnumError{Field: "activity_level", Value: string(p.ActivityLevel)}
	}
	return BMR(p) * mult, nil
}

// CalorieTarget derives the daily calorie budget from the profile and its
// health goal, rounded to the nearest integer.
func CalorieTarget(p profile.UserProfile) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	tdee, err := TDEE(p)
	if err != nil {
		return 0, err
	}

	adj, ok := goalAdjustments[p.Goal]
	if !ok {
		return 0, &UnknownEnumError{Field: "goal", Value: string(p.Goal)}
	}

	return int(math.Round(tdee * adj)), nil
}
