package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bastian87/NutriMate-sub000/internal/llm"
	"github.com/bastian87/NutriMate-sub000/internal/profile"
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// ErrNoPreferences is returned when a user has no stored profile; the engine
// cannot compute a calorie target without one.
var ErrNoPreferences = errors.New("no preferences found for user")

// ErrInsufficientRecipes is returned by single-meal regeneration when no
// eligible recipe remains for the requested meal type.
var ErrInsufficientRecipes = errors.New("insufficient recipes for this meal type")

// PreferenceSource yields a user's stored profile and constraints.
// A (nil, nil) result means no preferences exist.
type PreferenceSource interface {
	Get(ctx context.Context, userID string) (*profile.Preferences, error)
}

// Catalog yields recipe candidates, with tag and cook-time filtering applied
// at the source.
type Catalog interface {
	ListCatalog(ctx context.Context, filter recipe.CatalogFilter) ([]recipe.Recipe, error)
}

// PlanStore persists generated plans.
type PlanStore interface {
	Save(ctx context.Context, plan *MealPlan) error
}

// Planner generates weekly meal plans and single-meal replacements.
type Planner struct {
	prefs   PreferenceSource
	catalog Catalog
	plans   PlanStore
	textGen llm.TextGenerator // optional; nil disables summaries
}

// NewPlanner creates a new Planner instance. textGen may be nil.
func NewPlanner(prefs PreferenceSource, catalog Catalog, plans PlanStore, textGen llm.TextGenerator) *Planner {
	return &Planner{
		prefs:   prefs,
		catalog: catalog,
		plans:   plans,
		textGen: textGen,
	}
}

// activeSlots returns the meal slots of a day in assembly order.
func activeSlots(includeSnacks bool) []recipe.MealType {
	slots := []recipe.MealType{recipe.MealBreakfast, recipe.MealLunch, recipe.MealDinner}
	if includeSnacks {
		slots = append(slots, recipe.MealSnack)
	}
	return slots
}

// GenerateWeeklyPlan runs the full pipeline: calorie target, per-slot budget,
// candidate filtering, day-by-day selection, persistence. customDistribution
// may be nil to use the defaults; a non-nil one is trusted as-is (validate
// with ValidateDistribution before calling).
//
// Slots with no eligible candidate are left unfilled; bulk generation is
// best-effort by design.
func (p *Planner) GenerateWeeklyPlan(ctx context.Context, userID string, customDistribution map[recipe.MealType]float64) (*MealPlan, error) {
	prefs, err := p.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	target, err := CalorieTarget(prefs.Profile)
	if err != nil {
		return nil, err
	}

	dist := customDistribution
	if dist == nil {
		dist = DefaultDistribution(prefs.Constraints.IncludeSnacks)
	}
	budgets := AllocateBudget(target, dist)

	catalog, err := p.catalog.ListCatalog(ctx, recipe.CatalogFilter{
		Tags:        prefs.Constraints.DietaryPreferences,
		MaxCookTime: prefs.Constraints.MaxPrepTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe catalog: %w", err)
	}

	eligible := FilterCandidates(catalog, prefs.Constraints)
	slots := activeSlots(prefs.Constraints.IncludeSnacks)
	used := newUsageTracker()

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	plan := &MealPlan{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       fmt.Sprintf("Weekly plan %s", start.Format("Jan 2, 2006")),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, planDays-1),
		SlotsTotal: planDays * len(slots),
		CreatedAt:  now,
	}

	for day := 1; day <= planDays; day++ {
		for _, mealType := range slots {
			pick := selectRecipe(budgets[mealType], mealType, eligible, used)
			if pick == nil {
				continue // no eligible candidate; leave the slot unfilled
			}
			plan.Entries = append(plan.Entries, MealAssignment{
				Day:         day,
				MealType:    mealType,
				RecipeID:    pick.ID,
				RecipeTitle: pick.Title,
				Calories:    pick.Calories,
			})
		}
	}

	p.summarize(ctx, plan, target)

	if err := p.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}
	return plan, nil
}

// RegenerateMeal picks a replacement recipe for a single slot, excluding
// recipes already used elsewhere in the current plan. Unlike full-week
// assembly this is user-initiated, so an empty pool is an error.
func (p *Planner) RegenerateMeal(ctx context.Context, userID string, mealType recipe.MealType, targetCalories int, excludedRecipeIDs []string) (*recipe.Recipe, error) {
	prefs, err := p.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := p.catalog.ListCatalog(ctx, recipe.CatalogFilter{
		Tags:        prefs.Constraints.DietaryPreferences,
		MaxCookTime: prefs.Constraints.MaxPrepTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe catalog: %w", err)
	}

	eligible := FilterCandidates(catalog, prefs.Constraints)

	excluded := make(map[string]struct{}, len(excludedRecipeIDs))
	for _, id := range excludedRecipeIDs {
		excluded[id] = struct{}{}
	}

	pool := make([]recipe.Recipe, 0, len(eligible))
	for _, rec := range eligible {
		if rec.MealType != mealType {
			continue
		}
		if _, skip := excluded[rec.ID]; skip {
			continue
		}
		pool = append(pool, rec)
	}

	pick := closestMatch(targetCalories, pool)
	if pick == nil {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientRecipes, mealType)
	}
	return pick, nil
}

func (p *Planner) loadPreferences(ctx context.Context, userID string) (*profile.Preferences, error) {
	prefs, err := p.prefs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}
	if prefs == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPreferences, userID)
	}
	return prefs, nil
}

// summarize asks the text generator for a short human summary of the plan.
// Summaries are cosmetic: failures are logged and never fail the generation.
func (p *Planner) summarize(ctx context.Context, plan *MealPlan, calorieTarget int) {
	if p.textGen == nil {
		return
	}
	summary, err := p.textGen.GenerateContent(ctx, buildSummaryPrompt(plan, calorieTarget))
	if err != nil {
		log.Printf("Warning: failed to generate plan summary: %v", err)
		return
	}
	plan.Summary = summary
}
