package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bastian87/NutriMate-sub000/internal/metrics"
	"github.com/bastian87/NutriMate-sub000/internal/notify"
	"github.com/bastian87/NutriMate-sub000/internal/planner"
	"github.com/bastian87/NutriMate-sub000/internal/profile"
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// App holds the application's dependencies.
type App struct {
	mealPlanner  *planner.Planner
	recipeRepo   *recipe.Repository
	profileRepo  *profile.Repository
	metricsStore *metrics.Store
	notifier     *notify.TelegramNotifier // optional
}

// NewApp creates and initializes a new App instance. notifier may be nil.
func NewApp(
	mealPlanner *planner.Planner,
	recipeRepo *recipe.Repository,
	profileRepo *profile.Repository,
	metricsStore *metrics.Store,
	notifier *notify.TelegramNotifier,
) *App {
	return &App{
		mealPlanner:  mealPlanner,
		recipeRepo:   recipeRepo,
		profileRepo:  profileRepo,
		metricsStore: metricsStore,
		notifier:     notifier,
	}
}

// GenerateWeeklyPlan runs the full pipeline for a user, records a generation
// metric and fires the optional notification.
func (a *App) GenerateWeeklyPlan(ctx context.Context, userID string, customDistribution map[recipe.MealType]float64) (*planner.MealPlan, error) {
	start := time.Now()

	plan, err := a.mealPlanner.GenerateWeeklyPlan(ctx, userID, customDistribution)
	if err != nil {
		return nil, err
	}

	if err := a.metricsStore.Record(metrics.GenerationMetric{
		UserID:      userID,
		DurationMS:  time.Since(start).Milliseconds(),
		SlotsTotal:  plan.SlotsTotal,
		SlotsFilled: len(plan.Entries),
	}); err != nil {
		log.Printf("Warning: failed to record generation metric: %v", err)
	}

	if a.notifier != nil {
		if err := a.notifier.PlanReady(plan.Name, len(plan.Entries), plan.SlotsTotal); err != nil {
			log.Printf("Warning: failed to send plan notification: %v", err)
		}
	}

	return plan, nil
}

// RegenerateMeal picks a replacement recipe for a single slot.
func (a *App) RegenerateMeal(ctx context.Context, userID string, mealType recipe.MealType, targetCalories int, excludedRecipeIDs []string) (*recipe.Recipe, error) {
	return a.mealPlanner.RegenerateMeal(ctx, userID, mealType, targetCalories, excludedRecipeIDs)
}

// SeedCatalog loads a YAML seed file into the recipe catalog.
func (a *App) SeedCatalog(ctx context.Context, path string) error {
	recipes, err := recipe.LoadCatalogFile(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog file: %w", err)
	}

	for _, rec := range recipes {
		if err := a.recipeRepo.Save(ctx, rec); err != nil {
			return fmt.Errorf("failed to save recipe %q: %w", rec.Title, err)
		}
		log.Printf("Saved recipe '%s' (%d kcal, %s)", rec.Title, rec.Calories, rec.MealType)
	}

	count, err := a.recipeRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	fmt.Printf("Seeded %d recipes; catalog now holds %d.\n", len(recipes), count)
	return nil
}

// ImportRecipeHTML extracts a recipe from an HTML file and saves it.
func (a *App) ImportRecipeHTML(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := recipe.ImportHTML(f)
	if err != nil {
		return fmt.Errorf("failed to extract recipe from %s: %w", path, err)
	}

	if err := a.recipeRepo.Save(ctx, *rec); err != nil {
		return fmt.Errorf("failed to save imported recipe: %w", err)
	}

	fmt.Printf("Imported '%s' (%d kcal) as %s.\n", rec.Title, rec.Calories, rec.ID)
	return nil
}

// SetPreferences reads a preferences JSON file and stores it for the user.
func (a *App) SetPreferences(ctx context.Context, userID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var prefs profile.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("failed to parse preferences JSON: %w", err)
	}
	if err := prefs.Profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	if err := a.profileRepo.Save(ctx, userID, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	fmt.Printf("Stored preferences for user %s.\n", userID)
	return nil
}

// PrintPlan renders a plan for the CLI.
func (a *App) PrintPlan(plan *planner.MealPlan) {
	fmt.Printf("\n=== %s (%s – %s) ===\n",
		plan.Name,
		plan.StartDate.Format("Mon Jan 2"),
		plan.EndDate.Format("Mon Jan 2"),
	)
	day := 0
	for _, entry := range plan.Entries {
		if entry.Day != day {
			day = entry.Day
			fmt.Printf("\nDay %d\n", day)
		}
		fmt.Printf("  %-10s %s (%d kcal)\n", entry.MealType, entry.RecipeTitle, entry.Calories)
	}
	if unfilled := plan.UnfilledSlots(); unfilled > 0 {
		fmt.Printf("\n%d slot(s) had no eligible recipe.\n", unfilled)
	}
	if plan.Summary != "" {
		fmt.Printf("\n%s\n", plan.Summary)
	}
}
