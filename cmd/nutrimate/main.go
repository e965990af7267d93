package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bastian87/NutriMate-sub000/internal/app"
	"github.com/bastian87/NutriMate-sub000/internal/config"
	"github.com/bastian87/NutriMate-sub000/internal/database"
	"github.com/bastian87/NutriMate-sub000/internal/llm"
	"github.com/bastian87/NutriMate-sub000/internal/metrics"
	"github.com/bastian87/NutriMate-sub000/internal/notify"
	"github.com/bastian87/NutriMate-sub000/internal/planner"
	"github.com/bastian87/NutriMate-sub000/internal/profile"
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	recipeRepo := recipe.NewRepository(db.SQL)
	profileRepo := profile.NewRepository(db.SQL)
	planRepo := planner.NewPlanRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	// Summaries are optional; the planner skips them without a generator.
	var textGen llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		textGen = geminiClient
	}

	var notifier *notify.TelegramNotifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		notifier, err = notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram notifier: %v", err)
		}
	}

	mealPlanner := planner.NewPlanner(profileRepo, recipeRepo, planRepo, textGen)
	application := app.NewApp(mealPlanner, recipeRepo, profileRepo, metricsStore, notifier)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
		file := seedCmd.String("file", "catalog.yaml", "Path to the YAML catalog file")
		seedCmd.Parse(os.Args[2:])

		if err := application.SeedCatalog(ctx, *file); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "import-html":
		importCmd := flag.NewFlagSet("import-html", flag.ExitOnError)
		file := importCmd.String("file", "", "Path to the recipe HTML file")
		importCmd.Parse(os.Args[2:])

		if *file == "" {
			log.Fatal("import-html requires -file")
		}
		if err := application.ImportRecipeHTML(ctx, *file); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
	case "set-preferences":
		prefsCmd := flag.NewFlagSet("set-preferences", flag.ExitOnError)
		user := prefsCmd.String("user", "", "User id")
		file := prefsCmd.String("file", "", "Path to the preferences JSON file")
		prefsCmd.Parse(os.Args[2:])

		if *user == "" || *file == "" {
			log.Fatal("set-preferences requires -user and -file")
		}
		if err := application.SetPreferences(ctx, *user, *file); err != nil {
			log.Fatalf("Failed to store preferences: %v", err)
		}
	case "generate":
		genCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		user := genCmd.String("user", "", "User id")
		genCmd.Parse(os.Args[2:])

		if *user == "" {
			log.Fatal("generate requires -user")
		}
		plan, err := application.GenerateWeeklyPlan(ctx, *user, nil)
		if err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
		application.PrintPlan(plan)
	case "regenerate":
		regenCmd := flag.NewFlagSet("regenerate", flag.ExitOnError)
		user := regenCmd.String("user", "", "User id")
		mealTypeArg := regenCmd.String("meal", "", "Meal type (breakfast, lunch, dinner, snack)")
		target := regenCmd.Int("target", 0, "Target calories for the slot")
		excluded := regenCmd.String("exclude", "", "Comma-separated recipe ids to skip")
		regenCmd.Parse(os.Args[2:])

		if *user == "" || *mealTypeArg == "" || *target <= 0 {
			log.Fatal("regenerate requires -user, -meal and a positive -target")
		}
		mealType, err := recipe.ParseMealType(*mealTypeArg)
		if err != nil {
			log.Fatalf("Invalid meal type: %v", err)
		}
		var excludedIDs []string
		if *excluded != "" {
			excludedIDs = strings.Split(*excluded, ",")
		}

		pick, err := application.RegenerateMeal(ctx, *user, mealType, *target, excludedIDs)
		if err != nil {
			log.Fatalf("Regeneration failed: %v", err)
		}
		fmt.Printf("Replacement: %s (%d kcal, id %s)\n", pick.Title, pick.Calories, pick.ID)
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metricsStore.Cleanup(*days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: nutrimate <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed               Load recipes from a YAML catalog file")
	fmt.Println("  import-html        Extract and save a recipe from an HTML file")
	fmt.Println("  set-preferences    Store a user's profile and dietary constraints")
	fmt.Println("  generate           Generate a weekly meal plan for a user")
	fmt.Println("  regenerate         Pick a replacement recipe for a single slot")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
