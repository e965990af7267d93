package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bastian87/NutriMate-sub000/internal/app"
	"github.com/bastian87/NutriMate-sub000/internal/config"
	"github.com/bastian87/NutriMate-sub000/internal/database"
	"github.com/bastian87/NutriMate-sub000/internal/httpapi"
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
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.APITokenSecret == "" {
		log.Fatal("API_TOKEN_SECRET environment variable not set")
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

	var textGen llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
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

	server := httpapi.NewServer(application, recipeRepo, []byte(cfg.APITokenSecret))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.Routes(),
	}

	go func() {
		log.Printf("Meal plan API listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
