package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bastian87/NutriMate-sub000/internal/planner"
	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// PlanService is the engine surface the API exposes.
type PlanService interface {
	GenerateWeeklyPlan(ctx context.Context, userID string, customDistribution map[recipe.MealType]float64) (*planner.MealPlan, error)
	RegenerateMeal(ctx context.Context, userID string, mealType recipe.MealType, targetCalories int, excludedRecipeIDs []string) (*recipe.Recipe, error)
}

// CatalogLister serves the read-only recipe listing.
type CatalogLister interface {
	ListCatalog(ctx context.Context, filter recipe.CatalogFilter) ([]recipe.Recipe, error)
}

// Server is the HTTP surface of the meal-plan engine.
type Server struct {
	service PlanService
	catalog CatalogLister
	secret  []byte
}

// NewServer creates a new Server. secret signs/verifies API bearer tokens.
func NewServer(service PlanService, catalog CatalogLister, secret []byte) *Server {
	return &Server{service: service, catalog: catalog, secret: secret}
}

// Routes builds the handler tree.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/plans/generate", s.withAuth(s.handleGenerate))
	mux.HandleFunc("/meals/regenerate", s.withAuth(s.handleRegenerate))
	mux.HandleFunc("/recipes", s.handleRecipes)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GenerateRequest is the body of POST /plans/generate.
type GenerateRequest struct {
	// Optional; fractions per meal type, must sum to ~1.0 when present.
	CustomDistribution map[string]float64 `json:"custom_distribution,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
	}

	var dist map[recipe.MealType]float64
	if len(req.CustomDistribution) > 0 {
		dist = make(map[recipe.MealType]float64, len(req.CustomDistribution))
		for key, fraction := range req.CustomDistribution {
			mealType, err := recipe.ParseMealType(key)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			dist[mealType] = fraction
		}
		if err := planner.ValidateDistribution(dist); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	plan, err := s.service.GenerateWeeklyPlan(r.Context(), userID, dist)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

// RegenerateRequest is the body of POST /meals/regenerate.
type RegenerateRequest struct {
	MealType          string   `json:"meal_type"`
	TargetCalories    int      `json:"target_calories"`
	ExcludedRecipeIDs []string `json:"excluded_recipe_ids,omitempty"`
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	mealType, err := recipe.ParseMealType(req.MealType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.TargetCalories <= 0 {
		http.Error(w, "target_calories must be positive", http.StatusBadRequest)
		return
	}

	pick, err := s.service.RegenerateMeal(r.Context(), userID, mealType, req.TargetCalories, req.ExcludedRecipeIDs)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pick)
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := recipe.CatalogFilter{}
	if tags := r.URL.Query().Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}
	if v := r.URL.Query().Get("max_cook_time"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 0 {
			http.Error(w, "max_cook_time must be a non-negative integer", http.StatusBadRequest)
			return
		}
		filter.MaxCookTime = minutes
	}

	recipes, err := s.catalog.ListCatalog(r.Context(), filter)
	if err != nil {
		http.Error(w, "failed to list recipes", http.StatusInternalServerError)
		return
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

// writeEngineError maps engine errors to HTTP statuses.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var enumErr *planner.UnknownEnumError
	switch {
	case errors.Is(err, planner.ErrNoPreferences):
		http.Error(w, "no preferences found for user", http.StatusNotFound)
	case errors.Is(err, planner.ErrInsufficientRecipes):
		http.Error(w, "insufficient recipes for this meal type", http.StatusConflict)
	case errors.As(err, &enumErr):
		http.Error(w, enumErr.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
