package planner

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bastian87/NutriMate-sub000/internal/recipe"
)

// PlanRepository is a database-backed repository for meal plans.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{db: d}
}

// Save inserts a plan and its entries in one transaction.
func (r *PlanRepository) Save(ctx context.Context, plan *MealPlan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := sq.Insert("meal_plans").
		Columns("id", "user_id", "name", "summary", "start_date", "end_date", "created_at").
		Values(plan.ID, plan.UserID, plan.Name, plan.Summary, plan.StartDate, plan.EndDate, plan.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build plan insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert plan %s: %w", plan.ID, err)
	}

	for _, entry := range plan.Entries {
		query, args, err := sq.Insert("plan_entries").
			Columns("plan_id", "day_number", "meal_type", "recipe_id", "recipe_title", "calories").
			Values(plan.ID, entry.Day, string(entry.MealType), entry.RecipeID, entry.RecipeTitle, entry.Calories).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build entry insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert entry for day %d %s: %w", entry.Day, entry.MealType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}
	return nil
}

// Get retrieves a plan with its entries. Returns (nil, nil) when not found.
func (r *PlanRepository) Get(ctx context.Context, planID string) (*MealPlan, error) {
	query, args, err := sq.Select("id", "user_id", "name", "summary", "start_date", "end_date", "created_at").
		From("meal_plans").
		Where(sq.Eq{"id": planID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build plan query: %w", err)
	}

	var plan MealPlan
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Summary, &plan.StartDate, &plan.EndDate, &plan.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Plan not found
		}
		return nil, fmt.Errorf("failed to get plan %s: %w", planID, err)
	}

	entries, slotTypes, err := r.loadEntries(ctx, planID)
	if err != nil {
		return nil, err
	}
	plan.Entries = entries
	plan.SlotsTotal = planDays * slotTypes

	return &plan, nil
}

// ListRecentByUser retrieves the N most recent plans for a user, without
// entries.
func (r *PlanRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]MealPlan, error) {
	query, args, err := sq.Select("id", "user_id", "name", "summary", "start_date", "end_date", "created_at").
		From("meal_plans").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans for user %s: %w", userID, err)
	}
	defer rows.Close()

	var plans []MealPlan
	for rows.Next() {
		var plan MealPlan
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Summary, &plan.StartDate, &plan.EndDate, &plan.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plan rows: %w", err)
	}
	return plans, nil
}

// loadEntries returns the entries of a plan in day/slot order, along with the
// number of distinct meal types seen (used to reconstruct SlotsTotal).
func (r *PlanRepository) loadEntries(ctx context.Context, planID string) ([]MealAssignment, int, error) {
	query, args, err := sq.Select("day_number", "meal_type", "recipe_id", "recipe_title", "calories").
		From("plan_entries").
		Where(sq.Eq{"plan_id": planID}).
		OrderBy("day_number", `CASE meal_type
			WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1
			WHEN 'dinner' THEN 2 ELSE 3 END`).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build entries query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load entries for plan %s: %w", planID, err)
	}
	defer rows.Close()

	var entries []MealAssignment
	seenTypes := make(map[recipe.MealType]struct{})
	for rows.Next() {
		var entry MealAssignment
		var mealType string
		if err := rows.Scan(&entry.Day, &mealType, &entry.RecipeID, &entry.RecipeTitle, &entry.Calories); err != nil {
			return nil, 0, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entry.MealType = recipe.MealType(mealType)
		seenTypes[entry.MealType] = struct{}{}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate entry rows: %w", err)
	}
	return entries, len(seenTypes), nil
}
