package db

import (
	"context"
	"database/sql"
	"fmt"

	"finance-tracker/api/models"
)

func UpsertBudget(ctx context.Context, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, total_monthly_budget)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET total_monthly_budget = EXCLUDED.total_monthly_budget
	`
	_, err := DB.ExecContext(ctx, query, budget.UserID, budget.TotalMonthlyBudget)
	if err != nil {
		return fmt.Errorf("error upserting budget for user %d: %w", budget.UserID, err)
	}
	return nil
}

// GetBudget returns nil when the user has no budget row.
func GetBudget(ctx context.Context, userID int64) (*models.Budget, error) {
	query := `
		SELECT user_id, total_monthly_budget
		FROM budgets
		WHERE user_id = $1
	`
	budget := &models.Budget{}
	err := DB.QueryRowContext(ctx, query, userID).Scan(&budget.UserID, &budget.TotalMonthlyBudget)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting budget for user %d: %w", userID, err)
	}
	return budget, nil
}

// ReplaceCategoryBudgets swaps the user's per-category budgets for the
// submitted set inside one transaction.
func ReplaceCategoryBudgets(ctx context.Context, userID int64, budgets []models.CategoryBudget) (err error) {
	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM category_budgets WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing category budgets for user %d: %w", userID, err)
	}

	for _, b := range budgets {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO category_budgets (user_id, category_name, amount) VALUES ($1, $2, $3)`,
			userID, b.CategoryName, b.Amount)
		if err != nil {
			return fmt.Errorf("error inserting category budget %q for user %d: %w", b.CategoryName, userID, err)
		}
	}
	return nil
}

func ListCategoryBudgets(ctx context.Context, userID int64) ([]models.CategoryBudget, error) {
	query := `
		SELECT id, user_id, category_name, amount
		FROM category_budgets
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing category budgets for user %d: %w", userID, err)
	}
	defer rows.Close()

	budgets := []models.CategoryBudget{}
	for rows.Next() {
		var b models.CategoryBudget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryName, &b.Amount); err != nil {
			return nil, fmt.Errorf("error scanning category budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return budgets, nil
}
