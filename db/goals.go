package db

import (
	"context"
	"fmt"

	"finance-tracker/api/models"
)

func CreateGoal(ctx context.Context, g *models.FinancialGoal) error {
	query := `
		INSERT INTO financial_goals (user_id, goal_name, target_amount, goal_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := DB.QueryRowContext(ctx, query, g.UserID, g.GoalName, g.TargetAmount, g.GoalType).
		Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating goal for user %d: %w", g.UserID, err)
	}
	return nil
}

func ListGoals(ctx context.Context, userID int64) ([]models.FinancialGoal, error) {
	query := `
		SELECT id, user_id, goal_name, target_amount, goal_type, created_at
		FROM financial_goals
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing goals for user %d: %w", userID, err)
	}
	defer rows.Close()

	goals := []models.FinancialGoal{}
	for rows.Next() {
		var g models.FinancialGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.GoalName, &g.TargetAmount, &g.GoalType, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

// DeleteGoal only ever touches rows owned by userID; deleting someone
// else's goal id silently affects nothing.
func DeleteGoal(ctx context.Context, goalID, userID int64) error {
	query := `
		DELETE FROM financial_goals
		WHERE id = $1 AND user_id = $2
	`
	if _, err := DB.ExecContext(ctx, query, goalID, userID); err != nil {
		return fmt.Errorf("error deleting goal %d for user %d: %w", goalID, userID, err)
	}
	return nil
}
