package db

import (
	"context"
	"fmt"

	"finance-tracker/api/models"
)

func CreateInvestment(ctx context.Context, inv *models.Investment) error {
	query := `
		INSERT INTO investments (user_id, investment_name, amount_invested, investment_type, investment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := DB.QueryRowContext(ctx, query,
		inv.UserID, inv.Name, inv.AmountInvested, inv.Type, inv.Date,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("error creating investment for user %d: %w", inv.UserID, err)
	}
	return nil
}

func ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, investment_name, amount_invested, investment_type, investment_date
		FROM investments
		WHERE user_id = $1
		ORDER BY investment_date DESC, id DESC
	`
	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing investments for user %d: %w", userID, err)
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.AmountInvested, &inv.Type, &inv.Date); err != nil {
			return nil, fmt.Errorf("error scanning investment: %w", err)
		}
		investments = append(investments, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return investments, nil
}

func DeleteInvestment(ctx context.Context, investmentID, userID int64) error {
	query := `
		DELETE FROM investments
		WHERE id = $1 AND user_id = $2
	`
	if _, err := DB.ExecContext(ctx, query, investmentID, userID); err != nil {
		return fmt.Errorf("error deleting investment %d for user %d: %w", investmentID, userID, err)
	}
	return nil
}
