package db

import (
	"context"
	"database/sql"
	"fmt"

	"finance-tracker/api/models"
)

// UpsertIncome writes the singleton monthly-income row; the unique
// constraint on user_id makes concurrent writers last-write-wins.
func UpsertIncome(ctx context.Context, income *models.Income) error {
	query := `
		INSERT INTO incomes (user_id, monthly_income, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET monthly_income = EXCLUDED.monthly_income, currency = EXCLUDED.currency
	`
	_, err := DB.ExecContext(ctx, query, income.UserID, income.MonthlyIncome, income.Currency)
	if err != nil {
		return fmt.Errorf("error upserting income for user %d: %w", income.UserID, err)
	}
	return nil
}

// GetIncome returns nil when the user has no income row.
func GetIncome(ctx context.Context, userID int64) (*models.Income, error) {
	query := `
		SELECT user_id, monthly_income, currency
		FROM incomes
		WHERE user_id = $1
	`
	income := &models.Income{}
	err := DB.QueryRowContext(ctx, query, userID).Scan(&income.UserID, &income.MonthlyIncome, &income.Currency)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting income for user %d: %w", userID, err)
	}
	return income, nil
}

// ReplaceOtherIncomes clears the user's extra income sources and inserts
// the submitted set, all inside one transaction so a failure mid-way
// cannot leave the list half cleared.
func ReplaceOtherIncomes(ctx context.Context, userID int64, sources []models.OtherIncome) (err error) {
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

	if _, err = tx.ExecContext(ctx, `DELETE FROM other_incomes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing other incomes for user %d: %w", userID, err)
	}

	for _, s := range sources {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO other_incomes (user_id, source_name, amount) VALUES ($1, $2, $3)`,
			userID, s.SourceName, s.Amount)
		if err != nil {
			return fmt.Errorf("error inserting other income %q for user %d: %w", s.SourceName, userID, err)
		}
	}
	return nil
}

func ListOtherIncomes(ctx context.Context, userID int64) ([]models.OtherIncome, error) {
	query := `
		SELECT id, user_id, source_name, amount
		FROM other_incomes
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing other incomes for user %d: %w", userID, err)
	}
	defer rows.Close()

	sources := []models.OtherIncome{}
	for rows.Next() {
		var s models.OtherIncome
		if err := rows.Scan(&s.ID, &s.UserID, &s.SourceName, &s.Amount); err != nil {
			return nil, fmt.Errorf("error scanning other income: %w", err)
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sources, nil
}
