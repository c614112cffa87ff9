package db

import (
	"context"
	"fmt"

	"finance-tracker/api/models"
)

// ExpenseSort selects the ordering of ListExpenses.
type ExpenseSort string

const (
	SortNewestFirst   ExpenseSort = "newest"
	SortAmountHighLow ExpenseSort = "amount_high_low"
)

func CreateExpense(ctx context.Context, e *models.Expense) error {
	query := `
		INSERT INTO expenses (user_id, title, amount, category, expense_date, description, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := DB.QueryRowContext(ctx, query,
		e.UserID, e.Title, e.Amount, e.Category, e.Date, e.Description, e.PaymentMethod,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("error creating expense for user %d: %w", e.UserID, err)
	}
	return nil
}

func ListExpenses(ctx context.Context, userID int64, sort ExpenseSort) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, title, amount, category, expense_date, description, payment_method
		FROM expenses
		WHERE user_id = $1
	`
	if sort == SortAmountHighLow {
		query += ` ORDER BY amount DESC`
	} else {
		query += ` ORDER BY expense_date DESC, id DESC`
	}

	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses for user %d: %w", userID, err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Amount, &e.Category, &e.Date, &e.Description, &e.PaymentMethod)
		if err != nil {
			return nil, fmt.Errorf("error scanning expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

// DeleteExpense removes the row only when it belongs to the acting user.
// A non-existent or foreign id affects zero rows and is not an error.
func DeleteExpense(ctx context.Context, expenseID, userID int64) error {
	query := `
		DELETE FROM expenses
		WHERE id = $1 AND user_id = $2
	`
	if _, err := DB.ExecContext(ctx, query, expenseID, userID); err != nil {
		return fmt.Errorf("error deleting expense %d for user %d: %w", expenseID, userID, err)
	}
	return nil
}
