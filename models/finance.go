package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the singleton monthly-income row, at most one per user.
type Income struct {
	UserID        int64           `json:"user_id"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	Currency      string          `json:"currency"`
}

type OtherIncome struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	SourceName string          `json:"source_name"`
	Amount     decimal.Decimal `json:"amount"`
}

// Budget is the singleton total-monthly-budget row, at most one per user.
type Budget struct {
	UserID             int64           `json:"user_id"`
	TotalMonthlyBudget decimal.Decimal `json:"total_monthly_budget"`
}

type CategoryBudget struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
}

type Expense struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}

type Investment struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Name           string          `json:"investment_name"`
	AmountInvested decimal.Decimal `json:"amount_invested"`
	Type           string          `json:"investment_type"`
	Date           time.Time       `json:"investment_date"`
}

type Asset struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"user_id"`
	Name   string          `json:"asset_name"`
	Value  decimal.Decimal `json:"value"`
}

type Liability struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Name       string          `json:"liability_name"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
}

type FinancialGoal struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	GoalName     string          `json:"goal_name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	GoalType     string          `json:"goal_type"`
	CreatedAt    time.Time       `json:"created_at"`
}
