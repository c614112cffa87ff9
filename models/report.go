package models

// Report payload types. Amounts are float64 here and only here: the
// aggregation engine works in decimals and converts at this boundary.

type BudgetVsActual struct {
	Labels   []string  `json:"labels"`
	Budgeted []float64 `json:"budgeted"`
	Actual   []float64 `json:"actual"`
}

type AssetsVsLiabilities struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
}

// SummaryLineGraph plots expenses against income per month. Income is the
// single monthly figure repeated once per label.
type SummaryLineGraph struct {
	Labels   []string  `json:"labels"`
	Expenses []float64 `json:"expenses"`
	Income   []float64 `json:"income"`
}

type ComprehensiveReport struct {
	IncomeBySource      map[string]float64  `json:"income_by_source"`
	ExpensesByMonth     map[string]float64  `json:"expenses_by_month"`
	BudgetVsActual      BudgetVsActual      `json:"budget_vs_actual"`
	InvestmentsByType   map[string]float64  `json:"investments_by_type"`
	AssetsVsLiabilities AssetsVsLiabilities `json:"assets_vs_liabilities"`
	SummaryLineGraph    SummaryLineGraph    `json:"summary_line_graph"`
}

// DashboardSummary backs the dashboard view.
type DashboardSummary struct {
	MonthlyIncome       float64            `json:"monthly_income"`
	TotalSpentThisMonth float64            `json:"total_spent_this_month"`
	NetBalance          float64            `json:"net_balance"`
	BudgetUsedPercent   float64            `json:"budget_used_percent"`
	Goals               []FinancialGoal    `json:"goals"`
	RecentExpenses      []Expense          `json:"recent_expenses"`
	OverspentCategories []string           `json:"overspent_categories"`
	WeeklyExpenseLabels []string           `json:"weekly_expense_labels"`
	WeeklyExpenses      map[string]float64 `json:"weekly_expenses"`
	ExpenseByCategory   map[string]float64 `json:"expense_by_category"`
}
