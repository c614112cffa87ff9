package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/api/models"
)

const recentExpenseLimit = 5

// BuildDashboard assembles the dashboard payload from the user's raw rows.
// Expenses must arrive newest-first, the order the data layer lists them in.
func BuildDashboard(
	income *models.Income,
	budget *models.Budget,
	budgets []models.CategoryBudget,
	expenses []models.Expense,
	goals []models.FinancialGoal,
	now time.Time,
) models.DashboardSummary {
	monthlyIncome := decimal.Zero
	if income != nil {
		monthlyIncome = income.MonthlyIncome
	}
	totalBudget := decimal.Zero
	if budget != nil {
		totalBudget = budget.TotalMonthlyBudget
	}

	spent := MonthlySpend(expenses, now)

	weeklyLabels, weeklyTotals := WeeklySeries(expenses, now)
	weekly := make(map[string]float64, len(weeklyTotals))
	for label, total := range weeklyTotals {
		weekly[label], _ = total.Float64()
	}

	byCategory := map[string]float64{}
	for _, ct := range CategoryBreakdown(expenses, now) {
		byCategory[ct.Category], _ = ct.Total.Float64()
	}

	recent := expenses
	if len(recent) > recentExpenseLimit {
		recent = recent[:recentExpenseLimit]
	}

	summary := models.DashboardSummary{
		Goals:               goals,
		RecentExpenses:      recent,
		OverspentCategories: Overspent(budgets, expenses, now),
		WeeklyExpenseLabels: weeklyLabels,
		WeeklyExpenses:      weekly,
		ExpenseByCategory:   byCategory,
		BudgetUsedPercent:   BudgetUtilization(spent, totalBudget),
	}
	summary.MonthlyIncome, _ = monthlyIncome.Float64()
	summary.TotalSpentThisMonth, _ = spent.Float64()
	summary.NetBalance, _ = NetBalance(monthlyIncome, spent).Float64()
	return summary
}

// BuildComprehensiveReport assembles the six-section report payload.
func BuildComprehensiveReport(
	income *models.Income,
	otherIncomes []models.OtherIncome,
	budgets []models.CategoryBudget,
	expenses []models.Expense,
	investments []models.Investment,
	assets []models.Asset,
	liabilities []models.Liability,
	now time.Time,
) models.ComprehensiveReport {
	incomeSources := IncomeBySource(income, otherIncomes)

	series := MonthlySeries(expenses)
	byMonth := make(map[string]float64, len(series))
	labels := make([]string, 0, len(series))
	monthlyExpenses := make([]float64, 0, len(series))
	for _, mt := range series {
		total, _ := mt.Total.Float64()
		byMonth[mt.Month] = total
		labels = append(labels, mt.Month)
		monthlyExpenses = append(monthlyExpenses, total)
	}

	byType := map[string]float64{}
	for investmentType, total := range InvestmentsByType(investments) {
		byType[investmentType], _ = total.Float64()
	}

	incomeLine := make([]float64, len(labels))
	for i := range incomeLine {
		incomeLine[i] = incomeSources[mainIncomeLabel]
	}

	report := models.ComprehensiveReport{
		IncomeBySource:    incomeSources,
		ExpensesByMonth:   byMonth,
		BudgetVsActual:    BudgetVsActual(budgets, expenses, now),
		InvestmentsByType: byType,
		SummaryLineGraph: models.SummaryLineGraph{
			Labels:   labels,
			Expenses: monthlyExpenses,
			Income:   incomeLine,
		},
	}
	report.AssetsVsLiabilities.Assets, _ = TotalAssets(assets).Float64()
	report.AssetsVsLiabilities.Liabilities, _ = TotalLiabilities(liabilities).Float64()
	return report
}
