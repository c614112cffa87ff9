// Package reports derives dashboard and report figures from raw per-user
// rows. All currency math stays in decimals; callers get floats only in
// the assembled payload types.
package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/api/models"
)

// MonthlySeriesLimit is how many trailing year-months the multi-month
// series reports.
const MonthlySeriesLimit = 6

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type MonthTotal struct {
	Month string // "2006-01"
	Total decimal.Decimal
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// inCurrentMonth matches by calendar month number only, not month+year.
// The dashboard has always read this way; callers rely on it.
func inCurrentMonth(d, now time.Time) bool {
	return d.Month() == now.Month()
}

// MonthlySpend sums expense amounts falling in the current calendar month.
func MonthlySpend(expenses []models.Expense, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if inCurrentMonth(e.Date, now) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// NetBalance is monthly income minus monthly spend; it may be negative.
func NetBalance(income, spent decimal.Decimal) decimal.Decimal {
	return income.Sub(spent)
}

// BudgetUtilization is spend over budget as a percentage, 0 when the
// budget is zero.
func BudgetUtilization(spent, budget decimal.Decimal) float64 {
	if budget.IsZero() {
		return 0
	}
	pct, _ := spent.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// WeeklySeries buckets expenses from the trailing 7 days (inclusive of
// today) by upper-cased three-letter day name. Bucketing is by label, not
// date: entries sharing a weekday are merged. Labels come back in
// chronological order ending at today's weekday, only for days with spend.
func WeeklySeries(expenses []models.Expense, now time.Time) ([]string, map[string]decimal.Decimal) {
	cutoff := dateOnly(now).AddDate(0, 0, -6)
	totals := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if dateOnly(e.Date).Before(cutoff) {
			continue
		}
		label := strings.ToUpper(e.Date.Format("Mon"))
		totals[label] = totals[label].Add(e.Amount)
	}

	labels := []string{}
	for d := cutoff; !d.After(dateOnly(now)); d = d.AddDate(0, 0, 1) {
		label := strings.ToUpper(d.Format("Mon"))
		if _, ok := totals[label]; ok {
			labels = append(labels, label)
		}
	}
	return labels, totals
}

// CategoryBreakdown sums current-month expenses per category, sorted
// descending by total (name ascending on ties, for stable output).
func CategoryBreakdown(expenses []models.Expense, now time.Time) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if inCurrentMonth(e.Date, now) {
			totals[e.Category] = totals[e.Category].Add(e.Amount)
		}
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// Overspent lists categories whose current-month spend strictly exceeds
// their category budget. Categories without a budget are never flagged.
func Overspent(budgets []models.CategoryBudget, expenses []models.Expense, now time.Time) []string {
	if len(budgets) == 0 {
		return []string{}
	}
	budgeted := map[string]decimal.Decimal{}
	for _, b := range budgets {
		budgeted[b.CategoryName] = b.Amount
	}

	overspent := []string{}
	for _, ct := range CategoryBreakdown(expenses, now) {
		if limit, ok := budgeted[ct.Category]; ok && ct.Total.GreaterThan(limit) {
			overspent = append(overspent, ct.Category)
		}
	}
	return overspent
}

// MonthlySeries sums expenses per year-month, keeps the most recent
// MonthlySeriesLimit months and returns them in ascending chronological
// order.
func MonthlySeries(expenses []models.Expense) []MonthTotal {
	totals := map[string]decimal.Decimal{}
	for _, e := range expenses {
		month := e.Date.Format("2006-01")
		totals[month] = totals[month].Add(e.Amount)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	// Pick the newest months first, then flip to ascending for output.
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if len(months) > MonthlySeriesLimit {
		months = months[:MonthlySeriesLimit]
	}
	sort.Strings(months)

	series := make([]MonthTotal, 0, len(months))
	for _, month := range months {
		series = append(series, MonthTotal{Month: month, Total: totals[month]})
	}
	return series
}

// BudgetVsActual aligns budgeted and actual spend over the sorted union of
// category names appearing in either source, defaulting missing sides to 0.
func BudgetVsActual(budgets []models.CategoryBudget, expenses []models.Expense, now time.Time) models.BudgetVsActual {
	budgeted := map[string]decimal.Decimal{}
	for _, b := range budgets {
		budgeted[b.CategoryName] = b.Amount
	}
	actual := map[string]decimal.Decimal{}
	for _, ct := range CategoryBreakdown(expenses, now) {
		actual[ct.Category] = ct.Total
	}

	seen := map[string]bool{}
	labels := []string{}
	for category := range budgeted {
		if !seen[category] {
			seen[category] = true
			labels = append(labels, category)
		}
	}
	for category := range actual {
		if !seen[category] {
			seen[category] = true
			labels = append(labels, category)
		}
	}
	sort.Strings(labels)

	out := models.BudgetVsActual{
		Labels:   labels,
		Budgeted: make([]float64, len(labels)),
		Actual:   make([]float64, len(labels)),
	}
	for i, category := range labels {
		out.Budgeted[i], _ = budgeted[category].Float64()
		out.Actual[i], _ = actual[category].Float64()
	}
	return out
}

// NetWorth is total asset value minus total amount owed; 0 for an empty
// portfolio.
func NetWorth(assets []models.Asset, liabilities []models.Liability) decimal.Decimal {
	return TotalAssets(assets).Sub(TotalLiabilities(liabilities))
}

func TotalAssets(assets []models.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Value)
	}
	return total
}

func TotalLiabilities(liabilities []models.Liability) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		total = total.Add(l.AmountOwed)
	}
	return total
}

// InvestmentsByType sums invested amounts per investment type.
func InvestmentsByType(investments []models.Investment) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, inv := range investments {
		totals[inv.Type] = totals[inv.Type].Add(inv.AmountInvested)
	}
	return totals
}

// mainIncomeLabel keys the primary salary in the income-by-source map.
const mainIncomeLabel = "Salary / Main"

// IncomeBySource maps income labels to amounts, with the monthly income
// under the fixed main label (0 when no income row exists).
func IncomeBySource(income *models.Income, others []models.OtherIncome) map[string]float64 {
	sources := map[string]float64{mainIncomeLabel: 0}
	if income != nil {
		sources[mainIncomeLabel], _ = income.MonthlyIncome.Float64()
	}
	for _, o := range others {
		sources[o.SourceName], _ = o.Amount.Float64()
	}
	return sources
}
