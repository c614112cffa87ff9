package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/api/models"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func expense(t *testing.T, amount string, date time.Time, category string) models.Expense {
	t.Helper()
	return models.Expense{Amount: dec(t, amount), Date: date, Category: category}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlySpendUsesMonthNumberOnly(t *testing.T) {
	expenses := []models.Expense{
		expense(t, "10.00", day(2024, time.March, 1), "Food"),
		expense(t, "5.50", day(2024, time.March, 31), "Travel"),
		expense(t, "100.00", day(2024, time.February, 28), "Rent"),
		// Same month number, previous year: still counted. The filter
		// compares month number, not month+year.
		expense(t, "2.00", day(2023, time.March, 10), "Food"),
	}

	got := MonthlySpend(expenses, now)
	if want := dec(t, "17.50"); !got.Equal(want) {
		t.Errorf("MonthlySpend = %s, want %s", got, want)
	}
}

func TestCategoryBreakdownSumsToMonthlySpend(t *testing.T) {
	expenses := []models.Expense{
		expense(t, "20.00", day(2024, time.March, 2), "Food"),
		expense(t, "30.00", day(2024, time.March, 9), "Food"),
		expense(t, "12.34", day(2024, time.March, 10), "Travel"),
		expense(t, "99.99", day(2024, time.January, 10), "Travel"),
	}

	total := decimal.Zero
	for _, ct := range CategoryBreakdown(expenses, now) {
		total = total.Add(ct.Total)
	}
	if spend := MonthlySpend(expenses, now); !total.Equal(spend) {
		t.Errorf("breakdown sum %s != monthly spend %s", total, spend)
	}
}

func TestCategoryBreakdownSortedDescending(t *testing.T) {
	expenses := []models.Expense{
		expense(t, "5.00", day(2024, time.March, 1), "Coffee"),
		expense(t, "50.00", day(2024, time.March, 2), "Rent"),
		expense(t, "20.00", day(2024, time.March, 3), "Food"),
	}

	breakdown := CategoryBreakdown(expenses, now)
	want := []string{"Rent", "Food", "Coffee"}
	if len(breakdown) != len(want) {
		t.Fatalf("got %d categories, want %d", len(breakdown), len(want))
	}
	for i, category := range want {
		if breakdown[i].Category != category {
			t.Errorf("breakdown[%d] = %s, want %s", i, breakdown[i].Category, category)
		}
	}
}

func TestBudgetUtilization(t *testing.T) {
	tests := []struct {
		name   string
		spent  string
		budget string
		want   float64
	}{
		{"quarter used", "50.00", "200.00", 25},
		{"overspent", "300.00", "200.00", 150},
		{"zero budget yields zero", "300.00", "0", 0},
		{"nothing spent", "0", "200.00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetUtilization(dec(t, tt.spent), dec(t, tt.budget))
			if got != tt.want {
				t.Errorf("BudgetUtilization(%s, %s) = %v, want %v", tt.spent, tt.budget, got, tt.want)
			}
		})
	}
}

func TestNetBalanceMayBeNegative(t *testing.T) {
	got := NetBalance(dec(t, "1000.00"), dec(t, "1500.00"))
	if want := dec(t, "-500.00"); !got.Equal(want) {
		t.Errorf("NetBalance = %s, want %s", got, want)
	}
}

func TestWeeklySeries(t *testing.T) {
	// now is Friday 2024-03-15. The window runs Saturday the 9th through
	// Friday the 15th.
	expenses := []models.Expense{
		expense(t, "10.00", day(2024, time.March, 15), "Food"), // FRI
		expense(t, "5.00", day(2024, time.March, 15), "Food"),  // FRI, same day sums
		expense(t, "7.00", day(2024, time.March, 9), "Food"),   // SAT, oldest in window
		expense(t, "99.00", day(2024, time.March, 8), "Food"),  // FRI last week, outside window
	}

	labels, totals := WeeklySeries(expenses, now)

	if want := []string{"SAT", "FRI"}; len(labels) != 2 || labels[0] != want[0] || labels[1] != want[1] {
		t.Errorf("labels = %v, want %v", labels, want)
	}
	if got, want := totals["FRI"], dec(t, "15.00"); !got.Equal(want) {
		t.Errorf("FRI total = %s, want %s", got, want)
	}
	if got, want := totals["SAT"], dec(t, "7.00"); !got.Equal(want) {
		t.Errorf("SAT total = %s, want %s", got, want)
	}
}

func TestWeeklySeriesMergesByLabelNotDate(t *testing.T) {
	// A future row sharing a weekday with an in-window row lands in the
	// same bucket. Bucketing is by label alone.
	expenses := []models.Expense{
		expense(t, "10.00", day(2024, time.March, 15), "Food"), // FRI
		expense(t, "4.00", day(2024, time.March, 22), "Food"),  // next FRI
	}

	_, totals := WeeklySeries(expenses, now)
	if got, want := totals["FRI"], dec(t, "14.00"); !got.Equal(want) {
		t.Errorf("FRI total = %s, want %s", got, want)
	}
}

func TestOverspentFlagsStrictExcess(t *testing.T) {
	budgets := []models.CategoryBudget{
		{CategoryName: "Food", Amount: dec(t, "40.00")},
		{CategoryName: "Travel", Amount: dec(t, "100.00")},
		{CategoryName: "Rent", Amount: dec(t, "500.00")},
	}
	expenses := []models.Expense{
		expense(t, "20.00", day(2024, time.March, 2), "Food"),
		expense(t, "30.00", day(2024, time.March, 9), "Food"),
		expense(t, "100.00", day(2024, time.March, 3), "Travel"), // exactly at budget, not flagged
		expense(t, "10.00", day(2024, time.March, 4), "Games"),   // no budget, not flagged
	}

	breakdown := CategoryBreakdown(expenses, now)
	var food *CategoryTotal
	for i := range breakdown {
		if breakdown[i].Category == "Food" {
			food = &breakdown[i]
		}
	}
	if food == nil || !food.Total.Equal(dec(t, "50.00")) {
		t.Fatalf("Food breakdown = %+v, want 50.00", food)
	}

	overspent := Overspent(budgets, expenses, now)
	if len(overspent) != 1 || overspent[0] != "Food" {
		t.Errorf("Overspent = %v, want [Food]", overspent)
	}
}

func TestOverspentWithoutBudgetsIsEmpty(t *testing.T) {
	expenses := []models.Expense{expense(t, "1000.00", day(2024, time.March, 2), "Food")}
	if got := Overspent(nil, expenses, now); len(got) != 0 {
		t.Errorf("Overspent = %v, want empty", got)
	}
}

func TestMonthlySeriesAscendingRegardlessOfInsertOrder(t *testing.T) {
	expenses := []models.Expense{
		expense(t, "0.00", day(2024, time.March, 5), "Food"),
		expense(t, "60.00", day(2024, time.January, 10), "Rent"),
		expense(t, "50.00", day(2024, time.February, 1), "Food"),
		expense(t, "40.00", day(2024, time.January, 20), "Food"),
	}

	series := MonthlySeries(expenses)
	want := []MonthTotal{
		{Month: "2024-01", Total: dec(t, "100.00")},
		{Month: "2024-02", Total: dec(t, "50.00")},
		{Month: "2024-03", Total: dec(t, "0.00")},
	}
	if len(series) != len(want) {
		t.Fatalf("got %d months, want %d", len(series), len(want))
	}
	for i := range want {
		if series[i].Month != want[i].Month || !series[i].Total.Equal(want[i].Total) {
			t.Errorf("series[%d] = %s:%s, want %s:%s",
				i, series[i].Month, series[i].Total, want[i].Month, want[i].Total)
		}
	}
}

func TestMonthlySeriesKeepsMostRecentSixMonths(t *testing.T) {
	expenses := []models.Expense{}
	for month := time.January; month <= time.August; month++ {
		expenses = append(expenses, expense(t, "10.00", day(2024, month, 1), "Food"))
	}

	series := MonthlySeries(expenses)
	if len(series) != MonthlySeriesLimit {
		t.Fatalf("got %d months, want %d", len(series), MonthlySeriesLimit)
	}
	if series[0].Month != "2024-03" || series[len(series)-1].Month != "2024-08" {
		t.Errorf("series spans %s..%s, want 2024-03..2024-08",
			series[0].Month, series[len(series)-1].Month)
	}
}

func TestBudgetVsActualUnionAndDefaults(t *testing.T) {
	budgets := []models.CategoryBudget{
		{CategoryName: "Rent", Amount: dec(t, "500.00")},
		{CategoryName: "Food", Amount: dec(t, "40.00")},
	}
	expenses := []models.Expense{
		expense(t, "25.00", day(2024, time.March, 2), "Food"),
		expense(t, "15.00", day(2024, time.March, 3), "Games"),
	}

	got := BudgetVsActual(budgets, expenses, now)

	wantLabels := []string{"Food", "Games", "Rent"}
	if len(got.Labels) != len(wantLabels) {
		t.Fatalf("labels = %v, want %v", got.Labels, wantLabels)
	}
	for i, label := range wantLabels {
		if got.Labels[i] != label {
			t.Fatalf("labels = %v, want %v", got.Labels, wantLabels)
		}
	}

	wantBudgeted := []float64{40, 0, 500}
	wantActual := []float64{25, 15, 0}
	for i := range wantLabels {
		if got.Budgeted[i] != wantBudgeted[i] {
			t.Errorf("budgeted[%d] = %v, want %v", i, got.Budgeted[i], wantBudgeted[i])
		}
		if got.Actual[i] != wantActual[i] {
			t.Errorf("actual[%d] = %v, want %v", i, got.Actual[i], wantActual[i])
		}
	}
}

func TestNetWorth(t *testing.T) {
	assets := []models.Asset{
		{Name: "House", Value: dec(t, "250000.00")},
		{Name: "Car", Value: dec(t, "12000.00")},
	}
	liabilities := []models.Liability{
		{Name: "Mortgage", AmountOwed: dec(t, "180000.00")},
	}

	if got, want := NetWorth(assets, liabilities), dec(t, "82000.00"); !got.Equal(want) {
		t.Errorf("NetWorth = %s, want %s", got, want)
	}
	if got := NetWorth(nil, nil); !got.IsZero() {
		t.Errorf("empty portfolio NetWorth = %s, want 0", got)
	}
}

func TestInvestmentsByType(t *testing.T) {
	investments := []models.Investment{
		{Type: "Stocks", AmountInvested: dec(t, "1000.00")},
		{Type: "Stocks", AmountInvested: dec(t, "500.00")},
		{Type: "Bonds", AmountInvested: dec(t, "200.00")},
	}

	totals := InvestmentsByType(investments)
	if got, want := totals["Stocks"], dec(t, "1500.00"); !got.Equal(want) {
		t.Errorf("Stocks = %s, want %s", got, want)
	}
	if got, want := totals["Bonds"], dec(t, "200.00"); !got.Equal(want) {
		t.Errorf("Bonds = %s, want %s", got, want)
	}
}

func TestIncomeBySource(t *testing.T) {
	income := &models.Income{MonthlyIncome: dec(t, "3000.00")}
	others := []models.OtherIncome{
		{SourceName: "Freelance", Amount: dec(t, "400.00")},
	}

	sources := IncomeBySource(income, others)
	if sources["Salary / Main"] != 3000 {
		t.Errorf("main income = %v, want 3000", sources["Salary / Main"])
	}
	if sources["Freelance"] != 400 {
		t.Errorf("Freelance = %v, want 400", sources["Freelance"])
	}

	if sources := IncomeBySource(nil, nil); sources["Salary / Main"] != 0 {
		t.Errorf("missing income row should map to 0, got %v", sources["Salary / Main"])
	}
}

func TestDecimalSummationIsExact(t *testing.T) {
	// 0.1 added ten times is exactly 1 in decimal arithmetic; binary
	// floats would drift here.
	expenses := []models.Expense{}
	for i := 1; i <= 10; i++ {
		expenses = append(expenses, expense(t, "0.10", day(2024, time.March, i), "Coffee"))
	}

	if got, want := MonthlySpend(expenses, now), dec(t, "1.00"); !got.Equal(want) {
		t.Errorf("MonthlySpend = %s, want exactly %s", got, want)
	}
}
