package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trackify/trackify-backend/internal/domain/models"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeDashboardMetrics turns a user's raw expense set and monthly budget
// into the derived dashboard bundle. The expense slice does not need to be
// ordered. All sums accumulate in decimal; percentages are rounded to one
// decimal place, totals never are.
func ComputeDashboardMetrics(expenses []models.Expense, monthlyBudget float64, now time.Time) models.DerivedMetrics {
	curMonth, curYear := CurrentPeriod(now)
	prevMonth, prevYear := PreviousPeriod(curMonth, curYear)
	days := DaysInMonth(curMonth, curYear)

	metrics := models.DerivedMetrics{
		CurrentMonthExpenses:  []models.Expense{},
		PreviousMonthExpenses: []models.Expense{},
		CategoryTotals:        map[string]decimal.Decimal{},
	}

	dailyTotals := make([]decimal.Decimal, days+1)

	for _, expense := range expenses {
		amount := decimal.NewFromFloat(expense.Amount)
		metrics.AllTimeTotal = metrics.AllTimeTotal.Add(amount)

		if SameCalendarDay(expense.Date, now) {
			metrics.TodayTotal = metrics.TodayTotal.Add(amount)
			metrics.TodayCount++
		}

		switch {
		case expense.Date.Month() == curMonth && expense.Date.Year() == curYear:
			metrics.CurrentMonthExpenses = append(metrics.CurrentMonthExpenses, expense)
			metrics.CurrentMonthTotal = metrics.CurrentMonthTotal.Add(amount)
			metrics.CategoryTotals[expense.Category] = metrics.CategoryTotals[expense.Category].Add(amount)
			dailyTotals[expense.Date.Day()] = dailyTotals[expense.Date.Day()].Add(amount)
		case expense.Date.Month() == prevMonth && expense.Date.Year() == prevYear:
			metrics.PreviousMonthExpenses = append(metrics.PreviousMonthExpenses, expense)
			metrics.PreviousMonthTotal = metrics.PreviousMonthTotal.Add(amount)
		}
	}

	if !metrics.PreviousMonthTotal.IsZero() {
		metrics.PercentChange = metrics.CurrentMonthTotal.
			Sub(metrics.PreviousMonthTotal).
			Div(metrics.PreviousMonthTotal).
			Mul(oneHundred).
			Round(1)
	}

	// divides by the full month length, not days elapsed; the product keeps
	// that semantic on purpose
	metrics.AvgDailySpend = metrics.CurrentMonthTotal.Div(decimal.NewFromInt(int64(days)))

	metrics.TopCategory = topCategory(metrics.CategoryTotals)

	budget := decimal.NewFromFloat(monthlyBudget)
	metrics.BudgetRemaining = budget.Sub(metrics.CurrentMonthTotal)
	if budget.IsPositive() {
		metrics.BudgetUsedPercent = metrics.CurrentMonthTotal.Div(budget).Mul(oneHundred).Round(1)
	}
	metrics.BudgetAlertLevel = budgetAlertLevel(budget, metrics.BudgetUsedPercent)

	metrics.DailyTrend = make([]models.DailyTrendPoint, days)
	for day := 1; day <= days; day++ {
		metrics.DailyTrend[day-1] = models.DailyTrendPoint{Day: day, Total: dailyTotals[day]}
	}

	return metrics
}

// topCategory picks the category with the highest total. Ties go to the
// lexicographically smallest category name so the result is reproducible
// regardless of map iteration order.
func topCategory(totals map[string]decimal.Decimal) string {
	if len(totals) == 0 {
		return models.TopCategoryNone
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	top := names[0]
	for _, name := range names[1:] {
		if totals[name].GreaterThan(totals[top]) {
			top = name
		}
	}
	return top
}

func budgetAlertLevel(budget, usedPercent decimal.Decimal) models.BudgetAlertLevel {
	if !budget.IsPositive() {
		return models.BudgetAlertNone
	}
	switch {
	case usedPercent.GreaterThanOrEqual(oneHundred):
		return models.BudgetAlertExceeded
	case usedPercent.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return models.BudgetAlertWarning
	default:
		return models.BudgetAlertNone
	}
}
