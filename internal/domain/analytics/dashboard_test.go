package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackify/trackify-backend/internal/domain/models"
)

// now is mid-March 2025; March has 31 days, February 2025 has 28.
var now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func expenseOn(date time.Time, category string, amount float64) models.Expense {
	return models.Expense{
		Title:    category + " purchase",
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func marchDay(day int) time.Time {
	return time.Date(2025, time.March, day, 9, 30, 0, 0, time.UTC)
}

func febDay(day int) time.Time {
	return time.Date(2025, time.February, day, 9, 30, 0, 0, time.UTC)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"expected %s, got %s", want, got.String())
}

func TestComputeDashboardMetricsPartitionsAndTotals(t *testing.T) {
	expenses := []models.Expense{
		expenseOn(marchDay(3), "Food", 1000),
		expenseOn(marchDay(10), "Transport", 500),
		expenseOn(febDay(20), "Bills", 2000),
		expenseOn(time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC), "Other", 300),
	}

	metrics := ComputeDashboardMetrics(expenses, 10000, now)

	assert.Len(t, metrics.CurrentMonthExpenses, 2)
	assert.Len(t, metrics.PreviousMonthExpenses, 1)
	assertDecimal(t, "1500", metrics.CurrentMonthTotal)
	assertDecimal(t, "2000", metrics.PreviousMonthTotal)
	assertDecimal(t, "3800", metrics.AllTimeTotal)
	assertDecimal(t, "15", metrics.BudgetUsedPercent)
	assert.Equal(t, models.BudgetAlertNone, metrics.BudgetAlertLevel)
	assert.Equal(t, "Food", metrics.TopCategory)
	assertDecimal(t, "8500", metrics.BudgetRemaining)
}

func TestComputeDashboardMetricsToday(t *testing.T) {
	expenses := []models.Expense{
		expenseOn(marchDay(15), "Food", 42.50),
		expenseOn(time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC), "Transport", 7.50),
		expenseOn(marchDay(14), "Food", 99),
	}

	metrics := ComputeDashboardMetrics(expenses, 0, now)

	assert.Equal(t, 2, metrics.TodayCount)
	assertDecimal(t, "50", metrics.TodayTotal)
}

func TestComputeDashboardMetricsPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     string
	}{
		{"increase", 1200, 1000, "20"},
		{"decrease", 800, 1000, "-20"},
		{"rounded to one decimal", 1000, 3000, "-66.7"},
		{"zero previous month is defined as zero", 1500, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := []models.Expense{}
			if tt.current > 0 {
				expenses = append(expenses, expenseOn(marchDay(5), "Food", tt.current))
			}
			if tt.previous > 0 {
				expenses = append(expenses, expenseOn(febDay(5), "Food", tt.previous))
			}

			metrics := ComputeDashboardMetrics(expenses, 0, now)
			assertDecimal(t, tt.want, metrics.PercentChange)
		})
	}
}

func TestComputeDashboardMetricsAvgDailySpend(t *testing.T) {
	// 3100 over March's 31 days; divides by the full month length, not the
	// 15 days elapsed
	expenses := []models.Expense{expenseOn(marchDay(1), "Bills", 3100)}

	metrics := ComputeDashboardMetrics(expenses, 0, now)

	assertDecimal(t, "100", metrics.AvgDailySpend)
}

func TestComputeDashboardMetricsCategoryTotalsPartitionMonthTotal(t *testing.T) {
	expenses := []models.Expense{
		expenseOn(marchDay(1), "Food", 12.34),
		expenseOn(marchDay(2), "Food", 0.01),
		expenseOn(marchDay(3), "Transport", 99.99),
		expenseOn(marchDay(4), "Health", 150),
		expenseOn(febDay(10), "Bills", 500),
	}

	metrics := ComputeDashboardMetrics(expenses, 0, now)

	sum := decimal.Zero
	for _, total := range metrics.CategoryTotals {
		sum = sum.Add(total)
	}
	assert.True(t, sum.Equal(metrics.CurrentMonthTotal),
		"category totals %s should partition month total %s", sum, metrics.CurrentMonthTotal)
}

func TestComputeDashboardMetricsTopCategory(t *testing.T) {
	t.Run("highest total wins", func(t *testing.T) {
		metrics := ComputeDashboardMetrics([]models.Expense{
			expenseOn(marchDay(1), "Food", 100),
			expenseOn(marchDay(2), "Transport", 300),
			expenseOn(marchDay(3), "Food", 150),
		}, 0, now)
		assert.Equal(t, "Transport", metrics.TopCategory)
	})

	t.Run("ties break to the lexicographically smallest name", func(t *testing.T) {
		metrics := ComputeDashboardMetrics([]models.Expense{
			expenseOn(marchDay(1), "Food", 200),
			expenseOn(marchDay(2), "Bills", 200),
			expenseOn(marchDay(3), "Transport", 50),
		}, 0, now)
		assert.Equal(t, "Bills", metrics.TopCategory)
	})

	t.Run("empty month yields the sentinel", func(t *testing.T) {
		metrics := ComputeDashboardMetrics([]models.Expense{
			expenseOn(febDay(1), "Food", 200),
		}, 0, now)
		assert.Equal(t, models.TopCategoryNone, metrics.TopCategory)
	})
}

func TestComputeDashboardMetricsBudgetAlertLevels(t *testing.T) {
	tests := []struct {
		name   string
		budget float64
		spent  float64
		want   models.BudgetAlertLevel
	}{
		{"well under budget", 10000, 1500, models.BudgetAlertNone},
		{"right below the warning line", 1000, 799, models.BudgetAlertNone},
		{"warning at 80 percent", 1000, 800, models.BudgetAlertWarning},
		{"warning near the top", 1000, 950, models.BudgetAlertWarning},
		{"exceeded at exactly 100 percent", 1000, 1000, models.BudgetAlertExceeded},
		{"exceeded past the budget", 1000, 1250, models.BudgetAlertExceeded},
		{"zero budget never alerts", 0, 5000, models.BudgetAlertNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expenses []models.Expense
			if tt.spent > 0 {
				expenses = append(expenses, expenseOn(marchDay(7), "Shopping", tt.spent))
			}

			metrics := ComputeDashboardMetrics(expenses, tt.budget, now)
			assert.Equal(t, tt.want, metrics.BudgetAlertLevel)
		})
	}
}

func TestComputeDashboardMetricsBudgetWarningScenario(t *testing.T) {
	metrics := ComputeDashboardMetrics([]models.Expense{
		expenseOn(marchDay(2), "Bills", 950),
	}, 1000, now)

	assertDecimal(t, "95", metrics.BudgetUsedPercent)
	assert.Equal(t, models.BudgetAlertWarning, metrics.BudgetAlertLevel)
}

func TestComputeDashboardMetricsDailyTrend(t *testing.T) {
	expenses := []models.Expense{
		expenseOn(marchDay(1), "Food", 10),
		expenseOn(marchDay(1), "Transport", 5),
		expenseOn(marchDay(31), "Bills", 20),
		expenseOn(febDay(28), "Food", 999),
	}

	metrics := ComputeDashboardMetrics(expenses, 0, now)

	require.Len(t, metrics.DailyTrend, 31)
	assert.Equal(t, 1, metrics.DailyTrend[0].Day)
	assertDecimal(t, "15", metrics.DailyTrend[0].Total)
	assertDecimal(t, "20", metrics.DailyTrend[30].Total)
	assertDecimal(t, "0", metrics.DailyTrend[14].Total)

	sum := decimal.Zero
	for _, point := range metrics.DailyTrend {
		sum = sum.Add(point.Total)
	}
	assert.True(t, sum.Equal(metrics.CurrentMonthTotal),
		"trend sum %s should equal month total %s", sum, metrics.CurrentMonthTotal)
}

func TestComputeDashboardMetricsEmptyInput(t *testing.T) {
	metrics := ComputeDashboardMetrics(nil, 0, now)

	assert.Empty(t, metrics.CurrentMonthExpenses)
	assert.Empty(t, metrics.PreviousMonthExpenses)
	assertDecimal(t, "0", metrics.CurrentMonthTotal)
	assertDecimal(t, "0", metrics.PercentChange)
	assertDecimal(t, "0", metrics.BudgetUsedPercent)
	assert.Equal(t, models.TopCategoryNone, metrics.TopCategory)
	assert.Equal(t, models.BudgetAlertNone, metrics.BudgetAlertLevel)
	assert.Len(t, metrics.DailyTrend, 31)
}
