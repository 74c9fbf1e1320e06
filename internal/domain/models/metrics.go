package models

import "github.com/shopspring/decimal"

type BudgetAlertLevel string

const (
	BudgetAlertNone     BudgetAlertLevel = "NONE"
	BudgetAlertWarning  BudgetAlertLevel = "WARNING"
	BudgetAlertExceeded BudgetAlertLevel = "EXCEEDED"
)

// TopCategoryNone is the sentinel returned when the current month has no
// expenses to rank.
const TopCategoryNone = "None"

// DailyTrendPoint is one day of the current month in the spending trend
// series. The series is dense: every calendar day appears, zero or not.
type DailyTrendPoint struct {
	Day   int             `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// DerivedMetrics is the dashboard bundle computed on demand from a user's
// full expense set. It is never persisted.
type DerivedMetrics struct {
	CurrentMonthExpenses  []Expense `json:"currentMonthExpenses"`
	PreviousMonthExpenses []Expense `json:"previousMonthExpenses"`

	TodayTotal decimal.Decimal `json:"todayTotal"`
	TodayCount int             `json:"todayCount"`

	CurrentMonthTotal  decimal.Decimal `json:"currentMonthTotal"`
	PreviousMonthTotal decimal.Decimal `json:"previousMonthTotal"`
	AllTimeTotal       decimal.Decimal `json:"allTimeTotal"`

	PercentChange decimal.Decimal `json:"percentChange"`
	AvgDailySpend decimal.Decimal `json:"avgDailySpend"`

	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"`
	TopCategory    string                     `json:"topCategory"`

	BudgetRemaining   decimal.Decimal  `json:"budgetRemaining"`
	BudgetUsedPercent decimal.Decimal  `json:"budgetUsedPercent"`
	BudgetAlertLevel  BudgetAlertLevel `json:"budgetAlertLevel"`

	DailyTrend []DailyTrendPoint `json:"dailyTrend"`
}

type GoalStatus string

const (
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusOverdue   GoalStatus = "OVERDUE"
	GoalStatusOnTrack   GoalStatus = "ON_TRACK"
)

// GoalProgress is the evaluated state of a single goal against a reference
// instant.
type GoalProgress struct {
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	Remaining       decimal.Decimal `json:"remaining"`
	DaysLeft        int             `json:"daysLeft"`
	Status          GoalStatus      `json:"status"`
}
