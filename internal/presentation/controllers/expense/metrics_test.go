package expense

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackify/trackify-backend/internal/domain/models"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type findExpensesStub struct {
	expenses []models.Expense
	err      error
}

func (s *findExpensesStub) Find(userId primitive.ObjectID) ([]models.Expense, error) {
	return s.expenses, s.err
}

type findUserStub struct {
	user *models.User
	err  error
}

func (s *findUserStub) Find(userId primitive.ObjectID) (*models.User, error) {
	return s.user, s.err
}

func metricsRequest(userId primitive.ObjectID) presentationProtocols.HttpRequest {
	req := httptest.NewRequest("GET", "/expenses/metrics", nil)
	req.Header.Set("UserId", userId.Hex())

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(strings.NewReader("")),
		Header: req.Header,
		Req:    req,
	}
}

func TestDashboardMetrics(t *testing.T) {
	userId := primitive.NewObjectID()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{UserId: userId, Title: "Groceries", Amount: 1000, Category: "Food", Date: now.AddDate(0, 0, -1)},
		{UserId: userId, Title: "Bus pass", Amount: 500, Category: "Transport", Date: now.AddDate(0, 0, -2)},
	}
	sut := NewDashboardMetricsController(
		&findExpensesStub{expenses: expenses},
		&findUserStub{user: &models.User{Id: userId, MonthlyBudget: 10000}},
	)
	sut.Now = func() time.Time { return now }

	response := sut.Handle(metricsRequest(userId))

	assert.Equal(t, 200, response.StatusCode)

	var body struct {
		CurrentMonthTotal decimal.Decimal          `json:"currentMonthTotal"`
		BudgetUsedPercent decimal.Decimal          `json:"budgetUsedPercent"`
		BudgetAlertLevel  models.BudgetAlertLevel  `json:"budgetAlertLevel"`
		TopCategory       string                   `json:"topCategory"`
		DailyTrend        []models.DailyTrendPoint `json:"dailyTrend"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.True(t, body.CurrentMonthTotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, body.BudgetUsedPercent.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, models.BudgetAlertNone, body.BudgetAlertLevel)
	assert.Equal(t, "Food", body.TopCategory)
	assert.Len(t, body.DailyTrend, 31)
}

func TestDashboardMetricsUnknownUser(t *testing.T) {
	sut := NewDashboardMetricsController(&findExpensesStub{}, &findUserStub{})

	response := sut.Handle(metricsRequest(primitive.NewObjectID()))

	assert.Equal(t, 404, response.StatusCode)
}

func TestDashboardMetricsMissingUserIdHeader(t *testing.T) {
	sut := NewDashboardMetricsController(&findExpensesStub{}, &findUserStub{})

	req := httptest.NewRequest("GET", "/expenses/metrics", nil)
	response := sut.Handle(presentationProtocols.HttpRequest{
		Body:   io.NopCloser(strings.NewReader("")),
		Header: req.Header,
		Req:    req,
	})

	assert.Equal(t, 401, response.StatusCode)
}
