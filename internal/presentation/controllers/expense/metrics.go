package expense

import (
	"net/http"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/analytics"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

// DashboardMetricsController serves the derived dashboard bundle. Every call
// recomputes from the full expense set; nothing is cached or persisted.
type DashboardMetricsController struct {
	FindExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository
	FindUserByIdRepository         usecase.FindUserByIdRepository

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewDashboardMetricsController(
	findExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository,
	findUserByIdRepository usecase.FindUserByIdRepository,
) *DashboardMetricsController {
	return &DashboardMetricsController{
		FindExpensesByUserIdRepository: findExpensesByUserIdRepository,
		FindUserByIdRepository:         findUserByIdRepository,
		Now:                            time.Now,
	}
}

func (c *DashboardMetricsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.FindUserByIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching user",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	expenses, err := c.FindExpensesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching expenses",
		}, http.StatusInternalServerError)
	}

	metrics := analytics.ComputeDashboardMetrics(expenses, user.MonthlyBudget, c.Now())

	return helpers.CreateResponse(metrics, http.StatusOK)
}
