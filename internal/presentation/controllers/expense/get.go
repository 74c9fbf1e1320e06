package expense

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type GetExpensesController struct {
	FindExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository
}

func NewGetExpensesController(findExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesByUserIdRepository: findExpensesByUserIdRepository,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	expenses, err := c.FindExpensesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching expenses",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}
