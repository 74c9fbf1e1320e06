package expense

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteExpenseController struct {
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
	DeleteExpenseRepository   usecase.DeleteExpenseRepository
}

func NewDeleteExpenseController(
	findExpenseByIdRepository usecase.FindExpenseByIdRepository,
	deleteExpenseRepository usecase.DeleteExpenseRepository,
) *DeleteExpenseController {
	return &DeleteExpenseController{
		FindExpenseByIdRepository: findExpenseByIdRepository,
		DeleteExpenseRepository:   deleteExpenseRepository,
	}
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expense id",
		}, http.StatusBadRequest)
	}

	expense, err := c.FindExpenseByIdRepository.Find(expenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching expense",
		}, http.StatusInternalServerError)
	}
	if expense == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "expense not found",
		}, http.StatusNotFound)
	}
	if expense.UserId != userId {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "not authorized to delete this expense",
		}, http.StatusUnauthorized)
	}

	if err := c.DeleteExpenseRepository.Delete(expenseId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error deleting expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]string{
		"message": "expense removed",
		"id":      expenseId.Hex(),
	}, http.StatusOK)
}
