package goal

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type DeleteGoalController struct {
	FindGoalByIdRepository usecase.FindGoalByIdRepository
	DeleteGoalRepository   usecase.DeleteGoalRepository
}

func NewDeleteGoalController(
	findGoalByIdRepository usecase.FindGoalByIdRepository,
	deleteGoalRepository usecase.DeleteGoalRepository,
) *DeleteGoalController {
	return &DeleteGoalController{
		FindGoalByIdRepository: findGoalByIdRepository,
		DeleteGoalRepository:   deleteGoalRepository,
	}
}

func (c *DeleteGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	goal, errResponse := findOwnedGoal(c.FindGoalByIdRepository, r, userId)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteGoalRepository.Delete(goal.Id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error deleting goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]string{
		"message": "goal removed",
		"id":      goal.Id.Hex(),
	}, http.StatusOK)
}
