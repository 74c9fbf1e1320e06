package goal

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type GetGoalsController struct {
	FindGoalsByUserIdRepository usecase.FindGoalsByUserIdRepository
}

func NewGetGoalsController(findGoalsByUserIdRepository usecase.FindGoalsByUserIdRepository) *GetGoalsController {
	return &GetGoalsController{
		FindGoalsByUserIdRepository: findGoalsByUserIdRepository,
	}
}

func (c *GetGoalsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	goals, err := c.FindGoalsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching goals",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(goals, http.StatusOK)
}
