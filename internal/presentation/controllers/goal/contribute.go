package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/analytics"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type ContributeToGoalController struct {
	FindGoalByIdRepository usecase.FindGoalByIdRepository
	UpdateGoalRepository   usecase.UpdateGoalRepository
}

func NewContributeToGoalController(
	findGoalByIdRepository usecase.FindGoalByIdRepository,
	updateGoalRepository usecase.UpdateGoalRepository,
) *ContributeToGoalController {
	return &ContributeToGoalController{
		FindGoalByIdRepository: findGoalByIdRepository,
		UpdateGoalRepository:   updateGoalRepository,
	}
}

type ContributeToGoalBody struct {
	Amount float64 `json:"amount"`
}

func (c *ContributeToGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	var body ContributeToGoalBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	goal, errResponse := findOwnedGoal(c.FindGoalByIdRepository, r, userId)
	if errResponse != nil {
		return errResponse
	}

	contributed, err := analytics.Contribute(*goal, body.Amount, time.Now())
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidAmount) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: err.Error(),
			}, http.StatusBadRequest)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error contributing to goal",
		}, http.StatusInternalServerError)
	}

	updated, err := c.UpdateGoalRepository.Update(contributed.Id, &contributed)
	if err != nil || updated == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
