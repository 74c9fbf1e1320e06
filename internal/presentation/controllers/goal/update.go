package goal

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type UpdateGoalController struct {
	Validate               *validator.Validate
	FindGoalByIdRepository usecase.FindGoalByIdRepository
	UpdateGoalRepository   usecase.UpdateGoalRepository
}

func NewUpdateGoalController(
	findGoalByIdRepository usecase.FindGoalByIdRepository,
	updateGoalRepository usecase.UpdateGoalRepository,
) *UpdateGoalController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateGoalController{
		Validate:               validate,
		FindGoalByIdRepository: findGoalByIdRepository,
		UpdateGoalRepository:   updateGoalRepository,
	}
}

type UpdateGoalBody struct {
	Name          string   `json:"name" validate:"omitempty,min=1,max=100"`
	TargetAmount  *float64 `json:"targetAmount" validate:"omitempty,gte=0"`
	CurrentAmount *float64 `json:"currentAmount" validate:"omitempty,gte=0"`
	Deadline      string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Category      string   `json:"category" validate:"omitempty,oneof='Emergency Fund' 'Vacation' 'Education' 'Home' 'Car' 'Investment' 'Other'"`
	Icon          string   `json:"icon" validate:"omitempty,max=8"`
	Color         string   `json:"color" validate:"omitempty,hexcolor"`
}

func (c *UpdateGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	var body UpdateGoalBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	goal, errResponse := findOwnedGoal(c.FindGoalByIdRepository, r, userId)
	if errResponse != nil {
		return errResponse
	}

	if body.Name != "" {
		goal.Name = body.Name
	}
	if body.TargetAmount != nil {
		goal.TargetAmount = *body.TargetAmount
	}
	if body.CurrentAmount != nil {
		goal.CurrentAmount = *body.CurrentAmount
	}
	if body.Deadline != "" {
		goal.Deadline, _ = time.Parse("2006-01-02", body.Deadline)
	}
	if body.Category != "" {
		goal.Category = body.Category
	}
	if body.Icon != "" {
		goal.Icon = body.Icon
	}
	if body.Color != "" {
		goal.Color = body.Color
	}

	// edits change the amounts absolutely, so the completion invariant has
	// to be re-derived here, same as on contribute
	goal.ApplyCompletion(time.Now())

	updated, err := c.UpdateGoalRepository.Update(goal.Id, goal)
	if err != nil || updated == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
