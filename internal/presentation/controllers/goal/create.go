package goal

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

const (
	defaultGoalIcon  = "🎯"
	defaultGoalColor = "#6366f1"
)

type CreateGoalController struct {
	Validate             *validator.Validate
	CreateGoalRepository usecase.CreateGoalRepository
}

func NewCreateGoalController(createGoalRepository usecase.CreateGoalRepository) *CreateGoalController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateGoalController{
		Validate:             validate,
		CreateGoalRepository: createGoalRepository,
	}
}

type CreateGoalBody struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	TargetAmount  *float64 `json:"targetAmount" validate:"required,gte=0"`
	CurrentAmount float64  `json:"currentAmount" validate:"gte=0"`
	Deadline      string   `json:"deadline" validate:"required,datetime=2006-01-02"`
	Category      string   `json:"category" validate:"omitempty,oneof='Emergency Fund' 'Vacation' 'Education' 'Home' 'Car' 'Investment' 'Other'"`
	Icon          string   `json:"icon" validate:"omitempty,max=8"`
	Color         string   `json:"color" validate:"omitempty,hexcolor"`
}

func (c *CreateGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateGoalBody
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

	deadline, _ := time.Parse("2006-01-02", body.Deadline)

	if body.Category == "" {
		body.Category = "Other"
	}
	if body.Icon == "" {
		body.Icon = defaultGoalIcon
	}
	if body.Color == "" {
		body.Color = defaultGoalColor
	}

	goal := &models.Goal{
		UserId:        userId,
		Name:          body.Name,
		TargetAmount:  *body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      deadline,
		Category:      body.Category,
		Icon:          body.Icon,
		Color:         body.Color,
	}
	goal.ApplyCompletion(time.Now())

	created, err := c.CreateGoalRepository.Create(goal)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(created, http.StatusCreated)
}
