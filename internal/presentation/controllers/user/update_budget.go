package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type UpdateBudgetController struct {
	Validate                      *validator.Validate
	UpdateMonthlyBudgetRepository usecase.UpdateMonthlyBudgetRepository
}

func NewUpdateBudgetController(updateMonthlyBudgetRepository usecase.UpdateMonthlyBudgetRepository) *UpdateBudgetController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateBudgetController{
		Validate:                      validate,
		UpdateMonthlyBudgetRepository: updateMonthlyBudgetRepository,
	}
}

type UpdateBudgetBody struct {
	MonthlyBudget *float64 `json:"monthlyBudget" validate:"required,gte=0"`
}

func (c *UpdateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	var body UpdateBudgetBody
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

	user, err := c.UpdateMonthlyBudgetRepository.Update(userId, *body.MonthlyBudget)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating budget",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
