package expense

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

type CreateExpenseController struct {
	Validate                *validator.Validate
	CreateExpenseRepository usecase.CreateExpenseRepository
}

func NewCreateExpenseController(createExpenseRepository usecase.CreateExpenseRepository) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		Validate:                validate,
		CreateExpenseRepository: createExpenseRepository,
	}
}

type CreateExpenseBody struct {
	Title    string   `json:"title" validate:"required,min=1,max=100"`
	Amount   *float64 `json:"amount" validate:"required,gte=0"`
	Category string   `json:"category" validate:"required,oneof=Food Transport Shopping Entertainment Bills Health Education Other"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes    string   `json:"notes" validate:"omitempty,max=500"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateExpenseBody
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

	date := time.Now()
	if body.Date != "" {
		date, _ = time.Parse("2006-01-02", body.Date)
	}

	expense, err := c.CreateExpenseRepository.Create(&models.Expense{
		UserId:   userId,
		Title:    body.Title,
		Amount:   *body.Amount,
		Category: body.Category,
		Date:     date,
		Notes:    body.Notes,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expense, http.StatusCreated)
}
