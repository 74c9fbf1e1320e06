package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateExpenseController struct {
	Validate                  *validator.Validate
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
	UpdateExpenseRepository   usecase.UpdateExpenseRepository
}

func NewUpdateExpenseController(
	findExpenseByIdRepository usecase.FindExpenseByIdRepository,
	updateExpenseRepository usecase.UpdateExpenseRepository,
) *UpdateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateExpenseController{
		Validate:                  validate,
		FindExpenseByIdRepository: findExpenseByIdRepository,
		UpdateExpenseRepository:   updateExpenseRepository,
	}
}

// UpdateExpenseBody carries a partial edit. Absent fields keep their stored
// value; Amount and Notes are pointers so an explicit zero/empty still counts
// as an edit.
type UpdateExpenseBody struct {
	Title    string   `json:"title" validate:"omitempty,min=1,max=100"`
	Amount   *float64 `json:"amount" validate:"omitempty,gte=0"`
	Category string   `json:"category" validate:"omitempty,oneof=Food Transport Shopping Entertainment Bills Health Education Other"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes    *string  `json:"notes" validate:"omitempty,max=500"`
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var body UpdateExpenseBody
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
			Error: "not authorized to update this expense",
		}, http.StatusUnauthorized)
	}

	if body.Title != "" {
		expense.Title = body.Title
	}
	if body.Amount != nil {
		expense.Amount = *body.Amount
	}
	if body.Category != "" {
		expense.Category = body.Category
	}
	if body.Date != "" {
		expense.Date, _ = time.Parse("2006-01-02", body.Date)
	}
	if body.Notes != nil {
		expense.Notes = *body.Notes
	}

	updated, err := c.UpdateExpenseRepository.Update(expenseId, expense)
	if err != nil || updated == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
