package goal

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetGoalByIdController struct {
	FindGoalByIdRepository usecase.FindGoalByIdRepository
}

func NewGetGoalByIdController(findGoalByIdRepository usecase.FindGoalByIdRepository) *GetGoalByIdController {
	return &GetGoalByIdController{
		FindGoalByIdRepository: findGoalByIdRepository,
	}
}

func (c *GetGoalByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	goal, errResponse := findOwnedGoal(c.FindGoalByIdRepository, r, userId)
	if errResponse != nil {
		return errResponse
	}

	return helpers.CreateResponse(goal, http.StatusOK)
}

// findOwnedGoal resolves the {id} path parameter and enforces ownership:
// unknown ids come back 404, another user's goal 401.
func findOwnedGoal(repo usecase.FindGoalByIdRepository, r presentationProtocols.HttpRequest, userId primitive.ObjectID) (*models.Goal, *presentationProtocols.HttpResponse) {
	goalId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid goal id",
		}, http.StatusBadRequest)
	}

	goal, err := repo.Find(goalId)
	if err != nil {
		return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching goal",
		}, http.StatusInternalServerError)
	}
	if goal == nil {
		return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "goal not found",
		}, http.StatusNotFound)
	}
	if goal.UserId != userId {
		return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "not authorized to access this goal",
		}, http.StatusUnauthorized)
	}

	return goal, nil
}
