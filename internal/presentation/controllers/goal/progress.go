package goal

import (
	"net/http"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/analytics"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type GoalProgressController struct {
	FindGoalByIdRepository usecase.FindGoalByIdRepository

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewGoalProgressController(findGoalByIdRepository usecase.FindGoalByIdRepository) *GoalProgressController {
	return &GoalProgressController{
		FindGoalByIdRepository: findGoalByIdRepository,
		Now:                    time.Now,
	}
}

func (c *GoalProgressController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	goal, errResponse := findOwnedGoal(c.FindGoalByIdRepository, r, userId)
	if errResponse != nil {
		return errResponse
	}

	progress := analytics.ComputeGoalStatus(goal, c.Now())

	return helpers.CreateResponse(progress, http.StatusOK)
}
