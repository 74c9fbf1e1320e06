package user

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type GetUserController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
}

func NewGetUserController(findUserByIdRepository usecase.FindUserByIdRepository) *GetUserController {
	return &GetUserController{
		FindUserByIdRepository: findUserByIdRepository,
	}
}

func (c *GetUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.FindUserByIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching user",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
