package routes

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/setup/adapters"
	"github.com/trackify/trackify-backend/internal/setup/factory"
	"github.com/trackify/trackify-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func UserRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("GET /users/me", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetUserController(db)),
	))
	server.Handle("PUT /users/budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBudgetController(db)),
	))
}
