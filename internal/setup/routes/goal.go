package routes

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/setup/adapters"
	"github.com/trackify/trackify-backend/internal/setup/factory"
	"github.com/trackify/trackify-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func GoalRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("GET /goals", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetGoalsController(db)),
	))
	server.Handle("POST /goals", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateGoalController(db)),
	))
	server.Handle("GET /goals/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetGoalByIdController(db)),
	))
	server.Handle("PUT /goals/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateGoalController(db)),
	))
	server.Handle("DELETE /goals/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteGoalController(db)),
	))
	server.Handle("PUT /goals/{id}/contribute", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeContributeToGoalController(db)),
	))
	server.Handle("GET /goals/{id}/progress", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGoalProgressController(db)),
	))
}
