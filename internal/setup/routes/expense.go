package routes

import (
	"net/http"

	"github.com/trackify/trackify-backend/internal/setup/adapters"
	"github.com/trackify/trackify-backend/internal/setup/factory"
	"github.com/trackify/trackify-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database, redisURL string) {
	server.Handle("GET /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpensesController(db)),
	))
	server.Handle("POST /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(db)),
	))
	server.Handle("PUT /expenses/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateExpenseController(db)),
	))
	server.Handle("DELETE /expenses/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(db)),
	))
	server.Handle("GET /expenses/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportExpensesController(db, redisURL)),
	))
	server.Handle("GET /expenses/metrics", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDashboardMetricsController(db)),
	))
}
