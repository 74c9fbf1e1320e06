package config

import (
	"net/http"
	"os"

	"github.com/trackify/trackify-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database) {
	apiServer := http.NewServeMux()

	redisURL := os.Getenv("REDIS_URL")

	routes.ExpenseRoutes(apiServer, db, redisURL)
	routes.GoalRoutes(apiServer, db)
	routes.UserRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
