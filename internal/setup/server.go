package setup

import (
	"net/http"
	"os"

	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"github.com/trackify/trackify-backend/internal/setup/config"
	"github.com/trackify/trackify-backend/internal/setup/middlewares"
)

func Server() http.Handler {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB"))

	config.SetupRoutes(mux, db)

	return middlewares.RecoveryMiddleware(mux)
}
