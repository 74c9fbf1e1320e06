package factory

import (
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/trackify/trackify-backend/internal/presentation/controllers/user"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetUserController(db *mongo.Database) *user.GetUserController {
	findUserByIdRepository := user_repository.NewFindUserByIdRepository(db)
	return user.NewGetUserController(findUserByIdRepository)
}

func MakeUpdateBudgetController(db *mongo.Database) *user.UpdateBudgetController {
	updateMonthlyBudgetRepository := user_repository.NewUpdateMonthlyBudgetRepository(db)
	return user.NewUpdateBudgetController(updateMonthlyBudgetRepository)
}
