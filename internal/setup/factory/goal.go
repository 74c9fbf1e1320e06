package factory

import (
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/repositories/goal_repository"
	"github.com/trackify/trackify-backend/internal/presentation/controllers/goal"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateGoalController(db *mongo.Database) *goal.CreateGoalController {
	createGoalRepository := goal_repository.NewCreateGoalRepository(db)
	return goal.NewCreateGoalController(createGoalRepository)
}

func MakeGetGoalsController(db *mongo.Database) *goal.GetGoalsController {
	findGoalsByUserIdRepository := goal_repository.NewFindGoalsByUserIdRepository(db)
	return goal.NewGetGoalsController(findGoalsByUserIdRepository)
}

func MakeGetGoalByIdController(db *mongo.Database) *goal.GetGoalByIdController {
	findGoalByIdRepository := goal_repository.NewFindGoalByIdRepository(db)
	return goal.NewGetGoalByIdController(findGoalByIdRepository)
}

func MakeUpdateGoalController(db *mongo.Database) *goal.UpdateGoalController {
	findGoalByIdRepository := goal_repository.NewFindGoalByIdRepository(db)
	updateGoalRepository := goal_repository.NewUpdateGoalRepository(db)
	return goal.NewUpdateGoalController(findGoalByIdRepository, updateGoalRepository)
}

func MakeDeleteGoalController(db *mongo.Database) *goal.DeleteGoalController {
	findGoalByIdRepository := goal_repository.NewFindGoalByIdRepository(db)
	deleteGoalRepository := goal_repository.NewDeleteGoalRepository(db)
	return goal.NewDeleteGoalController(findGoalByIdRepository, deleteGoalRepository)
}

func MakeContributeToGoalController(db *mongo.Database) *goal.ContributeToGoalController {
	findGoalByIdRepository := goal_repository.NewFindGoalByIdRepository(db)
	updateGoalRepository := goal_repository.NewUpdateGoalRepository(db)
	return goal.NewContributeToGoalController(findGoalByIdRepository, updateGoalRepository)
}

func MakeGoalProgressController(db *mongo.Database) *goal.GoalProgressController {
	findGoalByIdRepository := goal_repository.NewFindGoalByIdRepository(db)
	return goal.NewGoalProgressController(findGoalByIdRepository)
}
