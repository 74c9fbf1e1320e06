package factory

import (
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/repositories/expense_repository"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/trackify/trackify-backend/internal/presentation/controllers/expense"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateExpenseController(db *mongo.Database) *expense.CreateExpenseController {
	createExpenseRepository := expense_repository.NewCreateExpenseRepository(db)
	return expense.NewCreateExpenseController(createExpenseRepository)
}

func MakeGetExpensesController(db *mongo.Database) *expense.GetExpensesController {
	findExpensesByUserIdRepository := expense_repository.NewFindExpensesByUserIdRepository(db)
	return expense.NewGetExpensesController(findExpensesByUserIdRepository)
}

func MakeUpdateExpenseController(db *mongo.Database) *expense.UpdateExpenseController {
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	updateExpenseRepository := expense_repository.NewUpdateExpenseRepository(db)
	return expense.NewUpdateExpenseController(findExpenseByIdRepository, updateExpenseRepository)
}

func MakeDeleteExpenseController(db *mongo.Database) *expense.DeleteExpenseController {
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	deleteExpenseRepository := expense_repository.NewDeleteExpenseRepository(db)
	return expense.NewDeleteExpenseController(findExpenseByIdRepository, deleteExpenseRepository)
}

func MakeExportExpensesController(db *mongo.Database, redisURL string) *expense.ExportExpensesController {
	findExpensesByUserIdRepository := expense_repository.NewFindExpensesByUserIdRepository(db)
	return expense.NewExportExpensesController(findExpensesByUserIdRepository, redisURL)
}

func MakeDashboardMetricsController(db *mongo.Database) *expense.DashboardMetricsController {
	findExpensesByUserIdRepository := expense_repository.NewFindExpensesByUserIdRepository(db)
	findUserByIdRepository := user_repository.NewFindUserByIdRepository(db)
	return expense.NewDashboardMetricsController(findExpensesByUserIdRepository, findUserByIdRepository)
}
