package usecase

import (
	"github.com/trackify/trackify-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseRepository interface {
	Create(expense *models.Expense) (*models.Expense, error)
}

type FindExpensesByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(expenseId primitive.ObjectID) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(expenseId primitive.ObjectID, expense *models.Expense) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error
}
