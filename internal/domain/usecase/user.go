package usecase

import (
	"github.com/trackify/trackify-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}

type UpdateMonthlyBudgetRepository interface {
	Update(userId primitive.ObjectID, monthlyBudget float64) (*models.User, error)
}
