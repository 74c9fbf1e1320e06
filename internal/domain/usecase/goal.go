package usecase

import (
	"github.com/trackify/trackify-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateGoalRepository interface {
	Create(goal *models.Goal) (*models.Goal, error)
}

type FindGoalsByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Goal, error)
}

type FindGoalByIdRepository interface {
	Find(goalId primitive.ObjectID) (*models.Goal, error)
}

type UpdateGoalRepository interface {
	Update(goalId primitive.ObjectID, goal *models.Goal) (*models.Goal, error)
}

type DeleteGoalRepository interface {
	Delete(goalId primitive.ObjectID, userId primitive.ObjectID) error
}
