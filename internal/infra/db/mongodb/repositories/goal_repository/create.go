package goal_repository

import (
	"context"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateGoalRepository struct {
	Db *mongo.Database
}

func NewCreateGoalRepository(db *mongo.Database) *CreateGoalRepository {
	return &CreateGoalRepository{
		Db: db,
	}
}

func (r *CreateGoalRepository) Create(goal *models.Goal) (*models.Goal, error) {
	collection := r.Db.Collection("goals")

	goal.Id = primitive.NewObjectID()
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}
