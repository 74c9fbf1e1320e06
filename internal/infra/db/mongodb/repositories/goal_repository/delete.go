package goal_repository

import (
	"context"

	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteGoalRepository struct {
	Db *mongo.Database
}

func NewDeleteGoalRepository(db *mongo.Database) *DeleteGoalRepository {
	return &DeleteGoalRepository{
		Db: db,
	}
}

func (r *DeleteGoalRepository) Delete(goalId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": goalId, "user_id": userId})
	if err != nil {
		return err
	}

	return nil
}
