package goal_repository

import (
	"context"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindGoalsByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindGoalsByUserIdRepository(db *mongo.Database) *FindGoalsByUserIdRepository {
	return &FindGoalsByUserIdRepository{
		Db: db,
	}
}

// Find returns all of a user's goals, most recently created first.
func (r *FindGoalsByUserIdRepository) Find(userId primitive.ObjectID) ([]models.Goal, error) {
	collection := r.Db.Collection("goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}

	goals := []models.Goal{}
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}

	return goals, nil
}
