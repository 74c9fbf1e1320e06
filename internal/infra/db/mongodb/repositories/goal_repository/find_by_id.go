package goal_repository

import (
	"context"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindGoalByIdRepository struct {
	Db *mongo.Database
}

func NewFindGoalByIdRepository(db *mongo.Database) *FindGoalByIdRepository {
	return &FindGoalByIdRepository{
		Db: db,
	}
}

func (r *FindGoalByIdRepository) Find(goalId primitive.ObjectID) (*models.Goal, error) {
	collection := r.Db.Collection("goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var goal models.Goal

	err := collection.FindOne(ctx, bson.M{"_id": goalId}).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &goal, nil
}
