package expense_repository

import (
	"context"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByUserIdRepository(db *mongo.Database) *FindExpensesByUserIdRepository {
	return &FindExpensesByUserIdRepository{
		Db: db,
	}
}

// Find returns all of a user's expenses, newest first by transaction date.
func (r *FindExpensesByUserIdRepository) Find(userId primitive.ObjectID) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
