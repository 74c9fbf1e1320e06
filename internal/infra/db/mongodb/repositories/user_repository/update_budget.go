package user_repository

import (
	"context"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateMonthlyBudgetRepository struct {
	Db *mongo.Database
}

func NewUpdateMonthlyBudgetRepository(db *mongo.Database) *UpdateMonthlyBudgetRepository {
	return &UpdateMonthlyBudgetRepository{
		Db: db,
	}
}

func (r *UpdateMonthlyBudgetRepository) Update(userId primitive.ObjectID, monthlyBudget float64) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"monthly_budget": monthlyBudget,
			"updated_at":     time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": userId}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}
