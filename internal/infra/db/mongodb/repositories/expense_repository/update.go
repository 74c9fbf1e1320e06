package expense_repository

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

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

func (r *UpdateExpenseRepository) Update(expenseId primitive.ObjectID, expense *models.Expense) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":      expense.Title,
			"amount":     expense.Amount,
			"category":   expense.Category,
			"date":       expense.Date,
			"notes":      expense.Notes,
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Expense
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": expenseId}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}
