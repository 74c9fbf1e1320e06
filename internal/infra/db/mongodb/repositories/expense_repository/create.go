package expense_repository

import (
	"context"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(expense *models.Expense) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	expense.Id = primitive.NewObjectID()
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, expense)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
