package goal_repository

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

type UpdateGoalRepository struct {
	Db *mongo.Database
}

func NewUpdateGoalRepository(db *mongo.Database) *UpdateGoalRepository {
	return &UpdateGoalRepository{
		Db: db,
	}
}

// Update persists a fully evaluated goal. Callers run ApplyCompletion before
// handing the goal over, so completed/completed_at land here already settled.
func (r *UpdateGoalRepository) Update(goalId primitive.ObjectID, goal *models.Goal) (*models.Goal, error) {
	collection := r.Db.Collection("goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":           goal.Name,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"deadline":       goal.Deadline,
			"category":       goal.Category,
			"icon":           goal.Icon,
			"color":          goal.Color,
			"completed":      goal.Completed,
			"completed_at":   goal.CompletedAt,
			"updated_at":     time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Goal
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": goalId}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}
