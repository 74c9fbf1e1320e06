package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalCategories is the fixed set of categories a savings goal can belong to.
var GoalCategories = []string{
	"Emergency Fund",
	"Vacation",
	"Education",
	"Home",
	"Car",
	"Investment",
	"Other",
}

type Goal struct {
	Id            primitive.ObjectID `bson:"_id" json:"id"`
	UserId        primitive.ObjectID `bson:"user_id" json:"userId"`
	Name          string             `bson:"name" json:"name"`
	TargetAmount  float64            `bson:"target_amount" json:"targetAmount"`
	CurrentAmount float64            `bson:"current_amount" json:"currentAmount"`
	Deadline      time.Time          `bson:"deadline" json:"deadline"`
	Category      string             `bson:"category" json:"category"`
	Icon          string             `bson:"icon" json:"icon"`
	Color         string             `bson:"color" json:"color"`
	Completed     bool               `bson:"completed" json:"completed"`
	CompletedAt   *time.Time         `bson:"completed_at" json:"completedAt,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ApplyCompletion re-derives the Completed/CompletedAt pair from the current
// and target amounts. Every mutation path (create, edit, contribute) must call
// it so the invariant Completed == (CurrentAmount >= TargetAmount) holds
// globally.
func (g *Goal) ApplyCompletion(now time.Time) {
	if g.CurrentAmount >= g.TargetAmount && !g.Completed {
		g.Completed = true
		g.CompletedAt = &now
	} else if g.CurrentAmount < g.TargetAmount && g.Completed {
		g.Completed = false
		g.CompletedAt = nil
	}
}
