package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseCategories is the fixed set of categories an expense can belong to.
var ExpenseCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Entertainment",
	"Bills",
	"Health",
	"Education",
	"Other",
}

type Expense struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	UserId    primitive.ObjectID `bson:"user_id" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Amount    float64            `bson:"amount" json:"amount"`
	Category  string             `bson:"category" json:"category"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
