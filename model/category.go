package model

import "time"

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#F5C4A1"

type Category struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color" json:"color"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
