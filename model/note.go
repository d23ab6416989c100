package model

import "time"

type Note struct {
	ID     string `bson:"_id" json:"id"`
	UserID string `bson:"user_id" json:"user_id"`
	Title  string `bson:"title" json:"title"`
	// CategoryID is empty when the note is uncategorized. A category is a
	// weak reference: deleting the category clears this field, the note stays.
	CategoryID string    `bson:"category_id" json:"category_id"`
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
