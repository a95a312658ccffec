package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookDB represents a book document in the "books" collection.
// ISBN is unique across the collection; documents are immutable after insert.
type BookDB struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ISBN        string             `json:"isbn" bson:"isbn"`
	Title       string             `json:"title" bson:"title"`
	Author      string             `json:"author" bson:"author"`
	Genre       string             `json:"genre,omitempty" bson:"genre,omitempty"`
	Pages       int                `json:"pages,omitempty" bson:"pages,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
