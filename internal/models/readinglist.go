package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reading statuses for a book in a reading list.
const (
	StatusUnread     = "Unread"
	StatusInProgress = "In Progress"
	StatusFinished   = "Finished"
)

// ValidStatus reports whether s is one of the reading statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusUnread, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// BookStatusDB is one entry of a reading list: a reference to a book
// with its reading status and cumulative reading time in minutes.
type BookStatusDB struct {
	BookID   primitive.ObjectID `json:"bookId" bson:"book_id"`
	Status   string             `json:"status" bson:"status"`
	Duration int                `json:"duration" bson:"duration"`
}

// ReadingListDB represents a reading list document in the "reading_lists"
// collection. There is at most one list per user; book_id values inside
// Books are unique within the list. Version is the optimistic-concurrency
// token bumped on every book-set rewrite.
type ReadingListDB struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"user_id"`
	Books     []BookStatusDB     `json:"books" bson:"books"`
	Version   int64              `json:"-" bson:"version"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
