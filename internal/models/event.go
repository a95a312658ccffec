package models

// Reading list event operations.
const (
	EventListSaved   = "list_saved"
	EventListUpdated = "list_updated"
	EventListDeleted = "list_deleted"
	EventBookRemoved = "book_removed"
)

// ReadingListEvent is published to Kafka after a successful reading list
// mutation.
type ReadingListEvent struct {
	EventID   string   `json:"event_id"`
	Timestamp int64    `json:"timestamp"`
	UserID    string   `json:"user_id"`
	BookIDs   []string `json:"book_ids,omitempty"`
	Operation string   `json:"operation"`
}
