package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
)

var (
	// ErrBookAlreadyInList rejects a merge whose payload overlaps the
	// existing list. The whole request is rejected, never a partial merge.
	ErrBookAlreadyInList = errors.New("book already in user's reading list")
	// ErrDuplicateBookInPayload rejects a payload that references the same
	// book twice.
	ErrDuplicateBookInPayload = errors.New("duplicate book in payload")
	ErrListNotFound           = errors.New("reading list not found")
	ErrBookNotInList          = errors.New("book not found in reading list")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidDuration        = errors.New("invalid duration")
)

// ReadingListReader defines read-only operations for reading lists.
type ReadingListReader interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.ReadingListDB, error)
}

// ReadingListWriter defines write operations for reading lists.
type ReadingListWriter interface {
	Insert(ctx context.Context, list *models.ReadingListDB) error
	ReplaceBooks(ctx context.Context, listID primitive.ObjectID, version int64, books []models.BookStatusDB) error
	UpdateBookStatus(ctx context.Context, userID, bookID primitive.ObjectID, status string, duration int) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
	PullBook(ctx context.Context, userID, bookID primitive.ObjectID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReadingListService handles per-user reading lists and publishes activity
// events.
type ReadingListService struct {
	reader      ReadingListReader
	writer      ReadingListWriter
	kafkaWriter KafkaWriter
}

// NewReadingListService creates a new ReadingListService. kafkaWriter may be
// nil, in which case event publishing is skipped.
func NewReadingListService(reader ReadingListReader, writer ReadingListWriter, kafkaWriter KafkaWriter) *ReadingListService {
	return &ReadingListService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// normalizeBooks applies entry defaults and validates status and duration.
func normalizeBooks(books []models.BookStatusDB) error {
	for i := range books {
		if books[i].Status == "" {
			books[i].Status = models.StatusUnread
		}
		if !models.ValidStatus(books[i].Status) {
			return ErrInvalidStatus
		}
		if books[i].Duration < 0 {
			return ErrInvalidDuration
		}
	}
	return nil
}

// mergeBooks reconciles an incoming entry set into an existing one.
// Any overlap between the two sets aborts the merge. The union preserves
// existing entries first, in their stored order, then the genuinely new
// incoming entries in their given order.
func mergeBooks(existing, incoming []models.BookStatusDB) ([]models.BookStatusDB, error) {
	existingIDs := make(map[primitive.ObjectID]struct{}, len(existing))
	for _, b := range existing {
		existingIDs[b.BookID] = struct{}{}
	}

	for _, b := range incoming {
		if _, ok := existingIDs[b.BookID]; ok {
			return nil, ErrBookAlreadyInList
		}
	}

	merged := make([]models.BookStatusDB, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)
	merged = append(merged, incoming...)
	return merged, nil
}

// Save merges the incoming entries into the user's reading list, creating the
// list on first use. Returns the resulting list and whether it was created.
// The rewrite of an existing list is a compare-and-swap on the list version;
// a concurrent merge for the same user surfaces as repositories.ErrConflict.
func (svc *ReadingListService) Save(ctx context.Context, userID primitive.ObjectID, books []models.BookStatusDB) (*models.ReadingListDB, bool, error) {
	if err := normalizeBooks(books); err != nil {
		return nil, false, err
	}

	seen := make(map[primitive.ObjectID]struct{}, len(books))
	for _, b := range books {
		if _, ok := seen[b.BookID]; ok {
			return nil, false, ErrDuplicateBookInPayload
		}
		seen[b.BookID] = struct{}{}
	}

	existing, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up reading list", "user_id", userID.Hex(), "err", err)
		return nil, false, err
	}

	if existing == nil {
		list := &models.ReadingListDB{
			UserID: userID,
			Books:  books,
		}
		if err := svc.writer.Insert(ctx, list); err != nil {
			logger.Log.Errorw("failed to create reading list", "user_id", userID.Hex(), "err", err)
			return nil, false, err
		}
		svc.publishEvent(ctx, models.EventListSaved, userID, bookIDs(books))
		return list, true, nil
	}

	merged, err := mergeBooks(existing.Books, books)
	if err != nil {
		return nil, false, err
	}

	if err := svc.writer.ReplaceBooks(ctx, existing.ID, existing.Version, merged); err != nil {
		logger.Log.Errorw("failed to update reading list", "user_id", userID.Hex(), "err", err)
		return nil, false, err
	}

	existing.Books = merged
	svc.publishEvent(ctx, models.EventListSaved, userID, bookIDs(books))
	return existing, false, nil
}

// Get returns the user's reading list, or ErrListNotFound.
func (svc *ReadingListService) Get(ctx context.Context, userID primitive.ObjectID) (*models.ReadingListDB, error) {
	list, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get reading list", "user_id", userID.Hex(), "err", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// UpdateBook applies status and duration to exactly one entry of the user's
// list. Other entries and list-level fields stay untouched.
func (svc *ReadingListService) UpdateBook(ctx context.Context, userID, bookID primitive.ObjectID, status string, duration int) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if duration < 0 {
		return ErrInvalidDuration
	}

	list, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up reading list", "user_id", userID.Hex(), "err", err)
		return err
	}
	if list == nil {
		return ErrListNotFound
	}

	found := false
	for _, b := range list.Books {
		if b.BookID == bookID {
			found = true
			break
		}
	}
	if !found {
		return ErrBookNotInList
	}

	if err := svc.writer.UpdateBookStatus(ctx, userID, bookID, status, duration); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// The entry vanished between the read and the write.
			return ErrBookNotInList
		}
		logger.Log.Errorw("failed to update reading list entry", "user_id", userID.Hex(), "book_id", bookID.Hex(), "err", err)
		return err
	}

	svc.publishEvent(ctx, models.EventListUpdated, userID, []string{bookID.Hex()})
	return nil
}

// Delete removes the user's entire reading list.
func (svc *ReadingListService) Delete(ctx context.Context, userID primitive.ObjectID) error {
	if err := svc.writer.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrListNotFound
		}
		logger.Log.Errorw("failed to delete reading list", "user_id", userID.Hex(), "err", err)
		return err
	}

	svc.publishEvent(ctx, models.EventListDeleted, userID, nil)
	return nil
}

// RemoveBook removes exactly the entry matching bookID from the user's list.
// Removing an entry that was never in the list is an error, not a no-op.
func (svc *ReadingListService) RemoveBook(ctx context.Context, userID, bookID primitive.ObjectID) error {
	removed, err := svc.writer.PullBook(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrListNotFound
		}
		logger.Log.Errorw("failed to remove book from reading list", "user_id", userID.Hex(), "book_id", bookID.Hex(), "err", err)
		return err
	}
	if !removed {
		return ErrBookNotInList
	}

	svc.publishEvent(ctx, models.EventBookRemoved, userID, []string{bookID.Hex()})
	return nil
}

func bookIDs(books []models.BookStatusDB) []string {
	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.BookID.Hex())
	}
	return ids
}

// publishEvent publishes a reading list activity event to Kafka.
func (svc *ReadingListService) publishEvent(ctx context.Context, operation string, userID primitive.ObjectID, bookIDs []string) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.ReadingListEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.Hex(),
		BookIDs:   bookIDs,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal reading list event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish reading list event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Reading list event published", "event_id", event.EventID, "operation", operation)
	}
}
