package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
)

const readingListsCollection = "reading_lists"

type ReadingListReadRepository struct {
	coll *mongo.Collection
}

func NewReadingListReadRepository(db *mongo.Database) *ReadingListReadRepository {
	return &ReadingListReadRepository{coll: db.Collection(readingListsCollection)}
}

// GetByUserID returns the user's reading list, or nil when the user has none.
func (r *ReadingListReadRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.ReadingListDB, error) {
	var list models.ReadingListDB
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&list)

	logger.Log.Infow("reading_lists.findOne",
		"user_id", userID.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError(err)
	}
	return &list, nil
}

type ReadingListWriteRepository struct {
	coll *mongo.Collection
}

func NewReadingListWriteRepository(db *mongo.Database) *ReadingListWriteRepository {
	return &ReadingListWriteRepository{coll: db.Collection(readingListsCollection)}
}

// EnsureIndexes creates the user_id lookup index. Deliberately not unique:
// one-list-per-user is enforced by lookup-before-insert.
func (r *ReadingListWriteRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_reading_lists_user"),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return wrapError(err)
}

// Insert persists a brand-new reading list.
func (r *ReadingListWriteRepository) Insert(ctx context.Context, list *models.ReadingListDB) error {
	if list.ID.IsZero() {
		list.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	list.CreatedAt = now
	list.UpdatedAt = now
	list.Version = 1

	_, err := r.coll.InsertOne(ctx, list)

	logger.Log.Infow("reading_lists.insertOne",
		"list_id", list.ID.Hex(),
		"user_id", list.UserID.Hex(),
		"error", err,
	)

	return wrapError(err)
}

// ReplaceBooks rewrites the book set of a list with a compare-and-swap on the
// version token. Returns ErrConflict when the list changed since it was read.
func (r *ReadingListWriteRepository) ReplaceBooks(ctx context.Context, listID primitive.ObjectID, version int64, books []models.BookStatusDB) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": listID, "version": version},
		bson.M{
			"$set": bson.M{
				"books":      books,
				"updated_at": time.Now().UTC(),
			},
			"$inc": bson.M{"version": 1},
		},
	)

	logger.Log.Infow("reading_lists.updateOne",
		"list_id", listID.Hex(),
		"version", version,
		"error", err,
	)

	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrConflict
	}
	return nil
}

// UpdateBookStatus applies a targeted field update to exactly one entry of
// the user's list via the positional operator. Everything else in the
// document is untouched. Returns ErrNotFound when no list entry matches.
func (r *ReadingListWriteRepository) UpdateBookStatus(ctx context.Context, userID, bookID primitive.ObjectID, status string, duration int) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID, "books.book_id": bookID},
		bson.M{"$set": bson.M{
			"books.$.status":   status,
			"books.$.duration": duration,
			"updated_at":       time.Now().UTC(),
		}},
	)

	logger.Log.Infow("reading_lists.updateBookStatus",
		"user_id", userID.Hex(),
		"book_id", bookID.Hex(),
		"status", status,
		"error", err,
	)

	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUserID removes the user's entire reading list.
func (r *ReadingListWriteRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})

	logger.Log.Infow("reading_lists.deleteOne",
		"user_id", userID.Hex(),
		"error", err,
	)

	if err != nil {
		return wrapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PullBook removes the entry matching bookID from the user's list.
// Returns ErrNotFound when the user has no list; removed reports whether the
// entry existed before the pull, so the caller can tell "entry was never
// there" apart from a successful removal.
func (r *ReadingListWriteRepository) PullBook(ctx context.Context, userID, bookID primitive.ObjectID) (removed bool, err error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before models.ReadingListDB
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"books": bson.M{"book_id": bookID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		opts,
	).Decode(&before)

	logger.Log.Infow("reading_lists.pullBook",
		"user_id", userID.Hex(),
		"book_id", bookID.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, wrapError(err)
	}

	for _, b := range before.Books {
		if b.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}
