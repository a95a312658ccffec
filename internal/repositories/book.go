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

const booksCollection = "books"

type BookReadRepository struct {
	coll *mongo.Collection
}

func NewBookReadRepository(db *mongo.Database) *BookReadRepository {
	return &BookReadRepository{coll: db.Collection(booksCollection)}
}

// GetAll returns every book in the catalog.
func (r *BookReadRepository) GetAll(ctx context.Context) ([]models.BookDB, error) {
	cur, err := r.coll.Find(ctx, bson.M{})

	logger.Log.Infow("books.find", "error", err)

	if err != nil {
		return nil, wrapError(err)
	}
	defer cur.Close(ctx)

	var books []models.BookDB
	if err := cur.All(ctx, &books); err != nil {
		return nil, wrapError(err)
	}
	return books, nil
}

// GetByID returns the book with the given identifier, or nil when absent.
func (r *BookReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BookDB, error) {
	var book models.BookDB
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&book)

	logger.Log.Infow("books.findOne",
		"book_id", id.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError(err)
	}
	return &book, nil
}

type BookWriteRepository struct {
	coll *mongo.Collection
}

func NewBookWriteRepository(db *mongo.Database) *BookWriteRepository {
	return &BookWriteRepository{coll: db.Collection(booksCollection)}
}

// EnsureIndexes creates the unique index on isbn. Idempotent.
func (r *BookWriteRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isbn", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_books_isbn"),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return wrapError(err)
}

// Insert persists a new book document.
func (r *BookWriteRepository) Insert(ctx context.Context, book *models.BookDB) error {
	if book.ID.IsZero() {
		book.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, book)

	logger.Log.Infow("books.insertOne",
		"book_id", book.ID.Hex(),
		"isbn", book.ISBN,
		"error", err,
	)

	return wrapError(err)
}
