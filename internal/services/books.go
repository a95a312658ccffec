package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
)

var (
	ErrBookAlreadyExists = errors.New("book already exists")
	ErrBookNotFound      = errors.New("book not found")
)

// BookReader defines read-only operations for the catalog.
type BookReader interface {
	GetAll(ctx context.Context) ([]models.BookDB, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BookDB, error)
}

// BookWriter defines write operations for the catalog.
type BookWriter interface {
	Insert(ctx context.Context, book *models.BookDB) error
}

// BookService handles the book catalog.
type BookService struct {
	reader BookReader
	writer BookWriter
}

// NewBookService creates a new BookService instance.
func NewBookService(reader BookReader, writer BookWriter) *BookService {
	return &BookService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts a new catalog entry. Duplicate ISBNs are rejected by the
// unique index.
func (svc *BookService) Create(ctx context.Context, book *models.BookDB) error {
	if err := svc.writer.Insert(ctx, book); err != nil {
		logger.Log.Errorw("failed to save book", "isbn", book.ISBN, "err", err)
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrBookAlreadyExists
		}
		return err
	}
	return nil
}

// GetAll returns the whole catalog. An empty catalog yields an empty slice,
// not an error.
func (svc *BookService) GetAll(ctx context.Context) ([]models.BookDB, error) {
	books, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, err
	}
	return books, nil
}

// GetByID returns a single book, or ErrBookNotFound.
func (svc *BookService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BookDB, error) {
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "book_id", id.Hex(), "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}
