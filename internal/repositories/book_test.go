package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/models"
)

func TestBookRepositories(t *testing.T) {
	db, teardown := setupMongo(t)
	defer teardown()

	ctx := context.Background()

	readRepo := NewBookReadRepository(db)
	writeRepo := NewBookWriteRepository(db)

	assert.NoError(t, writeRepo.EnsureIndexes(ctx))

	t.Run("empty catalog", func(t *testing.T) {
		books, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Empty(t, books)
	})

	book := &models.BookDB{
		ISBN:   "9780134190440",
		Title:  "The Go Programming Language",
		Author: "Alan Donovan",
		Genre:  "Programming",
		Pages:  380,
	}

	t.Run("insert assigns id and timestamps", func(t *testing.T) {
		assert.NoError(t, writeRepo.Insert(ctx, book))
		assert.False(t, book.ID.IsZero())
		assert.False(t, book.CreatedAt.IsZero())
	})

	t.Run("duplicate isbn rejected", func(t *testing.T) {
		dup := &models.BookDB{
			ISBN:   "9780134190440",
			Title:  "Another Title",
			Author: "Another Author",
		}
		err := writeRepo.Insert(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("get all", func(t *testing.T) {
		second := &models.BookDB{
			ISBN:   "9780201633610",
			Title:  "Design Patterns",
			Author: "Gang of Four",
		}
		assert.NoError(t, writeRepo.Insert(ctx, second))

		books, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, book.ID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, book.Title, got.Title)
		assert.Equal(t, book.ISBN, got.ISBN)
	})

	t.Run("get missing book returns nil", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, primitive.NewObjectID())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
