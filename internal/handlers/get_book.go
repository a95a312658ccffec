package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/services"
)

// BookGetter defines the interface that the single-book lookup must implement.
type BookGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BookDB, error)
}

// GetBookErrorResponse represents a single-book lookup failure
// swagger:model GetBookErrorResponse
type GetBookErrorResponse struct {
	Message string `json:"message"`
}

// NewGetBookHandler returns an HTTP handler that fetches one book by id.
// @Summary Get a book by id
// @Description Retrieves a single book by its identifier.
// @Tags books
// @Produce json
// @Param id path string true "Book identifier"
// @Success 200 {object} models.BookDB "Book returned"
// @Failure 400 {object} handlers.GetBookErrorResponse "Missing or malformed id"
// @Failure 404 {object} handlers.GetBookErrorResponse "Book not found"
// @Failure 500 {object} handlers.GetBookErrorResponse "Lookup failure"
// @Security BearerAuth
// @Router /api/books/getBookById/{id} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			writeJSON(w, http.StatusBadRequest, GetBookErrorResponse{
				Message: "Book ID must be provided.",
			})
			return
		}

		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, GetBookErrorResponse{
				Message: "Invalid book ID format.",
			})
			return
		}

		book, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				writeJSON(w, http.StatusNotFound, GetBookErrorResponse{
					Message: "Book not found.",
				})
				return
			}
			logger.Log.Errorw("failed to get book", "book_id", idStr, "err", err)
			writeJSON(w, http.StatusInternalServerError, GetBookErrorResponse{
				Message: "An error occurred while retrieving the book.",
			})
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}
