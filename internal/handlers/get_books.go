package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
)

// BooksLister defines the interface that the catalog listing service must implement.
type BooksLister interface {
	GetAll(ctx context.Context) ([]models.BookDB, error)
}

// GetBooksResponse represents the full catalog
// swagger:model GetBooksResponse
type GetBooksResponse struct {
	Success bool            `json:"success"`
	Data    []models.BookDB `json:"data"`
}

// GetBooksErrorResponse represents a catalog listing failure
// swagger:model GetBooksErrorResponse
type GetBooksErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewGetBooksHandler returns an HTTP handler that lists the whole catalog.
// @Summary List all books
// @Description Retrieves every book in the catalog.
// @Tags books
// @Produce json
// @Success 200 {object} handlers.GetBooksResponse "Books returned"
// @Failure 404 {object} handlers.GetBooksErrorResponse "No books found"
// @Failure 503 {object} handlers.GetBooksErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /api/books/getAllBooks [get]
func NewGetBooksHandler(svc BooksLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.GetAll(r.Context())
		if err != nil {
			if errors.Is(err, repositories.ErrUnavailable) {
				writeJSON(w, http.StatusServiceUnavailable, GetBooksErrorResponse{
					Message: "Service unavailable. Please try again later.",
				})
				return
			}
			logger.Log.Errorw("failed to list books", "err", err)
			writeJSON(w, http.StatusInternalServerError, GetBooksErrorResponse{
				Message: "An error occurred. Please try again.",
			})
			return
		}

		if len(books) == 0 {
			writeJSON(w, http.StatusNotFound, GetBooksErrorResponse{
				Message: "No books found.",
			})
			return
		}

		writeJSON(w, http.StatusOK, GetBooksResponse{
			Success: true,
			Data:    books,
		})
	}
}
