package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
	"github.com/readleaf/readleaf-server/internal/services"
)

// BookSaver defines the interface that the catalog service must implement.
type BookSaver interface {
	Create(ctx context.Context, book *models.BookDB) error
}

// SaveBookRequest represents the JSON body for adding a book
// swagger:model SaveBookRequest
type SaveBookRequest struct {
	// Title
	// required: true
	// example: The Go Programming Language
	Title string `json:"title"`

	// Author
	// required: true
	// example: Alan Donovan
	Author string `json:"author"`

	// ISBN
	// required: true
	// example: 978-0134190440
	ISBN string `json:"isbn"`

	// Genre
	// example: Programming
	Genre string `json:"genre,omitempty"`

	// Pages
	// example: 380
	Pages int `json:"pages,omitempty"`

	// Description
	// example: The authoritative resource for any programmer who wants to learn Go.
	Description string `json:"description,omitempty"`
}

// SaveBookResponse represents the outcome of adding a book
// swagger:model SaveBookResponse
type SaveBookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSaveBookHandler returns an HTTP handler that adds a book to the catalog.
// @Summary Add a book
// @Description Adds a new book to the catalog. ISBN must be unique.
// @Tags books
// @Accept json
// @Produce json
// @Param saveBookRequest body handlers.SaveBookRequest true "Book to add"
// @Success 200 {object} handlers.SaveBookResponse "Book added"
// @Failure 400 {object} handlers.SaveBookResponse "Missing fields / other error"
// @Failure 409 {object} handlers.SaveBookResponse "Book already exists"
// @Failure 503 {object} handlers.SaveBookResponse "Store unavailable"
// @Security BearerAuth
// @Router /api/books/saveBooks [post]
func NewSaveBookHandler(svc BookSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveBookRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, SaveBookResponse{
				Message: "Title, author and ISBN are required.",
			})
			return
		}

		if req.Title == "" || req.Author == "" || req.ISBN == "" {
			writeJSON(w, http.StatusBadRequest, SaveBookResponse{
				Message: "Title, author and ISBN are required.",
			})
			return
		}

		book := &models.BookDB{
			ISBN:        req.ISBN,
			Title:       req.Title,
			Author:      req.Author,
			Genre:       req.Genre,
			Pages:       req.Pages,
			Description: req.Description,
		}

		if err := svc.Create(r.Context(), book); err != nil {
			switch {
			case errors.Is(err, services.ErrBookAlreadyExists):
				writeJSON(w, http.StatusConflict, SaveBookResponse{
					Message: "Book already exists.",
				})
			case errors.Is(err, repositories.ErrUnavailable):
				writeJSON(w, http.StatusServiceUnavailable, SaveBookResponse{
					Message: "Service unavailable. Please try again later.",
				})
			default:
				logger.Log.Errorw("failed to add book", "err", err)
				writeJSON(w, http.StatusBadRequest, SaveBookResponse{
					Message: "An error occurred. Please try again.",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, SaveBookResponse{
			Success: true,
			Message: "Book has been added successfully!",
		})
	}
}
