package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/services"
)

// ReadingListBookRemover defines the interface that the entry removal must implement.
type ReadingListBookRemover interface {
	RemoveBook(ctx context.Context, userID, bookID primitive.ObjectID) error
}

// DeleteBookRequest represents the JSON body for an entry removal
// swagger:model DeleteBookRequest
type DeleteBookRequest struct {
	// User identifier
	// required: true
	UserID string `json:"userId"`

	// Book identifier
	// required: true
	BookID string `json:"bookId"`
}

// DeleteBookResponse represents a successful entry removal
// swagger:model DeleteBookResponse
type DeleteBookResponse struct {
	Message string `json:"message"`
}

// DeleteBookErrorResponse represents an entry removal failure
// swagger:model DeleteBookErrorResponse
type DeleteBookErrorResponse struct {
	Error string `json:"error"`
}

// NewDeleteBookFromReadingListHandler returns an HTTP handler that removes
// exactly one entry from the user's reading list.
// @Summary Remove a book from a reading list
// @Description Removes the entry matching bookId; removing a book that was never listed is an error.
// @Tags readingList
// @Accept json
// @Produce json
// @Param deleteBookRequest body handlers.DeleteBookRequest true "Entry to remove"
// @Success 200 {object} handlers.DeleteBookResponse "Entry removed"
// @Failure 400 {object} handlers.DeleteBookErrorResponse "Missing or malformed fields"
// @Failure 404 {object} handlers.DeleteBookErrorResponse "List or entry not found"
// @Failure 500 {object} handlers.DeleteBookErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /api/readingList/deleteBookFromReadingList [post]
func NewDeleteBookFromReadingListHandler(svc ReadingListBookRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteBookRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, DeleteBookErrorResponse{
				Error: "Missing required fields",
			})
			return
		}

		if req.UserID == "" || req.BookID == "" {
			writeJSON(w, http.StatusBadRequest, DeleteBookErrorResponse{
				Error: "Missing required fields",
			})
			return
		}

		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, DeleteBookErrorResponse{
				Error: "Invalid userId or bookId format.",
			})
			return
		}
		bookID, err := primitive.ObjectIDFromHex(req.BookID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, DeleteBookErrorResponse{
				Error: "Invalid userId or bookId format.",
			})
			return
		}

		if err := svc.RemoveBook(r.Context(), userID, bookID); err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				writeJSON(w, http.StatusNotFound, DeleteBookErrorResponse{
					Error: "Reading list not found",
				})
			case errors.Is(err, services.ErrBookNotInList):
				writeJSON(w, http.StatusNotFound, DeleteBookErrorResponse{
					Error: "Book not found in the reading list",
				})
			default:
				logger.Log.Errorw("failed to remove book from reading list", "err", err)
				writeJSON(w, http.StatusInternalServerError, DeleteBookErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteBookResponse{
			Message: "Book deleted from reading list successfully",
		})
	}
}
