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

// ReadingListUpdater defines the interface that the entry update must implement.
type ReadingListUpdater interface {
	UpdateBook(ctx context.Context, userID, bookID primitive.ObjectID, status string, duration int) error
}

// UpdateReadingListRequest represents the JSON body for an entry update.
// Duration is a pointer so that an explicit zero is distinguishable from a
// missing field.
// swagger:model UpdateReadingListRequest
type UpdateReadingListRequest struct {
	// User identifier
	// required: true
	UserID string `json:"userId"`

	// Book identifier
	// required: true
	BookID string `json:"bookId"`

	// New status: Unread, In Progress or Finished
	// required: true
	Status string `json:"status"`

	// Cumulative reading time in minutes
	// required: true
	Duration *int `json:"duration"`
}

// UpdateReadingListResponse represents a successful entry update
// swagger:model UpdateReadingListResponse
type UpdateReadingListResponse struct {
	Message string `json:"message"`
}

// NewUpdateReadingListHandler returns an HTTP handler that updates the
// status and duration of exactly one reading list entry.
// @Summary Update a reading list entry
// @Description Applies status and duration to the matched entry; everything else in the list is untouched.
// @Tags readingList
// @Accept json
// @Produce json
// @Param updateReadingListRequest body handlers.UpdateReadingListRequest true "Entry update"
// @Success 200 {object} handlers.UpdateReadingListResponse "Entry updated"
// @Failure 400 {object} handlers.ReadingListErrorResponse "Missing fields / invalid status"
// @Failure 404 {object} handlers.ReadingListErrorResponse "List or entry not found"
// @Failure 500 {object} handlers.ReadingListErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /api/readingList/updateReadingList [post]
func NewUpdateReadingListHandler(svc ReadingListUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateReadingListRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
				Message: "Missing required fields",
			})
			return
		}

		if req.UserID == "" || req.BookID == "" || req.Status == "" || req.Duration == nil {
			writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
				Message: "Missing required fields",
			})
			return
		}

		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
				Message: "Invalid userId format.",
			})
			return
		}
		bookID, err := primitive.ObjectIDFromHex(req.BookID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
				Message: "Invalid bookId format.",
			})
			return
		}

		if err := svc.UpdateBook(r.Context(), userID, bookID, req.Status, *req.Duration); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Invalid status",
				})
			case errors.Is(err, services.ErrInvalidDuration):
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Invalid duration",
				})
			case errors.Is(err, services.ErrListNotFound):
				writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
					Message: "Reading list not found",
				})
			case errors.Is(err, services.ErrBookNotInList):
				writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
					Message: "Book not found in reading list",
				})
			default:
				logger.Log.Errorw("failed to update reading list", "err", err)
				writeJSON(w, http.StatusInternalServerError, ReadingListErrorResponse{
					Message: "Error updating reading list",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateReadingListResponse{
			Message: "Reading list updated successfully",
		})
	}
}
