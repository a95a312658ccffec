package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
	"github.com/readleaf/readleaf-server/internal/services"
)

// ReadingListSaver defines the interface that the merge service must implement.
type ReadingListSaver interface {
	Save(ctx context.Context, userID primitive.ObjectID, books []models.BookStatusDB) (*models.ReadingListDB, bool, error)
}

// ReadingListBookEntry is one incoming reading list entry
// swagger:model ReadingListBookEntry
type ReadingListBookEntry struct {
	// Book identifier
	// required: true
	BookID string `json:"bookId"`

	// Status, defaults to Unread
	// example: Unread
	Status string `json:"status,omitempty"`

	// Cumulative reading time in minutes, defaults to 0
	// example: 30
	Duration int `json:"duration,omitempty"`
}

// SaveReadingListRequest represents the JSON body for a reading list merge
// swagger:model SaveReadingListRequest
type SaveReadingListRequest struct {
	// User identifier
	// required: true
	UserID string `json:"userId"`

	// Books to merge into the list
	// required: true
	Books []ReadingListBookEntry `json:"books"`
}

// ReadingListCreatedResponse is returned when a list is created on first merge
// swagger:model ReadingListCreatedResponse
type ReadingListCreatedResponse struct {
	Message   string                `json:"message"`
	SavedList *models.ReadingListDB `json:"savedList"`
}

// ReadingListMergedResponse is returned when entries are merged into an existing list
// swagger:model ReadingListMergedResponse
type ReadingListMergedResponse struct {
	Message      string                `json:"message"`
	ExistingList *models.ReadingListDB `json:"existingList"`
}

// ReadingListErrorResponse represents a reading list failure
// swagger:model ReadingListErrorResponse
type ReadingListErrorResponse struct {
	Message string `json:"message"`
}

// NewSaveReadingListHandler returns an HTTP handler that merges book entries
// into the user's reading list, creating it on first use.
// @Summary Save a reading list
// @Description Merges the submitted book entries into the user's reading list. Any overlap with already-listed books rejects the whole request.
// @Tags readingList
// @Accept json
// @Produce json
// @Param saveReadingListRequest body handlers.SaveReadingListRequest true "Entries to merge"
// @Success 200 {object} handlers.ReadingListMergedResponse "Entries merged"
// @Success 201 {object} handlers.ReadingListCreatedResponse "List created"
// @Failure 400 {object} handlers.ReadingListErrorResponse "Validation failure / overlap"
// @Failure 409 {object} handlers.ReadingListErrorResponse "Concurrent modification"
// @Failure 500 {object} handlers.ReadingListErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /api/readingList/saveReadingList [post]
func NewSaveReadingListHandler(svc ReadingListSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveReadingListRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
				Message: "Invalid userId or books. Please provide a valid userId and an list of books.",
			})
			return
		}

		if req.UserID == "" || len(req.Books) == 0 {
			writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
				Message: "Invalid userId or books. Please provide a valid userId and an list of books.",
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

		books := make([]models.BookStatusDB, 0, len(req.Books))
		for _, b := range req.Books {
			bookID, err := primitive.ObjectIDFromHex(b.BookID)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Invalid bookId format.",
				})
				return
			}
			books = append(books, models.BookStatusDB{
				BookID:   bookID,
				Status:   b.Status,
				Duration: b.Duration,
			})
		}

		list, created, err := svc.Save(r.Context(), userID, books)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookAlreadyInList):
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Book already in user's reading list",
				})
			case errors.Is(err, services.ErrDuplicateBookInPayload):
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Duplicate bookId in books list.",
				})
			case errors.Is(err, services.ErrInvalidStatus):
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Invalid status",
				})
			case errors.Is(err, services.ErrInvalidDuration):
				writeJSON(w, http.StatusBadRequest, ReadingListErrorResponse{
					Message: "Invalid duration",
				})
			case errors.Is(err, repositories.ErrConflict):
				writeJSON(w, http.StatusConflict, ReadingListErrorResponse{
					Message: "Reading list was modified concurrently. Please retry.",
				})
			default:
				logger.Log.Errorw("failed to save reading list", "err", err)
				writeJSON(w, http.StatusInternalServerError, ReadingListErrorResponse{
					Message: "Failed to create or update the reading list.",
				})
			}
			return
		}

		if created {
			writeJSON(w, http.StatusCreated, ReadingListCreatedResponse{
				Message:   "Reading list created successfully",
				SavedList: list,
			})
			return
		}

		writeJSON(w, http.StatusOK, ReadingListMergedResponse{
			Message:      "Save successful",
			ExistingList: list,
		})
	}
}
