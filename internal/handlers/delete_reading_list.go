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

// ReadingListDeleter defines the interface that the list deletion must implement.
type ReadingListDeleter interface {
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

// DeleteReadingListRequest represents the JSON body for a list deletion
// swagger:model DeleteReadingListRequest
type DeleteReadingListRequest struct {
	// User identifier
	// required: true
	UserID string `json:"userId"`
}

// DeleteReadingListResponse represents a successful list deletion
// swagger:model DeleteReadingListResponse
type DeleteReadingListResponse struct {
	Message string `json:"message"`
}

// NewDeleteReadingListHandler returns an HTTP handler that removes the
// user's entire reading list.
// @Summary Delete a reading list
// @Description Removes the whole reading list for the given user.
// @Tags readingList
// @Accept json
// @Produce json
// @Param deleteReadingListRequest body handlers.DeleteReadingListRequest true "User whose list to delete"
// @Success 200 {object} handlers.DeleteReadingListResponse "List deleted"
// @Failure 404 {object} handlers.ReadingListErrorResponse "No list for this user"
// @Failure 500 {object} handlers.ReadingListErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /api/readingList/deleteReadingList [post]
func NewDeleteReadingListHandler(svc ReadingListDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteReadingListRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
				Message: "Reading list not found for the given user.",
			})
			return
		}

		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
				Message: "Reading list not found for the given user.",
			})
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			if errors.Is(err, services.ErrListNotFound) {
				writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
					Message: "Reading list not found for the given user.",
				})
				return
			}
			logger.Log.Errorw("failed to delete reading list", "err", err)
			writeJSON(w, http.StatusInternalServerError, ReadingListErrorResponse{
				Message: "Failed to delete reading list.",
			})
			return
		}

		writeJSON(w, http.StatusOK, DeleteReadingListResponse{
			Message: "Reading list successfully deleted.",
		})
	}
}
