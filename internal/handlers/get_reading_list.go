package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/services"
)

// ReadingListGetter defines the interface that the list lookup must implement.
type ReadingListGetter interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*models.ReadingListDB, error)
}

// GetReadingListRequest represents the JSON body for a reading list lookup
// swagger:model GetReadingListRequest
type GetReadingListRequest struct {
	// User identifier
	// required: true
	UserID string `json:"userId"`
}

// NewGetReadingListHandler returns an HTTP handler that fetches the user's
// reading list.
// @Summary Get a reading list
// @Description Retrieves the reading list for the given user.
// @Tags readingList
// @Accept json
// @Produce json
// @Param getReadingListRequest body handlers.GetReadingListRequest true "User to look up"
// @Success 200 {object} models.ReadingListDB "Reading list returned"
// @Failure 404 {object} handlers.ReadingListErrorResponse "No list for this user"
// @Failure 500 {object} handlers.ReadingListErrorResponse "Lookup failure"
// @Security BearerAuth
// @Router /api/readingList/getReadingListbyId [get]
func NewGetReadingListHandler(svc ReadingListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GetReadingListRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
				Message: "Reading list not found for the given user.",
			})
			return
		}

		// A missing or malformed userId can never match a list.
		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
				Message: "Reading list not found for the given user.",
			})
			return
		}

		list, err := svc.Get(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrListNotFound) {
				writeJSON(w, http.StatusNotFound, ReadingListErrorResponse{
					Message: "Reading list not found for the given user.",
				})
				return
			}
			logger.Log.Errorw("failed to get reading list", "err", err)
			writeJSON(w, http.StatusInternalServerError, ReadingListErrorResponse{
				Message: "An error occurred while fetching the reading list.",
			})
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
