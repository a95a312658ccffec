package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	Message string `json:"message"`
}

// LoginSaveErrorResponse represents a failed post-login user re-save
// swagger:model LoginSaveErrorResponse
type LoginSaveErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user and returns a bearer token.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Incorrect username or password"
// @Failure 500 {object} handlers.LoginSaveErrorResponse "Persistence failure"
// @Router /api/users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, LoginErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeJSON(w, http.StatusBadRequest, LoginErrorResponse{
					Message: "Incorrect username.",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusBadRequest, LoginErrorResponse{
					Message: "Incorrect password.",
				})
			case errors.Is(err, services.ErrUserResave):
				writeJSON(w, http.StatusInternalServerError, LoginSaveErrorResponse{
					Message: "There was an issue saving your information. Please try again later.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, LoginErrorResponse{
					Message: err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token:   token,
			Message: "success",
		})
	}
}
