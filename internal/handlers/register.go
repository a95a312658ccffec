package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email, role string) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Role, defaults to RegisteredUser
	// example: RegisteredUser
	Role string `json:"role,omitempty"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username and email. The password is hashed before storing and a bearer token is returned.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields / user already exists"
// @Failure 500 {object} handlers.RegisterErrorResponse "Hashing or persistence failure"
// @Router /api/users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{
				Message: "Please add all fields (Username, email, password) & try again.",
			})
			return
		}

		token, err := svc.Register(r.Context(), req.Username, req.Password, req.Email, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{
					Message: "User already exists",
				})
			case errors.Is(err, services.ErrPasswordHashing):
				// Never leak the hashing failure cause.
				writeJSON(w, http.StatusInternalServerError, RegisterErrorResponse{
					Message: "We encountered an issue while securing your information. Please retry.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, RegisterErrorResponse{
					Message: "Error saving user",
					Error:   err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, RegisterResponse{
			Success: true,
			Message: "User has been registered successfully!",
			Token:   token,
		})
	}
}
