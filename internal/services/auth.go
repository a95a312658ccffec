package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserDoesNotExist   = errors.New("incorrect username")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrPasswordHashing    = errors.New("failed to secure password")
	ErrUserResave         = errors.New("failed to re-save user")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Insert(ctx context.Context, user *models.UserDB) error
	Touch(ctx context.Context, userID primitive.ObjectID) error
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID primitive.ObjectID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns a bearer token for it.
// The user identifier is assigned client-side so the token can be issued
// before the insert. An empty role defaults to RegisteredUser.
func (svc *AuthService) Register(ctx context.Context, username, password, email, role string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", fmt.Errorf("%w: %v", ErrPasswordHashing, err)
	}

	if role == "" {
		role = models.RoleRegisteredUser
	}

	user := &models.UserDB{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
		Active:   true,
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.writer.Insert(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		// The pre-check only covers the username; a duplicate email is
		// caught here by the unique index.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return "", ErrUserAlreadyExists
		}
		return "", err
	}

	return token, nil
}

// Login authenticates a user and returns a bearer token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	// Persistence round trip kept as an extension point for auditing.
	if err := svc.writer.Touch(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to re-save user after login", "err", err)
		return "", fmt.Errorf("%w: %v", ErrUserResave, err)
	}

	return token, nil
}
