package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
	"github.com/readleaf/readleaf-server/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		password     string
		email        string
		role         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			email:    "alice@example.com",
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{ID: primitive.NewObjectID(), Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "duplicate email caught by index",
			username:  "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: repositories.ErrDuplicateKey,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			username:  "dave",
			password:  "pass123",
			email:     "dave@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("token123", nil)
				mockWriter.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			token, err := svc.Register(context.Background(), tt.username, tt.password, tt.email, tt.role)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
			}
		})
	}
}

func TestAuthService_Register_TrimsWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(nil, nil)
	mockJWT.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("token123", nil)
	mockWriter.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.UserDB) error {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			return nil
		})

	token, err := svc.Register(context.Background(), "  alice  ", "pass123", " alice@example.com ", "")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
}

func TestAuthService_Register_DefaultsRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token123", nil)
	mockWriter.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.UserDB) error {
			assert.Equal(t, models.RoleRegisteredUser, user.Role)
			assert.True(t, user.Active)
			assert.NotEqual(t, "pass123", user.Password)
			return nil
		})

	_, err := svc.Register(context.Background(), "alice", "pass123", "alice@example.com", "")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := primitive.NewObjectID()

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		touchErr  error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			wantToken: "token123",
		},
		{
			name:      "user does not exist",
			username:  "ghost",
			loginPass: password,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "jwt error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
		{
			name:      "touch error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			touchErr:  errors.New("update error"),
			wantErr:   services.ErrUserResave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return("token123", tt.jwtErr)
				if tt.jwtErr == nil {
					mockWriter.EXPECT().
						Touch(gomock.Any(), tt.user.ID).
						Return(tt.touchErr)
				}
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
