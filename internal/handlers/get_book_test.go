package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/services"
)

// newGetBookRequest builds a request carrying the id as a chi URL parameter.
func newGetBookRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/books/getBookById/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := primitive.NewObjectID()
	book := &models.BookDB{ID: bookID, Title: "Book One", Author: "Author One", ISBN: "111"}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockBookGetter)
		expectedCode int
		expectedMsg  string
		expectBook   bool
	}{
		{
			name: "success",
			id:   bookID.Hex(),
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().GetByID(gomock.Any(), bookID).Return(book, nil)
			},
			expectedCode: http.StatusOK,
			expectBook:   true,
		},
		{
			name:         "missing id",
			id:           "",
			mockSetup:    func(m *MockBookGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Book ID must be provided.",
		},
		{
			name:         "malformed id",
			id:           "not-a-hex-id",
			mockSetup:    func(m *MockBookGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid book ID format.",
		},
		{
			name: "not found",
			id:   bookID.Hex(),
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, services.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Book not found.",
		},
		{
			name: "lookup failure",
			id:   bookID.Hex(),
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "An error occurred while retrieving the book.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetBookHandler(mockSvc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newGetBookRequest(tt.id))

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectBook {
				var got models.BookDB
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, book.ID, got.ID)
				assert.Equal(t, book.Title, got.Title)
				return
			}

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}
