package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
)

func TestGetBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	books := []models.BookDB{
		{ID: primitive.NewObjectID(), Title: "Book One", Author: "Author One", ISBN: "111"},
		{ID: primitive.NewObjectID(), Title: "Book Two", Author: "Author Two", ISBN: "222"},
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockBooksLister)
		expectedCode int
		expectedMsg  string
		expectData   int
	}{
		{
			name: "success",
			mockSetup: func(m *MockBooksLister) {
				m.EXPECT().GetAll(gomock.Any()).Return(books, nil)
			},
			expectedCode: http.StatusOK,
			expectData:   2,
		},
		{
			name: "empty catalog",
			mockSetup: func(m *MockBooksLister) {
				m.EXPECT().GetAll(gomock.Any()).Return([]models.BookDB{}, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "No books found.",
		},
		{
			name: "store unavailable",
			mockSetup: func(m *MockBooksLister) {
				m.EXPECT().GetAll(gomock.Any()).Return(nil, repositories.ErrUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedMsg:  "Service unavailable. Please try again later.",
		},
		{
			name: "other error",
			mockSetup: func(m *MockBooksLister) {
				m.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "An error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBooksLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetBooksHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/books/getAllBooks", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp["message"])
			}
			if tt.expectData > 0 {
				assert.Equal(t, true, resp["success"])
				data, ok := resp["data"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, data, tt.expectData)
			}
		})
	}
}
