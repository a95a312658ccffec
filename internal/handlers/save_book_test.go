package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/readleaf/readleaf-server/internal/models"
	"github.com/readleaf/readleaf-server/internal/repositories"
	"github.com/readleaf/readleaf-server/internal/services"
)

func TestSaveBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockBookSaver)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"title":"The Go Programming Language","author":"Alan Donovan","isbn":"978-0134190440","genre":"Programming","pages":380}`,
			mockSetup: func(m *MockBookSaver) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, book *models.BookDB) error {
						assert.Equal(t, "978-0134190440", book.ISBN)
						assert.Equal(t, "The Go Programming Language", book.Title)
						assert.Equal(t, "Alan Donovan", book.Author)
						assert.Equal(t, "Programming", book.Genre)
						assert.Equal(t, 380, book.Pages)
						return nil
					})
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Book has been added successfully!",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockBookSaver) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Title, author and ISBN are required.",
		},
		{
			name:         "missing title",
			body:         `{"author":"Alan Donovan","isbn":"978-0134190440"}`,
			mockSetup:    func(m *MockBookSaver) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Title, author and ISBN are required.",
		},
		{
			name:         "missing isbn",
			body:         `{"title":"The Go Programming Language","author":"Alan Donovan"}`,
			mockSetup:    func(m *MockBookSaver) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Title, author and ISBN are required.",
		},
		{
			name: "duplicate isbn",
			body: `{"title":"The Go Programming Language","author":"Alan Donovan","isbn":"978-0134190440"}`,
			mockSetup: func(m *MockBookSaver) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(services.ErrBookAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "Book already exists.",
		},
		{
			name: "store unavailable",
			body: `{"title":"The Go Programming Language","author":"Alan Donovan","isbn":"978-0134190440"}`,
			mockSetup: func(m *MockBookSaver) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(repositories.ErrUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedMsg:  "Service unavailable. Please try again later.",
		},
		{
			name: "other error",
			body: `{"title":"The Go Programming Language","author":"Alan Donovan","isbn":"978-0134190440"}`,
			mockSetup: func(m *MockBookSaver) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "An error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookSaver(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSaveBookHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/books/saveBooks", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}
