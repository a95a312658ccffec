package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/readleaf/readleaf-server/internal/services"
)

func TestUpdateReadingListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID()
	bookID := primitive.NewObjectID()

	body := func(status string, duration int) string {
		return fmt.Sprintf(`{"userId":%q,"bookId":%q,"status":%q,"duration":%d}`,
			userID.Hex(), bookID.Hex(), status, duration)
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockReadingListUpdater)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: body("Finished", 120),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "Finished", 120).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Reading list updated successfully",
		},
		{
			name: "explicit zero duration",
			body: body("In Progress", 0),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "In Progress", 0).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Reading list updated successfully",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockReadingListUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Missing required fields",
		},
		{
			name:         "missing duration",
			body:         fmt.Sprintf(`{"userId":%q,"bookId":%q,"status":"Finished"}`, userID.Hex(), bookID.Hex()),
			mockSetup:    func(m *MockReadingListUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Missing required fields",
		},
		{
			name:         "missing status",
			body:         fmt.Sprintf(`{"userId":%q,"bookId":%q,"duration":10}`, userID.Hex(), bookID.Hex()),
			mockSetup:    func(m *MockReadingListUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Missing required fields",
		},
		{
			name:         "malformed userId",
			body:         fmt.Sprintf(`{"userId":"nope","bookId":%q,"status":"Finished","duration":10}`, bookID.Hex()),
			mockSetup:    func(m *MockReadingListUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid userId format.",
		},
		{
			name:         "malformed bookId",
			body:         fmt.Sprintf(`{"userId":%q,"bookId":"nope","status":"Finished","duration":10}`, userID.Hex()),
			mockSetup:    func(m *MockReadingListUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid bookId format.",
		},
		{
			name: "invalid status",
			body: body("Reading", 10),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "Reading", 10).
					Return(services.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid status",
		},
		{
			name: "invalid duration",
			body: body("Finished", -5),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "Finished", -5).
					Return(services.ErrInvalidDuration)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid duration",
		},
		{
			name: "list not found",
			body: body("Finished", 10),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "Finished", 10).
					Return(services.ErrListNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Reading list not found",
		},
		{
			name: "book not in list",
			body: body("Finished", 10),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "Finished", 10).
					Return(services.ErrBookNotInList)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Book not found in reading list",
		},
		{
			name: "persistence failure",
			body: body("Finished", 10),
			mockSetup: func(m *MockReadingListUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), userID, bookID, "Finished", 10).
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Error updating reading list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReadingListUpdater(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUpdateReadingListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/readingList/updateReadingList", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}
