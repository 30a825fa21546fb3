package addskiercourse

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// MockService реализует интерфейс addskiercourse.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AddAndAssignToSkierAndCourse(ctx context.Context, req models.DummyRegistration, skierID, courseID int) (*models.Registration, error) {
	args := m.Called(ctx, req, skierID, courseID)
	if res := args.Get(0); res != nil {
		return res.(*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAddSkierCourseHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		skierID        string
		courseID       string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная запись на курс",
			skierID:     "1",
			courseID:    "2",
			requestBody: `{"num_week":3}`,
			setupMock: func(m *MockService) {
				m.On("AddAndAssignToSkierAndCourse", mock.Anything,
					models.DummyRegistration{NumWeek: 3}, 1, 2).
					Return(&models.Registration{ID: 5, NumWeek: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"ID":5`,
		},
		{
			name:        "запись отклонена",
			skierID:     "1",
			courseID:    "2",
			requestBody: `{"num_week":3}`,
			setupMock: func(m *MockService) {
				m.On("AddAndAssignToSkierAndCourse", mock.Anything,
					models.DummyRegistration{NumWeek: 3}, 1, 2).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"registration denied"}`,
		},
		{
			name:           "невалидный номер недели",
			skierID:        "1",
			courseID:       "2",
			requestBody:    `{"num_week":0}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field NumWeek is a required field"}`,
		},
		{
			name:           "некорректный JSON",
			skierID:        "1",
			courseID:       "2",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "некорректный skier_id в URL",
			skierID:        "abc",
			courseID:       "2",
			requestBody:    `{"num_week":3}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode skier_id from url"}`,
		},
		{
			name:        "ошибка сервиса",
			skierID:     "1",
			courseID:    "2",
			requestBody: `{"num_week":3}`,
			setupMock: func(m *MockService) {
				m.On("AddAndAssignToSkierAndCourse", mock.Anything,
					models.DummyRegistration{NumWeek: 3}, 1, 2).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create registration"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			url := "/registrations/skier/" + tt.skierID + "/course/" + tt.courseID
			req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("skier_id", tt.skierID)
			rctx.URLParams.Add("course_id", tt.courseID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
