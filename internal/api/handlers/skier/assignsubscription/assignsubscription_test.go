package assignsubscription

import (
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

// MockService реализует интерфейс assignsubscription.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AssignToSubscription(ctx context.Context, skierID, subscriptionID int) (*models.Skier, error) {
	args := m.Called(ctx, skierID, subscriptionID)
	if res := args.Get(0); res != nil {
		return res.(*models.Skier), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAssignSubscriptionHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		skierID        string
		subscriptionID string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "успешная привязка абонемента",
			skierID:        "1",
			subscriptionID: "7",
			setupMock: func(m *MockService) {
				skier := &models.Skier{
					ID:           1,
					FirstName:    "Anna",
					LastName:     "Petrova",
					Subscription: &models.Subscription{ID: 7, Type: models.TypeAnnual},
				}
				m.On("AssignToSubscription", mock.Anything, 1, 7).Return(skier, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"FirstName":"Anna"`,
		},
		{
			name:           "лыжник или абонемент не найдены",
			skierID:        "1",
			subscriptionID: "7",
			setupMock: func(m *MockService) {
				m.On("AssignToSubscription", mock.Anything, 1, 7).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"skier or subscription not found"}`,
		},
		{
			name:           "некорректный id в URL",
			skierID:        "abc",
			subscriptionID: "7",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:           "ошибка сервиса",
			skierID:        "1",
			subscriptionID: "7",
			setupMock: func(m *MockService) {
				m.On("AssignToSubscription", mock.Anything, 1, 7).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not assign subscription"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			url := "/skiers/" + tt.skierID + "/subscription/" + tt.subscriptionID
			req := httptest.NewRequest(http.MethodPut, url, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.skierID)
			rctx.URLParams.Add("subscription_id", tt.subscriptionID)
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
