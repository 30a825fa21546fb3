package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/lib/clock"
	"github.com/magabrotheeeer/ski-station/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error) {
	args := m.Called(ctx, sub, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListSubscriptionsByType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Subscription, error) {
	args := m.Called(ctx, typeSub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}
func (m *RepoMock) ListSubscriptionsByStartDateRange(ctx context.Context, start, end time.Time) ([]*models.Subscription, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}
func (m *RepoMock) ListSubscriptionsOrderedByEndDate(ctx context.Context) ([]*models.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}
func (m *RepoMock) SumPriceByType(ctx context.Context, typeSub models.SubscriptionType) (float64, error) {
	args := m.Called(ctx, typeSub)
	return args.Get(0).(float64), args.Error(1)
}

type SkierFinderMock struct{ mock.Mock }

func (m *SkierFinderMock) FindSkierBySubscription(ctx context.Context, subscriptionID int) (*models.Skier, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skier), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

var today = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func newService(repo *RepoMock, skiers *SkierFinderMock, cache *CacheMock) *SubscriptionService {
	return NewSubscriptionService(repo, skiers, cache, clock.Fixed{Time: today}, newNoopLogger())
}

func TestSubscriptionService_Add(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		req        models.DummySubscription
		setupMocks func(r *RepoMock, c *CacheMock)
		wantID     int
		wantErr    bool
	}{
		{
			name: "annual subscription ends twelve months later",
			req: models.DummySubscription{
				Type:      string(models.TypeAnnual),
				StartDate: start.Format("02-01-2006"),
				Price:     900,
			},
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(sub models.Subscription) bool {
					return sub.Type == models.TypeAnnual &&
						sub.StartDate.Equal(start) &&
						sub.EndDate.Equal(start.AddDate(0, 12, 0))
				})).Return(42, nil).Once()
				c.On("Set", "subscription:42", mock.Anything, time.Hour).Return(nil).Once()
			},
			wantID: 42,
		},
		{
			name: "invalid date",
			req: models.DummySubscription{
				Type:      string(models.TypeMonthly),
				StartDate: "not-a-date",
			},
			setupMocks: func(_ *RepoMock, _ *CacheMock) {},
			wantErr:    true,
		},
		{
			name: "unknown type",
			req: models.DummySubscription{
				Type:      "WEEKLY",
				StartDate: start.Format("02-01-2006"),
			},
			setupMocks: func(_ *RepoMock, _ *CacheMock) {},
			wantErr:    true,
		},
		{
			name: "cache set error logs warning but returns id",
			req: models.DummySubscription{
				Type:      string(models.TypeMonthly),
				StartDate: start.Format("02-01-2006"),
				Price:     100,
			},
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("CreateSubscription", mock.Anything, mock.Anything).Return(7, nil).Once()
				c.On("Set", "subscription:7", mock.Anything, time.Hour).Return(errors.New("redis down")).Once()
			},
			wantID: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			skiers := new(SkierFinderMock)
			cache := new(CacheMock)
			svc := newService(repo, skiers, cache)

			tt.setupMocks(repo, cache)

			got, err := svc.Add(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, got)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_Renew(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		wantEnd    time.Time
		wantNil    bool
	}{
		{
			name: "active subscription extends from its end date",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
				r.On("ReadSubscription", mock.Anything, 1).Return(&models.Subscription{
					ID: 1, Type: models.TypeMonthly, EndDate: end,
				}, nil).Once()
				r.On("UpdateSubscription", mock.Anything, mock.MatchedBy(func(sub models.Subscription) bool {
					return sub.EndDate.Equal(end.AddDate(0, 1, 0))
				}), 1).Return(1, nil).Once()
				c.On("Invalidate", "subscription:1").Return(nil).Once()
			},
			wantEnd: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "expired subscription extends from today",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				r.On("ReadSubscription", mock.Anything, 1).Return(&models.Subscription{
					ID: 1, Type: models.TypeSemestriel, EndDate: end,
				}, nil).Once()
				r.On("UpdateSubscription", mock.Anything, mock.MatchedBy(func(sub models.Subscription) bool {
					return sub.EndDate.Equal(today.AddDate(0, 6, 0))
				}), 1).Return(1, nil).Once()
				c.On("Invalidate", "subscription:1").Return(nil).Once()
			},
			wantEnd: today.AddDate(0, 6, 0),
		},
		{
			name: "missing subscription returns nil",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("ReadSubscription", mock.Anything, 1).Return(nil, nil).Once()
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			skiers := new(SkierFinderMock)
			cache := new(CacheMock)
			svc := newService(repo, skiers, cache)

			tt.setupMocks(repo, cache)

			got, err := svc.Renew(context.Background(), 1)
			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.True(t, tt.wantEnd.Equal(got.EndDate))
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_Read_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	skiers := new(SkierFinderMock)
	cache := new(CacheMock)
	svc := newService(repo, skiers, cache)

	cache.On("Get", "subscription:3", mock.Anything).Return(true, nil).Once()

	_, err := svc.Read(context.Background(), 3)
	assert.NoError(t, err)

	repo.AssertNotCalled(t, "ReadSubscription", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestSubscriptionService_MonthlyRecurringRevenue(t *testing.T) {
	repo := new(RepoMock)
	skiers := new(SkierFinderMock)
	cache := new(CacheMock)
	svc := newService(repo, skiers, cache)

	repo.On("SumPriceByType", mock.Anything, models.TypeMonthly).Return(300.0, nil).Once()
	repo.On("SumPriceByType", mock.Anything, models.TypeSemestriel).Return(600.0, nil).Once()
	repo.On("SumPriceByType", mock.Anything, models.TypeAnnual).Return(1200.0, nil).Once()

	got, err := svc.MonthlyRecurringRevenue(context.Background())
	assert.NoError(t, err)
	assert.InDelta(t, 300.0+100.0+100.0, got, 0.001)
	repo.AssertExpectations(t)
}

func TestSubscriptionService_Retrieve(t *testing.T) {
	repo := new(RepoMock)
	skiers := new(SkierFinderMock)
	cache := new(CacheMock)
	svc := newService(repo, skiers, cache)

	subs := []*models.Subscription{
		{ID: 1, Type: models.TypeMonthly, EndDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Type: models.TypeAnnual, EndDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo.On("ListSubscriptionsOrderedByEndDate", mock.Anything).Return(subs, nil).Once()
	skiers.On("FindSkierBySubscription", mock.Anything, 1).
		Return(&models.Skier{ID: 5, FirstName: "Marie", LastName: "Blanc"}, nil).Once()
	skiers.On("FindSkierBySubscription", mock.Anything, 2).Return(nil, nil).Once()

	got, err := svc.Retrieve(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
	skiers.AssertExpectations(t)
}
