package skier

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateSkier(ctx context.Context, skier models.Skier) (int, error) {
	args := m.Called(ctx, skier)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadSkier(ctx context.Context, id int) (*models.Skier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skier), args.Error(1)
}
func (m *RepoMock) ListSkiers(ctx context.Context) ([]*models.Skier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Skier), args.Error(1)
}
func (m *RepoMock) ListSkiersBySubscriptionType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Skier, error) {
	args := m.Called(ctx, typeSub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Skier), args.Error(1)
}
func (m *RepoMock) UpdateSkierSubscription(ctx context.Context, skierID, subscriptionID int) (int, error) {
	args := m.Called(ctx, skierID, subscriptionID)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) AddSkierPiste(ctx context.Context, skierID, pisteID int) error {
	return m.Called(ctx, skierID, pisteID).Error(0)
}
func (m *RepoMock) DeleteSkier(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type SubRepoMock struct{ mock.Mock }

func (m *SubRepoMock) ReadSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

type PisteRepoMock struct{ mock.Mock }

func (m *PisteRepoMock) ReadPiste(ctx context.Context, id int) (*models.Piste, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Piste), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSkierService_Add(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		req        models.DummySkier
		setupMocks func(r *RepoMock)
		wantID     int
		wantErr    bool
	}{
		{
			name: "skier with embedded subscription gets end date computed",
			req: models.DummySkier{
				FirstName:   "Marie",
				LastName:    "Blanc",
				City:        "Chamonix",
				DateOfBirth: "15-03-2008",
				Subscription: &models.DummySubscription{
					Type:      string(models.TypeSemestriel),
					StartDate: start.Format("02-01-2006"),
					Price:     450,
				},
			},
			setupMocks: func(r *RepoMock) {
				r.On("CreateSkier", mock.Anything, mock.MatchedBy(func(skier models.Skier) bool {
					return skier.FirstName == "Marie" &&
						skier.Subscription != nil &&
						skier.Subscription.EndDate.Equal(start.AddDate(0, 6, 0))
				})).Return(1, nil).Once()
			},
			wantID: 1,
		},
		{
			name: "skier without subscription",
			req: models.DummySkier{
				FirstName: "Paul",
				LastName:  "Durand",
			},
			setupMocks: func(r *RepoMock) {
				r.On("CreateSkier", mock.Anything, mock.MatchedBy(func(skier models.Skier) bool {
					return skier.Subscription == nil && skier.DateOfBirth == nil
				})).Return(2, nil).Once()
			},
			wantID: 2,
		},
		{
			name: "invalid date of birth",
			req: models.DummySkier{
				FirstName:   "Paul",
				LastName:    "Durand",
				DateOfBirth: "not-a-date",
			},
			setupMocks: func(_ *RepoMock) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			subs := new(SubRepoMock)
			pistes := new(PisteRepoMock)
			svc := NewSkierService(repo, subs, pistes, newNoopLogger())

			tt.setupMocks(repo)

			got, err := svc.Add(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestSkierService_AssignToSubscription(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, s *SubRepoMock)
		wantNil    bool
	}{
		{
			name: "success assign",
			setupMocks: func(r *RepoMock, s *SubRepoMock) {
				r.On("ReadSkier", mock.Anything, 1).
					Return(&models.Skier{ID: 1, FirstName: "Marie"}, nil).Once()
				s.On("ReadSubscription", mock.Anything, 2).
					Return(&models.Subscription{ID: 2, Type: models.TypeAnnual}, nil).Once()
				r.On("UpdateSkierSubscription", mock.Anything, 1, 2).Return(1, nil).Once()
			},
		},
		{
			name: "missing skier returns nil",
			setupMocks: func(r *RepoMock, _ *SubRepoMock) {
				r.On("ReadSkier", mock.Anything, 1).Return(nil, nil).Once()
			},
			wantNil: true,
		},
		{
			name: "missing subscription returns nil",
			setupMocks: func(r *RepoMock, s *SubRepoMock) {
				r.On("ReadSkier", mock.Anything, 1).
					Return(&models.Skier{ID: 1}, nil).Once()
				s.On("ReadSubscription", mock.Anything, 2).Return(nil, nil).Once()
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			subs := new(SubRepoMock)
			pistes := new(PisteRepoMock)
			svc := NewSkierService(repo, subs, pistes, newNoopLogger())

			tt.setupMocks(repo, subs)

			got, err := svc.AssignToSubscription(context.Background(), 1, 2)
			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				repo.AssertNotCalled(t, "UpdateSkierSubscription", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NotNil(t, got)
				assert.NotNil(t, got.Subscription)
			}
			repo.AssertExpectations(t)
			subs.AssertExpectations(t)
		})
	}
}

func TestSkierService_AssignToPiste(t *testing.T) {
	repo := new(RepoMock)
	subs := new(SubRepoMock)
	pistes := new(PisteRepoMock)
	svc := NewSkierService(repo, subs, pistes, newNoopLogger())

	repo.On("ReadSkier", mock.Anything, 1).Return(&models.Skier{ID: 1}, nil).Once()
	pistes.On("ReadPiste", mock.Anything, 4).
		Return(&models.Piste{ID: 4, Name: "Vallee Blanche", Color: models.ColorRed}, nil).Once()
	repo.On("AddSkierPiste", mock.Anything, 1, 4).Return(nil).Once()

	got, err := svc.AssignToPiste(context.Background(), 1, 4)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	repo.AssertExpectations(t)
	pistes.AssertExpectations(t)
}
