package registration

import (
	"context"
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

func (m *RepoMock) CreateRegistration(ctx context.Context, reg models.Registration) (int, error) {
	args := m.Called(ctx, reg)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadRegistration(ctx context.Context, id int) (*models.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}
func (m *RepoMock) UpdateRegistration(ctx context.Context, reg models.Registration, id int) (int, error) {
	args := m.Called(ctx, reg, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CountRegistrations(ctx context.Context, numWeek, skierID, courseID int) (int, error) {
	args := m.Called(ctx, numWeek, skierID, courseID)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListWeeksByInstructorAndSupport(ctx context.Context, instructorID int, support models.Support) ([]int, error) {
	args := m.Called(ctx, instructorID, support)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
func (m *RepoMock) DeleteRegistration(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type SkierRepoMock struct{ mock.Mock }

func (m *SkierRepoMock) ReadSkier(ctx context.Context, id int) (*models.Skier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skier), args.Error(1)
}

type CourseRepoMock struct{ mock.Mock }

func (m *CourseRepoMock) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(repo *RepoMock, skiers *SkierRepoMock, courses *CourseRepoMock, now time.Time) *RegistrationService {
	return NewRegistrationService(repo, skiers, courses, clock.Fixed{Time: now}, newNoopLogger())
}

var today = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func birthYearsAgo(years int) *time.Time {
	t := today.AddDate(-years, 0, 0)
	return &t
}

func TestRegistrationService_AddAndAssignToSkier(t *testing.T) {
	req := models.DummyRegistration{NumWeek: 4}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, s *SkierRepoMock)
		wantSkier  bool
	}{
		{
			name: "existing skier gets assigned",
			setupMocks: func(r *RepoMock, s *SkierRepoMock) {
				s.On("ReadSkier", mock.Anything, 1).
					Return(&models.Skier{ID: 1, FirstName: "Marie"}, nil).Once()
				r.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg models.Registration) bool {
					return reg.NumWeek == 4 && reg.Skier != nil && reg.Skier.ID == 1
				})).Return(10, nil).Once()
			},
			wantSkier: true,
		},
		{
			name: "missing skier still persists registration",
			setupMocks: func(r *RepoMock, s *SkierRepoMock) {
				s.On("ReadSkier", mock.Anything, 1).Return(nil, nil).Once()
				r.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg models.Registration) bool {
					return reg.NumWeek == 4 && reg.Skier == nil
				})).Return(10, nil).Once()
			},
			wantSkier: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			skiers := new(SkierRepoMock)
			courses := new(CourseRepoMock)
			svc := newService(repo, skiers, courses, today)

			tt.setupMocks(repo, skiers)

			got, err := svc.AddAndAssignToSkier(context.Background(), req, 1)
			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, 10, got.ID)
			if tt.wantSkier {
				assert.NotNil(t, got.Skier)
			} else {
				assert.Nil(t, got.Skier)
			}

			repo.AssertExpectations(t)
			skiers.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_AssignToCourse(t *testing.T) {
	tests := []struct {
		name             string
		setupMocks       func(r *RepoMock, c *CourseRepoMock)
		wantNil          bool
		wantCourseLookup bool
	}{
		{
			name: "success assign",
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				r.On("ReadRegistration", mock.Anything, 5).
					Return(&models.Registration{ID: 5, NumWeek: 2}, nil).Once()
				c.On("ReadCourse", mock.Anything, 3).
					Return(&models.Course{ID: 3, Type: models.CourseIndividual}, nil).Once()
				r.On("UpdateRegistration", mock.Anything, mock.MatchedBy(func(reg models.Registration) bool {
					return reg.Course != nil && reg.Course.ID == 3
				}), 5).Return(1, nil).Once()
			},
			wantNil:          false,
			wantCourseLookup: true,
		},
		{
			name: "missing registration skips course lookup",
			setupMocks: func(r *RepoMock, _ *CourseRepoMock) {
				r.On("ReadRegistration", mock.Anything, 5).Return(nil, nil).Once()
			},
			wantNil: true,
		},
		{
			name: "missing course returns nil without update",
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				r.On("ReadRegistration", mock.Anything, 5).
					Return(&models.Registration{ID: 5, NumWeek: 2}, nil).Once()
				c.On("ReadCourse", mock.Anything, 3).Return(nil, nil).Once()
			},
			wantNil:          true,
			wantCourseLookup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			skiers := new(SkierRepoMock)
			courses := new(CourseRepoMock)
			svc := newService(repo, skiers, courses, today)

			tt.setupMocks(repo, courses)

			got, err := svc.AssignToCourse(context.Background(), 5, 3)
			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
			}

			repo.AssertExpectations(t)
			courses.AssertExpectations(t)
			if !tt.wantCourseLookup {
				courses.AssertNotCalled(t, "ReadCourse", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRegistrationService_AddAndAssignToSkierAndCourse(t *testing.T) {
	req := models.DummyRegistration{NumWeek: 7}

	individual := &models.Course{ID: 3, Type: models.CourseIndividual, Support: models.SupportSki}
	children := &models.Course{ID: 3, Type: models.CourseCollectiveChildren, Support: models.SupportSki}
	adult := &models.Course{ID: 3, Type: models.CourseCollectiveAdult, Support: models.SupportSki}

	tests := []struct {
		name       string
		skier      *models.Skier
		course     *models.Course
		count      int
		countSetup bool
		wantSave   bool
	}{
		{
			name:       "individual course accepts any age",
			skier:      &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(40)},
			course:     individual,
			countSetup: true,
			wantSave:   true,
		},
		{
			name:       "child on children course",
			skier:      &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(10)},
			course:     children,
			countSetup: true,
			wantSave:   true,
		},
		{
			name:       "adult denied on children course",
			skier:      &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(30)},
			course:     children,
			countSetup: true,
			wantSave:   false,
		},
		{
			name:       "sixteen years old goes to adult course",
			skier:      &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(16)},
			course:     adult,
			countSetup: true,
			wantSave:   true,
		},
		{
			name:       "fifteen years old denied on adult course",
			skier:      &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(15)},
			course:     adult,
			countSetup: true,
			wantSave:   false,
		},
		{
			name:       "missing date of birth skips age check",
			skier:      &models.Skier{ID: 1},
			course:     adult,
			countSetup: true,
			wantSave:   true,
		},
		{
			name:       "duplicate registration denied",
			skier:      &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(20)},
			course:     adult,
			count:      1,
			countSetup: true,
			wantSave:   false,
		},
		{
			name:     "missing skier denies without count check",
			skier:    nil,
			course:   adult,
			wantSave: false,
		},
		{
			name:     "missing course denies without count check",
			skier:    &models.Skier{ID: 1, DateOfBirth: birthYearsAgo(20)},
			course:   nil,
			wantSave: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			skiers := new(SkierRepoMock)
			courses := new(CourseRepoMock)
			svc := newService(repo, skiers, courses, today)

			if tt.skier != nil {
				skiers.On("ReadSkier", mock.Anything, 1).Return(tt.skier, nil).Once()
			} else {
				skiers.On("ReadSkier", mock.Anything, 1).Return(nil, nil).Once()
			}
			if tt.course != nil {
				courses.On("ReadCourse", mock.Anything, 3).Return(tt.course, nil).Once()
			} else {
				courses.On("ReadCourse", mock.Anything, 3).Return(nil, nil).Once()
			}
			if tt.countSetup {
				repo.On("CountRegistrations", mock.Anything, 7, 1, 3).Return(tt.count, nil).Once()
			}
			if tt.wantSave {
				repo.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg models.Registration) bool {
					return reg.NumWeek == 7 && reg.Skier != nil && reg.Course != nil
				})).Return(99, nil).Once()
			}

			got, err := svc.AddAndAssignToSkierAndCourse(context.Background(), req, 1, 3)
			assert.NoError(t, err)
			if tt.wantSave {
				assert.NotNil(t, got)
				assert.Equal(t, 99, got.ID)
			} else {
				assert.Nil(t, got)
				repo.AssertNotCalled(t, "CreateRegistration", mock.Anything, mock.Anything)
			}

			repo.AssertExpectations(t)
			skiers.AssertExpectations(t)
			courses.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_NumWeeksOfInstructorBySupport(t *testing.T) {
	repo := new(RepoMock)
	skiers := new(SkierRepoMock)
	courses := new(CourseRepoMock)
	svc := newService(repo, skiers, courses, today)

	repo.On("ListWeeksByInstructorAndSupport", mock.Anything, 2, models.SupportSnowboard).
		Return([]int{3, 8}, nil).Once()

	got, err := svc.NumWeeksOfInstructorBySupport(context.Background(), 2, models.SupportSnowboard)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 8}, got)
	repo.AssertExpectations(t)
}
