package instructor

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/magabrotheeeer/ski-station/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateInstructor(ctx context.Context, instructor models.Instructor) (int, error) {
	args := m.Called(ctx, instructor)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadInstructor(ctx context.Context, id int) (*models.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Instructor), args.Error(1)
}
func (m *RepoMock) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Instructor), args.Error(1)
}
func (m *RepoMock) AddInstructorCourse(ctx context.Context, instructorID, courseID int) error {
	return m.Called(ctx, instructorID, courseID).Error(0)
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

func TestInstructorService_AddAndAssignToCourse(t *testing.T) {
	req := models.DummyInstructor{
		FirstName:  "Jean",
		LastName:   "Moreau",
		DateOfHire: "01-12-2020",
	}

	tests := []struct {
		name        string
		setupMocks  func(r *RepoMock, c *CourseRepoMock)
		wantCourses int
	}{
		{
			name: "existing course gets assigned",
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 3).
					Return(&models.Course{ID: 3, Support: models.SupportSki}, nil).Once()
				r.On("CreateInstructor", mock.Anything, mock.MatchedBy(func(i models.Instructor) bool {
					return len(i.Courses) == 1 && i.Courses[0].ID == 3
				})).Return(5, nil).Once()
			},
			wantCourses: 1,
		},
		{
			name: "missing course still persists instructor",
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 3).Return(nil, nil).Once()
				r.On("CreateInstructor", mock.Anything, mock.MatchedBy(func(i models.Instructor) bool {
					return len(i.Courses) == 0
				})).Return(5, nil).Once()
			},
			wantCourses: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			courses := new(CourseRepoMock)
			svc := NewInstructorService(repo, courses, newNoopLogger())

			tt.setupMocks(repo, courses)

			got, err := svc.AddAndAssignToCourse(context.Background(), req, 3)
			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, 5, got.ID)
			assert.Len(t, got.Courses, tt.wantCourses)

			repo.AssertExpectations(t)
			courses.AssertExpectations(t)
		})
	}
}

func TestInstructorService_AssignToCourse(t *testing.T) {
	repo := new(RepoMock)
	courses := new(CourseRepoMock)
	svc := NewInstructorService(repo, courses, newNoopLogger())

	repo.On("ReadInstructor", mock.Anything, 9).Return(nil, nil).Once()

	got, err := svc.AssignToCourse(context.Background(), 9, 3)
	assert.NoError(t, err)
	assert.Nil(t, got)
	repo.AssertExpectations(t)
	courses.AssertNotCalled(t, "ReadCourse", mock.Anything, mock.Anything)
}
