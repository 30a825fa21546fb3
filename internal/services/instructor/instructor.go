// Package instructor содержит бизнес-логику управления инструкторами
// и назначением им курсов.
package instructor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// InstructorRepository определяет методы для работы с инструкторами в хранилище.
type InstructorRepository interface {
	// CreateInstructor добавляет нового инструктора с назначениями курсов.
	CreateInstructor(ctx context.Context, instructor models.Instructor) (int, error)
	// ReadInstructor возвращает инструктора с курсами по ID.
	ReadInstructor(ctx context.Context, id int) (*models.Instructor, error)
	// ListInstructors возвращает всех инструкторов.
	ListInstructors(ctx context.Context) ([]*models.Instructor, error)
	// AddInstructorCourse назначает курс инструктору.
	AddInstructorCourse(ctx context.Context, instructorID, courseID int) error
}

// CourseRepository определяет чтение курсов из хранилища.
type CourseRepository interface {
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// InstructorService реализует бизнес-логику работы с инструкторами.
type InstructorService struct {
	repo    InstructorRepository
	courses CourseRepository
	log     *slog.Logger
}

// NewInstructorService создает новый экземпляр InstructorService.
func NewInstructorService(repo InstructorRepository, courses CourseRepository, log *slog.Logger) *InstructorService {
	return &InstructorService{repo: repo, courses: courses, log: log}
}

func instructorFromRequest(req models.DummyInstructor) (models.Instructor, error) {
	instructor := models.Instructor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.DateOfHire != "" {
		dateOfHire, err := time.Parse("02-01-2006", req.DateOfHire)
		if err != nil {
			return models.Instructor{}, fmt.Errorf("invalid date of hire: %w", err)
		}
		instructor.DateOfHire = dateOfHire
	}
	return instructor, nil
}

// Add создает нового инструктора и возвращает его ID.
func (s *InstructorService) Add(ctx context.Context, req models.DummyInstructor) (int, error) {
	instructor, err := instructorFromRequest(req)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.CreateInstructor(ctx, instructor)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new instructor", slog.Int("id", id))
	return id, nil
}

// AddAndAssignToCourse создает нового инструктора, сразу назначая ему курс.
// Если курс не найден, инструктор сохраняется без назначений.
func (s *InstructorService) AddAndAssignToCourse(ctx context.Context, req models.DummyInstructor, courseID int) (*models.Instructor, error) {
	instructor, err := instructorFromRequest(req)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.ReadCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course != nil {
		instructor.Courses = []*models.Course{course}
	} else {
		s.log.Info("course not found, instructor saved without assignment",
			slog.Int("course_id", courseID))
	}

	id, err := s.repo.CreateInstructor(ctx, instructor)
	if err != nil {
		return nil, err
	}
	instructor.ID = id
	return &instructor, nil
}

// AssignToCourse назначает курс существующему инструктору. Если инструктор
// или курс не найдены, возвращается nil.
func (s *InstructorService) AssignToCourse(ctx context.Context, instructorID, courseID int) (*models.Instructor, error) {
	instructor, err := s.repo.ReadInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		s.log.Info("instructor not found", slog.Int("instructor_id", instructorID))
		return nil, nil
	}

	course, err := s.courses.ReadCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		s.log.Info("course not found", slog.Int("course_id", courseID))
		return nil, nil
	}

	if err := s.repo.AddInstructorCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}
	instructor.Courses = append(instructor.Courses, course)
	return instructor, nil
}

// Retrieve возвращает инструктора по ID.
func (s *InstructorService) Retrieve(ctx context.Context, id int) (*models.Instructor, error) {
	return s.repo.ReadInstructor(ctx, id)
}

// RetrieveAll возвращает всех инструкторов.
func (s *InstructorService) RetrieveAll(ctx context.Context) ([]*models.Instructor, error) {
	return s.repo.ListInstructors(ctx)
}
