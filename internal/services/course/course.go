// Package course содержит бизнес-логику управления курсами.
package course

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// CourseRepository определяет методы для работы с курсами в хранилище.
type CourseRepository interface {
	// CreateCourse добавляет новый курс и возвращает его ID.
	CreateCourse(ctx context.Context, course models.Course) (int, error)
	// ReadCourse возвращает курс по ID.
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
	// UpdateCourse обновляет курс по ID.
	UpdateCourse(ctx context.Context, course models.Course, id int) (int, error)
	// ListCourses возвращает все курсы.
	ListCourses(ctx context.Context) ([]*models.Course, error)
}

// CourseService реализует бизнес-логику работы с курсами.
type CourseService struct {
	repo CourseRepository
	log  *slog.Logger
}

// NewCourseService создает новый экземпляр CourseService.
func NewCourseService(repo CourseRepository, log *slog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

// Add создает новый курс и возвращает его ID.
func (s *CourseService) Add(ctx context.Context, req models.DummyCourse) (int, error) {
	course := models.Course{
		Level:    req.Level,
		Type:     models.CourseType(req.Type),
		Support:  models.Support(req.Support),
		Price:    req.Price,
		TimeSlot: req.TimeSlot,
	}
	id, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new course", slog.Int("id", id))
	return id, nil
}

// Retrieve возвращает курс по ID.
func (s *CourseService) Retrieve(ctx context.Context, id int) (*models.Course, error) {
	return s.repo.ReadCourse(ctx, id)
}

// Update обновляет существующий курс. Если курс не найден,
// возвращается nil без ошибки.
func (s *CourseService) Update(ctx context.Context, req models.DummyCourse, id int) (*models.Course, error) {
	existing, err := s.repo.ReadCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		s.log.Info("course not found", slog.Int("id", id))
		return nil, nil
	}

	course := models.Course{
		ID:       id,
		Level:    req.Level,
		Type:     models.CourseType(req.Type),
		Support:  models.Support(req.Support),
		Price:    req.Price,
		TimeSlot: req.TimeSlot,
	}
	if _, err := s.repo.UpdateCourse(ctx, course, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// RetrieveAll возвращает все курсы.
func (s *CourseService) RetrieveAll(ctx context.Context) ([]*models.Course, error) {
	return s.repo.ListCourses(ctx)
}
