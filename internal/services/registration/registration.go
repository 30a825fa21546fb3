// Package registration содержит бизнес-логику записи лыжников на курсы,
// включая проверку допуска по возрасту и типу курса.
package registration

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/ski-station/internal/lib/age"
	"github.com/magabrotheeeer/ski-station/internal/lib/clock"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Возраст, начиная с которого лыжник считается взрослым.
const adultAge = 16

// RegistrationRepository определяет методы для работы с записями в хранилище.
type RegistrationRepository interface {
	// CreateRegistration добавляет новую запись и возвращает её ID.
	CreateRegistration(ctx context.Context, reg models.Registration) (int, error)
	// ReadRegistration возвращает запись по ID.
	ReadRegistration(ctx context.Context, id int) (*models.Registration, error)
	// UpdateRegistration обновляет запись по ID.
	UpdateRegistration(ctx context.Context, reg models.Registration, id int) (int, error)
	// CountRegistrations подсчитывает записи по тройке (неделя, лыжник, курс).
	CountRegistrations(ctx context.Context, numWeek, skierID, courseID int) (int, error)
	// ListWeeksByInstructorAndSupport возвращает недели занятий инструктора по дисциплине.
	ListWeeksByInstructorAndSupport(ctx context.Context, instructorID int, support models.Support) ([]int, error)
	// DeleteRegistration удаляет запись по ID.
	DeleteRegistration(ctx context.Context, id int) (int, error)
}

// SkierRepository определяет чтение лыжников из хранилища.
type SkierRepository interface {
	ReadSkier(ctx context.Context, id int) (*models.Skier, error)
}

// CourseRepository определяет чтение курсов из хранилища.
type CourseRepository interface {
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// RegistrationService реализует бизнес-логику записи на курсы.
type RegistrationService struct {
	repo    RegistrationRepository
	skiers  SkierRepository
	courses CourseRepository
	clock   clock.Clock
	log     *slog.Logger
}

// NewRegistrationService создает новый экземпляр RegistrationService.
func NewRegistrationService(repo RegistrationRepository, skiers SkierRepository,
	courses CourseRepository, clk clock.Clock, log *slog.Logger) *RegistrationService {
	return &RegistrationService{
		repo:    repo,
		skiers:  skiers,
		courses: courses,
		clock:   clk,
		log:     log,
	}
}

// AddAndAssignToSkier сохраняет новую запись и привязывает её к лыжнику.
// Если лыжник не найден, запись всё равно сохраняется без привязки.
func (s *RegistrationService) AddAndAssignToSkier(ctx context.Context, req models.DummyRegistration, skierID int) (*models.Registration, error) {
	reg := models.Registration{NumWeek: req.NumWeek}

	skier, err := s.skiers.ReadSkier(ctx, skierID)
	if err != nil {
		return nil, err
	}
	if skier != nil {
		reg.Skier = skier
	} else {
		s.log.Info("skier not found, registration saved unassigned", slog.Int("skier_id", skierID))
	}

	id, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}
	reg.ID = id
	return &reg, nil
}

// AssignToCourse привязывает существующую запись к курсу.
// Если запись не найдена, курс не запрашивается и возвращается nil.
func (s *RegistrationService) AssignToCourse(ctx context.Context, registrationID, courseID int) (*models.Registration, error) {
	reg, err := s.repo.ReadRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		s.log.Info("registration not found", slog.Int("registration_id", registrationID))
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

	reg.Course = course
	if _, err := s.repo.UpdateRegistration(ctx, *reg, reg.ID); err != nil {
		return nil, err
	}
	return reg, nil
}

// AddAndAssignToSkierAndCourse сохраняет новую запись, привязывая её к лыжнику
// и курсу, если лыжник допущен. При отсутствии лыжника или курса, повторной
// записи на ту же неделю или несоответствии возраста типу курса запись
// не сохраняется и возвращается nil.
func (s *RegistrationService) AddAndAssignToSkierAndCourse(ctx context.Context, req models.DummyRegistration, skierID, courseID int) (*models.Registration, error) {
	skier, err := s.skiers.ReadSkier(ctx, skierID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.ReadCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if skier == nil || course == nil {
		s.log.Info("skier or course not found",
			slog.Int("skier_id", skierID), slog.Int("course_id", courseID))
		return nil, nil
	}

	count, err := s.repo.CountRegistrations(ctx, req.NumWeek, skierID, courseID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.log.Info("skier already registered for this course and week",
			slog.Int("skier_id", skierID), slog.Int("course_id", courseID),
			slog.Int("num_week", req.NumWeek))
		return nil, nil
	}

	if !s.isEligible(skier, course) {
		return nil, nil
	}

	reg := models.Registration{NumWeek: req.NumWeek, Skier: skier, Course: course}
	id, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}
	reg.ID = id
	return &reg, nil
}

// isEligible проверяет соответствие возраста лыжника типу курса.
// Индивидуальные курсы доступны всем. Если дата рождения или тип курса
// не заданы, проверка пропускается.
func (s *RegistrationService) isEligible(skier *models.Skier, course *models.Course) bool {
	if course.Type == models.CourseIndividual {
		return true
	}
	if skier.DateOfBirth == nil || course.Type == "" {
		return true
	}

	years := age.Years(*skier.DateOfBirth, s.clock.Now())
	switch course.Type {
	case models.CourseCollectiveChildren:
		if years < adultAge {
			return true
		}
		s.log.Info("adult skier cannot join a children course",
			slog.Int("skier_id", skier.ID), slog.Int("age", years))
	case models.CourseCollectiveAdult:
		if years >= adultAge {
			return true
		}
		s.log.Info("child skier cannot join an adult course",
			slog.Int("skier_id", skier.ID), slog.Int("age", years))
	default:
		return true
	}
	return false
}

// NumWeeksOfInstructorBySupport возвращает недели, в которые инструктор
// ведёт занятия по заданной дисциплине.
func (s *RegistrationService) NumWeeksOfInstructorBySupport(ctx context.Context, instructorID int, support models.Support) ([]int, error) {
	return s.repo.ListWeeksByInstructorAndSupport(ctx, instructorID, support)
}

// Remove удаляет запись по ID и возвращает количество удалённых строк.
func (s *RegistrationService) Remove(ctx context.Context, id int) (int, error) {
	return s.repo.DeleteRegistration(ctx, id)
}
