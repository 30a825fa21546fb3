package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// CreateInstructor вставляет нового инструктора и назначения курсов
// одной транзакцией, возвращает ID инструктора.
func (s *Storage) CreateInstructor(ctx context.Context, instructor models.Instructor) (int, error) {
	const op = "storage.CreateInstructor"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO instructors (first_name, last_name, date_of_hire)
		 VALUES ($1, $2, $3) RETURNING id`,
		instructor.FirstName, instructor.LastName, instructor.DateOfHire).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, course := range instructor.Courses {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO instructor_courses (instructor_id, course_id) VALUES ($1, $2)`,
			newID, course.ID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadInstructor возвращает инструктора с назначенными курсами, (nil, nil) если не найден.
func (s *Storage) ReadInstructor(ctx context.Context, id int) (*models.Instructor, error) {
	const op = "storage.ReadInstructor"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, date_of_hire FROM instructors WHERE id = $1`, id)

	var result models.Instructor
	var dateOfHire sql.NullTime
	if err := row.Scan(&result.ID, &result.FirstName, &result.LastName, &dateOfHire); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if dateOfHire.Valid {
		result.DateOfHire = dateOfHire.Time
	}

	courses, err := s.listInstructorCourses(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Courses = courses
	return &result, nil
}

func (s *Storage) listInstructorCourses(ctx context.Context, instructorID int) ([]*models.Course, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT c.id, c.level, c.type_course, c.support, c.price, c.time_slot
		 FROM courses c
		 JOIN instructor_courses ic ON ic.course_id = c.id
		 WHERE ic.instructor_id = $1
		 ORDER BY c.id`, instructorID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Course
	for rows.Next() {
		item, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// ListInstructors возвращает список всех инструкторов без курсов.
func (s *Storage) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	const op = "storage.ListInstructors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, first_name, last_name, date_of_hire FROM instructors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Instructor
	for rows.Next() {
		var item models.Instructor
		var dateOfHire sql.NullTime
		if err := rows.Scan(&item.ID, &item.FirstName, &item.LastName, &dateOfHire); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if dateOfHire.Valid {
			item.DateOfHire = dateOfHire.Time
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AddInstructorCourse назначает курс инструктору.
func (s *Storage) AddInstructorCourse(ctx context.Context, instructorID, courseID int) error {
	const op = "storage.AddInstructorCourse"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO instructor_courses (instructor_id, course_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, instructorID, courseID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
