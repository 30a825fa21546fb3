package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// CreateCourse вставляет новый курс и возвращает его ID.
func (s *Storage) CreateCourse(ctx context.Context, course models.Course) (int, error) {
	const op = "storage.CreateCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO courses (level, type_course, support, price, time_slot)
			  VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		course.Level, string(course.Type), string(course.Support),
		course.Price, course.TimeSlot).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

func scanCourse(scanner interface{ Scan(...any) error }) (*models.Course, error) {
	var item models.Course
	var typeCourse, support sql.NullString
	var timeSlot sql.NullInt64

	if err := scanner.Scan(&item.ID, &item.Level, &typeCourse, &support,
		&item.Price, &timeSlot); err != nil {
		return nil, err
	}
	if typeCourse.Valid {
		item.Type = models.CourseType(typeCourse.String)
	}
	if support.Valid {
		item.Support = models.Support(support.String)
	}
	if timeSlot.Valid {
		item.TimeSlot = int(timeSlot.Int64)
	}
	return &item, nil
}

// ReadCourse возвращает курс по его ID, (nil, nil) если не найден.
func (s *Storage) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	const op = "storage.ReadCourse"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, level, type_course, support, price, time_slot
			  FROM courses WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	result, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCourse обновляет данные курса по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateCourse(ctx context.Context, course models.Course, id int) (int, error) {
	const op = "storage.UpdateCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE courses
			  SET level = $1, type_course = NULLIF($2, ''), support = NULLIF($3, ''),
			      price = $4, time_slot = $5
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		course.Level, string(course.Type), string(course.Support),
		course.Price, course.TimeSlot, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListCourses возвращает список всех курсов.
func (s *Storage) ListCourses(ctx context.Context) ([]*models.Course, error) {
	const op = "storage.ListCourses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, level, type_course, support, price, time_slot
			  FROM courses ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Course
	for rows.Next() {
		item, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
