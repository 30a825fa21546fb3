package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

func registrationRefs(reg models.Registration) (skierID, courseID sql.NullInt64) {
	if reg.Skier != nil {
		skierID = sql.NullInt64{Int64: int64(reg.Skier.ID), Valid: true}
	}
	if reg.Course != nil {
		courseID = sql.NullInt64{Int64: int64(reg.Course.ID), Valid: true}
	}
	return skierID, courseID
}

// CreateRegistration вставляет новую запись на курс и возвращает её ID.
// Ссылки на лыжника и курс могут отсутствовать.
func (s *Storage) CreateRegistration(ctx context.Context, reg models.Registration) (int, error) {
	const op = "storage.CreateRegistration"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	skierID, courseID := registrationRefs(reg)
	query := `INSERT INTO registrations (num_week, skier_id, course_id)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query, reg.NumWeek, skierID, courseID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadRegistration возвращает запись по ID, (nil, nil) если не найдена.
// Ссылки на лыжника и курс заполняются только идентификаторами.
func (s *Storage) ReadRegistration(ctx context.Context, id int) (*models.Registration, error) {
	const op = "storage.ReadRegistration"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, num_week, skier_id, course_id
			  FROM registrations WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Registration
	var skierID, courseID sql.NullInt64
	if err := row.Scan(&result.ID, &result.NumWeek, &skierID, &courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if skierID.Valid {
		result.Skier = &models.Skier{ID: int(skierID.Int64)}
	}
	if courseID.Valid {
		result.Course = &models.Course{ID: int(courseID.Int64)}
	}
	return &result, nil
}

// UpdateRegistration обновляет запись по её ID и возвращает количество изменённых строк.
func (s *Storage) UpdateRegistration(ctx context.Context, reg models.Registration, id int) (int, error) {
	const op = "storage.UpdateRegistration"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	skierID, courseID := registrationRefs(reg)
	query := `UPDATE registrations
			  SET num_week = $1, skier_id = $2, course_id = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, reg.NumWeek, skierID, courseID, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CountRegistrations подсчитывает записи по тройке (неделя, лыжник, курс).
func (s *Storage) CountRegistrations(ctx context.Context, numWeek, skierID, courseID int) (int, error) {
	const op = "storage.CountRegistrations"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM registrations
			  WHERE num_week = $1 AND skier_id = $2 AND course_id = $3`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, numWeek, skierID, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ListWeeksByInstructorAndSupport возвращает недели, в которые у инструктора
// есть записи на курсы заданной дисциплины, без повторов.
func (s *Storage) ListWeeksByInstructorAndSupport(ctx context.Context, instructorID int, support models.Support) ([]int, error) {
	const op = "storage.ListWeeksByInstructorAndSupport"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT DISTINCT r.num_week
			  FROM registrations r
			  JOIN courses c ON c.id = r.course_id
			  JOIN instructor_courses ic ON ic.course_id = c.id
			  WHERE ic.instructor_id = $1 AND c.support = $2
			  ORDER BY r.num_week`
	rows, err := s.DB.QueryContext(ctx, query, instructorID, support)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []int
	for rows.Next() {
		var week int
		if err := rows.Scan(&week); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, week)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteRegistration удаляет запись по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteRegistration(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteRegistration"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
