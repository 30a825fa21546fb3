package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// CreatePiste вставляет новую трассу и возвращает её ID.
func (s *Storage) CreatePiste(ctx context.Context, piste models.Piste) (int, error) {
	const op = "storage.CreatePiste"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO pistes (named_piste, color, length, slope)
			  VALUES ($1, NULLIF($2, ''), $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		piste.Name, string(piste.Color), piste.Length, piste.Slope).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

func scanPiste(scanner interface{ Scan(...any) error }) (*models.Piste, error) {
	var item models.Piste
	var color sql.NullString
	if err := scanner.Scan(&item.ID, &item.Name, &color, &item.Length, &item.Slope); err != nil {
		return nil, err
	}
	if color.Valid {
		item.Color = models.PisteColor(color.String)
	}
	return &item, nil
}

// ReadPiste возвращает трассу по её ID, (nil, nil) если не найдена.
func (s *Storage) ReadPiste(ctx context.Context, id int) (*models.Piste, error) {
	const op = "storage.ReadPiste"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx,
		`SELECT id, named_piste, color, length, slope FROM pistes WHERE id = $1`, id)
	result, err := scanPiste(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListPistes возвращает список всех трасс.
func (s *Storage) ListPistes(ctx context.Context) ([]*models.Piste, error) {
	const op = "storage.ListPistes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, named_piste, color, length, slope FROM pistes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Piste
	for rows.Next() {
		item, err := scanPiste(rows)
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

// DeletePiste удаляет трассу по ID и возвращает количество удалённых строк.
func (s *Storage) DeletePiste(ctx context.Context, id int) (int, error) {
	const op = "storage.DeletePiste"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM pistes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
