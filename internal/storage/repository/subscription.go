package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// CreateSubscription вставляет новый абонемент и возвращает его ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (type_sub, start_date, end_date, price)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		sub.Type, sub.StartDate, sub.EndDate, sub.Price).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadSubscription возвращает абонемент по его ID, (nil, nil) если не найден.
func (s *Storage) ReadSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, type_sub, start_date, end_date, price
			  FROM subscriptions WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Subscription
	if err := row.Scan(&result.ID, &result.Type, &result.StartDate,
		&result.EndDate, &result.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateSubscription обновляет данные абонемента по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET type_sub = $1, start_date = $2, end_date = $3, price = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		sub.Type, sub.StartDate, sub.EndDate, sub.Price, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListSubscriptionsByType возвращает абонементы заданного типа
// в порядке возрастания даты начала.
func (s *Storage) ListSubscriptionsByType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, type_sub, start_date, end_date, price
			  FROM subscriptions
			  WHERE type_sub = $1
			  ORDER BY start_date ASC`
	rows, err := s.DB.QueryContext(ctx, query, typeSub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.Type, &item.StartDate,
			&item.EndDate, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListSubscriptionsByStartDateRange возвращает абонементы с датой начала
// в заданном диапазоне включительно.
func (s *Storage) ListSubscriptionsByStartDateRange(ctx context.Context, start, end time.Time) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByStartDateRange"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, type_sub, start_date, end_date, price
			  FROM subscriptions
			  WHERE start_date BETWEEN $1 AND $2
			  ORDER BY start_date ASC`
	rows, err := s.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.Type, &item.StartDate,
			&item.EndDate, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListSubscriptionsOrderedByEndDate возвращает все абонементы
// в порядке возрастания даты окончания.
func (s *Storage) ListSubscriptionsOrderedByEndDate(ctx context.Context) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsOrderedByEndDate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT DISTINCT id, type_sub, start_date, end_date, price
			  FROM subscriptions
			  ORDER BY end_date ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.Type, &item.StartDate,
			&item.EndDate, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumPriceByType возвращает суммарную стоимость абонементов заданного типа.
func (s *Storage) SumPriceByType(ctx context.Context, typeSub models.SubscriptionType) (float64, error) {
	const op = "storage.SumPriceByType"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(price), 0) FROM subscriptions WHERE type_sub = $1`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, typeSub).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// FindSubscriptionsExpiring возвращает абонементы, истекающие в заданный день,
// вместе с данными владельца для уведомлений.
func (s *Storage) FindSubscriptionsExpiring(ctx context.Context, on time.Time) ([]*models.SubscriptionInfo, error) {
	const op = "storage.FindSubscriptionsExpiring"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT sub.id, sub.type_sub, sub.end_date, sk.first_name, sk.last_name
			  FROM subscriptions sub
			  JOIN skiers sk ON sk.subscription_id = sub.id
			  WHERE sub.end_date = $1::DATE`
	rows, err := s.DB.QueryContext(ctx, query, on)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SubscriptionInfo
	for rows.Next() {
		var item models.SubscriptionInfo
		if err := rows.Scan(&item.SubscriptionID, &item.Type, &item.EndDate,
			&item.SkierFirstName, &item.SkierLastName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
