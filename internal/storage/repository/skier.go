package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// CreateSkier вставляет нового лыжника и возвращает его ID.
// Вложенный абонемент вставляется той же транзакцией.
func (s *Storage) CreateSkier(ctx context.Context, skier models.Skier) (int, error) {
	const op = "storage.CreateSkier"
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

	var subID sql.NullInt64
	if skier.Subscription != nil {
		var id int
		err = tx.QueryRowContext(ctx,
			`INSERT INTO subscriptions (type_sub, start_date, end_date, price)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			skier.Subscription.Type, skier.Subscription.StartDate,
			skier.Subscription.EndDate, skier.Subscription.Price).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		subID = sql.NullInt64{Int64: int64(id), Valid: true}
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO skiers (first_name, last_name, city, date_of_birth, subscription_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		skier.FirstName, skier.LastName, skier.City, skier.DateOfBirth, subID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

const skierSelect = `SELECT sk.id, sk.first_name, sk.last_name, sk.city, sk.date_of_birth,
			  sub.id, sub.type_sub, sub.start_date, sub.end_date, sub.price
		  FROM skiers sk
		  LEFT JOIN subscriptions sub ON sub.id = sk.subscription_id`

func scanSkier(scanner interface{ Scan(...any) error }) (*models.Skier, error) {
	var item models.Skier
	var city sql.NullString
	var dob sql.NullTime
	var subID sql.NullInt64
	var subType sql.NullString
	var subStart, subEnd sql.NullTime
	var subPrice sql.NullFloat64

	if err := scanner.Scan(&item.ID, &item.FirstName, &item.LastName, &city, &dob,
		&subID, &subType, &subStart, &subEnd, &subPrice); err != nil {
		return nil, err
	}
	if city.Valid {
		item.City = city.String
	}
	if dob.Valid {
		item.DateOfBirth = &dob.Time
	}
	if subID.Valid {
		item.Subscription = &models.Subscription{
			ID:        int(subID.Int64),
			Type:      models.SubscriptionType(subType.String),
			StartDate: subStart.Time,
			EndDate:   subEnd.Time,
			Price:     subPrice.Float64,
		}
	}
	return &item, nil
}

// ReadSkier возвращает лыжника с абонементом по ID, (nil, nil) если не найден.
func (s *Storage) ReadSkier(ctx context.Context, id int) (*models.Skier, error) {
	const op = "storage.ReadSkier"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx, skierSelect+` WHERE sk.id = $1`, id)
	result, err := scanSkier(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListSkiers возвращает список всех лыжников с абонементами.
func (s *Storage) ListSkiers(ctx context.Context) ([]*models.Skier, error) {
	const op = "storage.ListSkiers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, skierSelect+` ORDER BY sk.id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Skier
	for rows.Next() {
		item, err := scanSkier(rows)
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

// ListSkiersBySubscriptionType возвращает лыжников с абонементом заданного типа.
func (s *Storage) ListSkiersBySubscriptionType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Skier, error) {
	const op = "storage.ListSkiersBySubscriptionType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, skierSelect+` WHERE sub.type_sub = $1 ORDER BY sk.id`, typeSub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Skier
	for rows.Next() {
		item, err := scanSkier(rows)
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

// FindSkierBySubscription возвращает владельца абонемента, (nil, nil) если его нет.
func (s *Storage) FindSkierBySubscription(ctx context.Context, subscriptionID int) (*models.Skier, error) {
	const op = "storage.FindSkierBySubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx, skierSelect+` WHERE sk.subscription_id = $1`, subscriptionID)
	result, err := scanSkier(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSkierSubscription привязывает абонемент к лыжнику
// и возвращает количество изменённых строк.
func (s *Storage) UpdateSkierSubscription(ctx context.Context, skierID, subscriptionID int) (int, error) {
	const op = "storage.UpdateSkierSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE skiers SET subscription_id = $1 WHERE id = $2`, subscriptionID, skierID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// AddSkierPiste связывает лыжника с трассой.
func (s *Storage) AddSkierPiste(ctx context.Context, skierID, pisteID int) error {
	const op = "storage.AddSkierPiste"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO skier_pistes (skier_id, piste_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, skierID, pisteID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteSkier удаляет лыжника по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteSkier(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteSkier"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM skiers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
