// Package skier содержит бизнес-логику управления лыжниками
// и их привязкой к абонементам и трассам.
package skier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/lib/period"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// SkierRepository определяет методы для работы с лыжниками в хранилище.
type SkierRepository interface {
	// CreateSkier добавляет нового лыжника вместе с вложенным абонементом.
	CreateSkier(ctx context.Context, skier models.Skier) (int, error)
	// ReadSkier возвращает лыжника по ID.
	ReadSkier(ctx context.Context, id int) (*models.Skier, error)
	// ListSkiers возвращает всех лыжников.
	ListSkiers(ctx context.Context) ([]*models.Skier, error)
	// ListSkiersBySubscriptionType возвращает лыжников с абонементом заданного типа.
	ListSkiersBySubscriptionType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Skier, error)
	// UpdateSkierSubscription привязывает абонемент к лыжнику.
	UpdateSkierSubscription(ctx context.Context, skierID, subscriptionID int) (int, error)
	// AddSkierPiste связывает лыжника с трассой.
	AddSkierPiste(ctx context.Context, skierID, pisteID int) error
	// DeleteSkier удаляет лыжника по ID.
	DeleteSkier(ctx context.Context, id int) (int, error)
}

// SubscriptionRepository определяет чтение абонементов из хранилища.
type SubscriptionRepository interface {
	ReadSubscription(ctx context.Context, id int) (*models.Subscription, error)
}

// PisteRepository определяет чтение трасс из хранилища.
type PisteRepository interface {
	ReadPiste(ctx context.Context, id int) (*models.Piste, error)
}

// SkierService реализует бизнес-логику работы с лыжниками.
type SkierService struct {
	repo   SkierRepository
	subs   SubscriptionRepository
	pistes PisteRepository
	log    *slog.Logger
}

// NewSkierService создает новый экземпляр SkierService.
func NewSkierService(repo SkierRepository, subs SubscriptionRepository,
	pistes PisteRepository, log *slog.Logger) *SkierService {
	return &SkierService{
		repo:   repo,
		subs:   subs,
		pistes: pistes,
		log:    log,
	}
}

// Add создает нового лыжника и возвращает его ID. Если в запросе есть
// вложенный абонемент, его дата окончания вычисляется по типу.
func (s *SkierService) Add(ctx context.Context, req models.DummySkier) (int, error) {
	skier := models.Skier{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("02-01-2006", req.DateOfBirth)
		if err != nil {
			return 0, fmt.Errorf("invalid date of birth: %w", err)
		}
		skier.DateOfBirth = &dob
	}

	if req.Subscription != nil {
		startDate, err := time.Parse("02-01-2006", req.Subscription.StartDate)
		if err != nil {
			return 0, fmt.Errorf("invalid start date: %w", err)
		}
		typeSub := models.SubscriptionType(req.Subscription.Type)
		endDate, err := period.EndDate(typeSub, startDate)
		if err != nil {
			return 0, err
		}
		skier.Subscription = &models.Subscription{
			Type:      typeSub,
			StartDate: startDate,
			EndDate:   endDate,
			Price:     req.Subscription.Price,
		}
	}

	id, err := s.repo.CreateSkier(ctx, skier)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new skier", slog.Int("id", id))
	return id, nil
}

// AssignToSubscription привязывает абонемент к лыжнику. Если лыжник
// или абонемент не найдены, возвращается nil.
func (s *SkierService) AssignToSubscription(ctx context.Context, skierID, subscriptionID int) (*models.Skier, error) {
	skier, err := s.repo.ReadSkier(ctx, skierID)
	if err != nil {
		return nil, err
	}
	if skier == nil {
		s.log.Info("skier not found", slog.Int("skier_id", skierID))
		return nil, nil
	}

	sub, err := s.subs.ReadSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		s.log.Info("subscription not found", slog.Int("subscription_id", subscriptionID))
		return nil, nil
	}

	if _, err := s.repo.UpdateSkierSubscription(ctx, skierID, subscriptionID); err != nil {
		return nil, err
	}
	skier.Subscription = sub
	return skier, nil
}

// AssignToPiste связывает лыжника с трассой. Если лыжник или трасса
// не найдены, возвращается nil.
func (s *SkierService) AssignToPiste(ctx context.Context, skierID, pisteID int) (*models.Skier, error) {
	skier, err := s.repo.ReadSkier(ctx, skierID)
	if err != nil {
		return nil, err
	}
	if skier == nil {
		s.log.Info("skier not found", slog.Int("skier_id", skierID))
		return nil, nil
	}

	piste, err := s.pistes.ReadPiste(ctx, pisteID)
	if err != nil {
		return nil, err
	}
	if piste == nil {
		s.log.Info("piste not found", slog.Int("piste_id", pisteID))
		return nil, nil
	}

	if err := s.repo.AddSkierPiste(ctx, skierID, pisteID); err != nil {
		return nil, err
	}
	return skier, nil
}

// Retrieve возвращает лыжника по ID.
func (s *SkierService) Retrieve(ctx context.Context, id int) (*models.Skier, error) {
	return s.repo.ReadSkier(ctx, id)
}

// RetrieveAll возвращает всех лыжников.
func (s *SkierService) RetrieveAll(ctx context.Context) ([]*models.Skier, error) {
	return s.repo.ListSkiers(ctx)
}

// BySubscriptionType возвращает лыжников с абонементом заданного типа.
func (s *SkierService) BySubscriptionType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Skier, error) {
	return s.repo.ListSkiersBySubscriptionType(ctx, typeSub)
}

// Remove удаляет лыжника по ID и возвращает количество удалённых строк.
func (s *SkierService) Remove(ctx context.Context, id int) (int, error) {
	return s.repo.DeleteSkier(ctx, id)
}
