// Package subscription содержит бизнес-логику управления абонементами,
// включая расчёт сроков действия, продление и кеширование.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/lib/clock"
	"github.com/magabrotheeeer/ski-station/internal/lib/period"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// SubscriptionRepository определяет методы для работы с абонементами в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новый абонемент и возвращает его ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// ReadSubscription возвращает абонемент по ID.
	ReadSubscription(ctx context.Context, id int) (*models.Subscription, error)
	// UpdateSubscription обновляет абонемент по ID.
	UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error)
	// ListSubscriptionsByType возвращает абонементы заданного типа.
	ListSubscriptionsByType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Subscription, error)
	// ListSubscriptionsByStartDateRange возвращает абонементы с датой начала в диапазоне.
	ListSubscriptionsByStartDateRange(ctx context.Context, start, end time.Time) ([]*models.Subscription, error)
	// ListSubscriptionsOrderedByEndDate возвращает абонементы по возрастанию даты окончания.
	ListSubscriptionsOrderedByEndDate(ctx context.Context) ([]*models.Subscription, error)
	// SumPriceByType возвращает суммарную стоимость абонементов типа.
	SumPriceByType(ctx context.Context, typeSub models.SubscriptionType) (float64, error)
}

// SkierFinder определяет поиск владельца абонемента.
type SkierFinder interface {
	FindSkierBySubscription(ctx context.Context, subscriptionID int) (*models.Skier, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует бизнес-логику работы с абонементами.
type SubscriptionService struct {
	repo   SubscriptionRepository
	skiers SkierFinder
	cache  Cache
	clock  clock.Clock
	log    *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, skiers SkierFinder,
	cache Cache, clk clock.Clock, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:   repo,
		skiers: skiers,
		cache:  cache,
		clock:  clk,
		log:    log,
	}
}

// Add создает новый абонемент, вычисляя дату окончания по типу, и возвращает его ID.
func (s *SubscriptionService) Add(ctx context.Context, req models.DummySubscription) (int, error) {
	startDate, err := time.Parse("02-01-2006", req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}

	typeSub := models.SubscriptionType(req.Type)
	endDate, err := period.EndDate(typeSub, startDate)
	if err != nil {
		return 0, err
	}

	sub := models.Subscription{
		Type:      typeSub,
		StartDate: startDate,
		EndDate:   endDate,
		Price:     req.Price,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new subscription", slog.Int("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает абонемент по ID, используя кеш или репозиторий.
func (s *SubscriptionService) Read(ctx context.Context, id int) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// Update обновляет абонемент, заново вычисляя дату окончания, и обновляет кеш.
func (s *SubscriptionService) Update(ctx context.Context, req models.DummySubscription, id int) (int, error) {
	startDate, err := time.Parse("02-01-2006", req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}

	typeSub := models.SubscriptionType(req.Type)
	endDate, err := period.EndDate(typeSub, startDate)
	if err != nil {
		return 0, err
	}

	sub := models.Subscription{
		Type:      typeSub,
		StartDate: startDate,
		EndDate:   endDate,
		Price:     req.Price,
	}
	res, err := s.repo.UpdateSubscription(ctx, sub, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated subscription in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Renew продлевает абонемент на срок его типа начиная с даты окончания,
// а для уже истёкших абонементов с сегодняшнего дня. Возвращает nil,
// если абонемент не найден.
func (s *SubscriptionService) Renew(ctx context.Context, id int) (*models.Subscription, error) {
	sub, err := s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		s.log.Info("subscription not found", slog.Int("id", id))
		return nil, nil
	}

	newEnd, err := period.Renew(sub.Type, sub.EndDate, s.clock.Now())
	if err != nil {
		return nil, err
	}
	sub.EndDate = newEnd

	if _, err := s.repo.UpdateSubscription(ctx, *sub, id); err != nil {
		return nil, err
	}
	s.log.Info("renewed subscription", slog.Int("id", id),
		slog.Time("new_end_date", newEnd))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return sub, nil
}

// GetByType возвращает абонементы заданного типа.
func (s *SubscriptionService) GetByType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptionsByType(ctx, typeSub)
}

// RetrieveByDates возвращает абонементы с датой начала в заданном диапазоне включительно.
func (s *SubscriptionService) RetrieveByDates(ctx context.Context, startDate, endDate string) ([]*models.Subscription, error) {
	start, err := time.Parse("02-01-2006", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("02-01-2006", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	return s.repo.ListSubscriptionsByStartDateRange(ctx, start, end)
}

// Retrieve возвращает все абонементы по возрастанию даты окончания
// и пишет в журнал владельца каждого из них.
func (s *SubscriptionService) Retrieve(ctx context.Context) ([]*models.Subscription, error) {
	subs, err := s.repo.ListSubscriptionsOrderedByEndDate(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		skier, err := s.skiers.FindSkierBySubscription(ctx, sub.ID)
		if err != nil {
			return nil, err
		}
		if skier == nil {
			s.log.Info("subscription has no owner", slog.Int("id", sub.ID))
			continue
		}
		s.log.Info("subscription",
			slog.Int("id", sub.ID),
			slog.Time("end_date", sub.EndDate),
			slog.String("owner", skier.FirstName+" "+skier.LastName))
	}
	return subs, nil
}

// MonthlyRecurringRevenue возвращает ожидаемый месячный доход:
// сумма месячных абонементов плюс приведённые к месяцу доли
// полугодовых и годовых.
func (s *SubscriptionService) MonthlyRecurringRevenue(ctx context.Context) (float64, error) {
	monthly, err := s.repo.SumPriceByType(ctx, models.TypeMonthly)
	if err != nil {
		return 0, err
	}
	semestriel, err := s.repo.SumPriceByType(ctx, models.TypeSemestriel)
	if err != nil {
		return 0, err
	}
	annual, err := s.repo.SumPriceByType(ctx, models.TypeAnnual)
	if err != nil {
		return 0, err
	}
	return monthly + semestriel/6 + annual/12, nil
}
