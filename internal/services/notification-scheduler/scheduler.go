// Package scheduler периодически находит абонементы, истекающие завтра,
// и публикует уведомления в очередь.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/ski-station/internal/lib/clock"
	"github.com/magabrotheeeer/ski-station/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// SubscriptionRepository определяет поиск истекающих абонементов.
type SubscriptionRepository interface {
	FindSubscriptionsExpiring(ctx context.Context, on time.Time) ([]*models.SubscriptionInfo, error)
}

// SchedulerService находит истекающие абонементы и публикует уведомления.
type SchedulerService struct {
	repo  SubscriptionRepository
	clock clock.Clock
	log   *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo SubscriptionRepository, clk clock.Clock, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

// FindExpiringSubscriptions раз в 12 часов ищет абонементы, истекающие завтра,
// и публикует каждое уведомление в очередь.
func (s *SchedulerService) FindExpiringSubscriptions(ctx context.Context, channel *amqp.Channel) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.log.Info("starting service to find expiring subscriptions")
			s.publishExpiring(ctx, channel)
		}
	}
}

func (s *SchedulerService) publishExpiring(ctx context.Context, channel *amqp.Channel) {
	tomorrow := s.clock.Now().AddDate(0, 0, 1)
	subsInfo, err := s.repo.FindSubscriptionsExpiring(ctx, tomorrow)
	if err != nil {
		s.log.Error("failed to find expiring subscriptions", sl.Err(err))
		return
	}
	for _, subInfo := range subsInfo {
		err = rabbitmq.PublishMessage(channel, "notifications", "expiring", subInfo)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
