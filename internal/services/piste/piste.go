// Package piste содержит бизнес-логику управления трассами.
package piste

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// PisteRepository определяет методы для работы с трассами в хранилище.
type PisteRepository interface {
	// CreatePiste добавляет новую трассу и возвращает её ID.
	CreatePiste(ctx context.Context, piste models.Piste) (int, error)
	// ReadPiste возвращает трассу по ID.
	ReadPiste(ctx context.Context, id int) (*models.Piste, error)
	// ListPistes возвращает все трассы.
	ListPistes(ctx context.Context) ([]*models.Piste, error)
	// DeletePiste удаляет трассу по ID.
	DeletePiste(ctx context.Context, id int) (int, error)
}

// PisteService реализует бизнес-логику работы с трассами.
type PisteService struct {
	repo PisteRepository
	log  *slog.Logger
}

// NewPisteService создает новый экземпляр PisteService.
func NewPisteService(repo PisteRepository, log *slog.Logger) *PisteService {
	return &PisteService{repo: repo, log: log}
}

// Add создает новую трассу и возвращает её ID.
func (s *PisteService) Add(ctx context.Context, req models.DummyPiste) (int, error) {
	piste := models.Piste{
		Name:   req.Name,
		Color:  models.PisteColor(req.Color),
		Length: req.Length,
		Slope:  req.Slope,
	}
	id, err := s.repo.CreatePiste(ctx, piste)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new piste", slog.Int("id", id))
	return id, nil
}

// Retrieve возвращает трассу по ID.
func (s *PisteService) Retrieve(ctx context.Context, id int) (*models.Piste, error) {
	return s.repo.ReadPiste(ctx, id)
}

// RetrieveAll возвращает все трассы.
func (s *PisteService) RetrieveAll(ctx context.Context) ([]*models.Piste, error) {
	return s.repo.ListPistes(ctx)
}

// Remove удаляет трассу по ID и возвращает количество удалённых строк.
func (s *PisteService) Remove(ctx context.Context, id int) (int, error) {
	return s.repo.DeletePiste(ctx, id)
}
