// Package list реализует HTTP-обработчик выборки всех лыжников.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки лыжников.
type Service interface {
	RetrieveAll(ctx context.Context) ([]*models.Skier, error)
}

// Handler отвечает за обработку запросов на выборку лыжников.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить всех лыжников
// @Tags Skiers
// @Produce  json
// @Success 200 {object} map[string]any "Список лыжников"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /skiers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skier.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skiers, err := h.service.RetrieveAll(r.Context())
	if err != nil {
		log.Error("failed to list skiers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list skiers"))
		return
	}

	log.Info("success to list skiers", slog.Int("count", len(skiers)))
	render.JSON(w, r, response.OKWithData(skiers))
}
