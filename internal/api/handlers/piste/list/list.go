// Package list реализует HTTP-обработчик выборки всех трасс.
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

// Service описывает интерфейс бизнес-логики выборки трасс.
type Service interface {
	RetrieveAll(ctx context.Context) ([]*models.Piste, error)
}

// Handler отвечает за обработку запросов на выборку трасс.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить все трассы
// @Tags Pistes
// @Produce  json
// @Success 200 {object} map[string]any "Список трасс"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /pistes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.piste.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pistes, err := h.service.RetrieveAll(r.Context())
	if err != nil {
		log.Error("failed to list pistes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list pistes"))
		return
	}

	log.Info("success to list pistes", slog.Int("count", len(pistes)))
	render.JSON(w, r, response.OKWithData(pistes))
}
