// Package read реализует HTTP-обработчик чтения лыжника по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения лыжника.
type Service interface {
	Retrieve(ctx context.Context, id int) (*models.Skier, error)
}

// Handler отвечает за обработку запросов на чтение лыжника.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить лыжника по ID
// @Tags Skiers
// @Produce  json
// @Param id path int true "ID лыжника"
// @Success 200 {object} map[string]any "Данные лыжника"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Лыжник не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /skiers/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skier.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	skier, err := h.service.Retrieve(r.Context(), id)
	if err != nil {
		log.Error("failed to read skier", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read skier"))
		return
	}
	if skier == nil {
		log.Info("skier not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("skier not found"))
		return
	}

	log.Info("success to read skier", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(skier))
}
