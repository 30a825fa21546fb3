// Package remove реализует HTTP-обработчик удаления лыжника по ID.
package remove

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
)

// Service описывает интерфейс бизнес-логики удаления лыжника.
type Service interface {
	Remove(ctx context.Context, id int) (int, error)
}

// Handler отвечает за обработку запросов на удаление лыжника.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить лыжника по ID
// @Tags Skiers
// @Produce  json
// @Param id path int true "ID лыжника"
// @Success 200 {object} map[string]any "Количество удалённых записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Лыжник не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении"
// @Router /skiers/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skier.remove"

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

	counter, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to remove skier", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove skier"))
		return
	}
	if counter == 0 {
		log.Info("skier not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("skier not found"))
		return
	}

	log.Info("success to remove skier", slog.Int("deleted count", counter))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_count": counter,
	}))
}
