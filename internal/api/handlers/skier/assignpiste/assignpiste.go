// Package assignpiste реализует HTTP-обработчик связывания лыжника с трассой.
package assignpiste

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

// Service описывает интерфейс бизнес-логики связывания лыжника с трассой.
type Service interface {
	AssignToPiste(ctx context.Context, skierID, pisteID int) (*models.Skier, error)
}

// Handler отвечает за обработку запросов на связывание лыжника с трассой.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Связать лыжника с трассой
// @Tags Skiers
// @Produce  json
// @Param id path int true "ID лыжника"
// @Param piste_id path int true "ID трассы"
// @Success 200 {object} map[string]any "Лыжник"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Лыжник или трасса не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /skiers/{id}/piste/{piste_id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skier.assignpiste"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skierID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}
	pisteID, err := strconv.Atoi(chi.URLParam(r, "piste_id"))
	if err != nil {
		log.Error("failed to decode piste_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode piste_id from url"))
		return
	}

	skier, err := h.service.AssignToPiste(r.Context(), skierID, pisteID)
	if err != nil {
		log.Error("failed to assign piste", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not assign piste"))
		return
	}
	if skier == nil {
		log.Info("skier or piste not found",
			slog.Int("skier_id", skierID), slog.Int("piste_id", pisteID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("skier or piste not found"))
		return
	}

	log.Info("success to assign piste",
		slog.Int("skier_id", skierID), slog.Int("piste_id", pisteID))
	render.JSON(w, r, response.OKWithData(skier))
}
