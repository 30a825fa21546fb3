// Package assignsubscription реализует HTTP-обработчик привязки
// абонемента к лыжнику.
package assignsubscription

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

// Service описывает интерфейс бизнес-логики привязки абонемента.
type Service interface {
	AssignToSubscription(ctx context.Context, skierID, subscriptionID int) (*models.Skier, error)
}

// Handler отвечает за обработку запросов на привязку абонемента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Привязать абонемент к лыжнику
// @Tags Skiers
// @Produce  json
// @Param id path int true "ID лыжника"
// @Param subscription_id path int true "ID абонемента"
// @Success 200 {object} map[string]any "Лыжник с абонементом"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Лыжник или абонемент не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /skiers/{id}/subscription/{subscription_id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skier.assignsubscription"

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
	subscriptionID, err := strconv.Atoi(chi.URLParam(r, "subscription_id"))
	if err != nil {
		log.Error("failed to decode subscription_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode subscription_id from url"))
		return
	}

	skier, err := h.service.AssignToSubscription(r.Context(), skierID, subscriptionID)
	if err != nil {
		log.Error("failed to assign subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not assign subscription"))
		return
	}
	if skier == nil {
		log.Info("skier or subscription not found",
			slog.Int("skier_id", skierID), slog.Int("subscription_id", subscriptionID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("skier or subscription not found"))
		return
	}

	log.Info("success to assign subscription",
		slog.Int("skier_id", skierID), slog.Int("subscription_id", subscriptionID))
	render.JSON(w, r, response.OKWithData(skier))
}
