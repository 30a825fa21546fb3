// Package bytype реализует HTTP-обработчик выборки абонементов по типу.
package bytype

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки абонементов по типу.
type Service interface {
	GetByType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Subscription, error)
}

// Handler отвечает за обработку запросов на выборку абонементов по типу.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить абонементы по типу
// @Tags Subscriptions
// @Produce  json
// @Param type path string true "Тип абонемента (MONTHLY, SEMESTRIEL, ANNUAL)"
// @Success 200 {object} map[string]any "Список абонементов"
// @Failure 422 {object} response.ErrorResponse "Неизвестный тип абонемента"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/type/{type} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.bytype"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	typeSub := models.SubscriptionType(chi.URLParam(r, "type"))
	if typeSub.Months() == 0 {
		log.Error("unknown subscription type", slog.String("type", string(typeSub)))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown subscription type"))
		return
	}

	subs, err := h.service.GetByType(r.Context(), typeSub)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list subscriptions"))
		return
	}

	log.Info("success to list subscriptions", slog.Int("count", len(subs)))
	render.JSON(w, r, response.OKWithData(subs))
}
