// Package bysubscriptiontype реализует HTTP-обработчик выборки лыжников
// по типу абонемента.
package bysubscriptiontype

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

// Service описывает интерфейс бизнес-логики выборки лыжников по типу абонемента.
type Service interface {
	BySubscriptionType(ctx context.Context, typeSub models.SubscriptionType) ([]*models.Skier, error)
}

// Handler отвечает за обработку запросов на выборку лыжников по типу абонемента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить лыжников по типу абонемента
// @Tags Skiers
// @Produce  json
// @Param type path string true "Тип абонемента (MONTHLY, SEMESTRIEL, ANNUAL)"
// @Success 200 {object} map[string]any "Список лыжников"
// @Failure 422 {object} response.ErrorResponse "Неизвестный тип абонемента"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /skiers/subscription/{type} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skier.bysubscriptiontype"

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

	skiers, err := h.service.BySubscriptionType(r.Context(), typeSub)
	if err != nil {
		log.Error("failed to list skiers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list skiers"))
		return
	}

	log.Info("success to list skiers", slog.Int("count", len(skiers)))
	render.JSON(w, r, response.OKWithData(skiers))
}
