// Package revenue реализует HTTP-обработчик расчёта ожидаемого
// месячного дохода от абонементов.
package revenue

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики расчёта дохода.
type Service interface {
	MonthlyRecurringRevenue(ctx context.Context) (float64, error)
}

// Handler отвечает за обработку запросов на расчёт дохода.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Ожидаемый месячный доход
// @Description Сумма месячных абонементов плюс приведённые к месяцу доли полугодовых и годовых.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} map[string]any "Месячный доход"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/revenue [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.revenue"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	total, err := h.service.MonthlyRecurringRevenue(r.Context())
	if err != nil {
		log.Error("failed to count revenue", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count revenue"))
		return
	}

	log.Info("success to count revenue", slog.Float64("total", total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"monthly_revenue": total,
	}))
}
