// Package weeks реализует HTTP-обработчик выборки недель, в которые
// инструктор ведёт курсы заданной дисциплины.
package weeks

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

// Service описывает интерфейс бизнес-логики выборки недель инструктора.
type Service interface {
	NumWeeksOfInstructorBySupport(ctx context.Context, instructorID int, support models.Support) ([]int, error)
}

// Handler отвечает за обработку запросов на выборку недель инструктора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить недели инструктора по дисциплине
// @Tags Registrations
// @Produce  json
// @Param instructor_id path int true "ID инструктора"
// @Param support path string true "Дисциплина (SKI, SNOWBOARD)"
// @Success 200 {object} map[string]any "Номера недель"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /registrations/instructor/{instructor_id}/support/{support} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.weeks"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	instructorID, err := strconv.Atoi(chi.URLParam(r, "instructor_id"))
	if err != nil {
		log.Error("failed to decode instructor_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode instructor_id from url"))
		return
	}
	support := models.Support(chi.URLParam(r, "support"))

	weeks, err := h.service.NumWeeksOfInstructorBySupport(r.Context(), instructorID, support)
	if err != nil {
		log.Error("failed to list weeks", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list weeks"))
		return
	}

	log.Info("success to list weeks",
		slog.Int("instructor_id", instructorID), slog.Int("count", len(weeks)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"weeks": weeks,
	}))
}
