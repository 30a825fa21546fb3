// Package addcourse реализует HTTP-обработчик привязки существующей записи
// к курсу.
package addcourse

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

// Service описывает интерфейс бизнес-логики привязки записи к курсу.
type Service interface {
	AssignToCourse(ctx context.Context, registrationID, courseID int) (*models.Registration, error)
}

// Handler отвечает за обработку запросов на привязку записи к курсу.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Привязать запись к курсу
// @Tags Registrations
// @Produce  json
// @Param id path int true "ID записи"
// @Param course_id path int true "ID курса"
// @Success 200 {object} map[string]any "Обновлённая запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Запись или курс не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /registrations/{id}/course/{course_id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.addcourse"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	registrationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}
	courseID, err := strconv.Atoi(chi.URLParam(r, "course_id"))
	if err != nil {
		log.Error("failed to decode course_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode course_id from url"))
		return
	}

	registration, err := h.service.AssignToCourse(r.Context(), registrationID, courseID)
	if err != nil {
		log.Error("failed to assign course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not assign course"))
		return
	}
	if registration == nil {
		log.Info("registration or course not found",
			slog.Int("registration_id", registrationID), slog.Int("course_id", courseID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("registration or course not found"))
		return
	}

	log.Info("success to assign course",
		slog.Int("registration_id", registrationID), slog.Int("course_id", courseID))
	render.JSON(w, r, response.OKWithData(registration))
}
