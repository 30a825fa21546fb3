// Package assigncourse реализует HTTP-обработчик назначения курса инструктору.
package assigncourse

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

// Service описывает интерфейс бизнес-логики назначения курса инструктору.
type Service interface {
	AssignToCourse(ctx context.Context, instructorID, courseID int) (*models.Instructor, error)
}

// Handler отвечает за обработку запросов на назначение курса инструктору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Назначить курс инструктору
// @Tags Instructors
// @Produce  json
// @Param id path int true "ID инструктора"
// @Param course_id path int true "ID курса"
// @Success 200 {object} map[string]any "Инструктор с назначенными курсами"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Инструктор или курс не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /instructors/{id}/course/{course_id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.instructor.assigncourse"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	instructorID, err := strconv.Atoi(chi.URLParam(r, "id"))
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

	instructor, err := h.service.AssignToCourse(r.Context(), instructorID, courseID)
	if err != nil {
		log.Error("failed to assign course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not assign course"))
		return
	}
	if instructor == nil {
		log.Info("instructor or course not found",
			slog.Int("instructor_id", instructorID), slog.Int("course_id", courseID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("instructor or course not found"))
		return
	}

	log.Info("success to assign course",
		slog.Int("instructor_id", instructorID), slog.Int("course_id", courseID))
	render.JSON(w, r, response.OKWithData(instructor))
}
