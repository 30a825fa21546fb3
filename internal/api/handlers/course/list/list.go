// Package list реализует HTTP-обработчик выборки всех курсов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки курсов.
type Service interface {
	RetrieveAll(ctx context.Context) ([]*models.Course, error)
}

// Handler отвечает за обработку запросов на выборку курсов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить все курсы
// @Tags Courses
// @Produce  json
// @Success 200 {object} map[string]any "Список курсов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /courses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	courses, err := h.service.RetrieveAll(r.Context())
	if err != nil {
		log.Error("failed to list courses", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list courses"))
		return
	}

	log.Info("success to list courses", slog.Int("count", len(courses)))
	render.JSON(w, r, response.OKWithData(courses))
}
