// Package read реализует HTTP-обработчик чтения инструктора по ID.
package read

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

// Service описывает интерфейс бизнес-логики чтения инструктора.
type Service interface {
	Retrieve(ctx context.Context, id int) (*models.Instructor, error)
}

// Handler отвечает за обработку запросов на чтение инструктора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить инструктора по ID
// @Tags Instructors
// @Produce  json
// @Param id path int true "ID инструктора"
// @Success 200 {object} map[string]any "Данные инструктора с курсами"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Инструктор не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /instructors/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.instructor.read"

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

	instructor, err := h.service.Retrieve(r.Context(), id)
	if err != nil {
		log.Error("failed to read instructor", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read instructor"))
		return
	}
	if instructor == nil {
		log.Info("instructor not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("instructor not found"))
		return
	}

	log.Info("success to read instructor", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(instructor))
}
