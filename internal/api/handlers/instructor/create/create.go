// Package create реализует HTTP-обработчик создания нового инструктора,
// в том числе с одновременным назначением курса.
package create

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Service описывает интерфейс бизнес-логики создания инструктора.
type Service interface {
	Add(ctx context.Context, req models.DummyInstructor) (int, error)
	AddAndAssignToCourse(ctx context.Context, req models.DummyInstructor, courseID int) (*models.Instructor, error)
}

// Handler отвечает за обработку запросов на создание инструктора.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать инструктора
// @Description Создает инструктора. Если указан query-параметр course_id,
// @Description курс назначается при создании; отсутствующий курс не мешает
// @Description сохранению инструктора.
// @Tags Instructors
// @Accept  json
// @Produce  json
// @Param request body models.DummyInstructor true "Данные инструктора"
// @Param course_id query int false "ID курса для назначения"
// @Success 200 {object} map[string]any "Созданный инструктор"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании"
// @Router /instructors [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.instructor.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyInstructor
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	if rawCourseID := r.URL.Query().Get("course_id"); rawCourseID != "" {
		courseID, err := strconv.Atoi(rawCourseID)
		if err != nil {
			log.Error("failed to decode course_id from query", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode course_id from query"))
			return
		}

		instructor, err := h.service.AddAndAssignToCourse(r.Context(), req, courseID)
		if err != nil {
			log.Error("failed to create instructor", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create instructor"))
			return
		}

		log.Info("success to create instructor",
			slog.Int("id", instructor.ID), slog.Int("course_id", courseID))
		render.JSON(w, r, response.OKWithData(instructor))
		return
	}

	id, err := h.service.Add(r.Context(), req)
	if err != nil {
		log.Error("failed to create instructor", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create instructor"))
		return
	}

	log.Info("success to create instructor", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
