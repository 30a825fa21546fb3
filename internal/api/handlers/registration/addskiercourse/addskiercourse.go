// Package addskiercourse реализует HTTP-обработчик полной записи лыжника
// на курс: создание записи с одновременной привязкой к лыжнику и курсу
// с проверкой допуска.
package addskiercourse

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/ski-station/internal/api/response"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Service описывает интерфейс бизнес-логики записи лыжника на курс.
type Service interface {
	AddAndAssignToSkierAndCourse(ctx context.Context, req models.DummyRegistration, skierID, courseID int) (*models.Registration, error)
}

// Handler отвечает за обработку запросов на запись лыжника на курс.
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
// @Summary Записать лыжника на курс
// @Description Создает запись с привязкой к лыжнику и курсу. Запись
// @Description отклоняется, если лыжник уже записан на этот курс в эту
// @Description неделю или не проходит по возрасту для коллективного курса.
// @Tags Registrations
// @Accept  json
// @Produce  json
// @Param skier_id path int true "ID лыжника"
// @Param course_id path int true "ID курса"
// @Param request body models.DummyRegistration true "Данные записи"
// @Success 200 {object} map[string]any "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Запись отклонена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании"
// @Router /registrations/skier/{skier_id}/course/{course_id} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.addskiercourse"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skierID, err := strconv.Atoi(chi.URLParam(r, "skier_id"))
	if err != nil {
		log.Error("failed to decode skier_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode skier_id from url"))
		return
	}
	courseID, err := strconv.Atoi(chi.URLParam(r, "course_id"))
	if err != nil {
		log.Error("failed to decode course_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode course_id from url"))
		return
	}

	var req models.DummyRegistration
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

	registration, err := h.service.AddAndAssignToSkierAndCourse(r.Context(), req, skierID, courseID)
	if err != nil {
		log.Error("failed to create registration", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create registration"))
		return
	}
	if registration == nil {
		log.Info("registration denied",
			slog.Int("skier_id", skierID), slog.Int("course_id", courseID),
			slog.Int("num_week", req.NumWeek))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("registration denied"))
		return
	}

	log.Info("success to create registration",
		slog.Int("id", registration.ID),
		slog.Int("skier_id", skierID), slog.Int("course_id", courseID))
	render.JSON(w, r, response.OKWithData(registration))
}
