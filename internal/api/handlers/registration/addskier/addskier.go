// Package addskier реализует HTTP-обработчик создания записи на неделю
// с привязкой к лыжнику.
package addskier

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

// Service описывает интерфейс бизнес-логики создания записи для лыжника.
type Service interface {
	AddAndAssignToSkier(ctx context.Context, req models.DummyRegistration, skierID int) (*models.Registration, error)
}

// Handler отвечает за обработку запросов на создание записи для лыжника.
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
// @Summary Создать запись и привязать к лыжнику
// @Description Создает запись на неделю. Если лыжник не найден, запись
// @Description сохраняется без привязки.
// @Tags Registrations
// @Accept  json
// @Produce  json
// @Param skier_id path int true "ID лыжника"
// @Param request body models.DummyRegistration true "Данные записи"
// @Success 200 {object} map[string]any "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании"
// @Router /registrations/skier/{skier_id} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.addskier"

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

	registration, err := h.service.AddAndAssignToSkier(r.Context(), req, skierID)
	if err != nil {
		log.Error("failed to create registration", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create registration"))
		return
	}

	log.Info("success to create registration",
		slog.Int("id", registration.ID), slog.Int("skier_id", skierID))
	render.JSON(w, r, response.OKWithData(registration))
}
