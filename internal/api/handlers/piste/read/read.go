// Package read реализует HTTP-обработчик чтения трассы по ID.
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

// Service описывает интерфейс бизнес-логики чтения трассы.
type Service interface {
	Retrieve(ctx context.Context, id int) (*models.Piste, error)
}

// Handler отвечает за обработку запросов на чтение трассы.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить трассу по ID
// @Tags Pistes
// @Produce  json
// @Param id path int true "ID трассы"
// @Success 200 {object} map[string]any "Данные трассы"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Трасса не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /pistes/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.piste.read"

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

	piste, err := h.service.Retrieve(r.Context(), id)
	if err != nil {
		log.Error("failed to read piste", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read piste"))
		return
	}
	if piste == nil {
		log.Info("piste not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("piste not found"))
		return
	}

	log.Info("success to read piste", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(piste))
}
