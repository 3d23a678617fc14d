package update_daily_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/internal/service/schedule"
	"github.com/m04kA/PGS-QueueService/internal/service/schedule/models"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgGroomerNotFound    = "грумер не найден"
	msgGroomerInactive    = "грумер неактивен и не может быть назначен"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedules/{date}
// Полная замена расписания на дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из URL
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("PUT /schedules/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &models.UpsertScheduleRequest{
		Date:    date,
		Entries: req.Entries,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrGroomerNotFound):
			h.logger.Warn("PUT /schedules/{date} - Groomer not found: date=%s", dateStr)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, schedule.ErrGroomerInactive):
			h.logger.Warn("PUT /schedules/{date} - Groomer inactive: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgGroomerInactive)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedules/{date} - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /schedules/{date} - Failed to save schedule: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{date} - Schedule saved successfully: date=%s, entries=%d",
		dateStr, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
