package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/api/middleware"
	"github.com/m04kA/PGS-QueueService/internal/service/queue"
	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
)

const (
	msgInvalidEntryID     = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "запись не найдена"
	msgEntryTerminal      = "запись уже завершена или отменена"
)

type Handler struct {
	service QueueService
	logger  Logger
}

func NewHandler(service QueueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/queue/{entryId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем entryId из URL
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /queue/{id}/cancel - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req models.CancelEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /queue/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), entryID, &req); err != nil {
		switch {
		case errors.Is(err, queue.ErrEntryNotFound):
			h.logger.Warn("PATCH /queue/{id}/cancel - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, queue.ErrEntryTerminal):
			h.logger.Warn("PATCH /queue/{id}/cancel - Entry is terminal: entry_id=%d", entryID)
			handlers.RespondConflict(w, msgEntryTerminal)

		default:
			h.logger.Error("PATCH /queue/{id}/cancel - Failed to cancel entry: entry_id=%d, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	staffID, _ := middleware.GetStaffID(r.Context())
	h.logger.Info("PATCH /queue/{id}/cancel - Entry cancelled successfully: entry_id=%d, staff_id=%d", entryID, staffID)
	w.WriteHeader(http.StatusNoContent)
}
