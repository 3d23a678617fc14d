package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/service/queue"
	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
)

const (
	msgInvalidEntryID     = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "запись не найдена"
	msgEntryTerminal      = "запись завершена или отменена и не может быть изменена"
	msgInvalidInput       = "некорректные данные запроса"
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

// Handle PUT /api/v1/queue/{entryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем entryId из URL
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /queue/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req models.UpdateEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /queue/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := h.service.Update(r.Context(), entryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrEntryNotFound):
			h.logger.Warn("PUT /queue/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, queue.ErrEntryTerminal):
			h.logger.Warn("PUT /queue/{id} - Entry is terminal: entry_id=%d", entryID)
			handlers.RespondConflict(w, msgEntryTerminal)

		case errors.Is(err, queue.ErrInvalidInput):
			h.logger.Warn("PUT /queue/{id} - Invalid input: entry_id=%d, error=%v", entryID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /queue/{id} - Failed to update entry: entry_id=%d, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /queue/{id} - Entry updated successfully: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusOK, entry)
}
