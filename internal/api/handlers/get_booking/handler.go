package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/service/queue"
)

const (
	msgInvalidEntryID = "некорректный ID записи"
	msgNotFound       = "запись не найдена"
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

// Handle GET /api/v1/queue/{entryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем entryId из URL
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /queue/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	entry, err := h.service.GetByID(r.Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrEntryNotFound):
			h.logger.Warn("GET /queue/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /queue/{id} - Failed to get entry: entry_id=%d, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /queue/{id} - Entry retrieved successfully: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusOK, entry)
}
