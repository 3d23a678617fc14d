package get_queue_entries

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/service/queue"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/queue
// Query params: date, customerId, groomerId, status, includeCancelled
// Очередь дня запрашивается по date; история клиента - по customerId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params, err := parseQueryParams(
		query.Get("date"),
		query.Get("customerId"),
		query.Get("groomerId"),
		query.Get("status"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /queue - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	var result interface{}
	var count int

	if params.byCustomer != nil {
		list, err := h.service.GetCustomerEntries(r.Context(), params.byCustomer)
		if err != nil {
			h.handleServiceError(w, err)
			return
		}
		result = list.Entries
		count = len(list.Entries)
	} else {
		list, err := h.service.GetByDate(r.Context(), params.byDate)
		if err != nil {
			h.handleServiceError(w, err)
			return
		}
		result = list.Entries
		count = len(list.Entries)
	}

	h.logger.Info("GET /queue - Entries retrieved successfully: count=%d", count)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, queue.ErrInvalidInput):
		h.logger.Warn("GET /queue - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)

	default:
		h.logger.Error("GET /queue - Failed to get entries: %v", err)
		handlers.RespondInternalError(w)
	}
}
