package get_service_records

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/service/records"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service RecordService
	logger  Logger
}

func NewHandler(service RecordService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/records
// Query params: customerId, petId, groomerId, startDate, endDate (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := parseRequest(
		query.Get("customerId"),
		query.Get("petId"),
		query.Get("groomerId"),
		query.Get("startDate"),
		query.Get("endDate"),
	)
	if err != nil {
		h.logger.Warn("GET /records - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("GET /records - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /records - Failed to get records: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /records - Records retrieved successfully: count=%d", len(result.Records))
	handlers.RespondJSON(w, http.StatusOK, result.Records)
}
