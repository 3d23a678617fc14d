package get_available_groomers

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	getAvailableGroomers "github.com/m04kA/PGS-QueueService/internal/usecase/get_available_groomers"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgDateRequired  = "не указана дата"
)

type Handler struct {
	useCase GetAvailableGroomersUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableGroomersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/groomers/available
// Query params: date (обязательно), time, services (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /groomers/available - Missing date")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	req, err := parseRequest(dateStr, query.Get("time"), query.Get("services"))
	if err != nil {
		h.logger.Warn("GET /groomers/available - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableGroomers.ErrDateRequired),
			errors.Is(err, getAvailableGroomers.ErrInvalidTime):
			h.logger.Warn("GET /groomers/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /groomers/available - Failed to get groomers: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /groomers/available - Groomers retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Groomers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
