package advance_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/api/middleware"
	advanceStatus "github.com/m04kA/PGS-QueueService/internal/usecase/advance_status"
)

const (
	msgInvalidEntryID     = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "запись не найдена"
	msgUnknownStatus      = "неизвестный статус"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgUseCancelEndpoint  = "для отмены записи используйте отдельный запрос отмены"
	msgGroomerRequired    = "для завершения нужно назначить грумера"
	msgGroomerNotFound    = "грумер не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase AdvanceStatusUseCase
	logger  Logger
}

func NewHandler(useCase AdvanceStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/queue/{entryId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем entryId из URL
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /queue/{id}/status - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req AdvanceStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /queue/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(entryID))
	if err != nil {
		switch {
		case errors.Is(err, advanceStatus.ErrEntryNotFound):
			h.logger.Warn("PATCH /queue/{id}/status - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, advanceStatus.ErrUnknownStatus):
			h.logger.Warn("PATCH /queue/{id}/status - Unknown status %q: entry_id=%d", req.Status, entryID)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, advanceStatus.ErrCancellationNotAllowed):
			h.logger.Warn("PATCH /queue/{id}/status - Cancellation via status: entry_id=%d", entryID)
			handlers.RespondBadRequest(w, msgUseCancelEndpoint)

		case errors.Is(err, advanceStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /queue/{id}/status - Invalid transition to %q: entry_id=%d", req.Status, entryID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, advanceStatus.ErrGroomerRequired):
			h.logger.Warn("PATCH /queue/{id}/status - Groomer required: entry_id=%d", entryID)
			handlers.RespondBadRequest(w, msgGroomerRequired)

		case errors.Is(err, advanceStatus.ErrGroomerNotFound):
			h.logger.Warn("PATCH /queue/{id}/status - Groomer not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, advanceStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /queue/{id}/status - Invalid input: entry_id=%d, error=%v", entryID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /queue/{id}/status - Failed to advance status: entry_id=%d, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	staffID, _ := middleware.GetStaffID(r.Context())
	h.logger.Info("PATCH /queue/{id}/status - Entry advanced successfully: entry_id=%d, status=%s, staff_id=%d",
		entryID, result.Status, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
