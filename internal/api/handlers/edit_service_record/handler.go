package edit_service_record

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	"github.com/m04kA/PGS-QueueService/internal/service/records"
	"github.com/m04kA/PGS-QueueService/internal/service/records/models"
)

const (
	msgInvalidRecordID    = "некорректный ID сервисной записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сервисная запись не найдена"
	msgInvalidInput       = "некорректные данные запроса"
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

// Handle PATCH /api/v1/records/{recordId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем recordId из URL
	vars := mux.Vars(r)
	recordIDStr := vars["recordId"]

	recordID, err := strconv.ParseInt(recordIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /records/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	var req models.EditRecordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /records/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	record, err := h.service.Edit(r.Context(), recordID, &req)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrRecordNotFound):
			h.logger.Warn("PATCH /records/{id} - Record not found: record_id=%d", recordID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("PATCH /records/{id} - Invalid input: record_id=%d, error=%v", recordID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /records/{id} - Failed to edit record: record_id=%d, error=%v", recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /records/{id} - Record edited successfully: record_id=%d", recordID)
	handlers.RespondJSON(w, http.StatusOK, record)
}
