package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
	createBooking "github.com/m04kA/PGS-QueueService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCustomerNotFound    = "клиент не найден"
	msgPetNotFound         = "питомец не найден"
	msgPetNotOwned         = "питомец принадлежит другому клиенту"
	msgGroomerNotFound     = "грумер не найден"
	msgGroomerInactive     = "грумер не принимает записи"
	msgGroomerNotAvailable = "грумер занят в выбранное время"
	msgNoServices          = "нужно выбрать хотя бы одну услугу"
	msgDateRequired        = "не указана дата записи"
	msgInvalidTime         = "некорректное время записи"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /queue - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /queue - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /queue - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /queue - Pet not found: pet_id=%d", req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrPetNotOwned):
			h.logger.Warn("POST /queue - Pet not owned: pet_id=%d, customer_id=%d", req.PetID, req.CustomerID)
			handlers.RespondBadRequest(w, msgPetNotOwned)

		case errors.Is(err, createBooking.ErrGroomerNotFound):
			h.logger.Warn("POST /queue - Groomer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, createBooking.ErrGroomerInactive):
			h.logger.Warn("POST /queue - Groomer inactive: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgGroomerInactive)

		case errors.Is(err, createBooking.ErrGroomerNotAvailable):
			h.logger.Warn("POST /queue - Groomer not available: customer_id=%d, date=%s", req.CustomerID, req.Date)
			handlers.RespondConflict(w, msgGroomerNotAvailable)

		case errors.Is(err, createBooking.ErrNoServices):
			h.logger.Warn("POST /queue - No services selected: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, createBooking.ErrDateRequired):
			h.logger.Warn("POST /queue - Date required: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, createBooking.ErrInvalidAppointmentTime):
			h.logger.Warn("POST /queue - Invalid appointment time: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /queue - Invalid input: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /queue - Failed to create entry: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /queue - Entry created successfully: entry_id=%d, queue_number=%d, customer_id=%d",
		result.ID, result.QueueNumber, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
