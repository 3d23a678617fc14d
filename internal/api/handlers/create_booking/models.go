package create_booking

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	createBooking "github.com/m04kA/PGS-QueueService/internal/usecase/create_booking"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID        int64    `json:"customerId"`
	PetID             int64    `json:"petId"`
	Services          []string `json:"services"`
	Date              string   `json:"date"`                      // "2026-08-24"
	AppointmentTime   *string  `json:"appointmentTime,omitempty"` // "10:00", опционально
	AssignedGroomerID *int64   `json:"assignedGroomerId,omitempty"`
	Priority          bool     `json:"priority,omitempty"`
	TransportIncluded bool     `json:"transportIncluded,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	MarketingSource   *string  `json:"marketingSource,omitempty"`
	BookerName        *string  `json:"bookerName,omitempty"`
}

// QueueEntryResponse HTTP response model
type QueueEntryResponse struct {
	ID                int64    `json:"id"`
	QueueNumber       int      `json:"queueNumber"`
	Date              string   `json:"date"`
	AppointmentTime   string   `json:"appointmentTime,omitempty"`
	EstimatedEndTime  string   `json:"estimatedEndTime,omitempty"`
	DurationMinutes   int      `json:"durationMinutes"`
	CustomerID        int64    `json:"customerId"`
	PetID             int64    `json:"petId"`
	AssignedGroomerID *int64   `json:"assignedGroomerId,omitempty"`
	Services          []string `json:"services"`
	Status            string   `json:"status"`
	BookingAt         *string  `json:"bookingAt,omitempty"` // ISO 8601
	Priority          bool     `json:"priority"`
	TransportIncluded bool     `json:"transportIncluded"`
	Notes             *string  `json:"notes,omitempty"`
	MarketingSource   *string  `json:"marketingSource,omitempty"`
	BookerName        *string  `json:"bookerName,omitempty"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время записи, если оно задано
	var appointmentTime types.TimeString
	if r.AppointmentTime != nil && *r.AppointmentTime != "" {
		appointmentTime, err = types.NewTimeStringFromString(*r.AppointmentTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		CustomerID:        r.CustomerID,
		PetID:             r.PetID,
		Services:          r.Services,
		Date:              date,
		AppointmentTime:   appointmentTime,
		AssignedGroomerID: r.AssignedGroomerID,
		Priority:          r.Priority,
		TransportIncluded: r.TransportIncluded,
		Notes:             r.Notes,
		MarketingSource:   r.MarketingSource,
		BookerName:        r.BookerName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *QueueEntryResponse {
	result := &QueueEntryResponse{
		ID:                resp.ID,
		QueueNumber:       resp.QueueNumber,
		Date:              resp.Date.Format(domain.DateFormat),
		AppointmentTime:   resp.AppointmentTime.String(),
		EstimatedEndTime:  resp.EstimatedEndTime.String(),
		DurationMinutes:   resp.DurationMinutes,
		CustomerID:        resp.CustomerID,
		PetID:             resp.PetID,
		AssignedGroomerID: resp.AssignedGroomerID,
		Services:          resp.Services,
		Status:            resp.Status,
		Priority:          resp.Priority,
		TransportIncluded: resp.TransportIncluded,
		Notes:             resp.Notes,
		MarketingSource:   resp.MarketingSource,
		BookerName:        resp.BookerName,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.BookingAt != nil {
		bookingStr := resp.BookingAt.Format(time.RFC3339)
		result.BookingAt = &bookingStr
	}

	return result
}
