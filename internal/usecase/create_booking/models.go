package create_booking

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// Request модель запроса на создание записи в очереди
type Request struct {
	CustomerID        int64
	PetID             int64
	Services          []string         // выбранные услуги в порядке выбора
	Date              time.Time        // дата записи (без времени)
	AppointmentTime   types.TimeString // время записи (опционально)
	AssignedGroomerID *int64           // желаемый грумер (опционально)
	Priority          bool
	TransportIncluded bool
	Notes             *string
	MarketingSource   *string
	BookerName        *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID               int64
	QueueNumber      int
	Date             time.Time
	AppointmentTime  types.TimeString
	EstimatedEndTime types.TimeString
	DurationMinutes  int

	CustomerID        int64
	PetID             int64
	AssignedGroomerID *int64
	Services          []string
	Status            string

	BookingAt *time.Time

	Priority          bool
	TransportIncluded bool
	Notes             *string
	MarketingSource   *string
	BookerName        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует запись очереди в response
func fromDomain(entry *domain.QueueEntry) *Response {
	return &Response{
		ID:                entry.ID,
		QueueNumber:       entry.QueueNumber,
		Date:              entry.Date,
		AppointmentTime:   entry.AppointmentTime,
		EstimatedEndTime:  entry.EstimatedEndTime,
		DurationMinutes:   entry.DurationMinutes,
		CustomerID:        entry.CustomerID,
		PetID:             entry.PetID,
		AssignedGroomerID: entry.AssignedGroomerID,
		Services:          entry.Services,
		Status:            string(entry.Status),
		BookingAt:         entry.BookingAt,
		Priority:          entry.Priority,
		TransportIncluded: entry.TransportIncluded,
		Notes:             entry.Notes,
		MarketingSource:   entry.MarketingSource,
		BookerName:        entry.BookerName,
		CreatedAt:         entry.CreatedAt,
		UpdatedAt:         entry.UpdatedAt,
	}
}
