package models

import (
	"errors"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid queue status")
)

// Request модели

// GetQueueRequest запрос на получение очереди на дату
type GetQueueRequest struct {
	Date             time.Time `json:"date"`
	GroomerID        *int64    `json:"groomerId,omitempty"`        // Фильтр по грумеру (опционально)
	Status           *string   `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool      `json:"includeCancelled,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetQueueRequest) ToDomainFilter() (domain.QueueFilter, error) {
	filter := domain.QueueFilter{
		Date:             &r.Date,
		GroomerID:        r.GroomerID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := domain.ParseQueueStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetCustomerEntriesRequest запрос истории записей клиента
type GetCustomerEntriesRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// CancelEntryRequest запрос на отмену записи очереди
type CancelEntryRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateEntryRequest запрос на редактирование записи очереди
// nil-поле означает "не менять"
type UpdateEntryRequest struct {
	Date              *time.Time `json:"date,omitempty"`
	AppointmentTime   *string    `json:"appointmentTime,omitempty"` // "HH:MM"
	AssignedGroomerID *int64     `json:"assignedGroomerId,omitempty"`
	Services          []string   `json:"services,omitempty"`
	Priority          *bool      `json:"priority,omitempty"`
	TransportIncluded *bool      `json:"transportIncluded,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *UpdateEntryRequest) IsEmpty() bool {
	return r.Date == nil &&
		r.AppointmentTime == nil &&
		r.AssignedGroomerID == nil &&
		r.Services == nil &&
		r.Priority == nil &&
		r.TransportIncluded == nil &&
		r.Notes == nil
}

// Response модели

// CompletionImageResponse фотография результата
type CompletionImageResponse struct {
	ID        string    `json:"id"`
	ImageData string    `json:"imageData"`
	Timestamp time.Time `json:"timestamp"`
}

// QueueEntryResponse ответ с данными записи очереди
type QueueEntryResponse struct {
	ID               int64  `json:"id"`
	QueueNumber      int    `json:"queueNumber"`
	Date             string `json:"date"`                       // "2026-08-24"
	AppointmentTime  string `json:"appointmentTime,omitempty"`  // "10:00"
	EstimatedEndTime string `json:"estimatedEndTime,omitempty"` // "11:30"
	DurationMinutes  int    `json:"durationMinutes"`

	CustomerID        int64    `json:"customerId"`
	PetID             int64    `json:"petId"`
	AssignedGroomerID *int64   `json:"assignedGroomerId,omitempty"`
	Services          []string `json:"services"`
	Status            string   `json:"status"`

	BookingAt   *time.Time `json:"bookingAt,omitempty"`
	DepositAt   *time.Time `json:"depositAt,omitempty"`
	CheckInAt   *time.Time `json:"checkInAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	DepositAmount *float64 `json:"depositAmount,omitempty"`
	DepositMethod *string  `json:"depositMethod,omitempty"`
	CheckInWeight *float64 `json:"checkInWeight,omitempty"`
	CheckInNotes  *string  `json:"checkInNotes,omitempty"`

	CompletionImages []CompletionImageResponse `json:"completionImages,omitempty"`

	Priority          bool    `json:"priority"`
	TransportIncluded bool    `json:"transportIncluded"`
	Notes             *string `json:"notes,omitempty"`
	MarketingSource   *string `json:"marketingSource,omitempty"`
	BookerName        *string `json:"bookerName,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QueueListResponse ответ со списком записей очереди
type QueueListResponse struct {
	Entries []QueueEntryResponse `json:"entries"`
}

// Методы конвертации

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.QueueEntry) *QueueEntryResponse {
	if e == nil {
		return nil
	}

	resp := &QueueEntryResponse{
		ID:                 e.ID,
		QueueNumber:        e.QueueNumber,
		Date:               e.Date.Format(domain.DateFormat),
		AppointmentTime:    e.AppointmentTime.String(),
		EstimatedEndTime:   e.EstimatedEndTime.String(),
		DurationMinutes:    e.DurationMinutes,
		CustomerID:         e.CustomerID,
		PetID:              e.PetID,
		AssignedGroomerID:  e.AssignedGroomerID,
		Services:           e.Services,
		Status:             string(e.Status),
		BookingAt:          e.BookingAt,
		DepositAt:          e.DepositAt,
		CheckInAt:          e.CheckInAt,
		CompletedAt:        e.CompletedAt,
		DepositAmount:      e.DepositAmount,
		DepositMethod:      e.DepositMethod,
		CheckInWeight:      e.CheckInWeight,
		CheckInNotes:       e.CheckInNotes,
		Priority:           e.Priority,
		TransportIncluded:  e.TransportIncluded,
		Notes:              e.Notes,
		MarketingSource:    e.MarketingSource,
		BookerName:         e.BookerName,
		CancellationReason: e.CancellationReason,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}

	if len(e.CompletionImages) > 0 {
		resp.CompletionImages = make([]CompletionImageResponse, len(e.CompletionImages))
		for i, img := range e.CompletionImages {
			resp.CompletionImages[i] = CompletionImageResponse{
				ID:        img.ID,
				ImageData: img.ImageData,
				Timestamp: img.Timestamp,
			}
		}
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if e.CancelledAt != nil {
		cancelledStr := e.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainEntryList конвертирует список domain моделей в DTO
func FromDomainEntryList(entries []*domain.QueueEntry) *QueueListResponse {
	if entries == nil {
		return &QueueListResponse{
			Entries: []QueueEntryResponse{},
		}
	}

	resp := &QueueListResponse{
		Entries: make([]QueueEntryResponse, len(entries)),
	}

	for i, entry := range entries {
		if entryResp := FromDomainEntry(entry); entryResp != nil {
			resp.Entries[i] = *entryResp
		}
	}

	return resp
}
