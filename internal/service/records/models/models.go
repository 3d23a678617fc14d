package models

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	recordsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/records"
)

// Request модели

// GetRecordsRequest запрос истории обслуживания с фильтрацией
type GetRecordsRequest struct {
	CustomerID *int64     `json:"customerId,omitempty"`
	PetID      *int64     `json:"petId,omitempty"`
	GroomerID  *int64     `json:"groomerId,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}

// ToRepoFilter конвертирует request в фильтр репозитория
func (r *GetRecordsRequest) ToRepoFilter() recordsRepo.RecordsFilter {
	return recordsRepo.RecordsFilter{
		CustomerID: r.CustomerID,
		PetID:      r.PetID,
		GroomerID:  r.GroomerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

// EditRecordRequest запрос ручной коррекции сервисной записи
// nil-поле означает "не менять"
type EditRecordRequest struct {
	Date              *time.Time `json:"date,omitempty"`
	GroomerID         *int64     `json:"groomerId,omitempty"`
	ServicesPerformed []string   `json:"servicesPerformed,omitempty"`
	CheckInAt         *time.Time `json:"checkInAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	DurationMinutes   *int       `json:"durationMinutes,omitempty"`
	Price             *float64   `json:"price,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *EditRecordRequest) IsEmpty() bool {
	return r.Date == nil &&
		r.GroomerID == nil &&
		r.ServicesPerformed == nil &&
		r.CheckInAt == nil &&
		r.CompletedAt == nil &&
		r.DurationMinutes == nil &&
		r.Price == nil &&
		r.Notes == nil
}

// Response модели

// CompletionImageResponse фотография результата
type CompletionImageResponse struct {
	ID        string    `json:"id"`
	ImageData string    `json:"imageData"`
	Timestamp time.Time `json:"timestamp"`
}

// ServiceRecordResponse ответ с данными сервисной записи
type ServiceRecordResponse struct {
	ID         int64  `json:"id"`
	QueueID    int64  `json:"queueId"`
	CustomerID int64  `json:"customerId"`
	PetID      int64  `json:"petId"`
	GroomerID  int64  `json:"groomerId"`
	Date       string `json:"date"` // "2026-08-24"

	ServicesPerformed []string `json:"servicesPerformed"`

	BookingAt   *time.Time `json:"bookingAt,omitempty"`
	DepositAt   *time.Time `json:"depositAt,omitempty"`
	CheckInAt   *time.Time `json:"checkInAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	DurationMinutes int `json:"durationMinutes"`

	CheckInWeight    *float64                  `json:"checkInWeight,omitempty"`
	CheckInNotes     *string                   `json:"checkInNotes,omitempty"`
	CompletionImages []CompletionImageResponse `json:"completionImages,omitempty"`

	Price float64 `json:"price"`
	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// RecordListResponse ответ со списком сервисных записей
type RecordListResponse struct {
	Records []ServiceRecordResponse `json:"records"`
}

// Методы конвертации

// FromDomainRecord конвертирует domain модель в DTO
func FromDomainRecord(r *domain.ServiceRecord) *ServiceRecordResponse {
	if r == nil {
		return nil
	}

	resp := &ServiceRecordResponse{
		ID:                r.ID,
		QueueID:           r.QueueID,
		CustomerID:        r.CustomerID,
		PetID:             r.PetID,
		GroomerID:         r.GroomerID,
		Date:              r.Date.Format(domain.DateFormat),
		ServicesPerformed: r.ServicesPerformed,
		BookingAt:         r.BookingAt,
		DepositAt:         r.DepositAt,
		CheckInAt:         r.CheckInAt,
		CompletedAt:       r.CompletedAt,
		DurationMinutes:   r.DurationMinutes,
		CheckInWeight:     r.CheckInWeight,
		CheckInNotes:      r.CheckInNotes,
		Price:             r.Price,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
	}

	if len(r.CompletionImages) > 0 {
		resp.CompletionImages = make([]CompletionImageResponse, len(r.CompletionImages))
		for i, img := range r.CompletionImages {
			resp.CompletionImages[i] = CompletionImageResponse{
				ID:        img.ID,
				ImageData: img.ImageData,
				Timestamp: img.Timestamp,
			}
		}
	}

	return resp
}

// FromDomainRecordList конвертирует список domain моделей в DTO
func FromDomainRecordList(recordList []*domain.ServiceRecord) *RecordListResponse {
	if recordList == nil {
		return &RecordListResponse{
			Records: []ServiceRecordResponse{},
		}
	}

	resp := &RecordListResponse{
		Records: make([]ServiceRecordResponse, len(recordList)),
	}

	for i, record := range recordList {
		if recordResp := FromDomainRecord(record); recordResp != nil {
			resp.Records[i] = *recordResp
		}
	}

	return resp
}
