package advance_status

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	advanceStatus "github.com/m04kA/PGS-QueueService/internal/usecase/advance_status"
)

// ImageInput фотография результата в теле запроса
type ImageInput struct {
	ImageData string `json:"imageData"`
}

// AdvanceStatusRequest HTTP request model
type AdvanceStatusRequest struct {
	Status string `json:"status"`

	DepositAmount *float64 `json:"depositAmount,omitempty"`
	DepositMethod *string  `json:"depositMethod,omitempty"`

	CheckInWeight *float64 `json:"checkInWeight,omitempty"`
	CheckInNotes  *string  `json:"checkInNotes,omitempty"`
	Services      []string `json:"services,omitempty"`

	AssignedGroomerID *int64       `json:"assignedGroomerId,omitempty"`
	Images            []ImageInput `json:"images,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdvanceStatusRequest) ToUseCaseRequest(entryID int64) *advanceStatus.Request {
	images := make([]advanceStatus.ImageInput, len(r.Images))
	for i, img := range r.Images {
		images[i] = advanceStatus.ImageInput{ImageData: img.ImageData}
	}

	return &advanceStatus.Request{
		EntryID:           entryID,
		TargetStatus:      r.Status,
		DepositAmount:     r.DepositAmount,
		DepositMethod:     r.DepositMethod,
		CheckInWeight:     r.CheckInWeight,
		CheckInNotes:      r.CheckInNotes,
		Services:          r.Services,
		AssignedGroomerID: r.AssignedGroomerID,
		Images:            images,
	}
}

// CompletionImageResponse фотография результата в ответе
type CompletionImageResponse struct {
	ID        string    `json:"id"`
	ImageData string    `json:"imageData"`
	Timestamp time.Time `json:"timestamp"`
}

// AdvanceStatusResponse HTTP response model
type AdvanceStatusResponse struct {
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

	BookingAt   *time.Time `json:"bookingAt,omitempty"`
	DepositAt   *time.Time `json:"depositAt,omitempty"`
	CheckInAt   *time.Time `json:"checkInAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	DepositAmount *float64 `json:"depositAmount,omitempty"`
	DepositMethod *string  `json:"depositMethod,omitempty"`
	CheckInWeight *float64 `json:"checkInWeight,omitempty"`
	CheckInNotes  *string  `json:"checkInNotes,omitempty"`

	CompletionImages []CompletionImageResponse `json:"completionImages,omitempty"`
	ServiceRecordID  *int64                    `json:"serviceRecordId,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *advanceStatus.Response) *AdvanceStatusResponse {
	result := &AdvanceStatusResponse{
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
		BookingAt:         resp.BookingAt,
		DepositAt:         resp.DepositAt,
		CheckInAt:         resp.CheckInAt,
		CompletedAt:       resp.CompletedAt,
		DepositAmount:     resp.DepositAmount,
		DepositMethod:     resp.DepositMethod,
		CheckInWeight:     resp.CheckInWeight,
		CheckInNotes:      resp.CheckInNotes,
		ServiceRecordID:   resp.ServiceRecordID,
		UpdatedAt:         resp.UpdatedAt,
	}

	if len(resp.CompletionImages) > 0 {
		result.CompletionImages = make([]CompletionImageResponse, len(resp.CompletionImages))
		for i, img := range resp.CompletionImages {
			result.CompletionImages[i] = CompletionImageResponse{
				ID:        img.ID,
				ImageData: img.ImageData,
				Timestamp: img.Timestamp,
			}
		}
	}

	return result
}
