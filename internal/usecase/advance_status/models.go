package advance_status

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// ImageInput фотография результата, прикладываемая при завершении
type ImageInput struct {
	ImageData string
}

// Request модель запроса на продвижение записи по workflow
//
// Какие поля читаются, зависит от целевого статуса:
//   - deposit: DepositAmount (0 допустим - "депозит не взят"), DepositMethod
//   - check_in: CheckInWeight, CheckInNotes, Services (финальный список услуг)
//   - completed: AssignedGroomerID (если не был назначен ранее), Images
type Request struct {
	EntryID      int64
	TargetStatus string

	DepositAmount *float64
	DepositMethod *string

	CheckInWeight *float64
	CheckInNotes  *string
	Services      []string // уточнённый список услуг на чек-ине (опционально)

	AssignedGroomerID *int64
	Images            []ImageInput
}

// Response модель ответа с обновлённой записью
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

	BookingAt   *time.Time
	DepositAt   *time.Time
	CheckInAt   *time.Time
	CompletedAt *time.Time

	DepositAmount *float64
	DepositMethod *string
	CheckInWeight *float64
	CheckInNotes  *string

	CompletionImages domain.CompletionImages

	// ServiceRecordID заполняется только при переходе в completed
	ServiceRecordID *int64

	UpdatedAt time.Time
}

// fromDomain конвертирует запись очереди в response
func fromDomain(entry *domain.QueueEntry, recordID *int64) *Response {
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
		DepositAt:         entry.DepositAt,
		CheckInAt:         entry.CheckInAt,
		CompletedAt:       entry.CompletedAt,
		DepositAmount:     entry.DepositAmount,
		DepositMethod:     entry.DepositMethod,
		CheckInWeight:     entry.CheckInWeight,
		CheckInNotes:      entry.CheckInNotes,
		CompletionImages:  entry.CompletionImages,
		ServiceRecordID:   recordID,
		UpdatedAt:         entry.UpdatedAt,
	}
}
