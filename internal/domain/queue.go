package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// QueueStatus represents the workflow stage of a queue entry
type QueueStatus string

const (
	StatusBooking   QueueStatus = "booking"
	StatusDeposit   QueueStatus = "deposit"
	StatusCheckIn   QueueStatus = "check_in"
	StatusCompleted QueueStatus = "completed"
	StatusCancelled QueueStatus = "cancelled"
)

// statusTransitions явная таблица допустимых переходов
// Обратных переходов нет; терминальные статусы не имеют исходящих переходов
var statusTransitions = map[QueueStatus][]QueueStatus{
	StatusBooking:   {StatusDeposit, StatusCancelled},
	StatusDeposit:   {StatusCheckIn, StatusCancelled},
	StatusCheckIn:   {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseQueueStatus валидирует строковое представление статуса
func ParseQueueStatus(s string) (QueueStatus, error) {
	status := QueueStatus(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", fmt.Errorf("unknown queue status: %q", s)
	}
	return status, nil
}

// CanTransition возвращает true, если переход from -> to определён таблицей
func CanTransition(from, to QueueStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses with no outgoing transitions
func (s QueueStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CompletionImage фотография результата, прикрепляемая при завершении
type CompletionImage struct {
	ID        string    `json:"id"`
	ImageData string    `json:"imageData"`
	Timestamp time.Time `json:"timestamp"`
}

// CompletionImages список фотографий, хранится одной jsonb-колонкой
type CompletionImages []CompletionImage

// Value реализует driver.Valuer
func (c CompletionImages) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan реализует sql.Scanner
func (c *CompletionImages) Scan(src interface{}) error {
	if src == nil {
		*c = CompletionImages{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("completion images: unsupported source type %T", src)
	}
	return json.Unmarshal(data, c)
}

// QueueEntry represents one booking in the day's grooming queue
type QueueEntry struct {
	ID          int64
	QueueNumber int // порядковый номер в пределах даты, 1-based, не переиспользуется
	Date        time.Time

	AppointmentTime  types.TimeString // опционально; пустое значение - запись без времени
	EstimatedEndTime types.TimeString // производное: AppointmentTime + DurationMinutes
	DurationMinutes  int              // производное от списка услуг

	CustomerID        int64
	PetID             int64
	AssignedGroomerID *int64

	// Services выбранные услуги в порядке выбора (для отображения);
	// подбор длительности сортирует копию списка
	Services []string

	Status QueueStatus

	// Stage timestamps: выставляются при первом входе в статус
	// и никогда не перезаписываются при повторном входе
	BookingAt   *time.Time
	DepositAt   *time.Time
	CheckInAt   *time.Time
	CompletedAt *time.Time

	DepositAmount *float64 // 0 означает "депозит не взят", nil - стадия ещё не пройдена
	DepositMethod *string

	CheckInWeight *float64
	CheckInNotes  *string

	CompletionImages CompletionImages

	Priority          bool
	TransportIncluded bool
	Notes             *string
	MarketingSource   *string
	BookerName        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal возвращает true для завершённых и отменённых записей
func (e *QueueEntry) IsTerminal() bool {
	return e.Status.IsTerminal()
}

// IsActive returns true if the entry still occupies its time slot
// Отменённые записи не участвуют в проверках пересечений
func (e *QueueEntry) IsActive() bool {
	return e.Status != StatusCancelled
}

// HasAppointmentTime возвращает true, если у записи задано время
// Записи без времени не могут конфликтовать по расписанию
func (e *QueueEntry) HasAppointmentTime() bool {
	return !e.AppointmentTime.IsZero()
}

// QueueFilter фильтр для выборки записей очереди
type QueueFilter struct {
	Date             *time.Time   // Конкретная дата (опционально)
	StartDate        *time.Time   // Начало периода (опционально)
	EndDate          *time.Time   // Конец периода (опционально)
	CustomerID       *int64       // Фильтр по клиенту (опционально)
	GroomerID        *int64       // Фильтр по грумеру (опционально)
	Status           *QueueStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool         // Включать ли отменённые записи
}
