package get_available_slots

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	Date     time.Time
	Services []string // для вычисления длительности слота
	MaxSlots int      // 0 означает значение по умолчанию
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []domain.AvailableSlot
}
