package create_booking

import (
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Каждое нарушение даёт отдельную ошибку - UI показывает сообщение по полю
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if len(req.Services) == 0 {
		return ErrNoServices
	}

	if len(req.Services) > domain.MaxServicesPerEntry {
		return fmt.Errorf("%w: too many services selected", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return ErrDateRequired
	}

	if !req.AppointmentTime.IsZero() {
		if err := req.AppointmentTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppointmentTime, err)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// groomerIsFree проверяет, что у грумера нет пересечений с активными записями
// на кандидатный интервал [start, start+duration)
// Записи без назначенного времени не могут конфликтовать
func groomerIsFree(groomerID int64, start types.TimeString, durationMinutes int, entries []*domain.QueueEntry) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	endMin := startMin + durationMinutes

	for _, entry := range entries {
		if !entry.IsActive() || !entry.HasAppointmentTime() {
			continue
		}
		if entry.AssignedGroomerID == nil || *entry.AssignedGroomerID != groomerID {
			continue
		}

		entryStart, err := entry.AppointmentTime.Minutes()
		if err != nil {
			continue
		}
		entryEnd := entryStart + entry.DurationMinutes

		if domain.IntervalsOverlap(startMin, endMin, entryStart, entryEnd) {
			return false
		}
	}

	return true
}
