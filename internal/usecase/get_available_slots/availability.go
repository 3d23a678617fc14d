package get_available_slots

import (
	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

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
