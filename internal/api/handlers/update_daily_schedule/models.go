package update_daily_schedule

import (
	"github.com/m04kA/PGS-QueueService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
// Дата берётся из URL, тело содержит только назначения
type UpdateScheduleRequest struct {
	Entries []models.ScheduleEntryInput `json:"entries"`
}
