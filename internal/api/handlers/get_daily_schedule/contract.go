package get_daily_schedule

import (
	"context"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
