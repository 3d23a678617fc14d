package schedule

import (
	"context"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
)

// ScheduleRepository интерфейс репозитория дневных расписаний
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailySchedule, error)
	Upsert(ctx context.Context, schedule *domain.DailySchedule) (*domain.DailySchedule, error)
}

// GroomerRepository интерфейс репозитория грумеров
type GroomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Groomer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
