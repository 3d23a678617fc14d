package get_available_groomers

import (
	"context"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
)

// QueueRepository интерфейс репозитория очереди
type QueueRepository interface {
	GetWithFilter(ctx context.Context, filter domain.QueueFilter) ([]*domain.QueueEntry, error)
}

// GroomerRepository интерфейс репозитория грумеров
type GroomerRepository interface {
	ListActive(ctx context.Context) ([]*domain.Groomer, error)
}

// ScheduleRepository интерфейс репозитория дневных расписаний
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailySchedule, error)
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
