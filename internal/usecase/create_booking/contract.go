package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
)

// QueueRepository интерфейс репозитория очереди
type QueueRepository interface {
	Create(ctx context.Context, entry *domain.QueueEntry) (*domain.QueueEntry, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	GetWithFilter(ctx context.Context, filter domain.QueueFilter) ([]*domain.QueueEntry, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
}

// GroomerRepository интерфейс репозитория грумеров
type GroomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Groomer, error)
}

// ScheduleRepository интерфейс репозитория дневных расписаний
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailySchedule, error)
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
