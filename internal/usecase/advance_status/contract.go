package advance_status

import (
	"context"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	queueRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/queue"
)

// QueueRepository интерфейс репозитория очереди
type QueueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.QueueEntry, error)
	Update(ctx context.Context, id int64, fields queueRepo.UpdateFields) error
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	UpdateWeight(ctx context.Context, id int64, weightKg float64) error
}

// GroomerRepository интерфейс репозитория грумеров
type GroomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Groomer, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	UpdateLastVisit(ctx context.Context, id int64, visitedAt time.Time) error
}

// RecordRepository интерфейс репозитория истории обслуживания
type RecordRepository interface {
	Create(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error)
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDProvider интерфейс генерации идентификаторов фотографий (для тестирования)
type IDProvider interface {
	NewID() string
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
