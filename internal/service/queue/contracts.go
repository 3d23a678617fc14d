package queue

import (
	"context"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	queueRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/queue"
)

// QueueRepository интерфейс репозитория очереди
type QueueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.QueueEntry, error)
	GetWithFilter(ctx context.Context, filter domain.QueueFilter) ([]*domain.QueueEntry, error)
	Update(ctx context.Context, id int64, fields queueRepo.UpdateFields) error
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
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
