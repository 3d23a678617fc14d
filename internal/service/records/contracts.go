package records

import (
	"context"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	recordsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/records"
)

// RecordRepository интерфейс репозитория истории обслуживания
type RecordRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceRecord, error)
	GetWithFilter(ctx context.Context, filter recordsRepo.RecordsFilter) ([]*domain.ServiceRecord, error)
	Update(ctx context.Context, id int64, fields recordsRepo.UpdateFields) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
