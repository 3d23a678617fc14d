package get_booking

import (
	"context"

	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
)

type QueueService interface {
	GetByID(ctx context.Context, id int64) (*models.QueueEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
