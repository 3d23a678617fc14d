package get_queue_entries

import (
	"context"

	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
)

type QueueService interface {
	GetByDate(ctx context.Context, req *models.GetQueueRequest) (*models.QueueListResponse, error)
	GetCustomerEntries(ctx context.Context, req *models.GetCustomerEntriesRequest) (*models.QueueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
