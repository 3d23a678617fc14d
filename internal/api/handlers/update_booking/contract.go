package update_booking

import (
	"context"

	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
)

type QueueService interface {
	Update(ctx context.Context, entryID int64, req *models.UpdateEntryRequest) (*models.QueueEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
