package get_service_records

import (
	"context"

	"github.com/m04kA/PGS-QueueService/internal/service/records/models"
)

type RecordService interface {
	List(ctx context.Context, req *models.GetRecordsRequest) (*models.RecordListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
