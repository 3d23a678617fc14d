package edit_service_record

import (
	"context"

	"github.com/m04kA/PGS-QueueService/internal/service/records/models"
)

type RecordService interface {
	Edit(ctx context.Context, recordID int64, req *models.EditRecordRequest) (*models.ServiceRecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
