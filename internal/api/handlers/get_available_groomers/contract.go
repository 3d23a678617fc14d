package get_available_groomers

import (
	"context"

	getAvailableGroomers "github.com/m04kA/PGS-QueueService/internal/usecase/get_available_groomers"
)

type GetAvailableGroomersUseCase interface {
	Execute(ctx context.Context, req *getAvailableGroomers.Request) (*getAvailableGroomers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
