package get_available_groomers

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// Request модель запроса доступных грумеров
//
// StartTime опционально: без него возвращаются все грумеры,
// работающие в этот день, без проверки занятости
type Request struct {
	Date      time.Time
	StartTime types.TimeString
	Services  []string // для вычисления длительности кандидатного интервала
}

// AvailableGroomer грумер, доступный на дату (и интервал, если он задан)
type AvailableGroomer struct {
	GroomerID    int64
	Name         string
	WorkingHours *domain.WorkingHours // nil, когда расписания на день нет
}

// Response модель ответа со списком доступных грумеров
type Response struct {
	Date     time.Time
	Groomers []AvailableGroomer
}
