package get_available_groomers

import (
	"strings"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	getAvailableGroomers "github.com/m04kA/PGS-QueueService/internal/usecase/get_available_groomers"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// parseRequest разбирает query-параметры в модель use case
func parseRequest(dateStr, timeStr, servicesStr string) (*getAvailableGroomers.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var startTime types.TimeString
	if timeStr != "" {
		startTime, err = types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, err
		}
	}

	var services []string
	if servicesStr != "" {
		services = strings.Split(servicesStr, ",")
	}

	return &getAvailableGroomers.Request{
		Date:      date,
		StartTime: startTime,
		Services:  services,
	}, nil
}

// WorkingHoursResponse рабочие часы грумера
type WorkingHoursResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GroomerResponse доступный грумер в ответе
type GroomerResponse struct {
	GroomerID    int64                 `json:"groomerId"`
	Name         string                `json:"name"`
	WorkingHours *WorkingHoursResponse `json:"workingHours,omitempty"`
}

// GroomersResponse HTTP response model
type GroomersResponse struct {
	Date     string            `json:"date"`
	Groomers []GroomerResponse `json:"groomers"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableGroomers.Response) *GroomersResponse {
	groomers := make([]GroomerResponse, len(resp.Groomers))
	for i, g := range resp.Groomers {
		groomers[i] = GroomerResponse{
			GroomerID: g.GroomerID,
			Name:      g.Name,
		}
		if g.WorkingHours != nil {
			groomers[i].WorkingHours = &WorkingHoursResponse{
				Start: g.WorkingHours.Start.String(),
				End:   g.WorkingHours.End.String(),
			}
		}
	}

	return &GroomersResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Groomers: groomers,
	}
}
