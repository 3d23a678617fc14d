package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	getAvailableSlots "github.com/m04kA/PGS-QueueService/internal/usecase/get_available_slots"
)

// parseRequest разбирает query-параметры в модель use case
// services передаётся списком через запятую
func parseRequest(dateStr, servicesStr, maxSlotsStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var services []string
	if servicesStr != "" {
		services = strings.Split(servicesStr, ",")
	}

	maxSlots := 0
	if maxSlotsStr != "" {
		maxSlots, err = strconv.Atoi(maxSlotsStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		Date:     date,
		Services: services,
		MaxSlots: maxSlots,
	}, nil
}

// SlotResponse доступный слот в ответе
type SlotResponse struct {
	Time                  string `json:"time"`    // "10:00"
	EndTime               string `json:"endTime"` // "11:30"
	AvailableGroomerCount int    `json:"availableGroomerCount"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:                  slot.Time.String(),
			EndTime:               slot.EndTime.String(),
			AvailableGroomerCount: slot.AvailableGroomerCount,
		}
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
