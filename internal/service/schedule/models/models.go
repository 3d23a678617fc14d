package models

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// Request модели

// ScheduleEntryInput назначение грумера на день
type ScheduleEntryInput struct {
	GroomerID int64  `json:"groomerId"`
	Name      string `json:"name"`
	Start     string `json:"start"` // "09:00"
	End       string `json:"end"`   // "18:00"
}

// UpsertScheduleRequest запрос на полную замену расписания на дату
type UpsertScheduleRequest struct {
	Date    time.Time            `json:"date"`
	Entries []ScheduleEntryInput `json:"entries"`
}

// ToDomain конвертирует request в domain модель
// Ёмкость дня производна от числа назначений
func (r *UpsertScheduleRequest) ToDomain() (*domain.DailySchedule, error) {
	entries := make(domain.ScheduleEntries, 0, len(r.Entries))
	for _, input := range r.Entries {
		start, err := types.NewTimeStringFromString(input.Start)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(input.End)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.ScheduleEntry{
			GroomerID: input.GroomerID,
			Name:      input.Name,
			WorkingHours: domain.WorkingHours{
				Start: start,
				End:   end,
			},
		})
	}

	return &domain.DailySchedule{
		Date:          r.Date,
		Entries:       entries,
		TotalCapacity: len(entries),
	}, nil
}

// Response модели

// ScheduleEntryResponse назначение грумера в ответе
type ScheduleEntryResponse struct {
	GroomerID int64  `json:"groomerId"`
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ScheduleResponse ответ с расписанием на дату
type ScheduleResponse struct {
	ID            int64                   `json:"id"`
	Date          string                  `json:"date"` // "2026-08-24"
	Entries       []ScheduleEntryResponse `json:"entries"`
	TotalCapacity int                     `json:"totalCapacity"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.DailySchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	entries := make([]ScheduleEntryResponse, len(s.Entries))
	for i, entry := range s.Entries {
		entries[i] = ScheduleEntryResponse{
			GroomerID: entry.GroomerID,
			Name:      entry.Name,
			Start:     entry.WorkingHours.Start.String(),
			End:       entry.WorkingHours.End.String(),
		}
	}

	return &ScheduleResponse{
		ID:            s.ID,
		Date:          s.Date.Format(domain.DateFormat),
		Entries:       entries,
		TotalCapacity: s.TotalCapacity,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
