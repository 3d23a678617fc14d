package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	groomersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/groomers"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	"github.com/m04kA/PGS-QueueService/internal/service/schedule/models"
)

// Service сервис дневных расписаний персонала
type Service struct {
	scheduleRepo ScheduleRepository
	groomerRepo  GroomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	groomerRepo GroomerRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		groomerRepo:  groomerRepo,
		logger:       logger,
	}
}

// GetByDate получает расписание на дату
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByDate: fetching schedule for %s", date.Format(domain.DateFormat))

	schedule, err := s.scheduleRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, schedulesRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByDate: schedule for %s not found", date.Format(domain.DateFormat))
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByDate: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// Upsert создает или полностью заменяет расписание на дату
// Каждое назначение проверяется: грумер существует, активен,
// рабочие часы корректны и не перепутаны местами
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: saving schedule for %s with %d entries",
		req.Date.Format(domain.DateFormat), len(req.Entries))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	schedule, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Upsert: invalid schedule entries for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seen := make(map[int64]struct{}, len(schedule.Entries))
	for _, entry := range schedule.Entries {
		if entry.WorkingHours.End.IsBefore(entry.WorkingHours.Start) || entry.WorkingHours.Start == entry.WorkingHours.End {
			s.logger.Warn("Upsert: invalid working hours %s-%s for groomer id=%d",
				entry.WorkingHours.Start, entry.WorkingHours.End, entry.GroomerID)
			return nil, fmt.Errorf("%w: working hours end must be after start", ErrInvalidInput)
		}

		if _, dup := seen[entry.GroomerID]; dup {
			return nil, fmt.Errorf("%w: groomer %d is scheduled twice", ErrInvalidInput, entry.GroomerID)
		}
		seen[entry.GroomerID] = struct{}{}

		groomer, err := s.groomerRepo.GetByID(ctx, entry.GroomerID)
		if err != nil {
			if errors.Is(err, groomersRepo.ErrGroomerNotFound) {
				s.logger.Warn("Upsert: groomer id=%d not found", entry.GroomerID)
				return nil, ErrGroomerNotFound
			}
			s.logger.Error("Upsert: failed to get groomer id=%d: %v", entry.GroomerID, err)
			return nil, fmt.Errorf("%w: Upsert - failed to get groomer: %v", ErrInternal, err)
		}
		if !groomer.IsActive {
			s.logger.Warn("Upsert: groomer id=%d is inactive", entry.GroomerID)
			return nil, ErrGroomerInactive
		}
	}

	saved, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		s.logger.Error("Upsert: repository error for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved schedule id=%d for %s", saved.ID, req.Date.Format(domain.DateFormat))
	return models.FromDomainSchedule(saved), nil
}
