package get_available_groomers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

// UseCase use case получения доступных грумеров
type UseCase struct {
	queueRepo    QueueRepository
	groomerRepo  GroomerRepository
	scheduleRepo ScheduleRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	groomerRepo GroomerRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		groomerRepo:  groomerRepo,
		scheduleRepo: scheduleRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute возвращает грумеров, доступных на дату (и интервал, если он задан)
//
// Без расписания на день считается, что доступны все активные грумеры -
// деградация мягкая, фильтрации по занятости при этом нет. С расписанием
// порядок грумеров в ответе повторяет порядок записей расписания;
// грумеры, деактивированные после составления расписания, исключаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableGroomers: date=%s, time=%s, services=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, len(req.Services))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
	}

	// 2. Читаем расписание на день
	schedule, err := uc.scheduleRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, schedulesRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableGroomers: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 3. Расписания нет - доступны все активные грумеры
	if schedule == nil {
		groomers, err := uc.groomerRepo.ListActive(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableGroomers: failed to list active groomers: %v", err)
			return nil, fmt.Errorf("%w: failed to list groomers: %v", ErrInternal, err)
		}

		result := make([]AvailableGroomer, 0, len(groomers))
		for _, g := range groomers {
			result = append(result, AvailableGroomer{GroomerID: g.ID, Name: g.Name})
		}
		return &Response{Date: req.Date, Groomers: result}, nil
	}

	// 4. Расписание могло быть составлено до деактивации грумера,
	// поэтому записи сверяются с текущим списком активных
	activeGroomers, err := uc.groomerRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableGroomers: failed to list active groomers: %v", err)
		return nil, fmt.Errorf("%w: failed to list groomers: %v", ErrInternal, err)
	}
	activeIDs := make(map[int64]struct{}, len(activeGroomers))
	for _, g := range activeGroomers {
		activeIDs[g.ID] = struct{}{}
	}

	// 5. Время не задано - возвращаем всех активных грумеров из расписания
	if req.StartTime.IsZero() {
		result := make([]AvailableGroomer, 0, len(schedule.Entries))
		for _, entry := range schedule.Entries {
			if _, active := activeIDs[entry.GroomerID]; !active {
				continue
			}
			wh := entry.WorkingHours
			result = append(result, AvailableGroomer{
				GroomerID:    entry.GroomerID,
				Name:         entry.Name,
				WorkingHours: &wh,
			})
		}
		return &Response{Date: req.Date, Groomers: result}, nil
	}

	// 6. Вычисляем длительность кандидатного интервала
	shopSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetAvailableGroomers: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	duration := shopSettings.ComputeDuration(req.Services)

	// 7. Получаем активные записи на дату для проверки пересечений
	bookings, err := uc.queueRepo.GetWithFilter(ctx, domain.QueueFilter{Date: ptr.Ptr(req.Date)})
	if err != nil {
		uc.logger.Error("GetAvailableGroomers: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Фильтруем грумеров по рабочим часам и занятости,
	// сохраняя порядок записей расписания
	result := make([]AvailableGroomer, 0, len(schedule.Entries))
	for _, entry := range schedule.Entries {
		if _, active := activeIDs[entry.GroomerID]; !active {
			continue
		}
		if !entry.WorkingHours.ContainsInterval(req.StartTime, duration) {
			continue
		}
		if !groomerIsFree(entry.GroomerID, req.StartTime, duration, bookings) {
			continue
		}
		wh := entry.WorkingHours
		result = append(result, AvailableGroomer{
			GroomerID:    entry.GroomerID,
			Name:         entry.Name,
			WorkingHours: &wh,
		})
	}

	uc.logger.Info("GetAvailableGroomers: %d groomer(s) available on %s at %s",
		len(result), req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{Date: req.Date, Groomers: result}, nil
}
