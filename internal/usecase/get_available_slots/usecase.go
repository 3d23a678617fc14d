package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// UseCase use case поиска доступных слотов
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

// Execute перебирает день с фиксированным шагом и возвращает слоты,
// на которые можно записаться с выбранным набором услуг
//
// Окно перебора - рабочие часы первой записи расписания; без расписания
// используются часы магазина из настроек. Слот попадает в ответ, если
// весь интервал [слот, слот+длительность) помещается в окно и хотя бы
// один грумер свободен. Число слотов ограничено сверху
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, services=%d, maxSlots=%d",
		req.Date.Format(domain.DateFormat), len(req.Services), req.MaxSlots)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if req.MaxSlots < 0 {
		return nil, fmt.Errorf("%w: maxSlots must not be negative", ErrInvalidInput)
	}

	maxSlots := req.MaxSlots
	if maxSlots == 0 {
		maxSlots = domain.DefaultMaxSlots
	}

	// 2. Читаем настройки и вычисляем длительность слота
	shopSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	duration := shopSettings.ComputeDuration(req.Services)

	// 3. Читаем расписание на день
	schedule, err := uc.scheduleRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, schedulesRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Определяем окно перебора
	window := shopSettings.WorkingHoursOrDefault()
	if schedule != nil && len(schedule.Entries) > 0 {
		window = schedule.Entries[0].WorkingHours
	}

	windowStart, err := window.Start.Minutes()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid window start %q: %v", window.Start, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}
	windowEnd, err := window.End.Minutes()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid window end %q: %v", window.End, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	// 5. Собираем данные о занятости
	// Расписание могло быть составлено до деактивации грумера,
	// поэтому его записи сверяются с текущим списком активных
	groomers, err := uc.groomerRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list active groomers: %v", err)
		return nil, fmt.Errorf("%w: failed to list groomers: %v", ErrInternal, err)
	}

	var bookings []*domain.QueueEntry
	activeIDs := make(map[int64]struct{}, len(groomers))

	if schedule != nil {
		for _, g := range groomers {
			activeIDs[g.ID] = struct{}{}
		}
		bookings, err = uc.queueRepo.GetWithFilter(ctx, domain.QueueFilter{Date: ptr.Ptr(req.Date)})
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
	}

	// Без расписания ёмкость каждого слота равна числу активных грумеров
	activeGroomerCount := len(groomers)

	// 6. Перебираем день с фиксированным шагом
	slots := make([]domain.AvailableSlot, 0, maxSlots)
	for cursor := windowStart; cursor+duration <= windowEnd && len(slots) < maxSlots; cursor += domain.SlotStepMinutes {
		slotStart, err := types.NewTimeStringFromMinutes(cursor)
		if err != nil {
			break
		}
		slotEnd, err := types.NewTimeStringFromMinutes(cursor + duration)
		if err != nil {
			break
		}

		count := activeGroomerCount
		if schedule != nil {
			count = uc.countAvailableGroomers(schedule, activeIDs, slotStart, duration, bookings)
		}

		if count > 0 {
			slots = append(slots, domain.AvailableSlot{
				Time:                  slotStart,
				EndTime:               slotEnd,
				AvailableGroomerCount: count,
			})
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slot(s) found on %s for duration %dm",
		len(slots), req.Date.Format(domain.DateFormat), duration)

	return &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// countAvailableGroomers считает грумеров, способных принять интервал
// [start, start+duration): грумер активен, интервал помещается в его
// рабочие часы и не пересекается с его активными записями
func (uc *UseCase) countAvailableGroomers(schedule *domain.DailySchedule, activeIDs map[int64]struct{}, start types.TimeString, durationMinutes int, bookings []*domain.QueueEntry) int {
	count := 0
	for _, entry := range schedule.Entries {
		if _, active := activeIDs[entry.GroomerID]; !active {
			continue
		}
		if !entry.WorkingHours.ContainsInterval(start, durationMinutes) {
			continue
		}
		if !groomerIsFree(entry.GroomerID, start, durationMinutes, bookings) {
			continue
		}
		count++
	}
	return count
}
