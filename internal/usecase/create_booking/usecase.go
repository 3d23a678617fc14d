package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	customersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/customers"
	groomersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/groomers"
	petsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/pets"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// UseCase use case создания записи в очереди
type UseCase struct {
	queueRepo    QueueRepository
	customerRepo CustomerRepository
	petRepo      PetRepository
	groomerRepo  GroomerRepository
	scheduleRepo ScheduleRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	customerRepo CustomerRepository,
	petRepo PetRepository,
	groomerRepo GroomerRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		customerRepo: customerRepo,
		petRepo:      petRepo,
		groomerRepo:  groomerRepo,
		scheduleRepo: scheduleRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
//
// Номер очереди считается от числа существующих записей на дату внутри
// сериализуемой транзакции. Сам по себе подсчёт не транзакционно-безопасен -
// две параллельные сессии могли бы выдать один номер; сериализуемая
// транзакция с блокировкой выборки и закрывает эту гонку для одного
// инстанса БД, и при масштабе магазина этого достаточно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, pet=%d, services=%d, date=%s, time=%s",
		req.CustomerID, req.PetID, len(req.Services), req.Date.Format(domain.DateFormat), req.AppointmentTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Проверяем питомца и его принадлежность клиенту
	pet, err := uc.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, petsRepo.ErrPetNotFound) {
			uc.logger.Warn("CreateBooking: pet id=%d not found", req.PetID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}
	if pet.OwnerCustomerID != req.CustomerID {
		uc.logger.Warn("CreateBooking: pet id=%d is not owned by customer id=%d", req.PetID, req.CustomerID)
		return nil, ErrPetNotOwned
	}

	// 5. Если грумер выбран заранее, проверяем его
	if req.AssignedGroomerID != nil {
		groomer, err := uc.groomerRepo.GetByID(ctx, *req.AssignedGroomerID)
		if err != nil {
			if errors.Is(err, groomersRepo.ErrGroomerNotFound) {
				uc.logger.Warn("CreateBooking: groomer id=%d not found", *req.AssignedGroomerID)
				return nil, ErrGroomerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get groomer id=%d: %v", *req.AssignedGroomerID, err)
			return nil, fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
		}
		if !groomer.IsActive {
			uc.logger.Warn("CreateBooking: groomer id=%d is inactive", groomer.ID)
			return nil, ErrGroomerInactive
		}
	}

	// Переменная для хранения результата
	var result *domain.QueueEntry

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Читаем настройки; отсутствующий документ - не ошибка,
		// движок длительностей откатится к значениям по умолчанию
		shopSettings, err := uc.settingsRepo.Get(txCtx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 6.2. Вычисляем длительность и ожидаемое время окончания
		duration := shopSettings.ComputeDuration(req.Services)

		var estimatedEnd types.TimeString
		if !req.AppointmentTime.IsZero() {
			estimatedEnd, err = req.AppointmentTime.AddMinutes(duration)
			if err != nil {
				uc.logger.Warn("CreateBooking: services do not fit into the day from %s", req.AppointmentTime)
				return fmt.Errorf("%w: services do not fit into the day", ErrInvalidAppointmentTime)
			}
		}

		// 6.3. Если запрошено назначение грумера на конкретное время,
		// проверяем его рабочие часы и пересечения с активными записями
		if req.AssignedGroomerID != nil && !req.AppointmentTime.IsZero() {
			if err := uc.checkGroomerAvailability(txCtx, req, duration); err != nil {
				return err
			}
		}

		// 6.4. Выдаём следующий номер очереди на дату
		count, err := uc.queueRepo.CountByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count entries for date: %v", err)
			return fmt.Errorf("%w: failed to count entries: %v", ErrInternal, err)
		}

		// 6.5. Создаем запись в статусе booking
		entry := &domain.QueueEntry{
			QueueNumber:       count + 1,
			Date:              req.Date,
			AppointmentTime:   req.AppointmentTime,
			EstimatedEndTime:  estimatedEnd,
			DurationMinutes:   duration,
			CustomerID:        req.CustomerID,
			PetID:             req.PetID,
			AssignedGroomerID: req.AssignedGroomerID,
			Services:          req.Services,
			Status:            domain.StatusBooking,
			BookingAt:         ptr.Ptr(now),
			CompletionImages:  domain.CompletionImages{},
			Priority:          req.Priority,
			TransportIncluded: req.TransportIncluded,
			Notes:             req.Notes,
			MarketingSource:   req.MarketingSource,
			BookerName:        req.BookerName,
		}

		created, err := uc.queueRepo.Create(txCtx, entry)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create entry: %v", err)
			return fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created entry id=%d, queue number %d for %s",
		result.ID, result.QueueNumber, result.Date.Format(domain.DateFormat))

	return fromDomain(result), nil
}

// checkGroomerAvailability проверяет рабочие часы и занятость выбранного грумера
// При отсутствии расписания на дату проверяются только пересечения записей -
// рабочие часы считаются неограниченными (fallback без расписания)
func (uc *UseCase) checkGroomerAvailability(ctx context.Context, req *Request, durationMinutes int) error {
	schedule, err := uc.scheduleRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, schedulesRepo.ErrScheduleNotFound) {
		uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
		return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if schedule != nil {
		entry, scheduled := schedule.EntryFor(*req.AssignedGroomerID)
		if !scheduled {
			uc.logger.Warn("CreateBooking: groomer id=%d is not scheduled on %s",
				*req.AssignedGroomerID, req.Date.Format(domain.DateFormat))
			return ErrGroomerNotAvailable
		}
		if !entry.WorkingHours.ContainsInterval(req.AppointmentTime, durationMinutes) {
			uc.logger.Warn("CreateBooking: interval %s+%dm is outside working hours of groomer id=%d",
				req.AppointmentTime, durationMinutes, *req.AssignedGroomerID)
			return ErrGroomerNotAvailable
		}
	}

	bookings, err := uc.queueRepo.GetWithFilter(ctx, domain.QueueFilter{Date: ptr.Ptr(req.Date)})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for date: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if !groomerIsFree(*req.AssignedGroomerID, req.AppointmentTime, durationMinutes, bookings) {
		uc.logger.Warn("CreateBooking: groomer id=%d has a conflicting booking at %s",
			*req.AssignedGroomerID, req.AppointmentTime)
		return ErrGroomerNotAvailable
	}

	return nil
}
