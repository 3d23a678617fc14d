package advance_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	groomersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/groomers"
	queueRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/queue"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

// UUIDProvider генерирует идентификаторы фотографий на базе UUID v4
type UUIDProvider struct{}

// NewID возвращает новый идентификатор
func (p *UUIDProvider) NewID() string {
	return uuid.NewString()
}

// UseCase use case продвижения записи очереди по workflow
type UseCase struct {
	queueRepo    QueueRepository
	petRepo      PetRepository
	groomerRepo  GroomerRepository
	customerRepo CustomerRepository
	recordRepo   RecordRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	idProvider   IDProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	petRepo PetRepository,
	groomerRepo GroomerRepository,
	customerRepo CustomerRepository,
	recordRepo RecordRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		petRepo:      petRepo,
		groomerRepo:  groomerRepo,
		customerRepo: customerRepo,
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		idProvider:   &UUIDProvider{},
		logger:       logger,
	}
}

// Execute выполняет переход записи очереди в целевой статус
//
// Таймстемпы стадий выставляются при первом входе в статус и никогда
// не перезаписываются. Переход в completed дополнительно порождает
// сервисную запись (ровно одну, в той же транзакции) и обновляет
// дату последнего визита клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdvanceStatus: entry=%d, target=%s", req.EntryID, req.TargetStatus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdvanceStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем целевой статус
	target, err := domain.ParseQueueStatus(req.TargetStatus)
	if err != nil {
		uc.logger.Warn("AdvanceStatus: unknown status %q", req.TargetStatus)
		return nil, fmt.Errorf("%w: %v", ErrUnknownStatus, err)
	}

	// Отмена идёт отдельным путём - с причиной и своим таймстемпом
	if target == domain.StatusCancelled {
		return nil, ErrCancellationNotAllowed
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	var entry *domain.QueueEntry
	var recordID *int64

	// 4. Выполняем переход в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем запись
		entry, err = uc.queueRepo.GetByID(txCtx, req.EntryID)
		if err != nil {
			if errors.Is(err, queueRepo.ErrEntryNotFound) {
				uc.logger.Warn("AdvanceStatus: entry id=%d not found", req.EntryID)
				return ErrEntryNotFound
			}
			uc.logger.Error("AdvanceStatus: failed to get entry id=%d: %v", req.EntryID, err)
			return fmt.Errorf("%w: failed to get entry: %v", ErrInternal, err)
		}

		// 4.2. Проверяем переход по таблице переходов
		if !domain.CanTransition(entry.Status, target) {
			uc.logger.Warn("AdvanceStatus: transition %s -> %s is not allowed for entry id=%d",
				entry.Status, target, entry.ID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, entry.Status, target)
		}

		fields := queueRepo.UpdateFields{Status: &target}
		entry.Status = target

		// 4.3. Применяем данные стадии
		switch target {
		case domain.StatusDeposit:
			uc.applyDeposit(entry, req, &fields, now)
		case domain.StatusCheckIn:
			if err := uc.applyCheckIn(txCtx, entry, req, &fields, now); err != nil {
				return err
			}
		case domain.StatusCompleted:
			id, err := uc.applyCompletion(txCtx, entry, req, &fields, now)
			if err != nil {
				return err
			}
			recordID = id
		}

		// 4.4. Сохраняем запись
		if err := uc.queueRepo.Update(txCtx, entry.ID, fields); err != nil {
			uc.logger.Error("AdvanceStatus: failed to update entry id=%d: %v", entry.ID, err)
			return fmt.Errorf("%w: failed to update entry: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdvanceStatus: entry id=%d moved to %s", entry.ID, entry.Status)

	return fromDomain(entry, recordID), nil
}

// applyDeposit фиксирует стадию депозита
// Нулевая сумма означает "депозит не взят" и отличается от непройденной стадии
func (uc *UseCase) applyDeposit(entry *domain.QueueEntry, req *Request, fields *queueRepo.UpdateFields, now time.Time) {
	if entry.DepositAt == nil {
		entry.DepositAt = ptr.Ptr(now)
		fields.DepositAt = ptr.Ptr(now)
	}

	amount := 0.0
	if req.DepositAmount != nil {
		amount = *req.DepositAmount
	}
	entry.DepositAmount = ptr.Ptr(amount)
	fields.DepositAmount = ptr.Ptr(amount)

	if req.DepositMethod != nil {
		entry.DepositMethod = req.DepositMethod
		fields.DepositMethod = req.DepositMethod
	}
}

// applyCheckIn фиксирует стадию чек-ина: фактический вес питомца,
// заметки приёмки и уточнённый список услуг с пересчётом длительности
func (uc *UseCase) applyCheckIn(ctx context.Context, entry *domain.QueueEntry, req *Request, fields *queueRepo.UpdateFields, now time.Time) error {
	if entry.CheckInAt == nil {
		entry.CheckInAt = ptr.Ptr(now)
		fields.CheckInAt = ptr.Ptr(now)
	}

	if req.CheckInWeight != nil {
		entry.CheckInWeight = req.CheckInWeight
		fields.CheckInWeight = req.CheckInWeight

		// Фактическое взвешивание обновляет карточку питомца
		if err := uc.petRepo.UpdateWeight(ctx, entry.PetID, *req.CheckInWeight); err != nil {
			uc.logger.Error("AdvanceStatus: failed to update pet id=%d weight: %v", entry.PetID, err)
			return fmt.Errorf("%w: failed to update pet weight: %v", ErrInternal, err)
		}
	}

	if req.CheckInNotes != nil {
		entry.CheckInNotes = req.CheckInNotes
		fields.CheckInNotes = req.CheckInNotes
	}

	// Уточнённый на приёмке список услуг пересчитывает длительность
	// и ожидаемое время окончания
	if len(req.Services) > 0 {
		shopSettings, err := uc.getSettings(ctx)
		if err != nil {
			return err
		}

		duration := shopSettings.ComputeDuration(req.Services)

		entry.Services = req.Services
		fields.Services = req.Services
		entry.DurationMinutes = duration
		fields.DurationMinutes = ptr.Ptr(duration)

		if entry.HasAppointmentTime() {
			estimatedEnd, err := entry.AppointmentTime.AddMinutes(duration)
			if err != nil {
				uc.logger.Warn("AdvanceStatus: services do not fit into the day from %s", entry.AppointmentTime)
				return fmt.Errorf("%w: services do not fit into the day", ErrInvalidInput)
			}
			entry.EstimatedEndTime = estimatedEnd
			fields.EstimatedEndTime = ptr.Ptr(estimatedEnd)
		}
	}

	return nil
}

// applyCompletion фиксирует завершение: прикладывает фотографии,
// вычисляет финальную цену и порождает сервисную запись
func (uc *UseCase) applyCompletion(ctx context.Context, entry *domain.QueueEntry, req *Request, fields *queueRepo.UpdateFields, now time.Time) (*int64, error) {
	// Грумера можно назначить прямо при завершении
	if req.AssignedGroomerID != nil {
		if _, err := uc.groomerRepo.GetByID(ctx, *req.AssignedGroomerID); err != nil {
			if errors.Is(err, groomersRepo.ErrGroomerNotFound) {
				uc.logger.Warn("AdvanceStatus: groomer id=%d not found", *req.AssignedGroomerID)
				return nil, ErrGroomerNotFound
			}
			uc.logger.Error("AdvanceStatus: failed to get groomer id=%d: %v", *req.AssignedGroomerID, err)
			return nil, fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
		}
		entry.AssignedGroomerID = req.AssignedGroomerID
		fields.AssignedGroomerID = req.AssignedGroomerID
	}

	// История обслуживания ведётся по грумеру - без него завершение невозможно
	if entry.AssignedGroomerID == nil {
		uc.logger.Warn("AdvanceStatus: entry id=%d has no assigned groomer", entry.ID)
		return nil, ErrGroomerRequired
	}

	if entry.CompletedAt == nil {
		entry.CompletedAt = ptr.Ptr(now)
		fields.CompletedAt = ptr.Ptr(now)
	}

	if len(req.Images) > 0 {
		for _, img := range req.Images {
			entry.CompletionImages = append(entry.CompletionImages, domain.CompletionImage{
				ID:        uc.idProvider.NewID(),
				ImageData: img.ImageData,
				Timestamp: now,
			})
		}
		fields.CompletionImages = entry.CompletionImages
	}

	// Финальная цена считается по фактическому списку услуг
	price, err := uc.computePrice(ctx, entry)
	if err != nil {
		return nil, err
	}

	record := domain.DeriveServiceRecord(entry, price, now)
	created, err := uc.recordRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("AdvanceStatus: failed to create service record for entry id=%d: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: failed to create service record: %v", ErrInternal, err)
	}

	if err := uc.customerRepo.UpdateLastVisit(ctx, entry.CustomerID, now); err != nil {
		uc.logger.Error("AdvanceStatus: failed to update last visit of customer id=%d: %v", entry.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to update last visit: %v", ErrInternal, err)
	}

	return ptr.Ptr(created.ID), nil
}

// computePrice вычисляет финальную стоимость услуг
// Для кошек действует тарификация по весовым порогам; вес берётся с чек-ина,
// при его отсутствии - из карточки питомца
func (uc *UseCase) computePrice(ctx context.Context, entry *domain.QueueEntry) (float64, error) {
	shopSettings, err := uc.getSettings(ctx)
	if err != nil {
		return 0, err
	}

	pet, err := uc.petRepo.GetByID(ctx, entry.PetID)
	if err != nil {
		uc.logger.Error("AdvanceStatus: failed to get pet id=%d: %v", entry.PetID, err)
		return 0, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}

	if pet.IsCat() {
		weight := pet.WeightKg
		if entry.CheckInWeight != nil {
			weight = *entry.CheckInWeight
		}
		return shopSettings.ComputeCatPrice(entry.Services, weight, pet.IsLongHair), nil
	}

	return shopSettings.ComputePrice(entry.Services), nil
}

// getSettings читает настройки магазина; отсутствующий документ - не ошибка,
// движки длительностей и цен откатываются к значениям по умолчанию
func (uc *UseCase) getSettings(ctx context.Context) (*domain.Settings, error) {
	shopSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("AdvanceStatus: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return shopSettings, nil
}
