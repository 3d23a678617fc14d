package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	queueRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/queue"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// Service сервис для работы с очередью
type Service struct {
	queueRepo    QueueRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса очереди
func NewService(
	queueRepo QueueRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		queueRepo:    queueRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись очереди по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.QueueEntryResponse, error) {
	s.logger.Info("GetByID: fetching queue entry id=%d", id)

	entry, err := s.queueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, queueRepo.ErrEntryNotFound) {
			s.logger.Warn("GetByID: queue entry id=%d not found", id)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("GetByID: repository error for entry id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntry(entry), nil
}

// GetByDate получает очередь на дату с гибкой фильтрацией
// Записи упорядочены по номеру очереди; отменённые записи
// возвращаются только по явному запросу
func (s *Service) GetByDate(ctx context.Context, req *models.GetQueueRequest) (*models.QueueListResponse, error) {
	s.logger.Info("GetByDate: fetching queue for %s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetByDate: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	entries, err := s.queueRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d entries for %s", len(entries), req.Date.Format(domain.DateFormat))
	return models.FromDomainEntryList(entries), nil
}

// GetCustomerEntries получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerEntries(ctx context.Context, req *models.GetCustomerEntriesRequest) (*models.QueueListResponse, error) {
	s.logger.Info("GetCustomerEntries: fetching entries for customer=%d, status=%v", req.CustomerID, req.Status)

	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	filter := domain.QueueFilter{
		CustomerID:       &req.CustomerID,
		IncludeCancelled: true,
	}

	if req.Status != nil {
		status, err := domain.ParseQueueStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerEntries: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	entries, err := s.queueRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerEntries: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerEntries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerEntries: fetched %d entries for customer=%d", len(entries), req.CustomerID)
	return models.FromDomainEntryList(entries), nil
}

// Cancel отменяет запись очереди
// Отмена возможна из любого нетерминального статуса; номер очереди
// при этом не освобождается
func (s *Service) Cancel(ctx context.Context, entryID int64, req *models.CancelEntryRequest) error {
	s.logger.Info("Cancel: cancelling queue entry id=%d", entryID)

	entry, err := s.queueRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, queueRepo.ErrEntryNotFound) {
			s.logger.Warn("Cancel: queue entry id=%d not found", entryID)
			return ErrEntryNotFound
		}
		s.logger.Error("Cancel: repository error for entry id=%d: %v", entryID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(entry.Status, domain.StatusCancelled) {
		s.logger.Warn("Cancel: entry id=%d cannot be cancelled, status=%s", entryID, entry.Status)
		return ErrEntryTerminal
	}

	now := s.timeProvider.Now()
	fields := queueRepo.UpdateFields{
		Status:      ptr.Ptr(domain.StatusCancelled),
		CancelledAt: ptr.Ptr(now),
	}
	if req.CancellationReason != "" {
		fields.CancellationReason = ptr.Ptr(req.CancellationReason)
	}

	if err := s.queueRepo.Update(ctx, entryID, fields); err != nil {
		if errors.Is(err, queueRepo.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		s.logger.Error("Cancel: repository error for entry id=%d: %v", entryID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled entry id=%d", entryID)
	return nil
}

// Update редактирует запись очереди
// Допустимо только для нетерминальных записей; изменение списка услуг
// или времени пересчитывает длительность и ожидаемое время окончания
func (s *Service) Update(ctx context.Context, entryID int64, req *models.UpdateEntryRequest) (*models.QueueEntryResponse, error) {
	s.logger.Info("Update: updating queue entry id=%d", entryID)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	if len(req.Services) > domain.MaxServicesPerEntry {
		return nil, fmt.Errorf("%w: too many services selected", ErrInvalidInput)
	}

	entry, err := s.queueRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, queueRepo.ErrEntryNotFound) {
			s.logger.Warn("Update: queue entry id=%d not found", entryID)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("Update: repository error for entry id=%d: %v", entryID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if entry.IsTerminal() {
		s.logger.Warn("Update: entry id=%d is terminal, status=%s", entryID, entry.Status)
		return nil, ErrEntryTerminal
	}

	fields := queueRepo.UpdateFields{
		Date:              req.Date,
		AssignedGroomerID: req.AssignedGroomerID,
		Priority:          req.Priority,
		TransportIncluded: req.TransportIncluded,
		Notes:             req.Notes,
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.AssignedGroomerID != nil {
		entry.AssignedGroomerID = req.AssignedGroomerID
	}

	// Разбираем новое время записи
	if req.AppointmentTime != nil {
		appointmentTime, err := types.NewTimeStringFromString(*req.AppointmentTime)
		if err != nil {
			s.logger.Warn("Update: invalid appointment time %q for entry id=%d", *req.AppointmentTime, entryID)
			return nil, fmt.Errorf("%w: invalid appointment time", ErrInvalidInput)
		}
		entry.AppointmentTime = appointmentTime
		fields.AppointmentTime = &appointmentTime
	}

	if req.Services != nil {
		entry.Services = req.Services
		fields.Services = req.Services
	}

	// Пересчитываем длительность и время окончания
	if req.Services != nil || req.AppointmentTime != nil {
		shopSettings, err := s.settingsRepo.Get(ctx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: Update - failed to get settings: %v", ErrInternal, err)
		}

		duration := shopSettings.ComputeDuration(entry.Services)
		entry.DurationMinutes = duration
		fields.DurationMinutes = ptr.Ptr(duration)

		if entry.HasAppointmentTime() {
			estimatedEnd, err := entry.AppointmentTime.AddMinutes(duration)
			if err != nil {
				s.logger.Warn("Update: services do not fit into the day from %s for entry id=%d",
					entry.AppointmentTime, entryID)
				return nil, fmt.Errorf("%w: services do not fit into the day", ErrInvalidInput)
			}
			entry.EstimatedEndTime = estimatedEnd
			fields.EstimatedEndTime = ptr.Ptr(estimatedEnd)
		}
	}

	if err := s.queueRepo.Update(ctx, entryID, fields); err != nil {
		if errors.Is(err, queueRepo.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("Update: repository error for entry id=%d: %v", entryID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.queueRepo.GetByID(ctx, entryID)
	if err != nil {
		s.logger.Error("Update: failed to reload entry id=%d: %v", entryID, err)
		return nil, fmt.Errorf("%w: Update - failed to reload entry: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated entry id=%d", entryID)
	return models.FromDomainEntry(updated), nil
}
