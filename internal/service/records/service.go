package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	recordsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/records"
	"github.com/m04kA/PGS-QueueService/internal/service/records/models"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

// Service сервис истории обслуживания
type Service struct {
	recordRepo RecordRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса истории обслуживания
func NewService(recordRepo RecordRepository, logger Logger) *Service {
	return &Service{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// GetByID получает сервисную запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceRecordResponse, error) {
	s.logger.Info("GetByID: fetching service record id=%d", id)

	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recordsRepo.ErrRecordNotFound) {
			s.logger.Warn("GetByID: service record id=%d not found", id)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("GetByID: repository error for record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRecord(record), nil
}

// List получает историю обслуживания с фильтрацией по клиенту,
// питомцу, грумеру и периоду
func (s *Service) List(ctx context.Context, req *models.GetRecordsRequest) (*models.RecordListResponse, error) {
	s.logger.Info("List: fetching service records, customer=%v, pet=%v, groomer=%v",
		req.CustomerID, req.PetID, req.GroomerID)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	recordList, err := s.recordRepo.GetWithFilter(ctx, req.ToRepoFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d record(s)", len(recordList))
	return models.FromDomainRecordList(recordList), nil
}

// Edit применяет ручную коррекцию к сервисной записи
//
// Изменение таймстемпов чек-ина или завершения пересчитывает фактическую
// длительность, если она не задана в запросе явно. Явно заданная
// длительность побеждает
func (s *Service) Edit(ctx context.Context, recordID int64, req *models.EditRecordRequest) (*models.ServiceRecordResponse, error) {
	s.logger.Info("Edit: editing service record id=%d", recordID)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, recordsRepo.ErrRecordNotFound) {
			s.logger.Warn("Edit: service record id=%d not found", recordID)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("Edit: repository error for record id=%d: %v", recordID, err)
		return nil, fmt.Errorf("%w: Edit - repository error: %v", ErrInternal, err)
	}

	fields := recordsRepo.UpdateFields{
		Date:              req.Date,
		GroomerID:         req.GroomerID,
		ServicesPerformed: req.ServicesPerformed,
		CheckInAt:         req.CheckInAt,
		CompletedAt:       req.CompletedAt,
		DurationMinutes:   req.DurationMinutes,
		Price:             req.Price,
		Notes:             req.Notes,
	}

	// Сдвиг таймстемпов пересчитывает длительность, если она не задана явно
	if req.DurationMinutes == nil && (req.CheckInAt != nil || req.CompletedAt != nil) {
		checkIn := record.CheckInAt
		if req.CheckInAt != nil {
			checkIn = req.CheckInAt
		}
		completed := record.CompletedAt
		if req.CompletedAt != nil {
			completed = req.CompletedAt
		}

		if checkIn != nil && completed != nil {
			fields.DurationMinutes = ptr.Ptr(domain.RoundedMinutesBetween(*checkIn, *completed))
		}
	}

	if err := s.recordRepo.Update(ctx, recordID, fields); err != nil {
		if errors.Is(err, recordsRepo.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("Edit: repository error for record id=%d: %v", recordID, err)
		return nil, fmt.Errorf("%w: Edit - repository error: %v", ErrInternal, err)
	}

	updated, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		s.logger.Error("Edit: failed to reload record id=%d: %v", recordID, err)
		return nil, fmt.Errorf("%w: Edit - failed to reload record: %v", ErrInternal, err)
	}

	s.logger.Info("Edit: successfully edited record id=%d", recordID)
	return models.FromDomainRecord(updated), nil
}
