package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/internal/service/settings/models"
)

// Service сервис документа настроек магазина
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get читает документ настроек
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching shop settings")

	shopSettings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: shop settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(shopSettings), nil
}

// Update заменяет документ настроек целиком
// Пороги тарификации кошек должны идти по возрастанию веса;
// длительности и цены не могут быть отрицательными
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: saving shop settings, %d service(s), %d duration(s), %d price(s)",
		len(req.ServiceCatalog), len(req.Durations), len(req.Prices))

	doc, err := req.ToDocument()
	if err != nil {
		s.logger.Warn("Update: invalid settings document: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateDocument(doc); err != nil {
		s.logger.Warn("Update: settings validation failed: %v", err)
		return nil, err
	}

	saved, err := s.settingsRepo.Update(ctx, doc)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully saved shop settings")
	return models.FromDomainSettings(saved), nil
}

// validateDocument проверяет бизнес-инварианты документа настроек
func validateDocument(doc domain.SettingsDocument) error {
	for name, duration := range doc.Durations {
		if duration < 0 {
			return fmt.Errorf("%w: duration for %q must not be negative", ErrInvalidInput, name)
		}
	}

	for name, price := range doc.Prices {
		if price < 0 {
			return fmt.Errorf("%w: price for %q must not be negative", ErrInvalidInput, name)
		}
	}

	for name, price := range doc.CatPricing.AddOns {
		if price < 0 {
			return fmt.Errorf("%w: cat add-on price for %q must not be negative", ErrInvalidInput, name)
		}
	}

	prevMax := 0.0
	for i, tier := range doc.CatPricing.Tiers {
		if tier.MaxKg <= prevMax {
			return fmt.Errorf("%w: cat weight tiers must be in ascending order", ErrInvalidInput)
		}
		if tier.ShortHairPrice < 0 || tier.LongHairPrice < 0 {
			return fmt.Errorf("%w: cat tier %d prices must not be negative", ErrInvalidInput, i)
		}
		prevMax = tier.MaxKg
	}

	wh := doc.DefaultWorkingHours
	if !wh.Start.IsBefore(wh.End) {
		return fmt.Errorf("%w: working hours end must be after start", ErrInvalidInput)
	}

	return nil
}
