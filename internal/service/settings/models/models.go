package models

import (
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// CatWeightTierInput весовой порог тарификации купания кошек
type CatWeightTierInput struct {
	MaxKg          float64 `json:"maxKg"`
	ShortHairPrice float64 `json:"shortHairPrice"`
	LongHairPrice  float64 `json:"longHairPrice"`
}

// CatPricingInput тарификация услуг для кошек
type CatPricingInput struct {
	Tiers  []CatWeightTierInput `json:"tiers"`
	AddOns map[string]float64   `json:"addOns"`
}

// WorkingHoursInput рабочие часы магазина
type WorkingHoursInput struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "18:00"
}

// UpdateSettingsRequest запрос на полную замену документа настроек
type UpdateSettingsRequest struct {
	ServiceCatalog      []string           `json:"serviceCatalog"`
	Durations           map[string]int     `json:"durations"`
	Prices              map[string]float64 `json:"prices"`
	CatPricing          CatPricingInput    `json:"catPricing"`
	DefaultWorkingHours WorkingHoursInput  `json:"defaultWorkingHours"`
}

// ToDocument конвертирует request в документ настроек
func (r *UpdateSettingsRequest) ToDocument() (domain.SettingsDocument, error) {
	start, err := types.NewTimeStringFromString(r.DefaultWorkingHours.Start)
	if err != nil {
		return domain.SettingsDocument{}, err
	}
	end, err := types.NewTimeStringFromString(r.DefaultWorkingHours.End)
	if err != nil {
		return domain.SettingsDocument{}, err
	}

	tiers := make([]domain.CatWeightTier, len(r.CatPricing.Tiers))
	for i, tier := range r.CatPricing.Tiers {
		tiers[i] = domain.CatWeightTier{
			MaxKg:          tier.MaxKg,
			ShortHairPrice: tier.ShortHairPrice,
			LongHairPrice:  tier.LongHairPrice,
		}
	}

	return domain.SettingsDocument{
		ServiceCatalog: r.ServiceCatalog,
		Durations:      r.Durations,
		Prices:         r.Prices,
		CatPricing: domain.CatPricing{
			Tiers:  tiers,
			AddOns: r.CatPricing.AddOns,
		},
		DefaultWorkingHours: domain.WorkingHours{
			Start: start,
			End:   end,
		},
	}, nil
}

// Response модели

// SettingsResponse ответ с документом настроек
type SettingsResponse struct {
	ServiceCatalog      []string           `json:"serviceCatalog"`
	Durations           map[string]int     `json:"durations"`
	Prices              map[string]float64 `json:"prices"`
	CatPricing          CatPricingInput    `json:"catPricing"`
	DefaultWorkingHours WorkingHoursInput  `json:"defaultWorkingHours"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}

	tiers := make([]CatWeightTierInput, len(s.CatPricing.Tiers))
	for i, tier := range s.CatPricing.Tiers {
		tiers[i] = CatWeightTierInput{
			MaxKg:          tier.MaxKg,
			ShortHairPrice: tier.ShortHairPrice,
			LongHairPrice:  tier.LongHairPrice,
		}
	}

	return &SettingsResponse{
		ServiceCatalog: s.ServiceCatalog,
		Durations:      s.Durations,
		Prices:         s.Prices,
		CatPricing: CatPricingInput{
			Tiers:  tiers,
			AddOns: s.CatPricing.AddOns,
		},
		DefaultWorkingHours: WorkingHoursInput{
			Start: s.DefaultWorkingHours.Start.String(),
			End:   s.DefaultWorkingHours.End.String(),
		},
		UpdatedAt: s.UpdatedAt,
	}
}
