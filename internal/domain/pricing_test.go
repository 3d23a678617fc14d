package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pricingSettings() *Settings {
	return &Settings{
		Prices: map[string]float64{
			"bathing":   300,
			"haircut":   500,
			"nail_trim": 100,
		},
		CatPricing: CatPricing{
			Tiers: []CatWeightTier{
				{MaxKg: 3, ShortHairPrice: 350, LongHairPrice: 450},
				{MaxKg: 6, ShortHairPrice: 400, LongHairPrice: 520},
				{MaxKg: 10, ShortHairPrice: 480, LongHairPrice: 620},
			},
			AddOns: map[string]float64{
				"nail_trim": 150,
			},
		},
	}
}

func TestComputePrice(t *testing.T) {
	s := pricingSettings()

	assert.Equal(t, 800.0, s.ComputePrice([]string{"bathing", "haircut"}))
	assert.Equal(t, 0.0, s.ComputePrice([]string{"unknown"}))
	assert.Equal(t, 0.0, s.ComputePrice(nil))

	var nilSettings *Settings
	assert.Equal(t, 0.0, nilSettings.ComputePrice([]string{"bathing"}))
}

func TestComputeCatPrice_BathingTiers(t *testing.T) {
	s := pricingSettings()

	tests := []struct {
		name       string
		weightKg   float64
		isLongHair bool
		want       float64
	}{
		{"first tier short hair", 2.5, false, 350},
		{"tier boundary is inclusive", 3.0, false, 350},
		{"middle tier long hair", 4.2, true, 520},
		{"last tier", 9.9, false, 480},
		{"weight above all tiers resolves through catch-all", 14.0, true, 620},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ComputeCatPrice([]string{BathingService}, tt.weightKg, tt.isLongHair)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeCatPrice_AddOnsAndFallback(t *testing.T) {
	s := pricingSettings()

	// Кошачья наценка перекрывает общий прайс-лист
	assert.Equal(t, 150.0, s.ComputeCatPrice([]string{"nail_trim"}, 3, false))

	// Услуга без наценки берётся из общего прайс-листа
	assert.Equal(t, 500.0, s.ComputeCatPrice([]string{"haircut"}, 3, false))

	// Неизвестная услуга даёт вклад 0
	assert.Equal(t, 0.0, s.ComputeCatPrice([]string{"teeth_polish"}, 3, false))

	// Купание + наценка + общий прайс складываются
	got := s.ComputeCatPrice([]string{BathingService, "nail_trim", "haircut"}, 5, true)
	assert.Equal(t, 520.0+150.0+500.0, got)
}

func TestComputeCatPrice_NoTiers(t *testing.T) {
	s := &Settings{
		Prices: map[string]float64{BathingService: 300},
	}

	// Без порогов купание откатывается к общему прайс-листу
	assert.Equal(t, 300.0, s.ComputeCatPrice([]string{BathingService}, 5, true))

	var nilSettings *Settings
	assert.Equal(t, 0.0, nilSettings.ComputeCatPrice([]string{BathingService}, 5, true))
}
