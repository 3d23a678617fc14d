package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	settings *domain.Settings
	lastDoc  *domain.SettingsDocument
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, doc domain.SettingsDocument) (*domain.Settings, error) {
	f.lastDoc = &doc
	saved := doc.ToSettings(1, time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC))
	f.settings = saved
	return saved, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		ServiceCatalog: []string{"bathing", "haircut"},
		Durations: map[string]int{
			"bathing":         40,
			"haircut":         60,
			"bathing,haircut": 80,
		},
		Prices: map[string]float64{
			"bathing": 300,
			"haircut": 500,
		},
		CatPricing: models.CatPricingInput{
			Tiers: []models.CatWeightTierInput{
				{MaxKg: 3, ShortHairPrice: 350, LongHairPrice: 450},
				{MaxKg: 6, ShortHairPrice: 400, LongHairPrice: 520},
			},
			AddOns: map[string]float64{"nail_trim": 150},
		},
		DefaultWorkingHours: models.WorkingHoursInput{Start: "09:00", End: "18:00"},
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, noopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpdateThenGet(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, noopLogger{})

	saved, err := svc.Update(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, 80, saved.Durations["bathing,haircut"])
	assert.Equal(t, "09:00", saved.DefaultWorkingHours.Start)
	require.Len(t, saved.CatPricing.Tiers, 2)
	assert.Equal(t, 6.0, saved.CatPricing.Tiers[1].MaxKg)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved.Durations, got.Durations)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.UpdateSettingsRequest)
	}{
		{
			"negative duration",
			func(r *models.UpdateSettingsRequest) { r.Durations["bathing"] = -5 },
		},
		{
			"negative price",
			func(r *models.UpdateSettingsRequest) { r.Prices["haircut"] = -1 },
		},
		{
			"negative cat add-on",
			func(r *models.UpdateSettingsRequest) { r.CatPricing.AddOns["nail_trim"] = -10 },
		},
		{
			"tiers out of order",
			func(r *models.UpdateSettingsRequest) {
				r.CatPricing.Tiers = []models.CatWeightTierInput{
					{MaxKg: 6, ShortHairPrice: 400, LongHairPrice: 520},
					{MaxKg: 3, ShortHairPrice: 350, LongHairPrice: 450},
				}
			},
		},
		{
			"duplicate tier boundary",
			func(r *models.UpdateSettingsRequest) {
				r.CatPricing.Tiers = []models.CatWeightTierInput{
					{MaxKg: 3, ShortHairPrice: 350, LongHairPrice: 450},
					{MaxKg: 3, ShortHairPrice: 400, LongHairPrice: 520},
				}
			},
		},
		{
			"negative tier price",
			func(r *models.UpdateSettingsRequest) {
				r.CatPricing.Tiers[0].LongHairPrice = -1
			},
		},
		{
			"working hours end before start",
			func(r *models.UpdateSettingsRequest) {
				r.DefaultWorkingHours = models.WorkingHoursInput{Start: "18:00", End: "09:00"}
			},
		},
		{
			"equal working hours",
			func(r *models.UpdateSettingsRequest) {
				r.DefaultWorkingHours = models.WorkingHoursInput{Start: "09:00", End: "09:00"}
			},
		},
		{
			"malformed working hours",
			func(r *models.UpdateSettingsRequest) {
				r.DefaultWorkingHours = models.WorkingHoursInput{Start: "9am", End: "18:00"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)
			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
