package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// CatWeightTier весовой порог тарификации купания кошек
// Пороги упорядочены по возрастанию MaxKg; последний порог - catch-all
// и применяется к любому весу, превышающему все остальные пороги
type CatWeightTier struct {
	MaxKg          float64 `json:"maxKg"`
	ShortHairPrice float64 `json:"shortHairPrice"`
	LongHairPrice  float64 `json:"longHairPrice"`
}

// CatPricing тарификация услуг для кошек
type CatPricing struct {
	Tiers  []CatWeightTier    `json:"tiers"`
	AddOns map[string]float64 `json:"addOns"`
}

// Settings общие настройки магазина (singleton, читается часто, меняется редко)
type Settings struct {
	ID int64

	// ServiceCatalog полный список предлагаемых услуг
	ServiceCatalog []string

	// Durations длительности в минутах; ключ - имя услуги либо
	// комбо-ключ из отсортированных имён, соединённых запятой
	Durations map[string]int

	// Prices общий прайс-лист
	Prices map[string]float64

	CatPricing CatPricing

	// DefaultWorkingHours рабочие часы магазина, используемые при
	// отсутствии расписания на день
	DefaultWorkingHours WorkingHours

	UpdatedAt time.Time
}

// ComboKey строит ключ комбо-переопределения: имена услуг сортируются
// и соединяются запятой, поэтому ключ не зависит от порядка выбора
func ComboKey(services []string) string {
	sorted := make([]string, len(services))
	copy(sorted, services)
	sort.Strings(sorted)
	return strings.Join(sorted, comboKeyDelimiter)
}

// SettingsDocument сериализуемое содержимое настроек (одна jsonb-колонка)
type SettingsDocument struct {
	ServiceCatalog      []string           `json:"serviceCatalog"`
	Durations           map[string]int     `json:"durations"`
	Prices              map[string]float64 `json:"prices"`
	CatPricing          CatPricing         `json:"catPricing"`
	DefaultWorkingHours WorkingHours       `json:"defaultWorkingHours"`
}

// Value реализует driver.Valuer
func (d SettingsDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan реализует sql.Scanner
func (d *SettingsDocument) Scan(src interface{}) error {
	if src == nil {
		*d = SettingsDocument{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("settings document: unsupported source type %T", src)
	}
	return json.Unmarshal(data, d)
}

// ToSettings разворачивает документ в Settings
func (d SettingsDocument) ToSettings(id int64, updatedAt time.Time) *Settings {
	return &Settings{
		ID:                  id,
		ServiceCatalog:      d.ServiceCatalog,
		Durations:           d.Durations,
		Prices:              d.Prices,
		CatPricing:          d.CatPricing,
		DefaultWorkingHours: d.DefaultWorkingHours,
		UpdatedAt:           updatedAt,
	}
}

// Document сворачивает Settings в сериализуемый документ
func (s *Settings) Document() SettingsDocument {
	return SettingsDocument{
		ServiceCatalog:      s.ServiceCatalog,
		Durations:           s.Durations,
		Prices:              s.Prices,
		CatPricing:          s.CatPricing,
		DefaultWorkingHours: s.DefaultWorkingHours,
	}
}

// WorkingHoursOrDefault возвращает рабочие часы магазина,
// откатываясь к константам при незаполненных настройках
func (s *Settings) WorkingHoursOrDefault() WorkingHours {
	if s == nil || s.DefaultWorkingHours.Start.IsZero() || s.DefaultWorkingHours.End.IsZero() {
		return WorkingHours{Start: DefaultWorkingHoursStart, End: DefaultWorkingHoursEnd}
	}
	return s.DefaultWorkingHours
}
