package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// WorkingHours рабочий интервал в течение дня
// Интервал полуоткрытый: начало включительно, конец исключительно
type WorkingHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// ContainsInterval возвращает true, если интервал [start, start+duration)
// целиком лежит внутри рабочих часов
// Кандидат, заканчивающийся ровно в конце рабочего дня, допустим
func (w WorkingHours) ContainsInterval(start types.TimeString, durationMinutes int) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	whStart, err := w.Start.Minutes()
	if err != nil {
		return false
	}
	whEnd, err := w.End.Minutes()
	if err != nil {
		return false
	}
	return startMin >= whStart && startMin+durationMinutes <= whEnd
}

// IntervalsOverlap проверяет пересечение двух полуоткрытых интервалов
// [s1,e1) и [s2,e2) в минутах от полуночи
// Пересечение есть iff s1 < e2 && s2 < e1; граничащие интервалы не пересекаются
func IntervalsOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// ScheduleEntry назначение грумера на день с его рабочими часами
type ScheduleEntry struct {
	GroomerID    int64        `json:"groomerId"`
	Name         string       `json:"name"`
	WorkingHours WorkingHours `json:"workingHours"`
}

// ScheduleEntries упорядоченный список назначений, хранится одной jsonb-колонкой
// Порядок задаётся персоналом и определяет порядок кандидатов на назначение
type ScheduleEntries []ScheduleEntry

// Value реализует driver.Valuer
func (s ScheduleEntries) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan реализует sql.Scanner
func (s *ScheduleEntries) Scan(src interface{}) error {
	if src == nil {
		*s = ScheduleEntries{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("schedule entries: unsupported source type %T", src)
	}
	return json.Unmarshal(data, s)
}

// DailySchedule represents the staff schedule for one calendar date
// Уникально по дате; при отсутствии система откатывается к
// "все активные грумеры, рабочие часы по умолчанию"
type DailySchedule struct {
	ID            int64
	Date          time.Time
	Entries       ScheduleEntries
	TotalCapacity int // производное: число назначенных грумеров
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EntryFor возвращает назначение указанного грумера, если оно есть
func (d *DailySchedule) EntryFor(groomerID int64) (ScheduleEntry, bool) {
	for _, entry := range d.Entries {
		if entry.GroomerID == groomerID {
			return entry, true
		}
	}
	return ScheduleEntry{}, false
}
