package domain

import (
	"math"
	"time"
)

// ServiceRecord immutable historical log entry created when a booking completes
// Редактируется только через отдельный путь ручной коррекции
type ServiceRecord struct {
	ID         int64
	QueueID    int64 // back-reference, не владение
	CustomerID int64
	PetID      int64
	GroomerID  int64
	Date       time.Time

	ServicesPerformed []string

	// Workflow timestamps copied verbatim from the queue entry
	BookingAt   *time.Time
	DepositAt   *time.Time
	CheckInAt   *time.Time
	CompletedAt *time.Time

	// DurationMinutes фактическая длительность: round(completedAt - checkInAt)
	DurationMinutes int

	CheckInWeight    *float64
	CheckInNotes     *string
	CompletionImages CompletionImages

	Price float64
	Notes *string

	CreatedAt time.Time
}

// DeriveServiceRecord строит историческую запись из завершённой записи очереди
//
// Фактическая длительность - округлённые минуты между чек-ином и завершением;
// отсутствующий таймстемп подменяется текущим моментом (документированное
// приближение, не ошибка). Таймстемпы, заметки, фотографии и вес переносятся
// как есть. Цена вычисляется вызывающей стороной (ценовой движок) по
// финальному списку услуг
func DeriveServiceRecord(entry *QueueEntry, price float64, now time.Time) *ServiceRecord {
	checkIn := now
	if entry.CheckInAt != nil {
		checkIn = *entry.CheckInAt
	}
	completed := now
	if entry.CompletedAt != nil {
		completed = *entry.CompletedAt
	}

	var groomerID int64
	if entry.AssignedGroomerID != nil {
		groomerID = *entry.AssignedGroomerID
	}

	services := make([]string, len(entry.Services))
	copy(services, entry.Services)

	return &ServiceRecord{
		QueueID:           entry.ID,
		CustomerID:        entry.CustomerID,
		PetID:             entry.PetID,
		GroomerID:         groomerID,
		Date:              entry.Date,
		ServicesPerformed: services,
		BookingAt:         entry.BookingAt,
		DepositAt:         entry.DepositAt,
		CheckInAt:         entry.CheckInAt,
		CompletedAt:       entry.CompletedAt,
		DurationMinutes:   RoundedMinutesBetween(checkIn, completed),
		CheckInWeight:     entry.CheckInWeight,
		CheckInNotes:      entry.CheckInNotes,
		CompletionImages:  entry.CompletionImages,
		Price:             price,
		Notes:             entry.Notes,
	}
}

// RoundedMinutesBetween возвращает округлённое число минут между двумя моментами
func RoundedMinutesBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Minutes()))
}
