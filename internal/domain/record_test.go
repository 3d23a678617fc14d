package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

func TestDeriveServiceRecord(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	checkIn := now.Add(-95 * time.Minute)
	completed := now.Add(-5 * time.Minute)

	entry := &QueueEntry{
		ID:                42,
		CustomerID:        7,
		PetID:             11,
		AssignedGroomerID: ptr.Ptr(int64(3)),
		Date:              time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Services:          []string{"bathing", "haircut"},
		BookingAt:         ptr.Ptr(now.Add(-3 * time.Hour)),
		DepositAt:         ptr.Ptr(now.Add(-2 * time.Hour)),
		CheckInAt:         &checkIn,
		CompletedAt:       &completed,
		CheckInWeight:     ptr.Ptr(4.5),
		CheckInNotes:      ptr.Ptr("спокойный"),
		CompletionImages:  CompletionImages{{ID: "img-1"}},
		Notes:             ptr.Ptr("постоянный клиент"),
	}

	record := DeriveServiceRecord(entry, 850, now)

	assert.Equal(t, int64(42), record.QueueID)
	assert.Equal(t, int64(7), record.CustomerID)
	assert.Equal(t, int64(11), record.PetID)
	assert.Equal(t, int64(3), record.GroomerID)
	assert.Equal(t, []string{"bathing", "haircut"}, record.ServicesPerformed)
	assert.Equal(t, 90, record.DurationMinutes)
	assert.Equal(t, 850.0, record.Price)
	assert.Equal(t, entry.CheckInAt, record.CheckInAt)
	assert.Equal(t, entry.CompletedAt, record.CompletedAt)
	assert.Equal(t, entry.CheckInWeight, record.CheckInWeight)
	assert.Equal(t, entry.CompletionImages, record.CompletionImages)

	// Список услуг копируется, а не разделяется
	entry.Services[0] = "nail_trim"
	assert.Equal(t, "bathing", record.ServicesPerformed[0])
}

func TestDeriveServiceRecord_MissingTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	entry := &QueueEntry{
		ID:         1,
		CustomerID: 2,
		PetID:      3,
		Services:   []string{"bathing"},
	}

	record := DeriveServiceRecord(entry, 300, now)

	// Отсутствующие таймстемпы подменяются текущим моментом,
	// поэтому длительность нулевая, а не ошибка
	require.NotNil(t, record)
	assert.Equal(t, 0, record.DurationMinutes)
	assert.Nil(t, record.CheckInAt)
	assert.Nil(t, record.CompletedAt)
	assert.Equal(t, int64(0), record.GroomerID)
}

func TestRoundedMinutesBetween(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, RoundedMinutesBetween(base, base.Add(90*time.Minute)))
	assert.Equal(t, 90, RoundedMinutesBetween(base, base.Add(90*time.Minute+20*time.Second)))
	assert.Equal(t, 91, RoundedMinutesBetween(base, base.Add(90*time.Minute+40*time.Second)))
	assert.Equal(t, 0, RoundedMinutesBetween(base, base))
	assert.Equal(t, -30, RoundedMinutesBetween(base, base.Add(-30*time.Minute)))
}
