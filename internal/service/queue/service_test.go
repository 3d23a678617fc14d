package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	queueRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/queue"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

// --- fakes ---

type fakeQueueRepo struct {
	entries    map[int64]*domain.QueueEntry
	lastFilter *domain.QueueFilter
	lastFields *queueRepo.UpdateFields
}

func (f *fakeQueueRepo) GetByID(_ context.Context, id int64) (*domain.QueueEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, queueRepo.ErrEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeQueueRepo) GetWithFilter(_ context.Context, filter domain.QueueFilter) ([]*domain.QueueEntry, error) {
	f.lastFilter = &filter
	var out []*domain.QueueEntry
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeQueueRepo) Update(_ context.Context, id int64, fields queueRepo.UpdateFields) error {
	if _, ok := f.entries[id]; !ok {
		return queueRepo.ErrEntryNotFound
	}
	f.lastFields = &fields

	entry := f.entries[id]
	if fields.Status != nil {
		entry.Status = *fields.Status
	}
	if fields.CancelledAt != nil {
		entry.CancelledAt = fields.CancelledAt
	}
	if fields.CancellationReason != nil {
		entry.CancellationReason = fields.CancellationReason
	}
	if fields.AppointmentTime != nil {
		entry.AppointmentTime = *fields.AppointmentTime
	}
	if fields.EstimatedEndTime != nil {
		entry.EstimatedEndTime = *fields.EstimatedEndTime
	}
	if fields.DurationMinutes != nil {
		entry.DurationMinutes = *fields.DurationMinutes
	}
	if fields.Services != nil {
		entry.Services = fields.Services
	}
	if fields.Notes != nil {
		entry.Notes = fields.Notes
	}
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- fixture ---

type fixture struct {
	queue *fakeQueueRepo
	svc   *Service
	now   time.Time
}

func newFixture() *fixture {
	now := time.Date(2025, 4, 4, 12, 0, 0, 0, time.UTC)
	queue := &fakeQueueRepo{entries: map[int64]*domain.QueueEntry{}}

	svc := &Service{
		queueRepo: queue,
		settingsRepo: &fakeSettingsRepo{settings: &domain.Settings{
			Durations: map[string]int{"bathing": 40, "haircut": 60},
		}},
		timeProvider: &fixedTimeProvider{now: now},
		logger:       noopLogger{},
	}

	return &fixture{queue: queue, svc: svc, now: now}
}

func testEntry() *domain.QueueEntry {
	return &domain.QueueEntry{
		ID:              1,
		QueueNumber:     4,
		Date:            time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		DurationMinutes: 40,
		CustomerID:      1,
		PetID:           10,
		Services:        []string{"bathing"},
		Status:          domain.StatusBooking,
	}
}

// --- tests ---

func TestCancel(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	err := f.svc.Cancel(context.Background(), 1, &models.CancelEntryRequest{
		CancellationReason: "клиент передумал",
	})
	require.NoError(t, err)

	entry := f.queue.entries[1]
	assert.Equal(t, domain.StatusCancelled, entry.Status)
	require.NotNil(t, entry.CancelledAt)
	assert.Equal(t, f.now, *entry.CancelledAt)
	require.NotNil(t, entry.CancellationReason)
	assert.Equal(t, "клиент передумал", *entry.CancellationReason)
	// Номер очереди не освобождается
	assert.Equal(t, 4, entry.QueueNumber)
}

func TestCancel_WithoutReason(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	err := f.svc.Cancel(context.Background(), 1, &models.CancelEntryRequest{})
	require.NoError(t, err)
	assert.Nil(t, f.queue.lastFields.CancellationReason)
}

func TestCancel_FromAnyNonTerminalStatus(t *testing.T) {
	f := newFixture()

	for _, status := range []domain.QueueStatus{domain.StatusBooking, domain.StatusDeposit, domain.StatusCheckIn} {
		entry := testEntry()
		entry.Status = status
		f.queue.entries[1] = entry

		err := f.svc.Cancel(context.Background(), 1, &models.CancelEntryRequest{})
		assert.NoError(t, err, "status %s", status)
	}
}

func TestCancel_TerminalEntries(t *testing.T) {
	f := newFixture()

	for _, status := range []domain.QueueStatus{domain.StatusCompleted, domain.StatusCancelled} {
		entry := testEntry()
		entry.Status = status
		f.queue.entries[1] = entry

		err := f.svc.Cancel(context.Background(), 1, &models.CancelEntryRequest{})
		assert.ErrorIs(t, err, ErrEntryTerminal, "status %s", status)
	}
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture()
	err := f.svc.Cancel(context.Background(), 404, &models.CancelEntryRequest{})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestUpdate_RecomputesDurationOnServiceChange(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	resp, err := f.svc.Update(context.Background(), 1, &models.UpdateEntryRequest{
		Services: []string{"bathing", "haircut"},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, resp.DurationMinutes)
	assert.Equal(t, "11:40", resp.EstimatedEndTime)
	assert.Equal(t, []string{"bathing", "haircut"}, resp.Services)
}

func TestUpdate_RecomputesEndTimeOnTimeChange(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	resp, err := f.svc.Update(context.Background(), 1, &models.UpdateEntryRequest{
		AppointmentTime: ptr.Ptr("15:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "15:30", resp.AppointmentTime)
	assert.Equal(t, "16:10", resp.EstimatedEndTime)
}

func TestUpdate_TerminalEntry(t *testing.T) {
	f := newFixture()
	entry := testEntry()
	entry.Status = domain.StatusCompleted
	f.queue.entries[1] = entry

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateEntryRequest{
		Notes: ptr.Ptr("поменять время"),
	})
	assert.ErrorIs(t, err, ErrEntryTerminal)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateEntryRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_InvalidAppointmentTime(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateEntryRequest{
		AppointmentTime: ptr.Ptr("25:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_ServicesDoNotFitIntoDay(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateEntryRequest{
		AppointmentTime: ptr.Ptr("23:45"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDate_RequiresDate(t *testing.T) {
	f := newFixture()
	_, err := f.svc.GetByDate(context.Background(), &models.GetQueueRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDate_InvalidStatus(t *testing.T) {
	f := newFixture()
	_, err := f.svc.GetByDate(context.Background(), &models.GetQueueRequest{
		Date:   time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC),
		Status: ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerEntries_IncludesCancelled(t *testing.T) {
	f := newFixture()
	f.queue.entries[1] = testEntry()

	_, err := f.svc.GetCustomerEntries(context.Background(), &models.GetCustomerEntriesRequest{
		CustomerID: 1,
	})
	require.NoError(t, err)

	require.NotNil(t, f.queue.lastFilter)
	assert.True(t, f.queue.lastFilter.IncludeCancelled, "customer history includes cancelled entries")
	assert.Equal(t, ptr.Ptr(int64(1)), f.queue.lastFilter.CustomerID)
}
