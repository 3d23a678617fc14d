package get_available_groomers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

// --- fakes ---

type fakeQueueRepo struct {
	bookings []*domain.QueueEntry
}

func (f *fakeQueueRepo) GetWithFilter(_ context.Context, _ domain.QueueFilter) ([]*domain.QueueEntry, error) {
	return f.bookings, nil
}

type fakeGroomerRepo struct {
	active []*domain.Groomer
}

func (f *fakeGroomerRepo) ListActive(_ context.Context) ([]*domain.Groomer, error) {
	return f.active, nil
}

type fakeScheduleRepo struct {
	schedule *domain.DailySchedule
}

func (f *fakeScheduleRepo) GetByDate(_ context.Context, _ time.Time) (*domain.DailySchedule, error) {
	if f.schedule == nil {
		return nil, schedulesRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- fixture ---

type fixture struct {
	queue    *fakeQueueRepo
	groomers *fakeGroomerRepo
	schedule *fakeScheduleRepo
	settings *fakeSettingsRepo
	uc       *UseCase
}

func newFixture() *fixture {
	queue := &fakeQueueRepo{}
	groomers := &fakeGroomerRepo{active: []*domain.Groomer{
		{ID: 1, Name: "Аня", IsActive: true},
		{ID: 2, Name: "Борис", IsActive: true},
	}}
	schedule := &fakeScheduleRepo{}
	settings := &fakeSettingsRepo{
		settings: &domain.Settings{
			Durations: map[string]int{"bathing": 60},
		},
	}

	return &fixture{
		queue:    queue,
		groomers: groomers,
		schedule: schedule,
		settings: settings,
		uc:       NewUseCase(queue, groomers, schedule, settings, noopLogger{}),
	}
}

func testDate() time.Time {
	return time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
}

func fullSchedule() *domain.DailySchedule {
	return &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 2, Name: "Борис", WorkingHours: domain.WorkingHours{Start: "09:00", End: "15:00"}},
			{GroomerID: 1, Name: "Аня", WorkingHours: domain.WorkingHours{Start: "12:00", End: "20:00"}},
		},
	}
}

// --- tests ---

func TestExecute_NoScheduleReturnsAllActiveGroomers(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.Groomers, 2)
	assert.Equal(t, int64(1), resp.Groomers[0].GroomerID)
	assert.Equal(t, "Аня", resp.Groomers[0].Name)
	// Без расписания рабочие часы неизвестны
	assert.Nil(t, resp.Groomers[0].WorkingHours)
}

func TestExecute_NoTimeReturnsWholeSchedule(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = fullSchedule()

	resp, err := f.uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.Groomers, 2)
	// Порядок повторяет порядок записей расписания
	assert.Equal(t, int64(2), resp.Groomers[0].GroomerID)
	assert.Equal(t, int64(1), resp.Groomers[1].GroomerID)
	require.NotNil(t, resp.Groomers[0].WorkingHours)
	assert.Equal(t, "09:00", resp.Groomers[0].WorkingHours.Start.String())
}

func TestExecute_TimeFiltersByWorkingHours(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = fullSchedule()

	// 10:00 + 60 минут: попадает только в часы Бориса
	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "10:00",
		Services:  []string{"bathing"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Groomers, 1)
	assert.Equal(t, int64(2), resp.Groomers[0].GroomerID)
}

func TestExecute_TimeFiltersByConflicts(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = fullSchedule()
	f.queue.bookings = []*domain.QueueEntry{
		{
			ID:                1,
			AppointmentTime:   "12:30",
			DurationMinutes:   60,
			AssignedGroomerID: ptr.Ptr(int64(2)),
			Status:            domain.StatusBooking,
		},
	}

	// 13:00 + 60 минут: Борис занят до 13:30, Аня свободна
	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "13:00",
		Services:  []string{"bathing"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Groomers, 1)
	assert.Equal(t, int64(1), resp.Groomers[0].GroomerID)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = fullSchedule()
	f.queue.bookings = []*domain.QueueEntry{
		{
			ID:                1,
			AppointmentTime:   "13:00",
			DurationMinutes:   60,
			AssignedGroomerID: ptr.Ptr(int64(2)),
			Status:            domain.StatusCancelled,
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "13:00",
		Services:  []string{"bathing"},
	})
	require.NoError(t, err)

	// 13:00-14:00 помещается в часы обоих, отменённая запись не мешает
	require.Len(t, resp.Groomers, 2)
	assert.Equal(t, int64(2), resp.Groomers[0].GroomerID)
	assert.Equal(t, int64(1), resp.Groomers[1].GroomerID)
}

func TestExecute_DeactivatedScheduledGroomerIsExcluded(t *testing.T) {
	f := newFixture()
	schedule := fullSchedule()
	schedule.Entries = append(schedule.Entries, domain.ScheduleEntry{
		GroomerID:    3,
		Name:         "Вера",
		WorkingHours: domain.WorkingHours{Start: "09:00", End: "18:00"},
	})
	f.schedule.schedule = schedule
	// Грумер 3 деактивирован после составления расписания

	resp, err := f.uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	require.Len(t, resp.Groomers, 2)
	for _, g := range resp.Groomers {
		assert.NotEqual(t, int64(3), g.GroomerID)
	}

	resp, err = f.uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "10:00",
		Services:  []string{"bathing"},
	})
	require.NoError(t, err)
	// 10:00 + 60 минут попадает и в часы Бориса, и в часы грумера 3
	require.Len(t, resp.Groomers, 1)
	assert.Equal(t, int64(2), resp.Groomers[0].GroomerID)
}

func TestExecute_NobodyAvailable(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = fullSchedule()

	// 20:00 вне рабочих часов всех грумеров
	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "20:00",
		Services:  []string{"bathing"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Groomers)
}

func TestExecute_InputErrors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = f.uc.Execute(context.Background(), &Request{Date: testDate(), StartTime: "25:99"})
	assert.ErrorIs(t, err, ErrInvalidTime)
}
