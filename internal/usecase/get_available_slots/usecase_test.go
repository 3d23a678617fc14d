package get_available_slots

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
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: true},
	}}
	schedule := &fakeScheduleRepo{}
	settings := &fakeSettingsRepo{
		settings: &domain.Settings{
			Durations:           map[string]int{"bathing": 60},
			DefaultWorkingHours: domain.WorkingHours{Start: "10:00", End: "14:00"},
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

// --- tests ---

func TestExecute_NoScheduleUsesShopHoursAndActiveGroomers(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	// Окно 10:00-14:00, шаг 30 минут, слот 60 минут: последний старт 13:00
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, "10:00", resp.Slots[0].Time.String())
	assert.Equal(t, "11:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, "13:00", resp.Slots[6].Time.String())
	for _, slot := range resp.Slots {
		assert.Equal(t, 2, slot.AvailableGroomerCount)
	}
}

func TestExecute_NoScheduleNoSettingsFallsBackToDefaults(t *testing.T) {
	f := newFixture()
	f.settings.settings = nil

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)

	// Рабочие часы по умолчанию 09:00-18:00, длительность по умолчанию 60 минут
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, domain.DefaultWorkingHoursStart, resp.Slots[0].Time.String())
}

func TestExecute_ScheduleWindowComesFromFirstEntry(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 1, WorkingHours: domain.WorkingHours{Start: "11:00", End: "13:00"}},
			{GroomerID: 2, WorkingHours: domain.WorkingHours{Start: "09:00", End: "18:00"}},
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)

	// Окно 11:00-13:00: старты 11:00, 11:30, 12:00
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "11:00", resp.Slots[0].Time.String())
	assert.Equal(t, "12:00", resp.Slots[2].Time.String())

	// В 11:00 свободны оба грумера (интервал лежит в часах обоих)
	assert.Equal(t, 2, resp.Slots[0].AvailableGroomerCount)
	// В 12:00 слот 12:00-13:00 помещается в часы обоих
	assert.Equal(t, 2, resp.Slots[2].AvailableGroomerCount)
}

func TestExecute_BusyGroomerReducesCapacity(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 1, WorkingHours: domain.WorkingHours{Start: "10:00", End: "14:00"}},
			{GroomerID: 2, WorkingHours: domain.WorkingHours{Start: "10:00", End: "14:00"}},
		},
	}
	f.queue.bookings = []*domain.QueueEntry{
		{
			ID:                1,
			AppointmentTime:   "10:00",
			DurationMinutes:   120, // грумер 1 занят 10:00-12:00
			AssignedGroomerID: ptr.Ptr(int64(1)),
			Status:            domain.StatusBooking,
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)

	bySlot := map[string]int{}
	for _, slot := range resp.Slots {
		bySlot[slot.Time.String()] = slot.AvailableGroomerCount
	}

	assert.Equal(t, 1, bySlot["10:00"])
	assert.Equal(t, 1, bySlot["11:00"])
	assert.Equal(t, 2, bySlot["12:00"], "booking ends at 12:00, touching slots do not conflict")
	assert.Equal(t, 2, bySlot["13:00"])
}

func TestExecute_DeactivatedScheduledGroomerNotCounted(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 1, WorkingHours: domain.WorkingHours{Start: "10:00", End: "14:00"}},
			{GroomerID: 3, WorkingHours: domain.WorkingHours{Start: "10:00", End: "14:00"}},
		},
	}
	// Грумер 3 деактивирован после составления расписания

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	for _, slot := range resp.Slots {
		assert.Equal(t, 1, slot.AvailableGroomerCount)
	}
}

func TestExecute_SlotsWithNoCapacityAreOmitted(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 1, WorkingHours: domain.WorkingHours{Start: "10:00", End: "14:00"}},
		},
	}
	f.queue.bookings = []*domain.QueueEntry{
		{
			ID:                1,
			AppointmentTime:   "10:00",
			DurationMinutes:   120,
			AssignedGroomerID: ptr.Ptr(int64(1)),
			Status:            domain.StatusBooking,
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)

	// Единственный грумер занят до 12:00: остаются 12:00, 12:30, 13:00
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "12:00", resp.Slots[0].Time.String())
}

func TestExecute_MaxSlotsCapsResult(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
		MaxSlots: 2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].Time.String())
	assert.Equal(t, "10:30", resp.Slots[1].Time.String())
}

func TestExecute_NoActiveGroomersMeansNoSlots(t *testing.T) {
	f := newFixture()
	f.groomers.active = nil

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"bathing"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServicesLongerThanWindow(t *testing.T) {
	f := newFixture()
	f.settings.settings.Durations["full_day_spa"] = 300

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:     testDate(),
		Services: []string{"full_day_spa"}, // 300 минут не помещаются в 4-часовое окно
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InputErrors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Services: []string{"bathing"}})
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = f.uc.Execute(context.Background(), &Request{Date: testDate(), MaxSlots: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
