package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	customersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/customers"
	groomersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/groomers"
	petsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/pets"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

// --- fakes ---

type fakeQueueRepo struct {
	existing []*domain.QueueEntry
	created  *domain.QueueEntry
	nextID   int64
}

func (f *fakeQueueRepo) Create(_ context.Context, entry *domain.QueueEntry) (*domain.QueueEntry, error) {
	stored := *entry
	f.nextID++
	stored.ID = f.nextID
	f.created = &stored
	return &stored, nil
}

func (f *fakeQueueRepo) CountByDate(_ context.Context, date time.Time) (int, error) {
	count := 0
	for _, e := range f.existing {
		if e.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeQueueRepo) GetWithFilter(_ context.Context, filter domain.QueueFilter) ([]*domain.QueueEntry, error) {
	var out []*domain.QueueEntry
	for _, e := range f.existing {
		if filter.Date != nil && !e.Date.Equal(*filter.Date) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, customersRepo.ErrCustomerNotFound
	}
	return c, nil
}

type fakePetRepo struct {
	pets map[int64]*domain.Pet
}

func (f *fakePetRepo) GetByID(_ context.Context, id int64) (*domain.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, petsRepo.ErrPetNotFound
	}
	return p, nil
}

type fakeGroomerRepo struct {
	groomers map[int64]*domain.Groomer
}

func (f *fakeGroomerRepo) GetByID(_ context.Context, id int64) (*domain.Groomer, error) {
	g, ok := f.groomers[id]
	if !ok {
		return nil, groomersRepo.ErrGroomerNotFound
	}
	return g, nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- fixture ---

type fixture struct {
	queue    *fakeQueueRepo
	schedule *fakeScheduleRepo
	settings *fakeSettingsRepo
	uc       *UseCase
	now      time.Time
}

func newFixture() *fixture {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	queue := &fakeQueueRepo{}
	schedule := &fakeScheduleRepo{}
	settings := &fakeSettingsRepo{
		settings: &domain.Settings{
			Durations: map[string]int{
				"bathing": 40,
				"haircut": 60,
			},
		},
	}

	uc := &UseCase{
		queueRepo: queue,
		customerRepo: &fakeCustomerRepo{customers: map[int64]*domain.Customer{
			1: {ID: 1, Name: "Иван"},
		}},
		petRepo: &fakePetRepo{pets: map[int64]*domain.Pet{
			10: {ID: 10, OwnerCustomerID: 1, Species: domain.SpeciesDog},
			11: {ID: 11, OwnerCustomerID: 2, Species: domain.SpeciesCat},
		}},
		groomerRepo: &fakeGroomerRepo{groomers: map[int64]*domain.Groomer{
			5: {ID: 5, Name: "Аня", IsActive: true},
			6: {ID: 6, Name: "Борис", IsActive: false},
		}},
		scheduleRepo: schedule,
		settingsRepo: settings,
		txManager:    &fakeTxManager{},
		timeProvider: &fixedTimeProvider{now: now},
		logger:       noopLogger{},
	}

	return &fixture{queue: queue, schedule: schedule, settings: settings, uc: uc, now: now}
}

func validRequest() *Request {
	return &Request{
		CustomerID:      1,
		PetID:           10,
		Services:        []string{"bathing"},
		Date:            time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "11:00",
	}
}

// --- tests ---

func TestExecute_CreatesEntryWithNextQueueNumber(t *testing.T) {
	f := newFixture()
	f.queue.existing = []*domain.QueueEntry{
		{ID: 1, Date: validRequest().Date},
		{ID: 2, Date: validRequest().Date},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.QueueNumber)
	assert.Equal(t, string(domain.StatusBooking), resp.Status)
	assert.Equal(t, 40, resp.DurationMinutes)
	assert.Equal(t, "11:40", resp.EstimatedEndTime.String())
	require.NotNil(t, resp.BookingAt)
	assert.Equal(t, f.now, *resp.BookingAt)
}

func TestExecute_QueueNumberStartsAtOne(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.QueueNumber)
}

func TestExecute_WithoutAppointmentTime(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.AppointmentTime = ""

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.AppointmentTime.IsZero())
	assert.True(t, resp.EstimatedEndTime.IsZero())
	assert.Equal(t, 40, resp.DurationMinutes)
}

func TestExecute_MissingSettingsFallsBackToDefaultDuration(t *testing.T) {
	f := newFixture()
	f.settings.settings = nil

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"no services", func(r *Request) { r.Services = nil }, ErrNoServices},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrDateRequired},
		{"bad customer id", func(r *Request) { r.CustomerID = 0 }, ErrInvalidInput},
		{"bad pet id", func(r *Request) { r.PetID = -1 }, ErrInvalidInput},
		{"malformed time", func(r *Request) { r.AppointmentTime = "9am" }, ErrInvalidAppointmentTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_ReferenceChecks(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CustomerID = 99
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	req = validRequest()
	req.PetID = 99
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPetNotFound)

	// Питомец принадлежит другому клиенту
	req = validRequest()
	req.PetID = 11
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPetNotOwned)

	req = validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(99))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGroomerNotFound)

	req = validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(6))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGroomerInactive)
}

func TestExecute_ServicesDoNotFitIntoDay(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.AppointmentTime = "23:30"
	req.Services = []string{"haircut"} // 60 минут не влезают до конца суток

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAppointmentTime)
}

func TestExecute_GroomerNotScheduled(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 7, WorkingHours: domain.WorkingHours{Start: "09:00", End: "18:00"}},
		},
	}

	req := validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(5))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGroomerNotAvailable)
}

func TestExecute_IntervalOutsideWorkingHours(t *testing.T) {
	f := newFixture()
	f.schedule.schedule = &domain.DailySchedule{
		Entries: domain.ScheduleEntries{
			{GroomerID: 5, WorkingHours: domain.WorkingHours{Start: "09:00", End: "11:30"}},
		},
	}

	req := validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(5)) // 11:00 + 40 минут выходит за 11:30

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGroomerNotAvailable)
}

func TestExecute_ConflictingBooking(t *testing.T) {
	f := newFixture()
	date := validRequest().Date
	f.queue.existing = []*domain.QueueEntry{
		{
			ID:                1,
			Date:              date,
			AppointmentTime:   "10:30",
			DurationMinutes:   60,
			AssignedGroomerID: ptr.Ptr(int64(5)),
			Status:            domain.StatusBooking,
		},
	}

	req := validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(5)) // [11:00, 11:40) пересекается с [10:30, 11:30)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGroomerNotAvailable)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	f := newFixture()
	date := validRequest().Date
	f.queue.existing = []*domain.QueueEntry{
		{
			ID:                1,
			Date:              date,
			AppointmentTime:   "10:30",
			DurationMinutes:   60,
			AssignedGroomerID: ptr.Ptr(int64(5)),
			Status:            domain.StatusCancelled,
		},
	}

	req := validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(5))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(int64(5)), resp.AssignedGroomerID)
}

func TestExecute_TouchingIntervalsDoNotConflict(t *testing.T) {
	f := newFixture()
	date := validRequest().Date
	f.queue.existing = []*domain.QueueEntry{
		{
			ID:                1,
			Date:              date,
			AppointmentTime:   "10:00",
			DurationMinutes:   60, // заканчивается ровно в 11:00
			AssignedGroomerID: ptr.Ptr(int64(5)),
			Status:            domain.StatusBooking,
		},
	}

	req := validRequest()
	req.AssignedGroomerID = ptr.Ptr(int64(5))

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}
