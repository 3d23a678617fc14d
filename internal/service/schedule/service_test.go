package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	groomersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/groomers"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	"github.com/m04kA/PGS-QueueService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	schedule *domain.DailySchedule
}

func (f *fakeScheduleRepo) GetByDate(_ context.Context, _ time.Time) (*domain.DailySchedule, error) {
	if f.schedule == nil {
		return nil, schedulesRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, schedule *domain.DailySchedule) (*domain.DailySchedule, error) {
	saved := *schedule
	saved.ID = 1
	f.schedule = &saved
	return &saved, nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{}
	groomers := &fakeGroomerRepo{groomers: map[int64]*domain.Groomer{
		1: {ID: 1, Name: "Аня", IsActive: true},
		2: {ID: 2, Name: "Борис", IsActive: true},
		3: {ID: 3, Name: "Вера", IsActive: false},
	}}
	return NewService(repo, groomers, noopLogger{}), repo
}

func testDate() time.Time {
	return time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
}

func validRequest() *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		Date: testDate(),
		Entries: []models.ScheduleEntryInput{
			{GroomerID: 1, Name: "Аня", Start: "09:00", End: "15:00"},
			{GroomerID: 2, Name: "Борис", Start: "12:00", End: "20:00"},
		},
	}
}

func TestUpsert(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Upsert(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "2025-04-07", resp.Date)
	assert.Equal(t, 2, resp.TotalCapacity)
	require.Len(t, resp.Entries, 2)
	// Порядок назначений сохраняется
	assert.Equal(t, int64(1), resp.Entries[0].GroomerID)
	assert.Equal(t, "09:00", resp.Entries[0].Start)
	assert.Equal(t, int64(2), resp.Entries[1].GroomerID)
}

func TestUpsert_ReplacesExistingSchedule(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Upsert(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Entries = req.Entries[:1]
	resp, err := svc.Upsert(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalCapacity)
	assert.Len(t, repo.schedule.Entries, 1)
}

func TestUpsert_ValidationErrors(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name    string
		mutate  func(*models.UpsertScheduleRequest)
		wantErr error
	}{
		{
			"missing date",
			func(r *models.UpsertScheduleRequest) { r.Date = time.Time{} },
			ErrInvalidInput,
		},
		{
			"malformed time",
			func(r *models.UpsertScheduleRequest) { r.Entries[0].Start = "9am" },
			ErrInvalidInput,
		},
		{
			"end before start",
			func(r *models.UpsertScheduleRequest) {
				r.Entries[0].Start = "15:00"
				r.Entries[0].End = "09:00"
			},
			ErrInvalidInput,
		},
		{
			"zero-length shift",
			func(r *models.UpsertScheduleRequest) {
				r.Entries[0].Start = "09:00"
				r.Entries[0].End = "09:00"
			},
			ErrInvalidInput,
		},
		{
			"duplicate groomer",
			func(r *models.UpsertScheduleRequest) { r.Entries[1].GroomerID = 1 },
			ErrInvalidInput,
		},
		{
			"unknown groomer",
			func(r *models.UpsertScheduleRequest) { r.Entries[1].GroomerID = 99 },
			ErrGroomerNotFound,
		},
		{
			"inactive groomer",
			func(r *models.UpsertScheduleRequest) { r.Entries[1].GroomerID = 3 },
			ErrGroomerInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetByDate_NotFound(t *testing.T) {
	svc, _ := newService()
	_, err := svc.GetByDate(context.Background(), testDate())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetByDate(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Upsert(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.GetByDate(context.Background(), testDate())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCapacity)
}
