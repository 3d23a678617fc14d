package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	recordsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/records"
	"github.com/m04kA/PGS-QueueService/internal/service/records/models"
	"github.com/m04kA/PGS-QueueService/pkg/ptr"
)

type fakeRecordRepo struct {
	records    map[int64]*domain.ServiceRecord
	lastFilter *recordsRepo.RecordsFilter
	lastFields *recordsRepo.UpdateFields
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id int64) (*domain.ServiceRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, recordsRepo.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRecordRepo) GetWithFilter(_ context.Context, filter recordsRepo.RecordsFilter) ([]*domain.ServiceRecord, error) {
	f.lastFilter = &filter
	var out []*domain.ServiceRecord
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, id int64, fields recordsRepo.UpdateFields) error {
	record, ok := f.records[id]
	if !ok {
		return recordsRepo.ErrRecordNotFound
	}
	f.lastFields = &fields

	if fields.CheckInAt != nil {
		record.CheckInAt = fields.CheckInAt
	}
	if fields.CompletedAt != nil {
		record.CompletedAt = fields.CompletedAt
	}
	if fields.DurationMinutes != nil {
		record.DurationMinutes = *fields.DurationMinutes
	}
	if fields.Price != nil {
		record.Price = *fields.Price
	}
	if fields.Notes != nil {
		record.Notes = fields.Notes
	}
	if fields.ServicesPerformed != nil {
		record.ServicesPerformed = fields.ServicesPerformed
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testRecord() *domain.ServiceRecord {
	checkIn := time.Date(2025, 4, 4, 11, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 4, 4, 12, 0, 0, 0, time.UTC)
	return &domain.ServiceRecord{
		ID:                1,
		QueueID:           10,
		CustomerID:        1,
		PetID:             5,
		GroomerID:         3,
		Date:              time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC),
		ServicesPerformed: []string{"bathing"},
		CheckInAt:         &checkIn,
		CompletedAt:       &completed,
		DurationMinutes:   60,
		Price:             300,
	}
}

func newService() (*Service, *fakeRecordRepo) {
	repo := &fakeRecordRepo{records: map[int64]*domain.ServiceRecord{}}
	return NewService(repo, noopLogger{}), repo
}

func TestEdit_ShiftedTimestampRecomputesDuration(t *testing.T) {
	svc, repo := newService()
	repo.records[1] = testRecord()

	newCompleted := time.Date(2025, 4, 4, 12, 45, 0, 0, time.UTC)
	resp, err := svc.Edit(context.Background(), 1, &models.EditRecordRequest{
		CompletedAt: &newCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, 105, resp.DurationMinutes)
}

func TestEdit_ExplicitDurationWins(t *testing.T) {
	svc, repo := newService()
	repo.records[1] = testRecord()

	newCompleted := time.Date(2025, 4, 4, 12, 45, 0, 0, time.UTC)
	resp, err := svc.Edit(context.Background(), 1, &models.EditRecordRequest{
		CompletedAt:     &newCompleted,
		DurationMinutes: ptr.Ptr(90),
	})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestEdit_PriceCorrection(t *testing.T) {
	svc, repo := newService()
	repo.records[1] = testRecord()

	resp, err := svc.Edit(context.Background(), 1, &models.EditRecordRequest{
		Price: ptr.Ptr(350.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 350.0, resp.Price)
	// Длительность без сдвига таймстемпов не пересчитывается
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestEdit_Errors(t *testing.T) {
	svc, repo := newService()
	repo.records[1] = testRecord()

	_, err := svc.Edit(context.Background(), 1, &models.EditRecordRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Edit(context.Background(), 1, &models.EditRecordRequest{
		DurationMinutes: ptr.Ptr(-1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Edit(context.Background(), 1, &models.EditRecordRequest{
		Price: ptr.Ptr(-10.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Edit(context.Background(), 404, &models.EditRecordRequest{
		Price: ptr.Ptr(100.0),
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestList_PeriodValidation(t *testing.T) {
	svc, repo := newService()
	repo.records[1] = testRecord()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), &models.GetRecordsRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_PassesFilterThrough(t *testing.T) {
	svc, repo := newService()
	repo.records[1] = testRecord()

	resp, err := svc.List(context.Background(), &models.GetRecordsRequest{
		CustomerID: ptr.Ptr(int64(1)),
		GroomerID:  ptr.Ptr(int64(3)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, ptr.Ptr(int64(1)), repo.lastFilter.CustomerID)
	assert.Equal(t, ptr.Ptr(int64(3)), repo.lastFilter.GroomerID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService()
	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
