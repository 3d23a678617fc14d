package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/dbmetrics"
	"github.com/m04kA/PGS-QueueService/pkg/psqlbuilder"
)

var recordColumns = []string{
	"id",
	"queue_id",
	"customer_id",
	"pet_id",
	"groomer_id",
	"date",
	"services_performed",
	"booking_at",
	"deposit_at",
	"check_in_at",
	"completed_at",
	"duration_minutes",
	"check_in_weight",
	"check_in_notes",
	"completion_images",
	"price",
	"notes",
	"created_at",
}

// Repository репозиторий сервисных записей (истории обслуживания)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сервисных записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сервисную запись
// Вызывается ровно один раз - при переходе записи очереди в completed
func (r *Repository) Create(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_records").
		Columns(
			"queue_id",
			"customer_id",
			"pet_id",
			"groomer_id",
			"date",
			"services_performed",
			"booking_at",
			"deposit_at",
			"check_in_at",
			"completed_at",
			"duration_minutes",
			"check_in_weight",
			"check_in_notes",
			"completion_images",
			"price",
			"notes",
		).
		Values(
			record.QueueID,
			record.CustomerID,
			record.PetID,
			record.GroomerID,
			record.Date,
			pq.Array(record.ServicesPerformed),
			record.BookingAt,
			record.DepositAt,
			record.CheckInAt,
			record.CompletedAt,
			record.DurationMinutes,
			record.CheckInWeight,
			record.CheckInNotes,
			record.CompletionImages,
			record.Price,
			record.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetByID получает сервисную запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("service_records").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	record, err := r.scanRecord(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan record: %v", ErrScanRow, err)
	}

	return record, nil
}

// RecordsFilter фильтр истории обслуживания
type RecordsFilter struct {
	CustomerID *int64
	PetID      *int64
	GroomerID  *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// GetWithFilter получает историю обслуживания с фильтрацией
// Сортировка - от новых к старым
func (r *Repository) GetWithFilter(ctx context.Context, filter RecordsFilter) ([]*domain.ServiceRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(recordColumns...).
		From("service_records")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.PetID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"pet_id": *filter.PetID})
	}
	if filter.GroomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"groomer_id": *filter.GroomerID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	query, args, err := selectBuilder.
		OrderBy("date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ServiceRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan record: %v", ErrScanRow, err)
		}
		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateFields типизированное частичное обновление для пути ручной коррекции
// nil-поле означает "не менять"
type UpdateFields struct {
	Date              *time.Time
	GroomerID         *int64
	ServicesPerformed []string
	CheckInAt         *time.Time
	CompletedAt       *time.Time
	DurationMinutes   *int
	Price             *float64
	Notes             *string
}

// Update применяет ручную коррекцию к сервисной записи
func (r *Repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("service_records").
		Where(squirrel.Eq{"id": id})

	touched := false
	set := func(column string, value interface{}) {
		updateBuilder = updateBuilder.Set(column, value)
		touched = true
	}

	if fields.Date != nil {
		set("date", *fields.Date)
	}
	if fields.GroomerID != nil {
		set("groomer_id", *fields.GroomerID)
	}
	if fields.ServicesPerformed != nil {
		set("services_performed", pq.Array(fields.ServicesPerformed))
	}
	if fields.CheckInAt != nil {
		set("check_in_at", *fields.CheckInAt)
	}
	if fields.CompletedAt != nil {
		set("completed_at", *fields.CompletedAt)
	}
	if fields.DurationMinutes != nil {
		set("duration_minutes", *fields.DurationMinutes)
	}
	if fields.Price != nil {
		set("price", *fields.Price)
	}
	if fields.Notes != nil {
		set("notes", *fields.Notes)
	}

	if !touched {
		return ErrEmptyUpdate
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRecord(row rowScanner) (*domain.ServiceRecord, error) {
	var record domain.ServiceRecord
	var createdAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.QueueID,
		&record.CustomerID,
		&record.PetID,
		&record.GroomerID,
		&record.Date,
		pq.Array(&record.ServicesPerformed),
		&record.BookingAt,
		&record.DepositAt,
		&record.CheckInAt,
		&record.CompletedAt,
		&record.DurationMinutes,
		&record.CheckInWeight,
		&record.CheckInNotes,
		&record.CompletionImages,
		&record.Price,
		&record.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}
