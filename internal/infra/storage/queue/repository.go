package queue

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
	"github.com/m04kA/PGS-QueueService/pkg/types"
)

// entryColumns полный набор колонок записи очереди
var entryColumns = []string{
	"id",
	"queue_number",
	"date",
	"appointment_time",
	"estimated_end_time",
	"duration_minutes",
	"customer_id",
	"pet_id",
	"assigned_groomer_id",
	"services",
	"status",
	"booking_at",
	"deposit_at",
	"check_in_at",
	"completed_at",
	"deposit_amount",
	"deposit_method",
	"check_in_weight",
	"check_in_notes",
	"completion_images",
	"priority",
	"transport_included",
	"notes",
	"marketing_source",
	"booker_name",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей очереди
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория очереди
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись очереди
// Если в контексте есть активная транзакция, использует её - создание записи
// идёт внутри сериализуемой транзакции вместе с подсчётом номера очереди
func (r *Repository) Create(ctx context.Context, entry *domain.QueueEntry) (*domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("queue_entries").
		Columns(
			"queue_number",
			"date",
			"appointment_time",
			"estimated_end_time",
			"duration_minutes",
			"customer_id",
			"pet_id",
			"assigned_groomer_id",
			"services",
			"status",
			"booking_at",
			"deposit_amount",
			"deposit_method",
			"completion_images",
			"priority",
			"transport_included",
			"notes",
			"marketing_source",
			"booker_name",
		).
		Values(
			entry.QueueNumber,
			entry.Date,
			entry.AppointmentTime,
			entry.EstimatedEndTime,
			entry.DurationMinutes,
			entry.CustomerID,
			entry.PetID,
			entry.AssignedGroomerID,
			pq.Array(entry.Services),
			entry.Status,
			entry.BookingAt,
			entry.DepositAmount,
			entry.DepositMethod,
			entry.CompletionImages,
			entry.Priority,
			entry.TransportIncluded,
			entry.Notes,
			entry.MarketingSource,
			entry.BookerName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// GetByID получает запись очереди по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("queue_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := r.scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return entry, nil
}

// CountByDate возвращает число записей на дату (включая отменённые -
// номера очереди не переиспользуются)
// Внутри транзакции используется для выдачи следующего номера очереди
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("queue_entries").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetWithFilter получает записи очереди с гибкой фильтрацией
// Для конкретной даты записи сортируются по номеру очереди;
// внутри транзакции выборка по дате блокируется FOR UPDATE
// (для проверки доступности при создании записи)
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.QueueFilter) ([]*domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(entryColumns...).
		From("queue_entries")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.GroomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"assigned_groomer_id": *filter.GroomerID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("queue_number ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, queue_number DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// UpdateFields типизированное частичное обновление записи очереди
// nil-поле означает "не менять"
type UpdateFields struct {
	Date               *time.Time
	AppointmentTime    *types.TimeString
	EstimatedEndTime   *types.TimeString
	DurationMinutes    *int
	AssignedGroomerID  *int64
	Services           []string
	Status             *domain.QueueStatus
	BookingAt          *time.Time
	DepositAt          *time.Time
	CheckInAt          *time.Time
	CompletedAt        *time.Time
	DepositAmount      *float64
	DepositMethod      *string
	CheckInWeight      *float64
	CheckInNotes       *string
	CompletionImages   domain.CompletionImages
	Priority           *bool
	TransportIncluded  *bool
	Notes              *string
	MarketingSource    *string
	BookerName         *string
	CancellationReason *string
	CancelledAt        *time.Time
}

// Update применяет частичное обновление к записи очереди
func (r *Repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("queue_entries").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	touched := false
	set := func(column string, value interface{}) {
		updateBuilder = updateBuilder.Set(column, value)
		touched = true
	}

	if fields.Date != nil {
		set("date", *fields.Date)
	}
	if fields.AppointmentTime != nil {
		set("appointment_time", *fields.AppointmentTime)
	}
	if fields.EstimatedEndTime != nil {
		set("estimated_end_time", *fields.EstimatedEndTime)
	}
	if fields.DurationMinutes != nil {
		set("duration_minutes", *fields.DurationMinutes)
	}
	if fields.AssignedGroomerID != nil {
		set("assigned_groomer_id", *fields.AssignedGroomerID)
	}
	if fields.Services != nil {
		set("services", pq.Array(fields.Services))
	}
	if fields.Status != nil {
		set("status", *fields.Status)
	}
	if fields.BookingAt != nil {
		set("booking_at", *fields.BookingAt)
	}
	if fields.DepositAt != nil {
		set("deposit_at", *fields.DepositAt)
	}
	if fields.CheckInAt != nil {
		set("check_in_at", *fields.CheckInAt)
	}
	if fields.CompletedAt != nil {
		set("completed_at", *fields.CompletedAt)
	}
	if fields.DepositAmount != nil {
		set("deposit_amount", *fields.DepositAmount)
	}
	if fields.DepositMethod != nil {
		set("deposit_method", *fields.DepositMethod)
	}
	if fields.CheckInWeight != nil {
		set("check_in_weight", *fields.CheckInWeight)
	}
	if fields.CheckInNotes != nil {
		set("check_in_notes", *fields.CheckInNotes)
	}
	if fields.CompletionImages != nil {
		set("completion_images", fields.CompletionImages)
	}
	if fields.Priority != nil {
		set("priority", *fields.Priority)
	}
	if fields.TransportIncluded != nil {
		set("transport_included", *fields.TransportIncluded)
	}
	if fields.Notes != nil {
		set("notes", *fields.Notes)
	}
	if fields.MarketingSource != nil {
		set("marketing_source", *fields.MarketingSource)
	}
	if fields.BookerName != nil {
		set("booker_name", *fields.BookerName)
	}
	if fields.CancellationReason != nil {
		set("cancellation_reason", *fields.CancellationReason)
	}
	if fields.CancelledAt != nil {
		set("cancelled_at", *fields.CancelledAt)
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
		return ErrEntryNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanEntry(row rowScanner) (*domain.QueueEntry, error) {
	var entry domain.QueueEntry
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.QueueNumber,
		&entry.Date,
		&entry.AppointmentTime,
		&entry.EstimatedEndTime,
		&entry.DurationMinutes,
		&entry.CustomerID,
		&entry.PetID,
		&entry.AssignedGroomerID,
		pq.Array(&entry.Services),
		&entry.Status,
		&entry.BookingAt,
		&entry.DepositAt,
		&entry.CheckInAt,
		&entry.CompletedAt,
		&entry.DepositAmount,
		&entry.DepositMethod,
		&entry.CheckInWeight,
		&entry.CheckInNotes,
		&entry.CompletionImages,
		&entry.Priority,
		&entry.TransportIncluded,
		&entry.Notes,
		&entry.MarketingSource,
		&entry.BookerName,
		&entry.CancellationReason,
		&entry.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.QueueEntry, error) {
	entries := make([]*domain.QueueEntry, 0)

	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
