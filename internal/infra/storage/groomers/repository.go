package groomers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/dbmetrics"
	"github.com/m04kA/PGS-QueueService/pkg/psqlbuilder"
)

var groomerColumns = []string{
	"id",
	"name",
	"nickname",
	"phone",
	"specialties",
	"experience_tier",
	"is_active",
	"hire_date",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий грумеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория грумеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает грумера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	groomer, err := r.scanGroomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGroomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan groomer: %v", ErrScanRow, err)
	}

	return groomer, nil
}

// ListActive возвращает всех активных грумеров в стабильном порядке
// Неактивные грумеры исключены из всей логики доступности
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Groomer, 0)
	for rows.Next() {
		groomer, err := r.scanGroomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan groomer: %v", ErrScanRow, err)
		}
		result = append(result, groomer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanGroomer(row rowScanner) (*domain.Groomer, error) {
	var groomer domain.Groomer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&groomer.ID,
		&groomer.Name,
		&groomer.Nickname,
		&groomer.Phone,
		pq.Array(&groomer.Specialties),
		&groomer.ExperienceTier,
		&groomer.IsActive,
		&groomer.HireDate,
		&groomer.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	groomer.CreatedAt = createdAt.Time
	groomer.UpdatedAt = updatedAt.Time

	return &groomer, nil
}
