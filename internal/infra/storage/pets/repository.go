package pets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/dbmetrics"
	"github.com/m04kA/PGS-QueueService/pkg/psqlbuilder"
)

// Repository репозиторий питомцев
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория питомцев
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает питомца по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_customer_id",
		"name",
		"species",
		"breed",
		"weight_kg",
		"color",
		"birth_date",
		"notes",
		"is_long_hair",
		"created_at",
		"updated_at",
	).
		From("pets").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var pet domain.Pet
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pet.ID,
		&pet.OwnerCustomerID,
		&pet.Name,
		&pet.Species,
		&pet.Breed,
		&pet.WeightKg,
		&pet.Color,
		&pet.BirthDate,
		&pet.Notes,
		&pet.IsLongHair,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pet: %v", ErrScanRow, err)
	}

	pet.CreatedAt = createdAt.Time
	pet.UpdatedAt = updatedAt.Time

	return &pet, nil
}

// UpdateWeight обновляет вес питомца по фактическому взвешиванию на чек-ине
func (r *Repository) UpdateWeight(ctx context.Context, id int64, weightKg float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pets").
		Set("weight_kg", weightKg).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWeight - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWeight - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWeight - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPetNotFound
	}

	return nil
}
