package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/pkg/dbmetrics"
	"github.com/m04kA/PGS-QueueService/pkg/psqlbuilder"
)

// settingsRowID настройки магазина - singleton-строка с фиксированным ID
const settingsRowID = 1

// Repository репозиторий документа настроек магазина
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает документ настроек
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "document", "updated_at").
		From("shop_settings").
		Where("id = ?", settingsRowID).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	var doc domain.SettingsDocument
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &doc, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return doc.ToSettings(id, updatedAt.Time), nil
}

// Update заменяет документ настроек целиком
// Настройки редактируются персоналом как единый документ
func (r *Repository) Update(ctx context.Context, doc domain.SettingsDocument) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_settings").
		Columns("id", "document").
		Values(settingsRowID, doc).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET document = EXCLUDED.document,
			    updated_at = NOW()
			RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	return doc.ToSettings(settingsRowID, updatedAt.Time), nil
}
