package records

import "errors"

var (
	// ErrRecordNotFound возвращается, когда сервисная запись не найдена
	ErrRecordNotFound = errors.New("records.repository: service record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("records.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("records.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("records.repository: failed to scan row")

	// ErrEmptyUpdate возвращается при попытке обновления без единого поля
	ErrEmptyUpdate = errors.New("records.repository: update without fields")
)
