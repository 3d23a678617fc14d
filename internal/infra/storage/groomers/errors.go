package groomers

import "errors"

var (
	// ErrGroomerNotFound возвращается, когда грумер не найден
	ErrGroomerNotFound = errors.New("groomers.repository: groomer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("groomers.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("groomers.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("groomers.repository: failed to scan row")
)
