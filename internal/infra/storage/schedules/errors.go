package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание на дату не найдено
	// Вызывающая сторона трактует это как откат к "все активные грумеры"
	ErrScheduleNotFound = errors.New("schedules.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedules.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedules.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedules.repository: failed to scan row")
)
