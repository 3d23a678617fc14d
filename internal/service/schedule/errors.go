package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание на дату не найдено
	ErrScheduleNotFound = errors.New("daily schedule not found")

	// ErrGroomerNotFound возвращается, когда назначаемый грумер не найден
	ErrGroomerNotFound = errors.New("groomer not found")

	// ErrGroomerInactive возвращается при попытке назначить неактивного грумера
	ErrGroomerInactive = errors.New("groomer is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
