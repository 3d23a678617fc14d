package get_available_groomers

import "errors"

var (
	// ErrDateRequired возвращается, когда не указана дата
	ErrDateRequired = errors.New("get_available_groomers: date is required")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("get_available_groomers: invalid time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_groomers: internal error")
)
