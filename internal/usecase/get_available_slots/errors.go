package get_available_slots

import "errors"

var (
	// ErrDateRequired возвращается, когда не указана дата
	ErrDateRequired = errors.New("get_available_slots: date is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
