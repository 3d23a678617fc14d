package records

import "errors"

var (
	// ErrRecordNotFound возвращается, когда сервисная запись не найдена
	ErrRecordNotFound = errors.New("service record not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
