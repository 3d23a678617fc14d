package queue

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись очереди не найдена
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrEntryTerminal возвращается при попытке изменить завершённую
	// или отменённую запись
	ErrEntryTerminal = errors.New("queue entry is in a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
