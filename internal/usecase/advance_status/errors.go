package advance_status

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись очереди не найдена
	ErrEntryNotFound = errors.New("advance_status: queue entry not found")

	// ErrUnknownStatus возвращается при неизвестном целевом статусе
	ErrUnknownStatus = errors.New("advance_status: unknown target status")

	// ErrInvalidTransition возвращается, когда переход не определён таблицей
	// переходов (в том числе любой переход из терминального статуса)
	ErrInvalidTransition = errors.New("advance_status: transition is not allowed")

	// ErrCancellationNotAllowed возвращается при попытке отменить запись
	// через продвижение статуса - отмена идёт отдельным путём
	ErrCancellationNotAllowed = errors.New("advance_status: cancellation goes through the cancel endpoint")

	// ErrGroomerRequired возвращается при завершении записи без назначенного грумера
	ErrGroomerRequired = errors.New("advance_status: groomer must be assigned before completion")

	// ErrGroomerNotFound возвращается, когда назначаемый грумер не найден
	ErrGroomerNotFound = errors.New("advance_status: groomer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("advance_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("advance_status: internal error")
)
