package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrPetNotOwned возвращается, когда питомец принадлежит другому клиенту
	ErrPetNotOwned = errors.New("create_booking: pet does not belong to this customer")

	// ErrGroomerNotFound возвращается, когда грумер не найден
	ErrGroomerNotFound = errors.New("create_booking: groomer not found")

	// ErrGroomerInactive возвращается при попытке назначить неактивного грумера
	ErrGroomerInactive = errors.New("create_booking: groomer is not active")

	// ErrGroomerNotAvailable возвращается, когда грумер занят в выбранный интервал
	ErrGroomerNotAvailable = errors.New("create_booking: groomer is not available at this time")

	// ErrNoServices возвращается, когда не выбрана ни одна услуга
	ErrNoServices = errors.New("create_booking: at least one service is required")

	// ErrDateRequired возвращается, когда не указана дата записи
	ErrDateRequired = errors.New("create_booking: date is required")

	// ErrInvalidAppointmentTime возвращается при некорректном времени записи
	// (неверный формат либо услуги не помещаются до конца суток)
	ErrInvalidAppointmentTime = errors.New("create_booking: invalid appointment time")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
