package domain

// Default configuration values
const (
	// DefaultServiceDurationMinutes используется при пустом списке услуг
	// или при полностью отсутствующей таблице длительностей
	DefaultServiceDurationMinutes = 60

	// SlotStepMinutes фиксированный шаг перебора слотов в течение дня
	SlotStepMinutes = 30

	// DefaultMaxSlots ограничение числа слотов, если клиент его не указал
	DefaultMaxSlots = 20

	// DefaultWorkingHoursStart / End рабочие часы магазина, если они
	// не заданы ни расписанием дня, ни настройками
	DefaultWorkingHoursStart = "09:00"
	DefaultWorkingHoursEnd   = "18:00"
)

// Business validation constants
const (
	MaxNotesLength      = 500
	MaxServicesPerEntry = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BathingService имя услуги купания - для кошек тарифицируется по весовым порогам
const BathingService = "bathing"

// comboKeyDelimiter разделитель имён услуг в ключе комбо-переопределения
const comboKeyDelimiter = ","
