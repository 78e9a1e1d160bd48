package domain

// Default slot parameters
const (
	DefaultMaxCapacity     = 1
	DefaultIntervalMinutes = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MinIntervalMinutes        = 5
	MaxSlotRangeDays          = 92 // ~3 месяца за одну генерацию
	MinRating                 = 1
	MaxRating                 = 5
	MaxNotesLength            = 500
	MaxCancelReasonLength     = 500
	DefaultClientsLimit       = 50
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// ReminderStatuses статусы записей, по которым отправляются напоминания
var ReminderStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}

// InactiveStatuses статусы записей, не занимающих место в слоте
// и не учитываемых в total_spent клиента
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
