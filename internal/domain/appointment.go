package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a client booked into a time slot
type Appointment struct {
	ID       int64
	ClientID int64
	SlotID   int64

	// Denormalized from the slot/service at booking time,
	// so catalog edits never rewrite history
	ServiceID       int64
	EmployeeID      int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Price           float64

	Status       AppointmentStatus
	Prepayment   float64
	Notes        *string
	ReminderSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// allowedTransitions граф допустимых переходов статусов
// Статусы completed, cancelled и no_show терминальные
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusNoShow},
}

// IsValidStatus returns true if the status is one of the six known values
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransition returns true if the status change from -> to is legal
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further status changes are allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// AppointmentDetails запись вместе с именами клиента, сотрудника и услуги
// Используется в операциях чтения (карточка записи, расписание на день)
type AppointmentDetails struct {
	Appointment

	ClientFirstName   string
	ClientLastName    string
	ClientPhone       string
	EmployeeFirstName string
	EmployeeLastName  string
	ServiceName       string
}

// DailyAppointmentsFilter фильтр для получения записей на день
type DailyAppointmentsFilter struct {
	Date       time.Time // Обязательный параметр
	EmployeeID *int64    // Фильтр по сотруднику (опционально)
}
