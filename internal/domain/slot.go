package domain

import "time"

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
	SlotCompleted SlotStatus = "completed"
)

// TimeSlot represents a bookable interval for one (employee, service) pair
// Инвариант: 0 <= CurrentBookings <= MaxCapacity;
// статус booked тогда и только тогда, когда CurrentBookings >= MaxCapacity
type TimeSlot struct {
	ID              int64
	EmployeeID      int64
	ServiceID       int64
	StartTime       time.Time
	EndTime         time.Time
	Status          SlotStatus
	MaxCapacity     int
	CurrentBookings int
	Notes           *string
}

// IsBookable returns true if the slot accepts one more booking
func (s *TimeSlot) IsBookable() bool {
	return s.Status == SlotAvailable && s.CurrentBookings < s.MaxCapacity
}

// IsFull returns true if the slot has reached its capacity
func (s *TimeSlot) IsFull() bool {
	return s.CurrentBookings >= s.MaxCapacity
}

// AvailableSpots returns the number of free spots in the slot
func (s *TimeSlot) AvailableSpots() int {
	spots := s.MaxCapacity - s.CurrentBookings
	if spots < 0 {
		return 0
	}
	return spots
}

// AvailableSlotDetails доступный слот вместе с именем сотрудника и услугой
type AvailableSlotDetails struct {
	TimeSlot

	EmployeeFirstName string
	EmployeeLastName  string
	ServiceName       string
}
