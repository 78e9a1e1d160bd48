package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotIsBookable(t *testing.T) {
	cases := []struct {
		name     string
		slot     TimeSlot
		bookable bool
	}{
		{"available with free spots", TimeSlot{Status: SlotAvailable, MaxCapacity: 3, CurrentBookings: 1}, true},
		{"available last spot", TimeSlot{Status: SlotAvailable, MaxCapacity: 1, CurrentBookings: 0}, true},
		{"available but full", TimeSlot{Status: SlotAvailable, MaxCapacity: 2, CurrentBookings: 2}, false},
		{"booked", TimeSlot{Status: SlotBooked, MaxCapacity: 2, CurrentBookings: 2}, false},
		{"blocked with free spots", TimeSlot{Status: SlotBlocked, MaxCapacity: 3, CurrentBookings: 0}, false},
		{"completed", TimeSlot{Status: SlotCompleted, MaxCapacity: 1, CurrentBookings: 0}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.bookable, tc.slot.IsBookable())
		})
	}
}

func TestTimeSlotAvailableSpots(t *testing.T) {
	slot := TimeSlot{MaxCapacity: 3, CurrentBookings: 1}
	assert.Equal(t, 2, slot.AvailableSpots())

	full := TimeSlot{MaxCapacity: 2, CurrentBookings: 2}
	assert.Equal(t, 0, full.AvailableSpots())
	assert.True(t, full.IsFull())

	// Перебронь не должна давать отрицательные места
	over := TimeSlot{MaxCapacity: 1, CurrentBookings: 2}
	assert.Equal(t, 0, over.AvailableSpots())
}
