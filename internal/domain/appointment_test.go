package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to no_show", StatusScheduled, StatusNoShow, true},
		{"scheduled to in_progress", StatusScheduled, StatusInProgress, false},
		{"scheduled to completed", StatusScheduled, StatusCompleted, false},
		{"confirmed to in_progress", StatusConfirmed, StatusInProgress, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to no_show", StatusInProgress, StatusNoShow, true},
		{"in_progress to cancelled", StatusInProgress, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusScheduled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"no_show is terminal", StatusNoShow, StatusConfirmed, false},
		{"no self transition", StatusScheduled, StatusScheduled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{
		StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	} {
		assert.True(t, IsValidStatus(s), "status %s", s)
	}

	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus(""))
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	cancellable := map[AppointmentStatus]bool{
		StatusScheduled:  true,
		StatusConfirmed:  true,
		StatusInProgress: false,
		StatusCompleted:  false,
		StatusCancelled:  false,
		StatusNoShow:     false,
	}

	for status, want := range cancellable {
		a := &Appointment{Status: status}
		assert.Equal(t, want, a.CanBeCancelled(), "status %s", status)
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	terminal := map[AppointmentStatus]bool{
		StatusScheduled:  false,
		StatusConfirmed:  false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancelled:  true,
		StatusNoShow:     true,
	}

	for status, want := range terminal {
		a := &Appointment{Status: status}
		assert.Equal(t, want, a.IsTerminal(), "status %s", status)
	}
}
