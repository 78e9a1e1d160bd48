package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// buildSlots генерирует слоты для диапазона дат в рабочих часах
// Начала слотов идут с шагом intervalMinutes от начала рабочего дня.
// Слот создается только если он целиком помещается в рабочий день:
// start + duration <= workEnd. Частичных слотов в конце дня не бывает
func buildSlots(
	employeeID, serviceID int64,
	startDate, endDate time.Time,
	workStartMin, workEndMin int,
	durationMinutes, intervalMinutes int,
	maxCapacity int,
	notes *string,
) []*domain.TimeSlot {
	slots := make([]*domain.TimeSlot, 0)

	for day := truncateToDate(startDate); !day.After(endDate); day = day.AddDate(0, 0, 1) {
		for startMin := workStartMin; startMin+durationMinutes <= workEndMin; startMin += intervalMinutes {
			slotStart := day.Add(time.Duration(startMin) * time.Minute)
			slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

			slots = append(slots, &domain.TimeSlot{
				EmployeeID:  employeeID,
				ServiceID:   serviceID,
				StartTime:   slotStart,
				EndTime:     slotEnd,
				MaxCapacity: maxCapacity,
				Notes:       notes,
			})
		}
	}

	return slots
}

// truncateToDate отбрасывает время, оставляя календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
