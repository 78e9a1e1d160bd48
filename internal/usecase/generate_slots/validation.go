package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidDateRange)
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > domain.MaxSlotRangeDays {
		return fmt.Errorf("%w: range of %d days exceeds %d days", ErrInvalidDateRange, days, domain.MaxSlotRangeDays)
	}

	if req.WorkStart.IsZero() || req.WorkEnd.IsZero() {
		return fmt.Errorf("%w: workStart and workEnd are required", ErrInvalidInput)
	}
	if err := req.WorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: invalid workStart: %v", ErrInvalidWorkingHours, err)
	}
	if err := req.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: invalid workEnd: %v", ErrInvalidWorkingHours, err)
	}
	if !req.WorkStart.IsBefore(req.WorkEnd) {
		return fmt.Errorf("%w: workStart must be before workEnd", ErrInvalidWorkingHours)
	}

	if req.IntervalMinutes < 0 {
		return fmt.Errorf("%w: intervalMinutes must not be negative", ErrInvalidInput)
	}
	if req.IntervalMinutes > 0 && req.IntervalMinutes < domain.MinIntervalMinutes {
		return fmt.Errorf("%w: intervalMinutes must be at least %d", ErrInvalidInput, domain.MinIntervalMinutes)
	}

	if req.MaxCapacity < 0 {
		return fmt.Errorf("%w: maxCapacity must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateServiceDuration проверяет длительность услуги перед генерацией
func validateServiceDuration(duration int) error {
	if duration < domain.MinServiceDurationMinutes || duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: service duration %d minutes is out of range [%d, %d]",
			ErrInvalidInput, duration, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
