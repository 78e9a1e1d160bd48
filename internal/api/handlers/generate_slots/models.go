package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	generateSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	EmployeeID      int64   `json:"employeeId"`
	ServiceID       int64   `json:"serviceId"`
	StartDate       string  `json:"startDate"` // "2025-10-15"
	EndDate         string  `json:"endDate"`
	WorkStart       string  `json:"workStart"` // "09:00"
	WorkEnd         string  `json:"workEnd"`
	IntervalMinutes int     `json:"intervalMinutes,omitempty"`
	MaxCapacity     int     `json:"maxCapacity,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	SlotIDs []int64 `json:"slotIds"`
	Created int     `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	workStart, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return nil, err
	}

	workEnd, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		EmployeeID:      r.EmployeeID,
		ServiceID:       r.ServiceID,
		StartDate:       startDate,
		EndDate:         endDate,
		WorkStart:       workStart,
		WorkEnd:         workEnd,
		IntervalMinutes: r.IntervalMinutes,
		MaxCapacity:     r.MaxCapacity,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		SlotIDs: resp.SlotIDs,
		Created: resp.Created,
	}
}
