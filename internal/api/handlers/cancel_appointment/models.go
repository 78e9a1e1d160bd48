package cancel_appointment

import (
	cancelAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_appointment"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	ID               int64  `json:"id"`
	Status           string `json:"status"`
	AlreadyCancelled bool   `json:"alreadyCancelled,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{
		ID:               resp.ID,
		Status:           resp.Status,
		AlreadyCancelled: resp.AlreadyCancelled,
	}
}
