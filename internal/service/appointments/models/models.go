package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	SlotID          int64   `json:"slotId"`
	ServiceID       int64   `json:"serviceId"`
	EmployeeID      int64   `json:"employeeId"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
	Prepayment      float64 `json:"prepayment"`
	Notes           *string `json:"notes,omitempty"`
	ReminderSent    bool    `json:"reminderSent"`

	// Денормализованные данные для карточки записи
	ClientName   string `json:"clientName,omitempty"`
	ClientPhone  string `json:"clientPhone,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	ServiceName  string `json:"serviceName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// ToDomainStatus конвертирует строку в domain статус
func ToDomainStatus(status string) (domain.AppointmentStatus, bool) {
	s := domain.AppointmentStatus(status)
	return s, domain.IsValidStatus(s)
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		SlotID:          a.SlotID,
		ServiceID:       a.ServiceID,
		EmployeeID:      a.EmployeeID,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		Status:          string(a.Status),
		Price:           a.Price,
		Prepayment:      a.Prepayment,
		Notes:           a.Notes,
		ReminderSent:    a.ReminderSent,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainDetails конвертирует запись с деталями в DTO
func FromDomainDetails(d *domain.AppointmentDetails) *AppointmentResponse {
	if d == nil {
		return nil
	}

	resp := FromDomainAppointment(&d.Appointment)
	resp.ClientName = d.ClientFirstName + " " + d.ClientLastName
	resp.ClientPhone = d.ClientPhone
	resp.EmployeeName = d.EmployeeFirstName + " " + d.EmployeeLastName
	resp.ServiceName = d.ServiceName
	return resp
}

// FromDomainDetailsList конвертирует список записей с деталями в DTO
func FromDomainDetailsList(details []*domain.AppointmentDetails) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Appointments = append(resp.Appointments, *FromDomainDetails(d))
	}
	return resp
}
