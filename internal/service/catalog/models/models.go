package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Duration    int     `json:"duration"` // минуты
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// CategoryListResponse ответ со списком категорий услуг
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Position       string  `json:"position"`
	Specialization *string `json:"specialization,omitempty"`
	WorkSchedule   *string `json:"workSchedule,omitempty"`
	IsActive       bool    `json:"isActive"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              int64  `json:"id"`
	EmployeeID      int64  `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	StartTime       string `json:"startTime"` // "2025-10-15 10:00"
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
	AvailableSpots  int    `json:"availableSpots"`
	MaxCapacity     int    `json:"maxCapacity"`
	CurrentBookings int    `json:"currentBookings"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Duration:    s.Duration,
		Price:       s.Price,
		Description: s.Description,
		IsActive:    s.IsActive,
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, service := range services {
		resp.Services = append(resp.Services, *FromDomainService(service))
	}
	return resp
}

// FromDomainEmployee конвертирует domain модель сотрудника в DTO
// Телефон и почта сотрудника наружу не отдаются
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	return &EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Position:       e.Position,
		Specialization: e.Specialization,
		WorkSchedule:   e.WorkSchedule,
		IsActive:       e.IsActive,
	}
}

// FromDomainEmployeeList конвертирует список сотрудников в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}
	for _, employee := range employees {
		resp.Employees = append(resp.Employees, *FromDomainEmployee(employee))
	}
	return resp
}

// FromDomainSlotDetails конвертирует слот с деталями в DTO
func FromDomainSlotDetails(s *domain.AvailableSlotDetails) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeFirstName + " " + s.EmployeeLastName,
		ServiceID:       s.ServiceID,
		ServiceName:     s.ServiceName,
		StartTime:       s.StartTime.Format(domain.DateTimeFormat),
		EndTime:         s.EndTime.Format(domain.DateTimeFormat),
		Status:          string(s.Status),
		AvailableSpots:  s.AvailableSpots(),
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
	}
}

// FromDomainSlotDetailsList конвертирует список слотов в DTO
func FromDomainSlotDetailsList(slots []*domain.AvailableSlotDetails) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlotDetails(slot))
	}
	return resp
}

// ParseDate парсит дату формата YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}
