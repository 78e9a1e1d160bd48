package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreateClientRequest запрос на регистрацию клиента
type CreateClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"` // "2006-01-02"
	Notes     *string `json:"notes,omitempty"`
}

// ListClientsRequest запрос на список клиентов
type ListClientsRequest struct {
	Search *string `json:"search,omitempty"`
	Limit  uint64  `json:"limit,omitempty"`
	Offset uint64  `json:"offset,omitempty"`
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	IsActive  bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// ToDomainClient конвертирует запрос в domain модель
// Дату рождения парсит вызывающая сторона после валидации
func (r *CreateClientRequest) ToDomainClient(birthDate *time.Time) *domain.Client {
	return &domain.Client{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		BirthDate: birthDate,
		Notes:     r.Notes,
	}
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	resp := &ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.BirthDate != nil {
		birthDate := c.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &birthDate
	}

	return resp
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for _, client := range clients {
		resp.Clients = append(resp.Clients, *FromDomainClient(client))
	}

	return resp
}
