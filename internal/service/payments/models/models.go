package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreatePaymentRequest запрос на запись платежа
type CreatePaymentRequest struct {
	AppointmentID int64   `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"` // cash, card, online, refund
	TransactionID *string `json:"transactionId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// CreateReviewRequest запрос на отзыв по завершенной записи
type CreateReviewRequest struct {
	AppointmentID int64   `json:"appointmentId"`
	ClientID      int64   `json:"clientId"`
	Rating        int     `json:"rating"` // 1..5
	Comment       *string `json:"comment,omitempty"`
}

// Response модели

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	ClientID      int64     `json:"clientId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transactionId,omitempty"`
	PaymentDate   time.Time `json:"paymentDate"`
	Notes         *string   `json:"notes,omitempty"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	ClientID      int64     `json:"clientId"`
	EmployeeID    int64     `json:"employeeId"`
	ServiceID     int64     `json:"serviceId"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainPayment конвертирует domain модель платежа в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		AppointmentID: p.AppointmentID,
		ClientID:      p.ClientID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
	}
}

// FromDomainPaymentList конвертирует список платежей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}
	for _, payment := range payments {
		resp.Payments = append(resp.Payments, *FromDomainPayment(payment))
	}
	return resp
}

// FromDomainReview конвертирует domain модель отзыва в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:            r.ID,
		AppointmentID: r.AppointmentID,
		ClientID:      r.ClientID,
		EmployeeID:    r.EmployeeID,
		ServiceID:     r.ServiceID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}
