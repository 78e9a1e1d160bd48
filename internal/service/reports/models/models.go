package models

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Response модели

// PaymentMethodTotalResponse итог по одному способу оплаты
type PaymentMethodTotalResponse struct {
	Method    string  `json:"method"`
	Count     int     `json:"count"`
	TotalPaid float64 `json:"totalPaid"`
}

// DailySummaryResponse сводка за день
type DailySummaryResponse struct {
	Date              string                       `json:"date"` // "2025-10-15"
	TotalAppointments int                          `json:"totalAppointments"`
	Completed         int                          `json:"completed"`
	Cancelled         int                          `json:"cancelled"`
	NoShow            int                          `json:"noShow"`
	TotalRevenue      float64                      `json:"totalRevenue"`
	TotalPrepayment   float64                      `json:"totalPrepayment"`
	Payments          []PaymentMethodTotalResponse `json:"payments"`
}

// ClientStatisticsResponse статистика клиента за все время
type ClientStatisticsResponse struct {
	ClientID          int64   `json:"clientId"`
	TotalAppointments int     `json:"totalAppointments"`
	Completed         int     `json:"completed"`
	Cancelled         int     `json:"cancelled"`
	TotalSpent        float64 `json:"totalSpent"`
	GrossBooked       float64 `json:"grossBooked"`
	FirstAppointment  *string `json:"firstAppointment,omitempty"` // "2025-10-15"
	LastAppointment   *string `json:"lastAppointment,omitempty"`
}

// Методы конвертации

// FromDomainDailySummary конвертирует domain сводку в DTO
func FromDomainDailySummary(s *domain.DailySummary) *DailySummaryResponse {
	if s == nil {
		return nil
	}

	resp := &DailySummaryResponse{
		Date:              s.Date.Format(domain.DateFormat),
		TotalAppointments: s.TotalAppointments,
		Completed:         s.Completed,
		Cancelled:         s.Cancelled,
		NoShow:            s.NoShow,
		TotalRevenue:      s.TotalRevenue,
		TotalPrepayment:   s.TotalPrepayment,
		Payments:          make([]PaymentMethodTotalResponse, 0, len(s.Payments)),
	}

	for _, total := range s.Payments {
		resp.Payments = append(resp.Payments, PaymentMethodTotalResponse{
			Method:    string(total.Method),
			Count:     total.Count,
			TotalPaid: total.TotalPaid,
		})
	}

	return resp
}

// FromDomainClientStatistics конвертирует domain статистику в DTO
func FromDomainClientStatistics(s *domain.ClientStatistics) *ClientStatisticsResponse {
	if s == nil {
		return nil
	}

	resp := &ClientStatisticsResponse{
		ClientID:          s.ClientID,
		TotalAppointments: s.TotalAppointments,
		Completed:         s.Completed,
		Cancelled:         s.Cancelled,
		TotalSpent:        s.TotalSpent,
		GrossBooked:       s.GrossBooked,
	}

	if s.FirstAppointment != nil {
		first := s.FirstAppointment.Format(domain.DateFormat)
		resp.FirstAppointment = &first
	}
	if s.LastAppointment != nil {
		last := s.LastAppointment.Format(domain.DateFormat)
		resp.LastAppointment = &last
	}

	return resp
}
