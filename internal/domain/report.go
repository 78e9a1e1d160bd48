package domain

import "time"

// DailySummary сводка по записям и платежам за один день
// Чисто производные данные, ничего не мутирует
type DailySummary struct {
	Date              time.Time
	TotalAppointments int
	Completed         int
	Cancelled         int
	NoShow            int
	TotalRevenue      float64 // SUM(price) по записям на дату
	TotalPrepayment   float64 // SUM(prepayment) по записям на дату
	Payments          []PaymentMethodTotal
}

// PaymentMethodTotal итог по одному способу оплаты за день
type PaymentMethodTotal struct {
	Method    PaymentMethod
	Count     int
	TotalPaid float64
}

// ClientStatistics статистика клиента за все время
type ClientStatistics struct {
	ClientID          int64
	TotalAppointments int
	Completed         int
	Cancelled         int
	// TotalSpent не включает отмененные записи и no-show
	TotalSpent float64
	// GrossBooked - сумма price по всем записям независимо от статуса
	// (историческое поведение отчета, оставлено для сверки)
	GrossBooked      float64
	FirstAppointment *time.Time
	LastAppointment  *time.Time
}
