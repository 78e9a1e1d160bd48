package domain

import "time"

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
	// PaymentRefund возврат оформляется отдельным платежом,
	// а не отрицательной суммой; предоплату записи не увеличивает
	PaymentRefund PaymentMethod = "refund"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment represents a recorded payment tied to an appointment
// Платежи только записываются; интеграции с платёжным шлюзом нет
type Payment struct {
	ID            int64
	AppointmentID int64
	ClientID      int64
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID *string
	PaymentDate   time.Time
	Notes         *string
}

// IsValidPaymentMethod returns true if the method is one of the known values
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOnline, PaymentRefund:
		return true
	}
	return false
}

// Review represents a write-once rating for a completed appointment
type Review struct {
	ID            int64
	AppointmentID int64
	ClientID      int64
	EmployeeID    int64
	ServiceID     int64
	Rating        int // 1..5
	Comment       *string
	CreatedAt     time.Time
}
