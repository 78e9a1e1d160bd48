package payments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidAmount возвращается при неположительной сумме платежа
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrAppointmentNotCompleted возвращается при попытке оставить отзыв
	// на незавершенную запись
	ErrAppointmentNotCompleted = errors.New("appointment is not completed")

	// ErrReviewExists возвращается при повторном отзыве на ту же запись
	ErrReviewExists = errors.New("review already exists for this appointment")

	// ErrAccessDenied возвращается, когда клиент оставляет отзыв на чужую запись
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRating возвращается при рейтинге вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
