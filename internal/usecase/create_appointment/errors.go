package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден или деактивирован
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_appointment: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот занят, заблокирован
	// или его вместимость исчерпана
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSlotInPast возвращается при попытке записи на прошедший слот
	ErrSlotInPast = errors.New("create_appointment: slot is in the past")

	// ErrServiceNotFound возвращается, когда услуга слота не найдена или отключена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
