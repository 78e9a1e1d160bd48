package cancel_appointment

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID int64   // ID записи
	Reason        *string // Причина отмены (опционально)
}

// Response модель ответа на отмену записи
type Response struct {
	ID               int64  // ID записи
	Status           string // Статус после отмены (всегда cancelled)
	AlreadyCancelled bool   // Запись уже была отменена ранее
}
