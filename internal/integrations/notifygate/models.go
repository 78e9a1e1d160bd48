package notifygate

// Notification запрос на отправку уведомления клиенту
// Шлюз сам выбирает канал доставки по телефону получателя
type Notification struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// DeliveryResponse ответ шлюза на запрос отправки
type DeliveryResponse struct {
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}
