package notifygate

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifygate client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("notifygate client: invalid response")

	// ErrDeliveryFailed возвращается, когда шлюз не подтвердил доставку
	// Напоминание по такой записи остается неотправленным и будет
	// подхвачено следующим проходом
	ErrDeliveryFailed = errors.New("notifygate client: delivery not confirmed")
)
