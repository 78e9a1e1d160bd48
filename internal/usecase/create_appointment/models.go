package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID   int64   // ID клиента
	SlotID     int64   // ID выбранного слота
	Notes      *string // Дополнительные заметки (опционально)
	Prepayment float64 // Предоплата при создании записи (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	SlotID          int64            // ID слота
	ServiceID       int64            // ID услуги
	EmployeeID      int64            // ID сотрудника
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	Status          string           // Статус записи
	Price           float64          // Цена услуги на момент записи
	Prepayment      float64          // Внесенная предоплата
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
