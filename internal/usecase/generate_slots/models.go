package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на генерацию слотов
type Request struct {
	EmployeeID      int64            // ID сотрудника
	ServiceID       int64            // ID услуги
	StartDate       time.Time        // Первый день диапазона
	EndDate         time.Time        // Последний день диапазона (включительно)
	WorkStart       types.TimeString // Начало рабочего дня (например, "09:00")
	WorkEnd         types.TimeString // Конец рабочего дня (например, "18:00")
	IntervalMinutes int              // Шаг между началами слотов; 0 = дефолт
	MaxCapacity     int              // Вместимость слота; 0 = дефолт
	Notes           *string          // Заметки, проставляемые на каждый слот
}

// Response модель ответа с результатом генерации
type Response struct {
	SlotIDs []int64 // ID созданных слотов в порядке следования
	Created int     // Количество созданных слотов
}
