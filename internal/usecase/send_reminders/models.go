package send_reminders

// Request модель запроса на проход по напоминаниям
type Request struct {
	HoursBefore int // За сколько часов до начала записи напоминать
}

// Response модель ответа с результатом прохода
type Response struct {
	Processed int // Сколько записей попало в проход
	Sent      int // Сколько напоминаний доставлено и помечено
	Failed    int // Сколько доставок не подтвердилось
}
