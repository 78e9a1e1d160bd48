package domain

import "time"

// Client represents a customer of the business
// Клиенты не удаляются физически - только деактивируются
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string // уникальный
	Email     *string
	BirthDate *time.Time
	Notes     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Employee represents a staff member who owns time slots
type Employee struct {
	ID             int64
	FirstName      string
	LastName       string
	Position       string
	Phone          string
	Email          string
	Specialization *string
	WorkSchedule   *string
	IsActive       bool
	CreatedAt      time.Time
}

// Service represents a bookable offering
// Duration is authoritative for slot sizing
type Service struct {
	ID          int64
	Name        string
	Category    string
	Duration    int // минуты
	Price       float64
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// ClientsFilter фильтр для поиска клиентов
type ClientsFilter struct {
	Search *string // подстрока имени, фамилии или телефона
	Limit  uint64
	Offset uint64
}

// ServicesFilter фильтр для списка услуг
type ServicesFilter struct {
	Category   *string
	ActiveOnly bool
}

// EmployeesFilter фильтр для списка сотрудников
type EmployeesFilter struct {
	Position   *string
	ActiveOnly bool
}
