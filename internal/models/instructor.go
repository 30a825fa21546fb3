package models

import "time"

// Instructor представляет инструктора станции.
// Инструктор владеет набором назначенных ему курсов, обратной ссылки курс не хранит.
type Instructor struct {
	ID         int       // Уникальный идентификатор инструктора
	FirstName  string    // Имя
	LastName   string    // Фамилия
	DateOfHire time.Time // Дата найма
	Courses    []*Course // Назначенные курсы
}

// DummyInstructor используется для приёма данных инструктора из JSON-запроса.
type DummyInstructor struct {
	FirstName  string `json:"first_name" validate:"required"` // Имя
	LastName   string `json:"last_name" validate:"required"`  // Фамилия
	DateOfHire string `json:"date_of_hire,omitempty"`         // Дата найма в формате 02-01-2006 (опционально)
}
