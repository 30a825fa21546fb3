// Package models содержит доменную модель лыжника.
package models

import "time"

// Skier представляет лыжника станции. Абонемент может отсутствовать (nil),
// дата рождения может быть не заполнена — проверка возраста тогда пропускается.
type Skier struct {
	ID           int           // Уникальный идентификатор лыжника
	FirstName    string        // Имя
	LastName     string        // Фамилия
	City         string        // Город проживания
	DateOfBirth  *time.Time    // Дата рождения (может быть nil)
	Subscription *Subscription // Текущий абонемент (может быть nil)
}

// DummySkier используется для приёма данных лыжника из JSON-запроса.
// Абонемент может быть вложен в запрос, его дата окончания вычисляется сервисом.
type DummySkier struct {
	FirstName    string             `json:"first_name" validate:"required"` // Имя
	LastName     string             `json:"last_name" validate:"required"`  // Фамилия
	City         string             `json:"city,omitempty"`                 // Город (опционально)
	DateOfBirth  string             `json:"date_of_birth,omitempty"`        // Дата рождения в формате 02-01-2006 (опционально)
	Subscription *DummySubscription `json:"subscription,omitempty"`         // Вложенный абонемент (опционально)
}
