// Package models содержит доменные структуры горнолыжной станции:
// абонементы, лыжников, курсы, инструкторов, записи на курсы и трассы,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"errors"
	"time"
)

// SubscriptionType тип абонемента, определяющий длительность его действия.
type SubscriptionType string

const (
	// TypeMonthly — месячный абонемент.
	TypeMonthly SubscriptionType = "MONTHLY"
	// TypeSemestriel — полугодовой абонемент.
	TypeSemestriel SubscriptionType = "SEMESTRIEL"
	// TypeAnnual — годовой абонемент.
	TypeAnnual SubscriptionType = "ANNUAL"
)

// ErrInvalidSubscriptionType возвращается, когда тип абонемента не задан
// или не распознан при вычислении даты окончания.
var ErrInvalidSubscriptionType = errors.New("invalid subscription type")

// Months возвращает длительность абонемента в месяцах, 0 для неизвестного типа.
func (t SubscriptionType) Months() int {
	switch t {
	case TypeMonthly:
		return 1
	case TypeSemestriel:
		return 6
	case TypeAnnual:
		return 12
	default:
		return 0
	}
}

// Subscription представляет абонемент лыжника.
// EndDate вычисляется из типа и даты начала и не задаётся при создании напрямую.
type Subscription struct {
	ID        int              // Уникальный идентификатор абонемента
	Type      SubscriptionType // Тип абонемента
	StartDate time.Time        // Дата начала действия
	EndDate   time.Time        // Дата окончания действия (вычисляемая)
	Price     float64          // Стоимость абонемента
}

// DummySubscription используется для приёма данных абонемента из JSON-запроса,
// прежде чем конвертировать их в Subscription.
// Даты приходят в виде строк в формате 02-01-2006.
type DummySubscription struct {
	Type      string  `json:"type_sub" validate:"required"`   // Тип абонемента
	StartDate string  `json:"start_date" validate:"required"` // Дата начала в формате 02-01-2006
	Price     float64 `json:"price" validate:"required,gt=0"` // Стоимость (>0)
}

// SubscriptionInfo агрегирует данные абонемента и владельца
// для уведомлений об истечении срока действия.
type SubscriptionInfo struct {
	SubscriptionID int
	Type           SubscriptionType
	EndDate        time.Time
	SkierFirstName string
	SkierLastName  string
}
