// Package clock предоставляет абстракцию текущего времени.
// Сервисы получают дату вычисления возраста и продления абонемента
// через интерфейс, а не из системных часов напрямую, чтобы
// бизнес-логика оставалась детерминированной в тестах.
package clock

import "time"

// Clock возвращает текущее время.
type Clock interface {
	Now() time.Time
}

// Real читает время из системных часов.
type Real struct{}

// Now возвращает time.Now().
func (Real) Now() time.Time { return time.Now() }

// Fixed всегда возвращает заданное время. Используется в тестах.
type Fixed struct {
	Time time.Time
}

// Now возвращает зафиксированное время.
func (f Fixed) Now() time.Time { return f.Time }
