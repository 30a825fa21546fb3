// Package models содержит модель сотрудника станции,
// включающую данные учётной записи и хэш пароля.
package models

// User представляет сотрудника станции с доступом к API.
type User struct {
	UID          string // Уникальный идентификатор сотрудника
	Email        string // Электронная почта
	Username     string // Имя пользователя (уникальное)
	PasswordHash string // Хэш пароля
	Role         string // Роль, admin или staff
}
