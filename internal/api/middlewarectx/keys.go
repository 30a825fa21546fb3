// Package middlewarectx содержит HTTP middleware и типизированные ключи
// контекста для передачи данных аутентифицированного сотрудника.
package middlewarectx

// Key типизированный ключ контекста запроса.
type Key string

const (
	// User — имя пользователя аутентифицированного сотрудника.
	User Key = "username"
	// Role — роль аутентифицированного сотрудника.
	Role Key = "role"
)
