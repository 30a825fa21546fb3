// Package sl содержит хелперы для логгера slog, общие для всех
// сервисов станции.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки,
// чтобы ошибки во всех логах станции выводились одним полем.
//
// Пример:
//
//	log.Error("failed to renew subscription", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
