package option

import (
	"context"
	"log/slog"
)

// LogValue implements slog.LogValuer: Some logs as {some: true, value: v},
// None as {some: false}.
func (o Option[T]) LogValue() slog.Value {
	if !o.present {
		return slog.GroupValue(slog.Bool("some", false))
	}
	return slog.GroupValue(slog.Bool("some", true), slog.Any("value", o.value))
}

// TapLog returns a pipeline stage that logs the option at debug level
// under key "option" and passes it on unchanged. A nil logger uses
// slog.Default().
func TapLog[T any](logger *slog.Logger, msg string) Stage[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(o Option[T]) Option[T] {
		logger.LogAttrs(context.Background(), slog.LevelDebug, msg, slog.Any("option", o))
		return o
	}
}
