package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the process logger. Production gets JSON output, anything
// else a human-readable text handler with debug level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func ensure() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

// normalize accepts the loose argument styles used across the codebase:
// key-value pairs, slog attrs, bare errors and bare strings.
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case slog.Attr:
			out = append(out, v)
		case error:
			out = append(out, "error", v)
		default:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i++
			} else {
				out = append(out, "detail", v)
			}
		}
	}
	return out
}

func Info(msg string, args ...any) {
	ensure().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	ensure().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	ensure().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	ensure().Error(msg, normalize(args)...)
	os.Exit(1)
}
