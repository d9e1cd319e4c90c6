package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Count records an item count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}
