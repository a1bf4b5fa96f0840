package sl

import (
	"log/slog"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// View creates a slog.Attr naming the view a log record belongs to.
func View(name string) slog.Attr {
	return slog.Attr{
		Key:   "view",
		Value: slog.StringValue(name),
	}
}
