package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// OpenFileHandler appends JSON records at or above level to the file at path.
// The returned file must be closed by the caller.
func OpenFileHandler(path string, level slog.Level) (slog.Handler, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}), f, nil
}
