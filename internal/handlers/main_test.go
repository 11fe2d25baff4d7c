// internal/handlers/main_test.go
package handlers_test

import (
	"io"
	"log/slog"
)

// testLogger discards everything; handler tests assert on responses, not logs.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
