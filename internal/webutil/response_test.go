// internal/webutil/response_test.go
package webutil_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go_rel_diary/internal/model"
	"go_rel_diary/internal/webutil"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "not found", err: model.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "invalid input", err: model.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "locked", err: model.ErrLocked, wantCode: http.StatusLocked},
		{name: "conflict", err: model.ErrConflict, wantCode: http.StatusConflict},
		{name: "advisor", err: model.ErrAdvisor, wantCode: http.StatusBadGateway},
		{name: "persistence", err: model.ErrPersistence, wantCode: http.StatusServiceUnavailable},
		{name: "internal server", err: model.ErrInternalServer, wantCode: http.StatusInternalServerError},
		{
			name:     "wrapped internal server",
			err:      fmt.Errorf("validateBody: %w", model.ErrInternalServer),
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "app error unwraps to sentinel",
			err:      model.NewAppError("RECORD_LOCKED", "travado", "", model.ErrLocked),
			wantCode: http.StatusLocked,
		},
		{name: "unknown error", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, webutil.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("app error keeps its detail", func(t *testing.T) {
		rr := httptest.NewRecorder()
		appErr := model.NewAppError("INVALID_DATE", "Data inválida.", "date", model.ErrInvalidInput)

		webutil.HandleError(rr, testLogger, appErr)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp model.APIErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_DATE", resp.Error.Code)
		assert.Equal(t, "date", resp.Error.Field)
	})

	t.Run("bare sentinel gets generic detail", func(t *testing.T) {
		rr := httptest.NewRecorder()

		webutil.HandleError(rr, testLogger, model.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp model.APIErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("wrapped internal error renders as 500", func(t *testing.T) {
		rr := httptest.NewRecorder()

		webutil.HandleError(rr, testLogger, fmt.Errorf("unexpected: %w", model.ErrInternalServer))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp model.APIErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
	})
}
