// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_rel_diary/internal/model"
)

// HandleError interprets err and writes the matching JSON error response.
// This is the single choke point for error rendering.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		if statusCode == http.StatusInternalServerError {
			logger.Error("Unhandled error", slog.Any("error", err))
		}
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    codeForStatus(statusCode),
				Message: messageForStatus(statusCode),
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrLocked):
		return http.StatusLocked
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrAdvisor):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrPersistence):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrInternalServer):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "INVALID_INPUT"
	case http.StatusLocked:
		return "RECORD_LOCKED"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadGateway:
		return "ADVISOR_ERROR"
	case http.StatusServiceUnavailable:
		return "PERSISTENCE_ERROR"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func messageForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Recurso não encontrado."
	case http.StatusBadRequest:
		return "Entrada inválida."
	case http.StatusLocked:
		return "O registro deste dia está travado. Destrave antes de editar."
	case http.StatusConflict:
		return "Conflito de recursos. Recarregue e tente novamente."
	case http.StatusBadGateway:
		return "O especialista (IA) não respondeu. Tente novamente."
	case http.StatusServiceUnavailable:
		return "Falha ao salvar o diário. Seus dados não foram perdidos; tente novamente."
	default:
		return "Erro interno do servidor."
	}
}

// RespondWithJSON writes payload as a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Erro ao gerar a resposta."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
