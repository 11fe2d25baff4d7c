// internal/handlers/record_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service"
	"go_rel_diary/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type RecordHandler struct {
	service service.RecordService
	logger  *slog.Logger
}

func NewRecordHandler(s service.RecordService, logger *slog.Logger) *RecordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordHandler{
		service: s,
		logger:  logger,
	}
}

// dateParam extracts and validates the {date} URL parameter.
func dateParam(r *http.Request) (string, error) {
	date := chi.URLParam(r, "date")
	if _, err := model.ParseDate(date); err != nil {
		return "", model.NewAppError("INVALID_URL_PARAM", "A data deve estar no formato AAAA-MM-DD.", "date", model.ErrInvalidInput)
	}
	return date, nil
}

// validateBody runs the shared validator and converts the first failure into
// a translated AppError.
func validateBody(logger *slog.Logger, req interface{}) error {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			return model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		return fmt.Errorf("validateBody: %w", model.ErrInternalServer)
	}
	return nil
}

// PutRecord saves (creates or replaces) the draft for a date.
func (h *RecordHandler) PutRecord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutRecord"))

	date, err := dateParam(r)
	if err != nil {
		logger.Warn("Invalid date in URL", slog.String("date", chi.URLParam(r, "date")))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("date", date))

	var req model.UpsertRecordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição está mal formado.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := validateBody(logger, req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	rec, err := h.service.UpsertDraft(r.Context(), date, &req)
	if err != nil {
		if errors.Is(err, model.ErrLocked) {
			logger.Info("Upsert rejected, record locked")
		} else {
			logger.Error("Error upserting draft in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Draft saved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// LockRecord commits and locks the record. Idempotent; XP moves only on the
// first lock of a date.
func (h *RecordHandler) LockRecord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "LockRecord"))

	date, err := dateParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("date", date))

	result, err := h.service.CommitAndLock(r.Context(), date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Lock requested for absent record")
		} else {
			logger.Error("Error locking record in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Record locked successfully", slog.Int("xp_delta", result.XPDelta), slog.Bool("leveled_up", result.LeveledUp))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// UnlockRecord makes a locked record editable again.
func (h *RecordHandler) UnlockRecord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UnlockRecord"))

	date, err := dateParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("date", date))

	rec, err := h.service.Unlock(r.Context(), date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Record unlocked successfully")
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// ImportMessages stores the date-matching lines of pasted chat text on the
// record.
func (h *RecordHandler) ImportMessages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportMessages"))

	date, err := dateParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("date", date))

	var req model.ImportMessagesRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição está mal formado.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := validateBody(logger, req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	rec, err := h.service.ImportMessages(r.Context(), date, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Messages imported successfully")
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// GetRecord returns one day's record.
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRecord"))

	date, err := dateParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("date", date))

	rec, err := h.service.GetRecord(r.Context(), date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Record not found")
		} else {
			logger.Error("Error getting record from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// GetRecords returns every record, ascending by date.
func (h *RecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRecords"))

	records, err := h.service.ListRecords(r.Context())
	if err != nil {
		logger.Error("Error listing records in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []*model.DailyRecord{}
	}
	logger.Info("Records listed successfully", slog.Int("count", len(records)))
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}
