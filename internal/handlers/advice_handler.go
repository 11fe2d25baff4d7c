// internal/handlers/advice_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service"
	"go_rel_diary/internal/webutil"
)

type AdviceHandler struct {
	service service.AdviceService
	logger  *slog.Logger
}

func NewAdviceHandler(s service.AdviceService, logger *slog.Logger) *AdviceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdviceHandler{
		service: s,
		logger:  logger,
	}
}

// PostAdvice asks the external advisor for an analysis of the recent diary.
// The body is optional; it may carry an extra instruction.
func (h *AdviceHandler) PostAdvice(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAdvice"))

	var req model.AdviceRequest
	if r.ContentLength != 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição está mal formado.", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	}

	advice, err := h.service.GenerateAnalysis(r.Context(), req.ExtraInstruction)
	if err != nil {
		if errors.Is(err, model.ErrAdvisor) {
			logger.Warn("Advisor unavailable", slog.Any("error", err))
		} else {
			logger.Error("Error generating analysis in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Analysis generated successfully", slog.Int("context_records", advice.ContextRecords))
	webutil.RespondWithJSON(w, http.StatusOK, advice, logger)
}
