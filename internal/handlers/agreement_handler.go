// internal/handlers/agreement_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service"
	"go_rel_diary/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type AgreementHandler struct {
	service service.AgreementService
	logger  *slog.Logger
}

func NewAgreementHandler(s service.AgreementService, logger *slog.Logger) *AgreementHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgreementHandler{
		service: s,
		logger:  logger,
	}
}

// PostAgreement creates a named recurring commitment.
func (h *AgreementHandler) PostAgreement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAgreement"))

	var req model.CreateAgreementRequest
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

	agreement, err := h.service.CreateAgreement(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Agreement short name already exists", slog.String("short_name", req.ShortName))
		} else {
			logger.Error("Error creating agreement in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Agreement created successfully", slog.String("short_name", agreement.ShortName))
	webutil.RespondWithJSON(w, http.StatusCreated, agreement, logger)
}

// GetAgreements lists active agreements; ?monitor_daily=true narrows to the
// ones presented as daily checkboxes.
func (h *AgreementHandler) GetAgreements(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAgreements"))

	monitorDailyOnly := r.URL.Query().Get("monitor_daily") == "true"

	agreements, err := h.service.ListActive(r.Context(), monitorDailyOnly)
	if err != nil {
		logger.Error("Error listing agreements in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if agreements == nil {
		agreements = []model.Agreement{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, agreements, logger)
}

// DeleteAgreement removes an agreement from the active list. Historical
// fulfillment data is untouched.
func (h *AgreementHandler) DeleteAgreement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAgreement"))

	shortName := chi.URLParam(r, "short_name")
	logger = logger.With(slog.String("short_name", shortName))

	if err := h.service.DeleteAgreement(r.Context(), shortName); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Agreement deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// GetFulfillmentRate reports how often an agreement was kept across all
// recorded days.
func (h *AgreementHandler) GetFulfillmentRate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFulfillmentRate"))

	shortName := chi.URLParam(r, "short_name")
	logger = logger.With(slog.String("short_name", shortName))

	rate, err := h.service.FulfillmentRate(r.Context(), shortName)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, rate, logger)
}
