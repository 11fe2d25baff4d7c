// internal/handlers/settings_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service"
	"go_rel_diary/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(s service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{
		service: s,
		logger:  logger,
	}
}

func (h *SettingsHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetGoals"))

	goals, err := h.service.GetGoals(r.Context())
	if err != nil {
		logger.Error("Error getting goals in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, goals, logger)
}

// PutGoals replaces the weekly goal targets.
func (h *SettingsHandler) PutGoals(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutGoals"))

	var req map[string]int
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição está mal formado.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	goals, err := h.service.SetGoals(r.Context(), req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goals replaced successfully", slog.Int("count", len(goals)))
	webutil.RespondWithJSON(w, http.StatusOK, goals, logger)
}

func (h *SettingsHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	vocab, err := h.service.GetVocabulary(r.Context())
	if err != nil {
		logger.Error("Error getting vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

type addOptionRequest struct {
	Option string `json:"opcao" validate:"required,min=1,max=60"`
}

// PostVocabularyOption appends a tag to the {list} vocabulary (self|partner).
func (h *SettingsHandler) PostVocabularyOption(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocabularyOption"))

	list := chi.URLParam(r, "list")
	logger = logger.With(slog.String("list", list))

	var req addOptionRequest
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

	vocab, err := h.service.AddVocabularyOption(r.Context(), list, req.Option)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary option added", slog.String("option", req.Option))
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// PutConfig merges free-form app settings into the document.
func (h *SettingsHandler) PutConfig(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutConfig"))

	var req map[string]any
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição está mal formado.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	cfg, err := h.service.UpdateConfig(r.Context(), req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, cfg, logger)
}

type relationshipStartRequest struct {
	Date string `json:"data" validate:"required"`
}

// PutRelationshipStart sets the date behind the "days together" statistic.
func (h *SettingsHandler) PutRelationshipStart(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutRelationshipStart"))

	var req relationshipStartRequest
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

	if err := h.service.SetRelationshipStart(r.Context(), req.Date); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
