// internal/handlers/insights_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service"
	"go_rel_diary/internal/webutil"
)

type InsightsHandler struct {
	service service.InsightsService
	logger  *slog.Logger
}

func NewInsightsHandler(s service.InsightsService, logger *slog.Logger) *InsightsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsHandler{
		service: s,
		logger:  logger,
	}
}

// queryDate parses a YYYY-MM-DD query parameter, falling back to today when
// absent.
func queryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := model.ParseDate(raw)
	if err != nil {
		return time.Time{}, model.NewAppError("INVALID_QUERY_PARAM", "O parâmetro "+name+" deve estar no formato AAAA-MM-DD.", name, model.ErrInvalidInput)
	}
	return t, nil
}

// GetWeeklyGoals reports each goal's progress for the week starting at
// ?week_start.
func (h *InsightsHandler) GetWeeklyGoals(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeeklyGoals"))

	weekStart, err := queryDate(r, "week_start")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.WeeklyGoals(r.Context(), weekStart)
	if err != nil {
		logger.Error("Error computing weekly goals", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if progress == nil {
		progress = []model.GoalProgress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// GetHeatmap classifies every day in ?from..?to for ?metric.
func (h *InsightsHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHeatmap"))

	metric := r.URL.Query().Get("metric")
	from, err := queryDate(r, "from")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	colors, err := h.service.Heatmap(r.Context(), metric, from, to)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, colors, logger)
}

// GetStreak reports the consecutive-days streak as of ?as_of.
func (h *InsightsHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStreak"))

	asOf, err := queryDate(r, "as_of")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	streak, err := h.service.CurrentStreak(r.Context(), asOf)
	if err != nil {
		logger.Error("Error computing streak", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]int{"sequencia": streak}, logger)
}

// GetTimeCapsule looks up the records at the exact ?offsets (CSV of day
// counts) before ?reference.
func (h *InsightsHandler) GetTimeCapsule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTimeCapsule"))

	reference, err := queryDate(r, "reference")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	offsets := []int{30, 90, 365}
	if raw := r.URL.Query().Get("offsets"); raw != "" {
		offsets = offsets[:0]
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				appErr := model.NewAppError("INVALID_QUERY_PARAM", "offsets deve ser uma lista de inteiros separados por vírgula.", "offsets", model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}
			offsets = append(offsets, n)
		}
	}

	entries, err := h.service.TimeCapsule(r.Context(), reference, offsets)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetAchievements evaluates the fixed achievement set.
func (h *InsightsHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAchievements"))

	asOf, err := queryDate(r, "as_of")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	achievements, err := h.service.Achievements(r.Context(), asOf)
	if err != nil {
		logger.Error("Error evaluating achievements", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, achievements, logger)
}

// GetSummary returns the dashboard roll-up.
func (h *InsightsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSummary"))

	asOf, err := queryDate(r, "as_of")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	summary, err := h.service.Summary(r.Context(), asOf)
	if err != nil {
		logger.Error("Error computing summary", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
