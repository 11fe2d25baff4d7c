//go:generate mockery --name InsightsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sort"
	"time"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/repository"

	"gorm.io/gorm"
)

// maxHeatmapDays bounds a single heatmap request to a bit over a year.
const maxHeatmapDays = 400

// InsightsService exposes the derived views. Every method loads the state
// and delegates to the pure aggregation functions in model; nothing here
// mutates the diary.
type InsightsService interface {
	WeeklyGoals(ctx context.Context, weekStart time.Time) ([]model.GoalProgress, error)
	Heatmap(ctx context.Context, metric string, from, to time.Time) (map[string]model.ColorCategory, error)
	CurrentStreak(ctx context.Context, asOf time.Time) (int, error)
	TimeCapsule(ctx context.Context, reference time.Time, offsets []int) ([]model.TimeCapsuleEntry, error)
	Achievements(ctx context.Context, asOf time.Time) ([]model.Achievement, error)
	Summary(ctx context.Context, asOf time.Time) (*model.JournalSummary, error)
}

type insightsService struct {
	db   *gorm.DB
	repo repository.JournalRepository
	cfg  *config.Config
}

func NewInsightsService(db *gorm.DB, repo repository.JournalRepository, cfg *config.Config) InsightsService {
	return &insightsService{db: db, repo: repo, cfg: cfg}
}

func (s *insightsService) load(ctx context.Context) (*model.JournalState, error) {
	return s.repo.Load(ctx, s.db, s.cfg.App.DocumentName)
}

func (s *insightsService) WeeklyGoals(ctx context.Context, weekStart time.Time) ([]model.GoalProgress, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(state.Goals))
	for name := range state.Goals {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]model.GoalProgress, 0, len(names))
	for _, name := range names {
		count, target := model.WeeklyGoalProgress(state, name, weekStart)
		out = append(out, model.GoalProgress{Goal: name, Count: count, Target: target})
	}
	return out, nil
}

// Heatmap classifies every day in [from, to]. Total: days without a record
// come back as "empty", never as a hole in the map.
func (s *insightsService) Heatmap(ctx context.Context, metric string, from, to time.Time) (map[string]model.ColorCategory, error) {
	m, err := model.ParseMetric(metric)
	if err != nil {
		return nil, model.NewAppError("INVALID_METRIC", "Métrica desconhecida: "+metric, "metric", model.ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, model.NewAppError("INVALID_RANGE", "O fim do período é anterior ao início.", "to", model.ErrInvalidInput)
	}
	if int(to.Sub(from).Hours()/24) > maxHeatmapDays {
		return nil, model.NewAppError("INVALID_RANGE", "Período longo demais para um mapa de calor.", "to", model.ErrInvalidInput)
	}

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]model.ColorCategory)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(model.DateLayout)
		out[key] = model.HeatmapColor(state, key, m)
	}
	return out, nil
}

func (s *insightsService) CurrentStreak(ctx context.Context, asOf time.Time) (int, error) {
	state, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return model.CurrentStreak(state, asOf), nil
}

func (s *insightsService) TimeCapsule(ctx context.Context, reference time.Time, offsets []int) ([]model.TimeCapsuleEntry, error) {
	for _, off := range offsets {
		if off < 0 {
			return nil, model.NewAppError("INVALID_OFFSET", "Os deslocamentos devem ser não negativos.", "offsets", model.ErrInvalidInput)
		}
	}

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	byOffset := model.TimeCapsule(state, reference, offsets)
	out := make([]model.TimeCapsuleEntry, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, model.TimeCapsuleEntry{
			OffsetDays: off,
			Date:       reference.AddDate(0, 0, -off).Format(model.DateLayout),
			Record:     byOffset[off],
		})
	}
	return out, nil
}

func (s *insightsService) Achievements(ctx context.Context, asOf time.Time) ([]model.Achievement, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return model.EvaluateAchievements(state, asOf), nil
}

func (s *insightsService) Summary(ctx context.Context, asOf time.Time) (*model.JournalSummary, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &model.JournalSummary{
		TotalRecords:  len(state.Records),
		XPTotal:       state.XPTotal,
		Level:         model.Level(state.XPTotal),
		LevelProgress: model.ProgressToNextLevel(state.XPTotal),
		CurrentStreak: model.CurrentStreak(state, asOf),
		DaysTogether:  state.DaysTogether(asOf),
	}, nil
}
