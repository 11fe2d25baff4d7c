// internal/model/insights.go
//
// Pure aggregation over JournalState. Nothing here mutates state or touches
// I/O; handlers render the returned categories/counts however they like.
package model

import (
	"strings"
	"time"
)

// ColorCategory is the heatmap classification for one day and metric.
type ColorCategory string

const (
	ColorEmpty ColorCategory = "empty"
	ColorHigh  ColorCategory = "high"
	ColorMid   ColorCategory = "mid"
	ColorLow   ColorCategory = "low"
	ColorOn    ColorCategory = "on"
	ColorOff   ColorCategory = "off"
)

// MetricKind selects which record field a heatmap reads.
type MetricKind string

const (
	MetricMood         MetricKind = "mood"
	MetricConflict     MetricKind = "conflict"
	MetricIntimacy     MetricKind = "intimacy"
	MetricLoveLanguage MetricKind = "love_language"
)

// Metric is a parsed heatmap metric selector.
type Metric struct {
	Kind     MetricKind
	Language LoveLanguage // set when Kind == MetricLoveLanguage
}

// ParseMetric parses "mood", "conflict", "intimacy" or
// "love_language:<code>".
func ParseMetric(s string) (Metric, error) {
	switch MetricKind(s) {
	case MetricMood, MetricConflict, MetricIntimacy:
		return Metric{Kind: MetricKind(s)}, nil
	}
	if code, ok := strings.CutPrefix(s, string(MetricLoveLanguage)+":"); ok {
		lang := LoveLanguage(code)
		if lang.Valid() {
			return Metric{Kind: MetricLoveLanguage, Language: lang}, nil
		}
	}
	return Metric{}, ErrInvalidInput
}

// HeatmapColor classifies one calendar date for a metric. Total over any
// date: a missing record is ColorEmpty, never an error.
func HeatmapColor(s *JournalState, date string, m Metric) ColorCategory {
	rec := s.RecordAt(date)
	if rec == nil {
		return ColorEmpty
	}
	switch m.Kind {
	case MetricMood:
		switch {
		case rec.MoodScore >= 8:
			return ColorHigh
		case rec.MoodScore >= 5:
			return ColorMid
		default:
			return ColorLow
		}
	case MetricConflict:
		return onOff(rec.HadConflict)
	case MetricIntimacy:
		return onOff(rec.HadIntimacy)
	case MetricLoveLanguage:
		for _, l := range rec.LoveLanguagesSelf {
			if l == m.Language {
				return ColorOn
			}
		}
		for _, l := range rec.LoveLanguagesPartner {
			if l == m.Language {
				return ColorOn
			}
		}
		return ColorOff
	}
	return ColorEmpty
}

func onOff(b bool) ColorCategory {
	if b {
		return ColorOn
	}
	return ColorOff
}

// WeeklyGoalProgress counts, over the 7 days starting at weekStart, the
// records whose own-actions tags match the goal name. Returns the count and
// the configured target (0 when the goal is unset).
func WeeklyGoalProgress(s *JournalState, goalName string, weekStart time.Time) (count, target int) {
	target = s.Goals[goalName]
	for i := 0; i < 7; i++ {
		rec := s.RecordAt(weekStart.AddDate(0, 0, i).Format(DateLayout))
		if rec == nil {
			continue
		}
		for _, tag := range rec.ActionsBySelf {
			if goalMatchesTag(goalName, tag) {
				count++
				break
			}
		}
	}
	return count, target
}

// goalMatchesTag compares a goal name against an action tag, ignoring case
// and a trailing plural "s" on either side. Goals are usually named in the
// plural ("elogios") while the tags picked on a single day are singular
// ("Elogio"); both spellings refer to the same activity.
func goalMatchesTag(goalName, tag string) bool {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.TrimSuffix(s, "s")
	}
	return norm(goalName) == norm(tag)
}

// CurrentStreak is the length of the maximal consecutive run of recorded
// dates ending at the most recent recorded date on or before asOf. A one-day
// gap breaks the run; no records at all is 0.
func CurrentStreak(s *JournalState, asOf time.Time) int {
	earliest, ok := earliestRecordedDate(s)
	if !ok {
		return 0
	}
	// Walk back to the most recent recorded date; the streak is anchored
	// there, not at asOf itself.
	cursor := asOf
	for s.RecordAt(cursor.Format(DateLayout)) == nil {
		if cursor.Before(earliest) {
			return 0
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for s.RecordAt(cursor.Format(DateLayout)) != nil {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func earliestRecordedDate(s *JournalState) (time.Time, bool) {
	dates := s.SortedDates()
	if len(dates) == 0 {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, dates[0])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TimeCapsule looks up the records at exact day offsets before reference.
// Absent dates map to nil entries; absence is data, not an error.
func TimeCapsule(s *JournalState, reference time.Time, offsets []int) map[int]*DailyRecord {
	out := make(map[int]*DailyRecord, len(offsets))
	for _, off := range offsets {
		out[off] = s.RecordAt(reference.AddDate(0, 0, -off).Format(DateLayout))
	}
	return out
}

// AgreementFulfillmentRate scans every recorded day for the agreement's
// fulfillment flag. The denominator is the full record count, deliberately
// diluting agreements created mid-year (long-standing diary behavior).
func AgreementFulfillmentRate(s *JournalState, shortName string) (fulfilled, totalRecordedDays int) {
	totalRecordedDays = len(s.Records)
	for _, rec := range s.Records {
		if rec.AgreementFulfillment[shortName] {
			fulfilled++
		}
	}
	return fulfilled, totalRecordedDays
}

// GoalProgress is one goal's weekly standing.
type GoalProgress struct {
	Goal   string `json:"meta"`
	Count  int    `json:"contagem"`
	Target int    `json:"alvo"`
}

// TimeCapsuleEntry is one offset lookup. Record is null when that date has
// no entry; absence is part of the answer.
type TimeCapsuleEntry struct {
	OffsetDays int          `json:"dias_atras"`
	Date       string       `json:"data"`
	Record     *DailyRecord `json:"registro"`
}

// JournalSummary is the dashboard roll-up.
type JournalSummary struct {
	TotalRecords  int     `json:"total_registros"`
	XPTotal       int     `json:"xp_total"`
	Level         int     `json:"nivel"`
	LevelProgress float64 `json:"progresso_nivel"`
	CurrentStreak int     `json:"sequencia_atual"`
	DaysTogether  int     `json:"dias_juntos"`
}

// Achievement is a fixed unlockable reported by the insights endpoint.
type Achievement struct {
	Code     string `json:"codigo"`
	Title    string `json:"titulo"`
	Unlocked bool   `json:"desbloqueado"`
}

// EvaluateAchievements checks every known achievement against the state.
// Deterministic for a given state and asOf date.
func EvaluateAchievements(s *JournalState, asOf time.Time) []Achievement {
	streak := CurrentStreak(s, asOf)
	gratitudeDays := 0
	for _, rec := range s.Records {
		if rec.GratitudeNote != "" {
			gratitudeDays++
		}
	}
	return []Achievement{
		{Code: "primeiro_registro", Title: "Primeiro registro", Unlocked: len(s.Records) >= 1},
		{Code: "sequencia_7", Title: "Uma semana seguida", Unlocked: streak >= 7},
		{Code: "sequencia_30", Title: "Um mês seguido", Unlocked: streak >= 30},
		{Code: "gratidao_10", Title: "10 dias de gratidão", Unlocked: gratitudeDays >= 10},
		{Code: "cem_registros", Title: "100 registros", Unlocked: len(s.Records) >= 100},
		{Code: "nivel_5", Title: "Nível 5", Unlocked: Level(s.XPTotal) >= 5},
	}
}
