// internal/model/gamification_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{name: "zero xp is level 1", xp: 0, want: 1},
		{name: "just below first threshold", xp: 99, want: 1},
		{name: "first threshold reached", xp: 100, want: 2},
		{name: "between thresholds", xp: 250, want: 2},
		{name: "second threshold reached", xp: 400, want: 3},
		{name: "level 5 floor", xp: 1600, want: 5},
		{name: "negative xp clamps to level 1", xp: -50, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.xp))
		})
	}
}

func TestLevel_Monotonic(t *testing.T) {
	prev := Level(0)
	for xp := 1; xp <= 5000; xp++ {
		lvl := Level(xp)
		assert.GreaterOrEqual(t, lvl, prev, "level must never decrease (xp=%d)", xp)
		prev = lvl
	}
}

func TestXPThresholdForLevel(t *testing.T) {
	assert.Equal(t, 0, XPThresholdForLevel(0))
	assert.Equal(t, 100, XPThresholdForLevel(1))
	assert.Equal(t, 400, XPThresholdForLevel(2))
	assert.Equal(t, 900, XPThresholdForLevel(3))
	assert.Equal(t, 0, XPThresholdForLevel(-1))

	// The two formulas agree: reaching threshold(n) puts you at level n+1,
	// and one XP less keeps you at level n.
	for n := 1; n <= 10; n++ {
		th := XPThresholdForLevel(n)
		assert.Equal(t, n+1, Level(th))
		assert.Equal(t, n, Level(th-1))
	}
}

func TestProgressToNextLevel(t *testing.T) {
	assert.InDelta(t, 0.0, ProgressToNextLevel(0), 1e-9)
	assert.InDelta(t, 0.5, ProgressToNextLevel(50), 1e-9)
	// Level 2 spans [100, 400): 250 sits halfway.
	assert.InDelta(t, 0.5, ProgressToNextLevel(250), 1e-9)
	assert.InDelta(t, 0.0, ProgressToNextLevel(-10), 1e-9)

	for xp := 0; xp <= 3000; xp += 7 {
		p := ProgressToNextLevel(xp)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestCommitXP(t *testing.T) {
	tests := []struct {
		name string
		rec  *DailyRecord
		want int
	}{
		{
			name: "nil record awards nothing",
			rec:  nil,
			want: 0,
		},
		{
			name: "base bonus only",
			rec:  &DailyRecord{Date: "2026-03-01", MoodScore: 7},
			want: XPFirstCommit,
		},
		{
			name: "gratitude adds bonus",
			rec:  &DailyRecord{Date: "2026-03-01", MoodScore: 9, GratitudeNote: "obrigado pelo café"},
			want: XPFirstCommit + XPGratitude,
		},
		{
			name: "fulfilled agreements add per-item bonus",
			rec: &DailyRecord{
				Date:      "2026-03-01",
				MoodScore: 8,
				AgreementFulfillment: map[string]bool{
					"loucas": true,
					"cinema": true,
					"dieta":  false,
				},
			},
			want: XPFirstCommit + 2*XPPerAgreement,
		},
		{
			name: "everything combined",
			rec: &DailyRecord{
				Date:                 "2026-03-01",
				MoodScore:            10,
				GratitudeNote:        "jantar surpresa",
				AgreementFulfillment: map[string]bool{"loucas": true},
			},
			want: XPFirstCommit + XPGratitude + XPPerAgreement,
		},
		{
			name: "already awarded pays zero",
			rec: &DailyRecord{
				Date:          "2026-03-01",
				MoodScore:     10,
				GratitudeNote: "jantar surpresa",
				XPAwarded:     true,
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommitXP(tt.rec))
		})
	}
}
