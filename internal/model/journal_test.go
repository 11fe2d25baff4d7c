// internal/model/journal_test.go
package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJournalState(t *testing.T) {
	s := NewJournalState()
	assert.NotNil(t, s.Records)
	assert.NotNil(t, s.Agreements)
	assert.NotNil(t, s.Goals)
	assert.NotNil(t, s.Config)
	assert.NotNil(t, s.Vocabulary.SelfOptions)
	assert.NotNil(t, s.Vocabulary.PartnerOptions)
	assert.Equal(t, 0, s.XPTotal)
}

func TestJournalState_Normalize(t *testing.T) {
	t.Run("partial document from an older edition", func(t *testing.T) {
		// Older files carried only the records section.
		var s JournalState
		require.NoError(t, json.Unmarshal([]byte(`{"registros":{"2026-03-01":{"nota_humor":7}}}`), &s))
		s.Normalize()

		assert.NotNil(t, s.Goals)
		assert.NotNil(t, s.Config)
		assert.NotNil(t, s.Agreements)
		rec := s.RecordAt("2026-03-01")
		require.NotNil(t, rec)
		assert.Equal(t, "2026-03-01", rec.Date, "date backfilled from the map key")
	})

	t.Run("nil record entries are dropped", func(t *testing.T) {
		s := NewJournalState()
		s.Records["2026-03-01"] = nil
		s.Records["2026-03-02"] = &DailyRecord{MoodScore: 5}
		s.Normalize()

		assert.Nil(t, s.RecordAt("2026-03-01"))
		assert.Len(t, s.Records, 1)
	})
}

func TestJournalState_SortedDates(t *testing.T) {
	s := NewJournalState()
	for _, d := range []string{"2026-03-05", "2026-01-10", "2026-02-20"} {
		s.Records[d] = &DailyRecord{Date: d}
	}
	assert.Equal(t, []string{"2026-01-10", "2026-02-20", "2026-03-05"}, s.SortedDates())
}

func TestJournalState_Agreements(t *testing.T) {
	s := NewJournalState()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Agreements = append(s.Agreements,
		NewAgreement(&CreateAgreementRequest{Title: "Lavar a louça juntos", ShortName: "loucas", MonitorDaily: true}, now),
		NewAgreement(&CreateAgreementRequest{Title: "Cinema mensal", ShortName: "cinema", MonitorDaily: false}, now),
	)

	a, ok := s.FindAgreement("loucas")
	assert.True(t, ok)
	assert.Equal(t, "Lavar a louça juntos", a.Title)
	assert.Equal(t, "2026-03-01", a.CreatedDate)

	_, ok = s.FindAgreement("inexistente")
	assert.False(t, ok)

	assert.Len(t, s.ActiveAgreements(false), 2)
	daily := s.ActiveAgreements(true)
	require.Len(t, daily, 1)
	assert.Equal(t, "loucas", daily[0].ShortName)
}

func TestJournalState_DaysTogether(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start string
		want  int
	}{
		{name: "unset start date", start: "", want: 0},
		{name: "malformed start date", start: "10/03/2020", want: 0},
		{name: "started today counts one day", start: "2026-03-10", want: 1},
		{name: "started nine days ago", start: "2026-03-01", want: 10},
		{name: "start in the future", start: "2026-04-01", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewJournalState()
			s.RelationshipStartDate = tt.start
			assert.Equal(t, tt.want, s.DaysTogether(today))
		})
	}
}
