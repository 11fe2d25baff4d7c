// internal/model/journal.go
package model

import (
	"sort"
	"time"
)

// VocabularyOptions holds the editable tag lists offered by the entry form.
// Users can extend them with ad-hoc tags through an explicit settings call.
type VocabularyOptions struct {
	SelfOptions    []string `json:"opcoesEuFiz"`
	PartnerOptions []string `json:"opcoesElaFez"`
}

// JournalState is the root aggregate: the whole diary document, loaded and
// saved wholesale. Top-level JSON keys match the persisted schema used by
// every edition of the app.
type JournalState struct {
	Records               map[string]*DailyRecord `json:"registros"`
	Agreements            []Agreement             `json:"acordos_mestres"`
	Goals                 map[string]int          `json:"metas"`
	Vocabulary            VocabularyOptions       `json:"configuracoes"`
	XPTotal               int                     `json:"xp"`
	Config                map[string]any          `json:"config"`
	RelationshipStartDate string                  `json:"data_inicio,omitempty"`

	// Revision is the optimistic-concurrency tag carried from the storage
	// row. Not part of the document itself.
	Revision int64 `json:"-"`
}

// NewJournalState returns an empty, fully initialized state. Loading a
// nonexistent document yields this, never an error.
func NewJournalState() *JournalState {
	s := &JournalState{}
	s.Normalize()
	return s
}

// Normalize fills in whatever top-level sections are missing from an older
// or partial document. Load must never fail because a key is absent.
func (s *JournalState) Normalize() {
	if s.Records == nil {
		s.Records = make(map[string]*DailyRecord)
	}
	if s.Agreements == nil {
		s.Agreements = []Agreement{}
	}
	if s.Goals == nil {
		s.Goals = make(map[string]int)
	}
	if s.Config == nil {
		s.Config = make(map[string]any)
	}
	if s.Vocabulary.SelfOptions == nil {
		s.Vocabulary.SelfOptions = []string{}
	}
	if s.Vocabulary.PartnerOptions == nil {
		s.Vocabulary.PartnerOptions = []string{}
	}
	for date, rec := range s.Records {
		if rec == nil {
			delete(s.Records, date)
			continue
		}
		if rec.Date == "" {
			rec.Date = date
		}
	}
}

// RecordAt returns the record for a date key, or nil.
func (s *JournalState) RecordAt(date string) *DailyRecord {
	return s.Records[date]
}

// SortedDates returns every recorded date key in ascending order.
func (s *JournalState) SortedDates() []string {
	dates := make([]string, 0, len(s.Records))
	for d := range s.Records {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// FindAgreement looks up an active agreement by short name.
func (s *JournalState) FindAgreement(shortName string) (Agreement, bool) {
	for _, a := range s.Agreements {
		if a.ShortName == shortName {
			return a, true
		}
	}
	return Agreement{}, false
}

// ActiveAgreements returns the live agreement list in creation order,
// optionally restricted to the ones monitored daily.
func (s *JournalState) ActiveAgreements(monitorDailyOnly bool) []Agreement {
	out := make([]Agreement, 0, len(s.Agreements))
	for _, a := range s.Agreements {
		if monitorDailyOnly && !a.MonitorDaily {
			continue
		}
		out = append(out, a)
	}
	return out
}

// DaysTogether counts whole days from the relationship start date up to and
// including today. Zero when the start date is unset or malformed.
func (s *JournalState) DaysTogether(today time.Time) int {
	if s.RelationshipStartDate == "" {
		return 0
	}
	start, err := time.Parse(DateLayout, s.RelationshipStartDate)
	if err != nil {
		return 0
	}
	days := int(today.Truncate(24*time.Hour).Sub(start)/(24*time.Hour)) + 1
	if days < 0 {
		return 0
	}
	return days
}
