// internal/model/record.go
package model

import (
	"strings"
	"time"
)

// DateLayout is the canonical key format for records (ISO calendar date).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

// LoveLanguage is the fixed five-value enumeration.
type LoveLanguage string

const (
	ActsOfService      LoveLanguage = "acts_of_service"
	WordsOfAffirmation LoveLanguage = "words_of_affirmation"
	QualityTime        LoveLanguage = "quality_time"
	PhysicalTouch      LoveLanguage = "physical_touch"
	Gifts              LoveLanguage = "gifts"
)

// LoveLanguages lists every valid value, in presentation order.
var LoveLanguages = []LoveLanguage{
	ActsOfService, WordsOfAffirmation, QualityTime, PhysicalTouch, Gifts,
}

func (l LoveLanguage) Valid() bool {
	for _, v := range LoveLanguages {
		if l == v {
			return true
		}
	}
	return false
}

// DailyRecord is one day's structured diary entry. The date is the natural
// key; JSON field names follow the persisted document (Portuguese, as written
// by every prior edition of the diary).
type DailyRecord struct {
	Date                 string          `json:"data"`
	MoodScore            int             `json:"nota_humor"`
	ActionsBySelf        []string        `json:"eu_fiz"`
	ActionsByPartner     []string        `json:"ela_fez"`
	LoveLanguagesSelf    []LoveLanguage  `json:"linguagens_eu,omitempty"`
	LoveLanguagesPartner []LoveLanguage  `json:"linguagens_ela,omitempty"`
	HadConflict          bool            `json:"discussao"`
	ConflictReason       string          `json:"motivo_disc,omitempty"`
	HadIntimacy          bool            `json:"intimidade"`
	GratitudeNote        string          `json:"gratidao,omitempty"`
	FreeTextSummary      string          `json:"resumo,omitempty"`
	AgreementFulfillment map[string]bool `json:"acordos_cumpridos,omitempty"`
	ImportedExcerpt      string          `json:"trecho_mensagens,omitempty"`
	Locked               bool            `json:"travado"`

	// XPAwarded records that the one-time commit bonus has been paid out for
	// this date. Unlock/re-lock cycles never award again.
	XPAwarded bool `json:"xp_concedido"`
}

// UpsertRecordRequest is the draft-save DTO.
type UpsertRecordRequest struct {
	MoodScore            int             `json:"nota_humor" validate:"required,min=1,max=10"`
	ActionsBySelf        []string        `json:"eu_fiz"`
	ActionsByPartner     []string        `json:"ela_fez"`
	LoveLanguagesSelf    []LoveLanguage  `json:"linguagens_eu"`
	LoveLanguagesPartner []LoveLanguage  `json:"linguagens_ela"`
	HadConflict          bool            `json:"discussao"`
	ConflictReason       string          `json:"motivo_disc"`
	HadIntimacy          bool            `json:"intimidade"`
	GratitudeNote        string          `json:"gratidao"`
	FreeTextSummary      string          `json:"resumo"`
	AgreementFulfillment map[string]bool `json:"acordos_cumpridos"`
}

// ImportMessagesRequest carries pasted external chat text whose dated lines
// are filtered into the record's excerpt.
type ImportMessagesRequest struct {
	Text string `json:"texto" validate:"required"`
}

// FilterExcerptForDate keeps only the lines of pasted chat text that mention
// the given date, in any of the formats people actually paste (ISO,
// dd/mm/yyyy, dd/mm). The surviving lines become the record's excerpt.
func FilterExcerptForDate(text string, date time.Time) string {
	wanted := []string{
		date.Format(DateLayout),
		date.Format("02/01/2006"),
		date.Format("02/01"),
	}
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, w := range wanted {
			if strings.Contains(trimmed, w) {
				kept = append(kept, trimmed)
				break
			}
		}
	}
	return strings.Join(kept, "\n")
}

// AdviceRequest asks the advisor for an analysis, optionally steering it.
type AdviceRequest struct {
	ExtraInstruction string `json:"instrucao,omitempty"`
}

// AdviceResponse carries the advisor's text plus how many records fed it.
type AdviceResponse struct {
	Analysis       string `json:"analise"`
	ContextRecords int    `json:"registros_considerados"`
}

// CommitResult is the commitAndLock response: the locked record plus the XP
// movement, so the client can surface a level-up without extra round trips.
type CommitResult struct {
	Record        *DailyRecord `json:"registro"`
	XPDelta       int          `json:"xp_ganho"`
	XPTotal       int          `json:"xp_total"`
	PreviousLevel int          `json:"nivel_anterior"`
	Level         int          `json:"nivel"`
	LeveledUp     bool         `json:"subiu_nivel"`
}
