//go:generate mockery --name RecordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sort"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/repository"

	"gorm.io/gorm"
)

// RecordService drives the daily-record lifecycle:
// Absent -> Draft -> Locked -> (explicit unlock) -> Draft.
type RecordService interface {
	UpsertDraft(ctx context.Context, date string, req *model.UpsertRecordRequest) (*model.DailyRecord, error)
	CommitAndLock(ctx context.Context, date string) (*model.CommitResult, error)
	Unlock(ctx context.Context, date string) (*model.DailyRecord, error)
	ImportMessages(ctx context.Context, date string, req *model.ImportMessagesRequest) (*model.DailyRecord, error)
	GetRecord(ctx context.Context, date string) (*model.DailyRecord, error)
	ListRecords(ctx context.Context) ([]*model.DailyRecord, error)
}

type recordService struct {
	db   *gorm.DB
	repo repository.JournalRepository
	cfg  *config.Config
}

func NewRecordService(db *gorm.DB, repo repository.JournalRepository, cfg *config.Config) RecordService {
	return &recordService{db: db, repo: repo, cfg: cfg}
}

func (s *recordService) document() string {
	return s.cfg.App.DocumentName
}

// UpsertDraft creates or replaces the draft for a date. Allowed only while
// the record is Absent or Draft; a locked record rejects the write untouched.
func (s *recordService) UpsertDraft(ctx context.Context, date string, req *model.UpsertRecordRequest) (*model.DailyRecord, error) {
	logger := middleware.GetLogger(ctx).With("date", date)

	if _, err := model.ParseDate(date); err != nil {
		return nil, model.NewAppError("INVALID_DATE", "A data deve estar no formato AAAA-MM-DD.", "date", model.ErrInvalidInput)
	}
	if req.MoodScore < 1 || req.MoodScore > 10 {
		return nil, model.NewAppError("VALIDATION_ERROR", "A nota de humor deve estar entre 1 e 10.", "nota_humor", model.ErrInvalidInput)
	}
	for _, l := range append(append([]model.LoveLanguage{}, req.LoveLanguagesSelf...), req.LoveLanguagesPartner...) {
		if !l.Valid() {
			return nil, model.NewAppError("VALIDATION_ERROR", "Linguagem do amor desconhecida: "+string(l), "linguagens", model.ErrInvalidInput)
		}
	}

	var saved *model.DailyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		prev := state.RecordAt(date)
		if prev != nil && prev.Locked {
			return model.NewAppError("RECORD_LOCKED", "O registro deste dia está travado.", "date", model.ErrLocked)
		}

		rec := &model.DailyRecord{
			Date:                 date,
			MoodScore:            req.MoodScore,
			ActionsBySelf:        nonNil(req.ActionsBySelf),
			ActionsByPartner:     nonNil(req.ActionsByPartner),
			LoveLanguagesSelf:    req.LoveLanguagesSelf,
			LoveLanguagesPartner: req.LoveLanguagesPartner,
			HadConflict:          req.HadConflict,
			HadIntimacy:          req.HadIntimacy,
			GratitudeNote:        req.GratitudeNote,
			FreeTextSummary:      req.FreeTextSummary,
			AgreementFulfillment: fulfillmentFor(state, req.AgreementFulfillment),
		}
		// The reason only means something when a conflict happened; a stray
		// reason is cleared, not stored.
		if req.HadConflict {
			rec.ConflictReason = req.ConflictReason
		}
		if prev != nil {
			rec.XPAwarded = prev.XPAwarded
			rec.ImportedExcerpt = prev.ImportedExcerpt
		}

		state.Records[date] = rec
		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		saved = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Draft saved")
	return saved, nil
}

// CommitAndLock transitions Draft -> Locked and pays the one-time XP bonus.
// Locking an already-locked record is a no-op that awards nothing, so the
// call is idempotent.
func (s *recordService) CommitAndLock(ctx context.Context, date string) (*model.CommitResult, error) {
	logger := middleware.GetLogger(ctx).With("date", date)

	var result *model.CommitResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		rec := state.RecordAt(date)
		if rec == nil {
			return model.NewAppError("NOT_FOUND", "Nenhum registro para esta data.", "date", model.ErrNotFound)
		}

		level := model.Level(state.XPTotal)
		if rec.Locked {
			result = &model.CommitResult{
				Record:        rec,
				XPTotal:       state.XPTotal,
				PreviousLevel: level,
				Level:         level,
			}
			return nil
		}

		delta := model.CommitXP(rec)
		rec.Locked = true
		rec.XPAwarded = true
		state.XPTotal += delta
		newLevel := model.Level(state.XPTotal)

		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}

		result = &model.CommitResult{
			Record:        rec,
			XPDelta:       delta,
			XPTotal:       state.XPTotal,
			PreviousLevel: level,
			Level:         newLevel,
			LeveledUp:     newLevel > level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Record locked", "xp_delta", result.XPDelta, "leveled_up", result.LeveledUp)
	return result, nil
}

// Unlock transitions Locked -> Draft. No XP movement, no other field changes.
func (s *recordService) Unlock(ctx context.Context, date string) (*model.DailyRecord, error) {
	logger := middleware.GetLogger(ctx).With("date", date)

	var unlocked *model.DailyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		rec := state.RecordAt(date)
		if rec == nil {
			return model.NewAppError("NOT_FOUND", "Nenhum registro para esta data.", "date", model.ErrNotFound)
		}
		if !rec.Locked {
			unlocked = rec
			return nil
		}

		rec.Locked = false
		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		unlocked = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Record unlocked")
	return unlocked, nil
}

// ImportMessages filters pasted chat text down to the lines mentioning the
// record's date and stores them as the record's excerpt. Same lock rules as
// any other edit.
func (s *recordService) ImportMessages(ctx context.Context, date string, req *model.ImportMessagesRequest) (*model.DailyRecord, error) {
	logger := middleware.GetLogger(ctx).With("date", date)

	day, err := model.ParseDate(date)
	if err != nil {
		return nil, model.NewAppError("INVALID_DATE", "A data deve estar no formato AAAA-MM-DD.", "date", model.ErrInvalidInput)
	}

	var updated *model.DailyRecord

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		rec := state.RecordAt(date)
		if rec == nil {
			return model.NewAppError("NOT_FOUND", "Nenhum registro para esta data. Salve um rascunho primeiro.", "date", model.ErrNotFound)
		}
		if rec.Locked {
			return model.NewAppError("RECORD_LOCKED", "O registro deste dia está travado.", "date", model.ErrLocked)
		}

		rec.ImportedExcerpt = model.FilterExcerptForDate(req.Text, day)
		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Messages imported", "excerpt_len", len(updated.ImportedExcerpt))
	return updated, nil
}

func (s *recordService) GetRecord(ctx context.Context, date string) (*model.DailyRecord, error) {
	state, err := s.repo.Load(ctx, s.db, s.document())
	if err != nil {
		return nil, err
	}
	rec := state.RecordAt(date)
	if rec == nil {
		return nil, model.NewAppError("NOT_FOUND", "Nenhum registro para esta data.", "date", model.ErrNotFound)
	}
	return rec, nil
}

func (s *recordService) ListRecords(ctx context.Context) ([]*model.DailyRecord, error) {
	state, err := s.repo.Load(ctx, s.db, s.document())
	if err != nil {
		return nil, err
	}
	records := make([]*model.DailyRecord, 0, len(state.Records))
	for _, rec := range state.Records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

// fulfillmentFor completes the client's map with a false entry for every
// active monitor-daily agreement it omitted. Keys for agreements that no
// longer exist are kept as-is; orphans are harmless historical data.
func fulfillmentFor(state *model.JournalState, provided map[string]bool) map[string]bool {
	out := make(map[string]bool, len(provided))
	for k, v := range provided {
		out[k] = v
	}
	for _, a := range state.ActiveAgreements(true) {
		if _, ok := out[a.ShortName]; !ok {
			out[a.ShortName] = false
		}
	}
	return out
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
