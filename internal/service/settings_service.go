//go:generate mockery --name SettingsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/repository"

	"gorm.io/gorm"
)

// Vocabulary list selectors.
const (
	VocabularySelf    = "self"
	VocabularyPartner = "partner"
)

// SettingsService owns the document sections that are configuration rather
// than diary data: weekly goal targets, the editable tag vocabularies, the
// free-form app config and the relationship start date. Growing a vocabulary
// is an explicit call here, not a side effect of saving a record.
type SettingsService interface {
	GetGoals(ctx context.Context) (map[string]int, error)
	SetGoals(ctx context.Context, goals map[string]int) (map[string]int, error)
	GetVocabulary(ctx context.Context) (*model.VocabularyOptions, error)
	AddVocabularyOption(ctx context.Context, list, option string) (*model.VocabularyOptions, error)
	UpdateConfig(ctx context.Context, entries map[string]any) (map[string]any, error)
	SetRelationshipStart(ctx context.Context, date string) error
}

type settingsService struct {
	db   *gorm.DB
	repo repository.JournalRepository
	cfg  *config.Config
}

func NewSettingsService(db *gorm.DB, repo repository.JournalRepository, cfg *config.Config) SettingsService {
	return &settingsService{db: db, repo: repo, cfg: cfg}
}

func (s *settingsService) document() string {
	return s.cfg.App.DocumentName
}

func (s *settingsService) GetGoals(ctx context.Context) (map[string]int, error) {
	state, err := s.repo.Load(ctx, s.db, s.document())
	if err != nil {
		return nil, err
	}
	return state.Goals, nil
}

// SetGoals replaces the whole goal map.
func (s *settingsService) SetGoals(ctx context.Context, goals map[string]int) (map[string]int, error) {
	for name, target := range goals {
		if strings.TrimSpace(name) == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", "Meta sem nome.", "metas", model.ErrInvalidInput)
		}
		if target < 0 {
			return nil, model.NewAppError("VALIDATION_ERROR", "O alvo da meta deve ser não negativo.", "metas", model.ErrInvalidInput)
		}
	}

	var saved map[string]int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}
		state.Goals = goals
		if state.Goals == nil {
			state.Goals = map[string]int{}
		}
		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		saved = state.Goals
		return nil
	})
	if err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).Info("Goals replaced", "count", len(saved))
	return saved, nil
}

func (s *settingsService) GetVocabulary(ctx context.Context) (*model.VocabularyOptions, error) {
	state, err := s.repo.Load(ctx, s.db, s.document())
	if err != nil {
		return nil, err
	}
	return &state.Vocabulary, nil
}

// AddVocabularyOption appends a tag to one of the selectable lists,
// ignoring case-insensitive duplicates.
func (s *settingsService) AddVocabularyOption(ctx context.Context, list, option string) (*model.VocabularyOptions, error) {
	option = strings.TrimSpace(option)
	if option == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "A opção não pode ser vazia.", "opcao", model.ErrInvalidInput)
	}
	if list != VocabularySelf && list != VocabularyPartner {
		return nil, model.NewAppError("VALIDATION_ERROR", "Lista desconhecida: "+list, "list", model.ErrInvalidInput)
	}

	var vocab *model.VocabularyOptions
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		target := &state.Vocabulary.SelfOptions
		if list == VocabularyPartner {
			target = &state.Vocabulary.PartnerOptions
		}
		for _, existing := range *target {
			if strings.EqualFold(existing, option) {
				vocab = &state.Vocabulary
				return nil
			}
		}
		*target = append(*target, option)

		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		vocab = &state.Vocabulary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vocab, nil
}

// UpdateConfig merges the given entries into the free-form config section
// (advisor model choice, theme, home screen and the like).
func (s *settingsService) UpdateConfig(ctx context.Context, entries map[string]any) (map[string]any, error) {
	var saved map[string]any
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}
		for k, v := range entries {
			if v == nil {
				delete(state.Config, k)
				continue
			}
			state.Config[k] = v
		}
		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		saved = state.Config
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *settingsService) SetRelationshipStart(ctx context.Context, date string) error {
	if _, err := model.ParseDate(date); err != nil {
		return model.NewAppError("INVALID_DATE", "A data deve estar no formato AAAA-MM-DD.", "date", model.ErrInvalidInput)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}
		state.RelationshipStartDate = date
		return s.repo.Save(ctx, tx, s.document(), state)
	})
}
