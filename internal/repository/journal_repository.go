//go:generate mockery --name JournalRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// journalDocument is the storage row: the whole diary serialized as one JSON
// column plus an optimistic-concurrency revision.
type journalDocument struct {
	Name      string         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	Revision  int64          `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (journalDocument) TableName() string {
	return "journal_documents"
}

// JournalRepository loads and saves the diary wholesale. There is no partial
// update: Save always writes the entire document back.
type JournalRepository interface {
	Load(ctx context.Context, db *gorm.DB, name string) (*model.JournalState, error)
	Save(ctx context.Context, db *gorm.DB, name string, state *model.JournalState) error
}

type gormJournalRepository struct{}

func NewGormJournalRepository() JournalRepository {
	return &gormJournalRepository{}
}

// Load returns a default-initialized empty state when no document exists yet;
// a missing document is not an error. Missing top-level keys inside an older
// document are defaulted.
func (r *gormJournalRepository) Load(ctx context.Context, db *gorm.DB, name string) (*model.JournalState, error) {
	logger := middleware.GetLogger(ctx)

	var doc journalDocument
	result := db.WithContext(ctx).Where("name = ?", name).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.NewJournalState(), nil
		}
		logger.Error("Error loading journal document", "error", result.Error, "name", name)
		return nil, fmt.Errorf("gormJournalRepository.Load: %w", model.ErrPersistence)
	}

	state := model.NewJournalState()
	if err := json.Unmarshal(doc.Data, state); err != nil {
		logger.Error("Error unmarshalling journal document", "error", err, "name", name)
		return nil, fmt.Errorf("gormJournalRepository.Load: %w", model.ErrPersistence)
	}
	state.Normalize()
	state.Revision = doc.Revision
	return state, nil
}

// Save writes the whole document back, guarded by the revision read at load
// time. A concurrent writer that committed in between makes the revision
// check miss, and the save fails loudly with ErrConflict instead of silently
// clobbering. The in-memory state is left untouched on any failure so the
// caller can retry.
func (r *gormJournalRepository) Save(ctx context.Context, db *gorm.DB, name string, state *model.JournalState) error {
	logger := middleware.GetLogger(ctx)

	data, err := json.Marshal(state)
	if err != nil {
		logger.Error("Error marshalling journal document", "error", err, "name", name)
		return fmt.Errorf("gormJournalRepository.Save: %w", model.ErrPersistence)
	}

	if state.Revision == 0 {
		doc := journalDocument{Name: name, Data: data, Revision: 1}
		result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&doc)
		if result.Error != nil {
			logger.Error("Error creating journal document", "error", result.Error, "name", name)
			return fmt.Errorf("gormJournalRepository.Save: %w", model.ErrPersistence)
		}
		if result.RowsAffected == 0 {
			// Someone else created the document since we loaded the empty
			// default.
			return model.ErrConflict
		}
		state.Revision = 1
		return nil
	}

	result := db.WithContext(ctx).Model(&journalDocument{}).
		Where("name = ? AND revision = ?", name, state.Revision).
		Updates(map[string]interface{}{
			"data":     datatypes.JSON(data),
			"revision": state.Revision + 1,
		})
	if result.Error != nil {
		logger.Error("Error updating journal document", "error", result.Error, "name", name)
		return fmt.Errorf("gormJournalRepository.Save: %w", model.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return model.ErrConflict
	}
	state.Revision++
	return nil
}
