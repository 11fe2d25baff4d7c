//go:generate mockery --name AgreementService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/repository"

	"gorm.io/gorm"
)

// AgreementService manages the named recurring commitments ("combinados").
type AgreementService interface {
	CreateAgreement(ctx context.Context, req *model.CreateAgreementRequest) (*model.Agreement, error)
	DeleteAgreement(ctx context.Context, shortName string) error
	ListActive(ctx context.Context, monitorDailyOnly bool) ([]model.Agreement, error)
	FulfillmentRate(ctx context.Context, shortName string) (*model.FulfillmentRateResponse, error)
}

type agreementService struct {
	db   *gorm.DB
	repo repository.JournalRepository
	cfg  *config.Config
}

func NewAgreementService(db *gorm.DB, repo repository.JournalRepository, cfg *config.Config) AgreementService {
	return &agreementService{db: db, repo: repo, cfg: cfg}
}

func (s *agreementService) document() string {
	return s.cfg.App.DocumentName
}

func (s *agreementService) CreateAgreement(ctx context.Context, req *model.CreateAgreementRequest) (*model.Agreement, error) {
	logger := middleware.GetLogger(ctx).With("short_name", req.ShortName)

	var created *model.Agreement

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		if _, exists := state.FindAgreement(req.ShortName); exists {
			return model.NewAppError("DUPLICATE_AGREEMENT", "Já existe um combinado com este nome curto.", "nome_curto", model.ErrConflict)
		}

		agreement := model.NewAgreement(req, time.Now())
		state.Agreements = append(state.Agreements, agreement)

		if err := s.repo.Save(ctx, tx, s.document(), state); err != nil {
			return err
		}
		created = &agreement
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Agreement created", "agreement_id", created.AgreementID.String())
	return created, nil
}

// DeleteAgreement removes the agreement from the active list only. Historical
// fulfillment entries in old records keep their keys; aggregation ignores
// names that no longer resolve to a live agreement.
func (s *agreementService) DeleteAgreement(ctx context.Context, shortName string) error {
	logger := middleware.GetLogger(ctx).With("short_name", shortName)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.Load(ctx, tx, s.document())
		if err != nil {
			return err
		}

		idx := -1
		for i, a := range state.Agreements {
			if a.ShortName == shortName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.NewAppError("NOT_FOUND", "Combinado não encontrado.", "nome_curto", model.ErrNotFound)
		}

		state.Agreements = append(state.Agreements[:idx], state.Agreements[idx+1:]...)
		return s.repo.Save(ctx, tx, s.document(), state)
	})
	if err != nil {
		return err
	}

	logger.Info("Agreement deleted")
	return nil
}

func (s *agreementService) ListActive(ctx context.Context, monitorDailyOnly bool) ([]model.Agreement, error) {
	state, err := s.repo.Load(ctx, s.db, s.document())
	if err != nil {
		return nil, err
	}
	return state.ActiveAgreements(monitorDailyOnly), nil
}

func (s *agreementService) FulfillmentRate(ctx context.Context, shortName string) (*model.FulfillmentRateResponse, error) {
	state, err := s.repo.Load(ctx, s.db, s.document())
	if err != nil {
		return nil, err
	}
	if _, exists := state.FindAgreement(shortName); !exists {
		return nil, model.NewAppError("NOT_FOUND", "Combinado não encontrado.", "nome_curto", model.ErrNotFound)
	}

	fulfilled, total := model.AgreementFulfillmentRate(state, shortName)
	resp := &model.FulfillmentRateResponse{
		ShortName:         shortName,
		FulfilledCount:    fulfilled,
		TotalRecordedDays: total,
	}
	if total > 0 {
		resp.Rate = float64(fulfilled) / float64(total)
	}
	return resp, nil
}
