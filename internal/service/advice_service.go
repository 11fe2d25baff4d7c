//go:generate mockery --name AdviceService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/repository"

	"gorm.io/gorm"
)

// AdviceService asks the couples-therapy advisor for an analysis of the
// recent diary. Pure read path: an advisor failure never touches state.
type AdviceService interface {
	GenerateAnalysis(ctx context.Context, extraInstruction string) (*model.AdviceResponse, error)
}

type adviceService struct {
	db      *gorm.DB
	repo    repository.JournalRepository
	advisor Advisor
	cfg     *config.Config
}

func NewAdviceService(db *gorm.DB, repo repository.JournalRepository, advisor Advisor, cfg *config.Config) AdviceService {
	return &adviceService{db: db, repo: repo, advisor: advisor, cfg: cfg}
}

func (s *adviceService) GenerateAnalysis(ctx context.Context, extraInstruction string) (*model.AdviceResponse, error) {
	logger := middleware.GetLogger(ctx)

	state, err := s.repo.Load(ctx, s.db, s.cfg.App.DocumentName)
	if err != nil {
		return nil, err
	}

	minRecords := s.cfg.App.AdviceMinRecords
	if len(state.Records) < minRecords {
		return nil, model.NewAppError(
			"INSUFFICIENT_DATA",
			fmt.Sprintf("Registre pelo menos %d dias para uma análise consistente.", minRecords),
			"",
			model.ErrInvalidInput,
		)
	}

	recent := recentRecords(state, s.cfg.App.AdviceContextDays)
	prompt := buildAdvicePrompt(recent, extraInstruction)

	logger.Info("Requesting advisor analysis", "context_records", len(recent))
	analysis, err := s.advisor.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &model.AdviceResponse{
		Analysis:       analysis,
		ContextRecords: len(recent),
	}, nil
}

// recentRecords returns the last n records in ascending date order.
func recentRecords(state *model.JournalState, n int) []*model.DailyRecord {
	dates := state.SortedDates()
	if len(dates) > n {
		dates = dates[len(dates)-n:]
	}
	out := make([]*model.DailyRecord, 0, len(dates))
	for _, d := range dates {
		out = append(out, state.RecordAt(d))
	}
	return out
}

// buildAdvicePrompt renders the couples-therapy prompt the diary has always
// used, with the recent records serialized as JSON lines.
func buildAdvicePrompt(records []*model.DailyRecord, extraInstruction string) string {
	var sb strings.Builder
	sb.WriteString("Você é um especialista em terapia de casais. Analise os seguintes registros diários de um relacionamento:\n\n")
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("\nCom base nos motivos de discussões, na frequência de intimidade e nos atos de carinho, dê:\n")
	sb.WriteString("1. Um resumo da saúde atual do relacionamento.\n")
	sb.WriteString("2. Padrões de conflito recorrentes.\n")
	sb.WriteString("3. Três dicas práticas para tornar o relacionamento mais saudável e feliz.\n")
	if extra := strings.TrimSpace(extraInstruction); extra != "" {
		sb.WriteString("\nInstrução adicional do usuário: ")
		sb.WriteString(extra)
		sb.WriteByte('\n')
	}
	return sb.String()
}
