package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/golder/bank_statements_api/internal/utils/accounting"
)

// journalService serves public journal balances and back-office visibility changes.
type journalService struct {
	BaseService
	journalRepo   portsrepo.JournalRepositoryFacade
	statementRepo portsrepo.StatementReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, statementRepo portsrepo.StatementReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:   journalRepo,
		statementRepo: statementRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// ListBalances returns the latest statement of every public journal with a statement, plus their total.
func (s *journalService) ListBalances(ctx context.Context) (*domain.BalanceReport, error) {
	latest, err := s.statementRepo.FindLatestStatementsForPublicJournals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load latest statements")
		return nil, err
	}

	statements := make([]domain.Statement, len(latest))
	for i, summary := range latest {
		statements[i] = summary.Statement
	}

	return &domain.BalanceReport{
		TotalBalance: accounting.TotalBalance(statements),
		Balances:     latest,
	}, nil
}

// ListPublicJournals returns every public journal with its latest statement, if any.
func (s *journalService) ListPublicJournals(ctx context.Context) ([]domain.JournalOverview, error) {
	journals, err := s.journalRepo.ListPublicJournals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list public journals")
		return nil, err
	}
	latest, err := s.statementRepo.FindLatestStatementsForPublicJournals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load latest statements")
		return nil, err
	}

	byJournal := make(map[int64]domain.Statement, len(latest))
	for _, summary := range latest {
		byJournal[summary.JournalID] = summary.Statement
	}

	overviews := make([]domain.JournalOverview, len(journals))
	for i, j := range journals {
		overviews[i] = domain.JournalOverview{Journal: j}
		if stmt, ok := byJournal[j.JournalID]; ok {
			overviews[i].Latest = &stmt
		}
	}
	return overviews, nil
}

// normalizeSlug lowercases and trims a requested slug; blank means no slug.
func normalizeSlug(slug *string) *string {
	if slug == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*slug))
	if v == "" {
		return nil
	}
	return &v
}

// SetVisibility toggles the public flag of a journal and sets its slug.
func (s *journalService) SetVisibility(ctx context.Context, journalID int64, req dto.SetJournalVisibilityRequest, userID string) (*domain.Journal, error) {
	if req.PublicCanView == nil {
		return nil, fmt.Errorf("%w: public_can_view is required", apperrors.ErrValidation)
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	slug := normalizeSlug(req.PublicSlug)
	if slug == nil {
		slug = journal.PublicSlug
	}
	if slug != nil && !domain.IsValidSlug(*slug) {
		return nil, fmt.Errorf("%w: invalid or reserved public slug %q", apperrors.ErrValidation, *slug)
	}
	if *req.PublicCanView && slug == nil {
		return nil, fmt.Errorf("%w: a public journal needs a public slug", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateJournalVisibility(ctx, journalID, *req.PublicCanView, slug, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update journal visibility", slog.Int64("journal_id", journalID))
		return nil, err
	}

	journal.PublicCanView = *req.PublicCanView
	journal.PublicSlug = slug
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = userID

	s.LogInfo(ctx, "Journal visibility updated",
		slog.Int64("journal_id", journalID),
		slog.Bool("public_can_view", journal.PublicCanView),
		slog.String("public_slug", journal.Slug()))
	return journal, nil
}
