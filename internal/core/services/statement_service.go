package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// statementService serves public statement views and the back-office write path.
type statementService struct {
	BaseService
	journalRepo   portsrepo.JournalReader
	statementRepo portsrepo.StatementRepositoryWithTx
	attachmentSvc portssvc.AttachmentSvc
	reconciler    portssvc.ReconcilerSvc
}

// NewStatementService creates a new StatementService.
func NewStatementService(
	journalRepo portsrepo.JournalReader,
	statementRepo portsrepo.StatementRepositoryWithTx,
	attachmentSvc portssvc.AttachmentSvc,
	reconciler portssvc.ReconcilerSvc,
) portssvc.StatementSvcFacade {
	return &statementService{
		journalRepo:   journalRepo,
		statementRepo: statementRepo,
		attachmentSvc: attachmentSvc,
		reconciler:    reconciler,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// ListPublicStatements returns all statements of public journals, newest first.
func (s *statementService) ListPublicStatements(ctx context.Context) ([]domain.StatementSummary, error) {
	statements, err := s.statementRepo.ListPublicStatements(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list public statements")
		return nil, err
	}
	return statements, nil
}

// ListStatementsBySlug returns the statements of a public journal with their images.
func (s *statementService) ListStatementsBySlug(ctx context.Context, slug string) ([]domain.StatementView, error) {
	journal, err := s.journalRepo.FindPublicJournalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	statements, err := s.statementRepo.ListStatementsByJournal(ctx, journal.JournalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statements", slog.Int64("journal_id", journal.JournalID))
		return nil, err
	}

	ids := make([]int64, len(statements))
	for i, st := range statements {
		ids[i] = st.StatementID
	}
	links, err := s.attachmentSvc.ImageLinks(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.StatementView, len(statements))
	for i, st := range statements {
		views[i] = domain.StatementView{Statement: st, Attachments: links[st.StatementID]}
	}
	return views, nil
}

// buildView loads lines and image links for a statement already known to be public.
func (s *statementService) buildView(ctx context.Context, statement *domain.Statement) (*domain.StatementView, error) {
	lines, err := s.statementRepo.FindLinesByStatementID(ctx, statement.StatementID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load statement lines", slog.Int64("statement_id", statement.StatementID))
		return nil, err
	}
	links, err := s.attachmentSvc.ImageLinks(ctx, []int64{statement.StatementID})
	if err != nil {
		return nil, err
	}
	return &domain.StatementView{
		Statement:   *statement,
		Lines:       lines,
		Attachments: links[statement.StatementID],
	}, nil
}

// GetStatement returns one statement of the public journal with this slug.
// A statement of another journal is reported as not found.
func (s *statementService) GetStatement(ctx context.Context, slug string, statementID int64) (*domain.StatementView, error) {
	if statementID <= 0 {
		return nil, apperrors.ErrNotFound
	}
	journal, err := s.journalRepo.FindPublicJournalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	statement, err := s.statementRepo.FindStatementByID(ctx, statementID)
	if err != nil {
		return nil, err
	}
	if statement.JournalID != journal.JournalID {
		return nil, apperrors.ErrNotFound
	}
	return s.buildView(ctx, statement)
}

// GetLatestStatement returns the most recent statement of the public journal with this slug.
func (s *statementService) GetLatestStatement(ctx context.Context, slug string) (*domain.StatementView, error) {
	journal, err := s.journalRepo.FindPublicJournalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	statement, err := s.statementRepo.FindLatestStatementByJournal(ctx, journal.JournalID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, statement)
}

// parseStatementRequest converts request dates and keeps lines in the order given.
func parseStatementRequest(req dto.StatementRequest, now time.Time) (time.Time, []domain.StatementLine, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: invalid statement date %q", apperrors.ErrValidation, req.Date)
	}

	lines := make([]domain.StatementLine, len(req.Lines))
	for i, l := range req.Lines {
		lineDate, err := time.Parse(dateLayout, l.Date)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("%w: invalid date %q on line %d", apperrors.ErrValidation, l.Date, i+1)
		}
		lines[i] = domain.StatementLine{
			Date:       lineDate,
			PaymentRef: l.PaymentRef,
			Amount:     l.Amount,
			Sequence:   i + 1,
			CreatedAt:  now,
		}
	}
	return date, lines, nil
}

// resolvePrevious returns the explicit previous statement when requested, otherwise the
// latest statement of the journal ordered before (date, statementID).
func (s *statementService) resolvePrevious(ctx context.Context, tx pgx.Tx, journalID int64, date time.Time, statementID int64, requested *int64) (*int64, error) {
	if requested != nil {
		if *requested == statementID {
			return nil, fmt.Errorf("%w: a statement cannot be its own previous statement", apperrors.ErrValidation)
		}
		previous, err := s.statementRepo.FindStatementByIDInTx(ctx, tx, *requested)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: previous statement %d does not exist", apperrors.ErrValidation, *requested)
		}
		if err != nil {
			return nil, err
		}
		if previous.JournalID != journalID {
			return nil, fmt.Errorf("%w: previous statement %d belongs to another journal", apperrors.ErrValidation, *requested)
		}
		return &previous.StatementID, nil
	}

	previous, err := s.statementRepo.FindPreviousStatementInTx(ctx, tx, journalID, date, statementID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &previous.StatementID, nil
}

// CreateStatement stores a statement with its lines and reconciles it in the same transaction.
func (s *statementService) CreateStatement(ctx context.Context, journalID int64, req dto.StatementRequest, userID string) (*domain.ReconcileResult, error) {
	now := time.Now().UTC()
	date, lines, err := parseStatementRequest(req, now)
	if err != nil {
		return nil, err
	}

	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return nil, err
	}

	tx, err := s.statementRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.statementRepo.Rollback(ctx, tx)

	// Any existing statement sorts before a new one on the same date.
	previousID, err := s.resolvePrevious(ctx, tx, journalID, date, math.MaxInt64, req.PreviousStatementID)
	if err != nil {
		return nil, err
	}

	balanceStart := decimal.Zero
	if req.BalanceStart != nil {
		balanceStart = *req.BalanceStart
	}

	statement := domain.Statement{
		JournalID:           journalID,
		Name:                req.Name,
		Date:                date,
		BalanceStart:        balanceStart,
		BalanceEnd:          balanceStart,
		BalanceEndReal:      req.BalanceEndReal,
		PreviousStatementID: previousID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	statementID, err := s.statementRepo.SaveStatementInTx(ctx, tx, statement, lines)
	if err != nil {
		s.LogError(ctx, err, "Failed to save statement", slog.Int64("journal_id", journalID))
		return nil, err
	}

	result, err := s.reconciler.ReconcileInTx(ctx, tx, statementID)
	if err != nil {
		return nil, err
	}

	if err := s.statementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit statement", slog.Int64("statement_id", statementID))
		return nil, err
	}

	s.LogInfo(ctx, "Statement created",
		slog.Int64("journal_id", journalID),
		slog.Int64("statement_id", statementID),
		slog.Int("lines", len(lines)))
	return result, nil
}

// UpdateStatement replaces a statement's header and lines and reconciles it in the same transaction.
func (s *statementService) UpdateStatement(ctx context.Context, statementID int64, req dto.StatementRequest, userID string) (*domain.ReconcileResult, error) {
	if err := validateStatementID(statementID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	date, lines, err := parseStatementRequest(req, now)
	if err != nil {
		return nil, err
	}

	tx, err := s.statementRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.statementRepo.Rollback(ctx, tx)

	existing, err := s.statementRepo.FindStatementByIDForUpdate(ctx, tx, statementID)
	if err != nil {
		return nil, err
	}

	previousID, err := s.resolvePrevious(ctx, tx, existing.JournalID, date, statementID, req.PreviousStatementID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = req.Name
	updated.Date = date
	updated.BalanceEndReal = req.BalanceEndReal
	updated.PreviousStatementID = previousID
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	if req.BalanceStart != nil {
		updated.BalanceStart = *req.BalanceStart
	}

	if err := s.statementRepo.UpdateStatementInTx(ctx, tx, updated, lines); err != nil {
		s.LogError(ctx, err, "Failed to update statement", slog.Int64("statement_id", statementID))
		return nil, err
	}

	result, err := s.reconciler.ReconcileInTx(ctx, tx, statementID)
	if err != nil {
		return nil, err
	}

	if err := s.statementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit statement", slog.Int64("statement_id", statementID))
		return nil, err
	}

	s.LogInfo(ctx, "Statement updated", slog.Int64("statement_id", statementID), slog.Int("lines", len(lines)))
	return result, nil
}
