package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

// reconcileService orders statement lines and aligns statement balances.
type reconcileService struct {
	BaseService
	statementRepo portsrepo.StatementRepositoryWithTx
}

// NewReconcileService creates a new ReconcilerSvc.
func NewReconcileService(statementRepo portsrepo.StatementRepositoryWithTx) portssvc.ReconcilerSvc {
	return &reconcileService{statementRepo: statementRepo}
}

var _ portssvc.ReconcilerSvc = (*reconcileService)(nil)

type reconcileStep func(ctx context.Context, tx pgx.Tx, statement *domain.Statement) (*domain.ReconcileResult, error)

func validateStatementID(statementID int64) error {
	if statementID <= 0 {
		return fmt.Errorf("%w: statement id must be positive, got %d", apperrors.ErrValidation, statementID)
	}
	return nil
}

// runLocked runs step on the locked statement row inside a new transaction.
func (s *reconcileService) runLocked(ctx context.Context, statementID int64, step reconcileStep) (*domain.ReconcileResult, error) {
	if err := validateStatementID(statementID); err != nil {
		return nil, err
	}

	tx, err := s.statementRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin reconcile transaction", slog.Int64("statement_id", statementID))
		return nil, err
	}
	defer s.statementRepo.Rollback(ctx, tx)

	statement, err := s.statementRepo.FindStatementByIDForUpdate(ctx, tx, statementID)
	if err != nil {
		return nil, err
	}

	result, err := step(ctx, tx, statement)
	if err != nil {
		s.LogError(ctx, err, "Reconcile step failed", slog.Int64("statement_id", statementID))
		return nil, err
	}

	if err := s.statementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit reconcile transaction", slog.Int64("statement_id", statementID))
		return nil, err
	}
	s.reportMismatch(ctx, result)
	return result, nil
}

// reorder persists dense date-ordered sequences and returns the lines in their new order.
func (s *reconcileService) reorder(ctx context.Context, tx pgx.Tx, statement *domain.Statement) ([]domain.StatementLine, error) {
	lines, err := s.statementRepo.FindLinesByStatementIDInTx(ctx, tx, statement.StatementID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return lines, nil
	}

	assignments := accounting.ReorderLinesByDate(lines)
	if changed := accounting.ChangedSequences(lines, assignments); len(changed) > 0 {
		if err := s.statementRepo.UpdateLineSequencesInTx(ctx, tx, statement.StatementID, changed); err != nil {
			return nil, err
		}
		s.LogDebug(ctx, "Statement lines resequenced",
			slog.Int64("statement_id", statement.StatementID),
			slog.Int("changed", len(changed)))
	}
	return accounting.ApplySequences(lines, assignments), nil
}

// previousOf loads the linked previous statement, or nil when there is none.
func (s *reconcileService) previousOf(ctx context.Context, tx pgx.Tx, statement *domain.Statement) (*domain.Statement, error) {
	if statement.PreviousStatementID == nil {
		return nil, nil
	}
	previous, err := s.statementRepo.FindStatementByIDInTx(ctx, tx, *statement.PreviousStatementID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return previous, err
}

// align writes the authoritative start and start + sum(lines) as the ending balance.
func (s *reconcileService) align(ctx context.Context, tx pgx.Tx, statement *domain.Statement, lines []domain.StatementLine) (*domain.ReconcileResult, error) {
	previous, err := s.previousOf(ctx, tx, statement)
	if err != nil {
		return nil, err
	}

	start := accounting.AuthoritativeStart(*statement, previous)
	end := accounting.AlignedEndingBalance(start, lines)

	if !start.Equal(statement.BalanceStart) || !end.Equal(statement.BalanceEnd) {
		if err := s.statementRepo.UpdateStatementBalancesInTx(ctx, tx, statement.StatementID, start, end, time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	return &domain.ReconcileResult{
		StatementID:    statement.StatementID,
		LineCount:      len(lines),
		BalanceStart:   start,
		BalanceEnd:     end,
		BalanceEndReal: statement.BalanceEndReal,
		Mismatch:       !end.Equal(statement.BalanceEndReal),
	}, nil
}

func (s *reconcileService) reorderStep(ctx context.Context, tx pgx.Tx, statement *domain.Statement) (*domain.ReconcileResult, error) {
	lines, err := s.reorder(ctx, tx, statement)
	if err != nil {
		return nil, err
	}
	return &domain.ReconcileResult{
		StatementID:    statement.StatementID,
		LineCount:      len(lines),
		BalanceStart:   statement.BalanceStart,
		BalanceEnd:     statement.BalanceEnd,
		BalanceEndReal: statement.BalanceEndReal,
		Mismatch:       !statement.BalanceEnd.Equal(statement.BalanceEndReal),
	}, nil
}

func (s *reconcileService) alignStep(ctx context.Context, tx pgx.Tx, statement *domain.Statement) (*domain.ReconcileResult, error) {
	lines, err := s.statementRepo.FindLinesByStatementIDInTx(ctx, tx, statement.StatementID)
	if err != nil {
		return nil, err
	}
	return s.align(ctx, tx, statement, lines)
}

func (s *reconcileService) reconcileStep(ctx context.Context, tx pgx.Tx, statement *domain.Statement) (*domain.ReconcileResult, error) {
	lines, err := s.reorder(ctx, tx, statement)
	if err != nil {
		return nil, err
	}
	return s.align(ctx, tx, statement, lines)
}

// reportMismatch logs when the computed ending balance differs from the declared one.
func (s *reconcileService) reportMismatch(ctx context.Context, result *domain.ReconcileResult) {
	if !result.Mismatch {
		return
	}
	s.LogWarn(ctx, "Computed ending balance differs from declared ending balance",
		slog.Int64("statement_id", result.StatementID),
		slog.String("balance_end", result.BalanceEnd.String()),
		slog.String("balance_end_real", result.BalanceEndReal.String()))
}

// ReorderLines assigns sequence numbers 1..N to a statement's lines by ascending date.
func (s *reconcileService) ReorderLines(ctx context.Context, statementID int64) (*domain.ReconcileResult, error) {
	return s.runLocked(ctx, statementID, s.reorderStep)
}

// AlignBalances recomputes the starting and ending balance of a statement.
func (s *reconcileService) AlignBalances(ctx context.Context, statementID int64) (*domain.ReconcileResult, error) {
	return s.runLocked(ctx, statementID, s.alignStep)
}

// Reconcile reorders lines and aligns balances in one transaction.
func (s *reconcileService) Reconcile(ctx context.Context, statementID int64) (*domain.ReconcileResult, error) {
	return s.runLocked(ctx, statementID, s.reconcileStep)
}

// ReconcileInTx reorders lines and aligns balances on a transaction owned by the caller.
// The caller commits; only sequence and balance columns are written.
func (s *reconcileService) ReconcileInTx(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.ReconcileResult, error) {
	if err := validateStatementID(statementID); err != nil {
		return nil, err
	}
	statement, err := s.statementRepo.FindStatementByIDForUpdate(ctx, tx, statementID)
	if err != nil {
		return nil, err
	}
	result, err := s.reconcileStep(ctx, tx, statement)
	if err != nil {
		return nil, err
	}
	s.reportMismatch(ctx, result)
	return result, nil
}
