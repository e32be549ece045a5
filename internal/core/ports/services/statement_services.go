package services

import (
	"context"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/jackc/pgx/v5"
)

// StatementReaderSvc defines public read operations over statements.
// Every method hides statements of private journals behind apperrors.ErrNotFound.
type StatementReaderSvc interface {
	// ListPublicStatements returns all statements of public journals, newest first.
	ListPublicStatements(ctx context.Context) ([]domain.StatementSummary, error)

	// ListStatementsBySlug returns the statements of the public journal with this slug,
	// newest first, each with its image attachments.
	ListStatementsBySlug(ctx context.Context, slug string) ([]domain.StatementView, error)

	// GetStatement returns one statement of the public journal with this slug.
	GetStatement(ctx context.Context, slug string, statementID int64) (*domain.StatementView, error)

	// GetLatestStatement returns the most recent statement of the public journal with this slug.
	GetLatestStatement(ctx context.Context, slug string) (*domain.StatementView, error)
}

// StatementWriterSvc defines the back-office write path. Each write reconciles the
// statement in the same transaction.
type StatementWriterSvc interface {
	// CreateStatement creates a statement with its lines for a journal.
	CreateStatement(ctx context.Context, journalID int64, req dto.StatementRequest, userID string) (*domain.ReconcileResult, error)

	// UpdateStatement updates a statement header and replaces its lines.
	UpdateStatement(ctx context.Context, statementID int64, req dto.StatementRequest, userID string) (*domain.ReconcileResult, error)
}

// ReconcilerSvc orders statement lines and aligns statement balances.
type ReconcilerSvc interface {
	// ReorderLines assigns dense date-ordered sequence numbers to a statement's lines.
	ReorderLines(ctx context.Context, statementID int64) (*domain.ReconcileResult, error)

	// AlignBalances recomputes a statement's starting and ending balance.
	AlignBalances(ctx context.Context, statementID int64) (*domain.ReconcileResult, error)

	// Reconcile runs ReorderLines and AlignBalances in one transaction.
	Reconcile(ctx context.Context, statementID int64) (*domain.ReconcileResult, error)

	// ReconcileInTx runs both steps on a transaction owned by the caller.
	ReconcileInTx(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.ReconcileResult, error)
}

// StatementSvcFacade combines all statement-related service interfaces
type StatementSvcFacade interface {
	StatementReaderSvc
	StatementWriterSvc
}
