package repositories

import (
	"context"
	"time"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StatementReader defines read operations for statement data
type StatementReader interface {
	// FindLatestStatementsForPublicJournals returns the most recent statement (date desc, id desc)
	// of every public journal that has at least one statement, ordered by journal id.
	FindLatestStatementsForPublicJournals(ctx context.Context) ([]domain.StatementSummary, error)

	// ListPublicStatements returns all statements of public journals, newest first.
	ListPublicStatements(ctx context.Context) ([]domain.StatementSummary, error)

	// ListStatementsByJournal returns the statements of one journal, newest first.
	ListStatementsByJournal(ctx context.Context, journalID int64) ([]domain.Statement, error)

	// FindStatementByID retrieves a statement header by id.
	FindStatementByID(ctx context.Context, statementID int64) (*domain.Statement, error)

	// FindLatestStatementByJournal retrieves the most recent statement of a journal.
	FindLatestStatementByJournal(ctx context.Context, journalID int64) (*domain.Statement, error)

	// FindLinesByStatementID returns the lines of a statement in display order (sequence, id).
	FindLinesByStatementID(ctx context.Context, statementID int64) ([]domain.StatementLine, error)
}

// StatementWriter defines write operations on statements that run inside a caller-owned transaction.
type StatementWriter interface {
	// SaveStatementInTx inserts a statement with its lines and returns the new statement id.
	SaveStatementInTx(ctx context.Context, tx pgx.Tx, statement domain.Statement, lines []domain.StatementLine) (int64, error)

	// UpdateStatementInTx updates the statement header and replaces all of its lines.
	UpdateStatementInTx(ctx context.Context, tx pgx.Tx, statement domain.Statement, lines []domain.StatementLine) error
}

// StatementReconcileSupport defines the narrow reads and writes used by the reconciler.
// None of these re-enter the statement create/update path.
type StatementReconcileSupport interface {
	// FindStatementByIDForUpdate selects a statement and locks its row until the transaction ends.
	FindStatementByIDForUpdate(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.Statement, error)

	// FindStatementByIDInTx reads a statement header within the transaction.
	FindStatementByIDInTx(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.Statement, error)

	// FindLinesByStatementIDInTx returns lines in display order (sequence, id) within the transaction.
	FindLinesByStatementIDInTx(ctx context.Context, tx pgx.Tx, statementID int64) ([]domain.StatementLine, error)

	// FindPreviousStatementInTx returns the latest statement of the journal that precedes
	// (date, id) of the given statement, or apperrors.ErrNotFound.
	FindPreviousStatementInTx(ctx context.Context, tx pgx.Tx, journalID int64, date time.Time, statementID int64) (*domain.Statement, error)

	// UpdateLineSequencesInTx persists new sequence numbers for lines of one statement.
	UpdateLineSequencesInTx(ctx context.Context, tx pgx.Tx, statementID int64, sequences []domain.LineSequence) error

	// UpdateStatementBalancesInTx persists the starting and computed ending balance of a statement.
	UpdateStatementBalancesInTx(ctx context.Context, tx pgx.Tx, statementID int64, balanceStart, balanceEnd decimal.Decimal, now time.Time) error
}

// StatementRepositoryFacade combines all statement-related repository interfaces
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
	StatementReconcileSupport
}

// StatementRepositoryWithTx extends StatementRepositoryFacade with transaction capabilities
type StatementRepositoryWithTx interface {
	StatementRepositoryFacade
	TransactionManager
}
