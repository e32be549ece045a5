package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	"github.com/golder/bank_statements_api/internal/models"
	"github.com/golder/bank_statements_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const statementColumns = `s.statement_id, s.journal_id, s.name, s.statement_date,
	s.balance_start, s.balance_end, s.balance_end_real, s.previous_statement_id,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by`

const lineColumns = `line_id, statement_id, line_date, payment_ref, amount, sequence, created_at`

type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for statements and their lines.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepositoryWithTx {
	return &PgxStatementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStatementRepository implements portsrepo.StatementRepositoryWithTx
var _ portsrepo.StatementRepositoryWithTx = (*PgxStatementRepository)(nil)

func statementDest(m *models.Statement) []any {
	return []any{
		&m.StatementID,
		&m.JournalID,
		&m.Name,
		&m.StatementDate,
		&m.BalanceStart,
		&m.BalanceEnd,
		&m.BalanceEndReal,
		&m.PreviousStatementID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
}

func scanStatement(row pgx.Row) (models.Statement, error) {
	var m models.Statement
	err := row.Scan(statementDest(&m)...)
	return m, err
}

func (r *PgxStatementRepository) queryStatements(ctx context.Context, q querier, query string, args ...any) ([]domain.Statement, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query statements", err)
	}
	defer rows.Close()

	statements := []domain.Statement{}
	for rows.Next() {
		m, err := scanStatement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan statement row", err)
		}
		statements = append(statements, mapping.ToDomainStatement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating statement rows", err)
	}
	return statements, nil
}

// querySummaries scans statement rows joined with journal name and slug.
func (r *PgxStatementRepository) querySummaries(ctx context.Context, query string, args ...any) ([]domain.StatementSummary, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query statement summaries", err)
	}
	defer rows.Close()

	summaries := []domain.StatementSummary{}
	for rows.Next() {
		var m models.Statement
		var journalName string
		var slug *string
		dest := append(statementDest(&m), &journalName, &slug)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan statement summary row", err)
		}
		summaries = append(summaries, domain.StatementSummary{
			Statement:   mapping.ToDomainStatement(m),
			JournalName: journalName,
			PublicSlug:  slug,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating statement summary rows", err)
	}
	return summaries, nil
}

// FindLatestStatementsForPublicJournals returns the newest statement of each public journal.
func (r *PgxStatementRepository) FindLatestStatementsForPublicJournals(ctx context.Context) ([]domain.StatementSummary, error) {
	query := `
		SELECT DISTINCT ON (s.journal_id) ` + statementColumns + `, j.name, j.public_slug
		FROM statements s
		JOIN journals j ON j.journal_id = s.journal_id
		WHERE j.public_can_view
		ORDER BY s.journal_id, s.statement_date DESC, s.statement_id DESC;`
	return r.querySummaries(ctx, query)
}

// ListPublicStatements returns every statement of a public journal, newest first.
func (r *PgxStatementRepository) ListPublicStatements(ctx context.Context) ([]domain.StatementSummary, error) {
	query := `
		SELECT ` + statementColumns + `, j.name, j.public_slug
		FROM statements s
		JOIN journals j ON j.journal_id = s.journal_id
		WHERE j.public_can_view
		ORDER BY s.statement_date DESC, s.statement_id DESC;`
	return r.querySummaries(ctx, query)
}

// ListStatementsByJournal returns the statements of one journal, newest first.
func (r *PgxStatementRepository) ListStatementsByJournal(ctx context.Context, journalID int64) ([]domain.Statement, error) {
	query := `
		SELECT ` + statementColumns + `
		FROM statements s
		WHERE s.journal_id = $1
		ORDER BY s.statement_date DESC, s.statement_id DESC;`
	return r.queryStatements(ctx, r.Pool, query, journalID)
}

func (r *PgxStatementRepository) findStatement(ctx context.Context, q querier, statementID int64, lock bool) (*domain.Statement, error) {
	query := `SELECT ` + statementColumns + ` FROM statements s WHERE s.statement_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := scanStatement(q.QueryRow(ctx, query, statementID))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find statement by ID %d", statementID))
	}
	statement := mapping.ToDomainStatement(m)
	return &statement, nil
}

// FindStatementByID retrieves a statement header by its ID.
func (r *PgxStatementRepository) FindStatementByID(ctx context.Context, statementID int64) (*domain.Statement, error) {
	return r.findStatement(ctx, r.Pool, statementID, false)
}

// FindStatementByIDInTx retrieves a statement header within tx.
func (r *PgxStatementRepository) FindStatementByIDInTx(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.Statement, error) {
	return r.findStatement(ctx, tx, statementID, false)
}

// FindStatementByIDForUpdate retrieves a statement and locks its row for the rest of tx.
func (r *PgxStatementRepository) FindStatementByIDForUpdate(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.Statement, error) {
	return r.findStatement(ctx, tx, statementID, true)
}

// FindLatestStatementByJournal retrieves the newest statement of a journal.
func (r *PgxStatementRepository) FindLatestStatementByJournal(ctx context.Context, journalID int64) (*domain.Statement, error) {
	query := `
		SELECT ` + statementColumns + `
		FROM statements s
		WHERE s.journal_id = $1
		ORDER BY s.statement_date DESC, s.statement_id DESC
		LIMIT 1;`
	m, err := scanStatement(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find latest statement of journal %d", journalID))
	}
	statement := mapping.ToDomainStatement(m)
	return &statement, nil
}

// FindPreviousStatementInTx returns the latest statement of the journal ordered before (date, id).
func (r *PgxStatementRepository) FindPreviousStatementInTx(ctx context.Context, tx pgx.Tx, journalID int64, date time.Time, statementID int64) (*domain.Statement, error) {
	query := `
		SELECT ` + statementColumns + `
		FROM statements s
		WHERE s.journal_id = $1
		  AND (s.statement_date, s.statement_id) < ($2::date, $3::bigint)
		ORDER BY s.statement_date DESC, s.statement_id DESC
		LIMIT 1;`
	m, err := scanStatement(tx.QueryRow(ctx, query, journalID, date, statementID))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find statement preceding %d", statementID))
	}
	statement := mapping.ToDomainStatement(m)
	return &statement, nil
}

func (r *PgxStatementRepository) queryLines(ctx context.Context, q querier, statementID int64) ([]domain.StatementLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM statement_lines
		WHERE statement_id = $1
		ORDER BY sequence, line_id;`

	rows, err := q.Query(ctx, query, statementID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query lines of statement %d", statementID), err)
	}
	defer rows.Close()

	lines := []domain.StatementLine{}
	for rows.Next() {
		var m models.StatementLine
		if err := rows.Scan(&m.LineID, &m.StatementID, &m.LineDate, &m.PaymentRef, &m.Amount, &m.Sequence, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan statement line row", err)
		}
		lines = append(lines, mapping.ToDomainStatementLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating statement line rows", err)
	}
	return lines, nil
}

// FindLinesByStatementID returns the lines of a statement in display order.
func (r *PgxStatementRepository) FindLinesByStatementID(ctx context.Context, statementID int64) ([]domain.StatementLine, error) {
	return r.queryLines(ctx, r.Pool, statementID)
}

// FindLinesByStatementIDInTx returns the lines of a statement in display order within tx.
func (r *PgxStatementRepository) FindLinesByStatementIDInTx(ctx context.Context, tx pgx.Tx, statementID int64) ([]domain.StatementLine, error) {
	return r.queryLines(ctx, tx, statementID)
}

// insertLines queues one insert per line and executes them as a single batch.
func insertLines(ctx context.Context, tx pgx.Tx, statementID int64, lines []domain.StatementLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO statement_lines (statement_id, line_date, payment_ref, amount, sequence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range lines {
		m := mapping.ToModelStatementLine(line)
		batch.Queue(lineQuery, statementID, m.LineDate, m.PaymentRef, m.Amount, m.Sequence, m.CreatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines of statement %d", statementID), err)
	}
	return nil
}

// SaveStatementInTx inserts a statement and its lines, returning the new statement id.
func (r *PgxStatementRepository) SaveStatementInTx(ctx context.Context, tx pgx.Tx, statement domain.Statement, lines []domain.StatementLine) (int64, error) {
	m := mapping.ToModelStatement(statement)
	query := `
		INSERT INTO statements (
			journal_id, name, statement_date, balance_start, balance_end, balance_end_real,
			previous_statement_id, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING statement_id;
	`
	var statementID int64
	err := tx.QueryRow(ctx, query,
		m.JournalID,
		m.Name,
		m.StatementDate,
		m.BalanceStart,
		m.BalanceEnd,
		m.BalanceEndReal,
		m.PreviousStatementID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&statementID)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert statement for journal %d", m.JournalID), err)
	}

	if err := insertLines(ctx, tx, statementID, lines); err != nil {
		return 0, err
	}
	return statementID, nil
}

// UpdateStatementInTx updates the statement header and replaces its lines.
func (r *PgxStatementRepository) UpdateStatementInTx(ctx context.Context, tx pgx.Tx, statement domain.Statement, lines []domain.StatementLine) error {
	m := mapping.ToModelStatement(statement)
	query := `
		UPDATE statements
		SET name = $2, statement_date = $3, balance_start = $4, balance_end_real = $5,
		    previous_statement_id = $6, last_updated_at = $7, last_updated_by = $8
		WHERE statement_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.StatementID,
		m.Name,
		m.StatementDate,
		m.BalanceStart,
		m.BalanceEndReal,
		m.PreviousStatementID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update statement %d", m.StatementID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM statement_lines WHERE statement_id = $1;`, m.StatementID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to clear lines of statement %d", m.StatementID), err)
	}
	return insertLines(ctx, tx, m.StatementID, lines)
}

// UpdateLineSequencesInTx persists new sequence numbers in a single batch.
func (r *PgxStatementRepository) UpdateLineSequencesInTx(ctx context.Context, tx pgx.Tx, statementID int64, sequences []domain.LineSequence) error {
	if len(sequences) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `UPDATE statement_lines SET sequence = $3 WHERE statement_id = $1 AND line_id = $2;`
	for _, s := range sequences {
		batch.Queue(query, statementID, s.LineID, s.Sequence)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update line sequences of statement %d", statementID), err)
	}
	return nil
}

// UpdateStatementBalancesInTx writes the starting and computed ending balance.
func (r *PgxStatementRepository) UpdateStatementBalancesInTx(ctx context.Context, tx pgx.Tx, statementID int64, balanceStart, balanceEnd decimal.Decimal, now time.Time) error {
	query := `
		UPDATE statements
		SET balance_start = $2, balance_end = $3, last_updated_at = $4
		WHERE statement_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, statementID, balanceStart, balanceEnd, now)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update balances of statement %d", statementID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
