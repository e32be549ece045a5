package services_test

import (
	"context"
	"time"

	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) ListPublicJournals(ctx context.Context) ([]domain.Journal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindPublicJournalBySlug(ctx context.Context, slug string) (*domain.Journal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID int64) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) UpdateJournalVisibility(ctx context.Context, journalID int64, publicCanView bool, publicSlug *string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, journalID, publicCanView, publicSlug, updatedBy, now)
	return args.Error(0)
}

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

var _ portsrepo.StatementRepositoryWithTx = (*MockStatementRepository)(nil)

func (m *MockStatementRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockStatementRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockStatementRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockStatementRepository) FindLatestStatementsForPublicJournals(ctx context.Context) ([]domain.StatementSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementSummary), args.Error(1)
}

func (m *MockStatementRepository) ListPublicStatements(ctx context.Context) ([]domain.StatementSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementSummary), args.Error(1)
}

func (m *MockStatementRepository) ListStatementsByJournal(ctx context.Context, journalID int64) ([]domain.Statement, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) FindStatementByID(ctx context.Context, statementID int64) (*domain.Statement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) FindLatestStatementByJournal(ctx context.Context, journalID int64) (*domain.Statement, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) FindLinesByStatementID(ctx context.Context, statementID int64) ([]domain.StatementLine, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

func (m *MockStatementRepository) SaveStatementInTx(ctx context.Context, tx pgx.Tx, statement domain.Statement, lines []domain.StatementLine) (int64, error) {
	args := m.Called(ctx, tx, statement, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatementRepository) UpdateStatementInTx(ctx context.Context, tx pgx.Tx, statement domain.Statement, lines []domain.StatementLine) error {
	args := m.Called(ctx, tx, statement, lines)
	return args.Error(0)
}

func (m *MockStatementRepository) FindStatementByIDForUpdate(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.Statement, error) {
	args := m.Called(ctx, tx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) FindStatementByIDInTx(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.Statement, error) {
	args := m.Called(ctx, tx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) FindLinesByStatementIDInTx(ctx context.Context, tx pgx.Tx, statementID int64) ([]domain.StatementLine, error) {
	args := m.Called(ctx, tx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

func (m *MockStatementRepository) FindPreviousStatementInTx(ctx context.Context, tx pgx.Tx, journalID int64, date time.Time, statementID int64) (*domain.Statement, error) {
	args := m.Called(ctx, tx, journalID, date, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockStatementRepository) UpdateLineSequencesInTx(ctx context.Context, tx pgx.Tx, statementID int64, sequences []domain.LineSequence) error {
	args := m.Called(ctx, tx, statementID, sequences)
	return args.Error(0)
}

func (m *MockStatementRepository) UpdateStatementBalancesInTx(ctx context.Context, tx pgx.Tx, statementID int64, balanceStart, balanceEnd decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, statementID, balanceStart, balanceEnd, now)
	return args.Error(0)
}

// --- Mock AttachmentRepository ---
type MockAttachmentRepository struct {
	mock.Mock
}

var _ portsrepo.AttachmentRepositoryFacade = (*MockAttachmentRepository)(nil)

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListImageAttachmentsByOwners(ctx context.Context, kind domain.OwnerKind, ownerIDs []int64) (map[int64][]domain.Attachment, error) {
	args := m.Called(ctx, kind, ownerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) (int64, error) {
	args := m.Called(ctx, attachment)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ConfigParamRepository ---
type MockConfigParamRepository struct {
	mock.Mock
}

var _ portsrepo.ConfigParamReader = (*MockConfigParamRepository)(nil)

func (m *MockConfigParamRepository) GetParam(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// --- Mock AttachmentService (as used by StatementService) ---
type MockAttachmentService struct {
	mock.Mock
}

var _ portssvc.AttachmentSvc = (*MockAttachmentService)(nil)

func (m *MockAttachmentService) GetPublicImage(ctx context.Context, attachmentID int64) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ImageLinks(ctx context.Context, statementIDs []int64) (map[int64][]domain.AttachmentLink, error) {
	args := m.Called(ctx, statementIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.AttachmentLink), args.Error(1)
}

func (m *MockAttachmentService) UploadStatementImage(ctx context.Context, statementID int64, name, description string, data []byte, userID string) (*domain.Attachment, error) {
	args := m.Called(ctx, statementID, name, description, data, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

// --- Mock Reconciler (as used by StatementService) ---
type MockReconciler struct {
	mock.Mock
}

var _ portssvc.ReconcilerSvc = (*MockReconciler)(nil)

func (m *MockReconciler) result(args mock.Arguments) (*domain.ReconcileResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileResult), args.Error(1)
}

func (m *MockReconciler) ReorderLines(ctx context.Context, statementID int64) (*domain.ReconcileResult, error) {
	return m.result(m.Called(ctx, statementID))
}

func (m *MockReconciler) AlignBalances(ctx context.Context, statementID int64) (*domain.ReconcileResult, error) {
	return m.result(m.Called(ctx, statementID))
}

func (m *MockReconciler) Reconcile(ctx context.Context, statementID int64) (*domain.ReconcileResult, error) {
	return m.result(m.Called(ctx, statementID))
}

func (m *MockReconciler) ReconcileInTx(ctx context.Context, tx pgx.Tx, statementID int64) (*domain.ReconcileResult, error) {
	return m.result(m.Called(ctx, tx, statementID))
}

// --- helpers ---

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
