package handlers_test

import (
	"context"

	"github.com/golder/bank_statements_api/internal/core/domain"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) ListBalances(ctx context.Context) (*domain.BalanceReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceReport), args.Error(1)
}

func (m *MockJournalService) ListPublicJournals(ctx context.Context) ([]domain.JournalOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalOverview), args.Error(1)
}

func (m *MockJournalService) SetVisibility(ctx context.Context, journalID int64, req dto.SetJournalVisibilityRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

func (m *MockStatementService) ListPublicStatements(ctx context.Context) ([]domain.StatementSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementSummary), args.Error(1)
}

func (m *MockStatementService) ListStatementsBySlug(ctx context.Context, slug string) ([]domain.StatementView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementView), args.Error(1)
}

func (m *MockStatementService) GetStatement(ctx context.Context, slug string, statementID int64) (*domain.StatementView, error) {
	args := m.Called(ctx, slug, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementView), args.Error(1)
}

func (m *MockStatementService) GetLatestStatement(ctx context.Context, slug string) (*domain.StatementView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementView), args.Error(1)
}

func (m *MockStatementService) CreateStatement(ctx context.Context, journalID int64, req dto.StatementRequest, userID string) (*domain.ReconcileResult, error) {
	args := m.Called(ctx, journalID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileResult), args.Error(1)
}

func (m *MockStatementService) UpdateStatement(ctx context.Context, statementID int64, req dto.StatementRequest, userID string) (*domain.ReconcileResult, error) {
	args := m.Called(ctx, statementID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileResult), args.Error(1)
}

// --- Mock Reconciler ---
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

// --- Mock AttachmentService ---
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
