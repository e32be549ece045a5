package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/core/services"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockJournalRepo   *MockJournalRepository
	mockStatementRepo *MockStatementRepository
	mockAttachmentSvc *MockAttachmentService
	mockReconciler    *MockReconciler
	service           portssvc.StatementSvcFacade
	ctx               context.Context
	bank              *domain.Journal
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockAttachmentSvc = new(MockAttachmentService)
	suite.mockReconciler = new(MockReconciler)
	suite.service = services.NewStatementService(suite.mockJournalRepo, suite.mockStatementRepo, suite.mockAttachmentSvc, suite.mockReconciler)
	suite.ctx = context.Background()
	suite.bank = &domain.Journal{JournalID: 1, Name: "Bank", PublicCanView: true, PublicSlug: strPtr("bank")}
}

func (suite *StatementServiceTestSuite) TestListStatementsBySlug_WithImages() {
	statements := []domain.Statement{
		{StatementID: 12, JournalID: 1, Name: "2024-02"},
		{StatementID: 11, JournalID: 1, Name: "2024-01"},
	}
	links := map[int64][]domain.AttachmentLink{
		11: {{AttachmentID: 5, Description: "scan", URL: "https://example.org/bank/statements/image/5"}},
	}
	suite.mockJournalRepo.On("FindPublicJournalBySlug", suite.ctx, "bank").Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("ListStatementsByJournal", suite.ctx, int64(1)).Return(statements, nil).Once()
	suite.mockAttachmentSvc.On("ImageLinks", suite.ctx, []int64{12, 11}).Return(links, nil).Once()

	views, err := suite.service.ListStatementsBySlug(suite.ctx, "bank")

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Empty(views[0].Attachments)
	suite.Len(views[1].Attachments, 1)
	suite.mockAttachmentSvc.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestListStatementsBySlug_PrivateOrUnknown() {
	suite.mockJournalRepo.On("FindPublicJournalBySlug", suite.ctx, "secret").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListStatementsBySlug(suite.ctx, "secret")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "ListStatementsByJournal", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetStatement_Success() {
	stmt := &domain.Statement{StatementID: 11, JournalID: 1, Name: "2024-01", BalanceStart: dec("100"), BalanceEnd: dec("140")}
	lines := []domain.StatementLine{
		{LineID: 1, Date: day("2024-01-05"), PaymentRef: "fee", Amount: dec("-10"), Sequence: 1},
		{LineID: 2, Date: day("2024-01-20"), PaymentRef: "donation", Amount: dec("50"), Sequence: 2},
	}
	suite.mockJournalRepo.On("FindPublicJournalBySlug", suite.ctx, "bank").Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("FindStatementByID", suite.ctx, int64(11)).Return(stmt, nil).Once()
	suite.mockStatementRepo.On("FindLinesByStatementID", suite.ctx, int64(11)).Return(lines, nil).Once()
	suite.mockAttachmentSvc.On("ImageLinks", suite.ctx, []int64{11}).Return(map[int64][]domain.AttachmentLink{}, nil).Once()

	view, err := suite.service.GetStatement(suite.ctx, "bank", 11)

	suite.Require().NoError(err)
	suite.Equal(int64(11), view.Statement.StatementID)
	suite.Len(view.Lines, 2)
	suite.Empty(view.Attachments)
}

func (suite *StatementServiceTestSuite) TestGetStatement_OtherJournalIsNotFound() {
	stmt := &domain.Statement{StatementID: 30, JournalID: 2}
	suite.mockJournalRepo.On("FindPublicJournalBySlug", suite.ctx, "bank").Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("FindStatementByID", suite.ctx, int64(30)).Return(stmt, nil).Once()

	_, err := suite.service.GetStatement(suite.ctx, "bank", 30)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "FindLinesByStatementID", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetLatestStatement() {
	stmt := &domain.Statement{StatementID: 12, JournalID: 1}
	suite.mockJournalRepo.On("FindPublicJournalBySlug", suite.ctx, "bank").Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("FindLatestStatementByJournal", suite.ctx, int64(1)).Return(stmt, nil).Once()
	suite.mockStatementRepo.On("FindLinesByStatementID", suite.ctx, int64(12)).Return([]domain.StatementLine{}, nil).Once()
	suite.mockAttachmentSvc.On("ImageLinks", suite.ctx, []int64{12}).Return(map[int64][]domain.AttachmentLink{}, nil).Once()

	view, err := suite.service.GetLatestStatement(suite.ctx, "bank")

	suite.Require().NoError(err)
	suite.Equal(int64(12), view.Statement.StatementID)
}

func (suite *StatementServiceTestSuite) TestCreateStatement_ReconcilesInSameTransaction() {
	start := dec("100")
	req := dto.StatementRequest{
		Name:           "2024-01",
		Date:           "2024-01-31",
		BalanceStart:   &start,
		BalanceEndReal: dec("140"),
		Lines: []dto.StatementLineRequest{
			{Date: "2024-01-20", PaymentRef: "donation", Amount: dec("50")},
			{Date: "2024-01-05", PaymentRef: "fee", Amount: dec("-10")},
		},
	}
	result := &domain.ReconcileResult{StatementID: 11, LineCount: 2, BalanceStart: dec("100"), BalanceEnd: dec("140"), BalanceEndReal: dec("140")}

	suite.mockJournalRepo.On("FindJournalByID", suite.ctx, int64(1)).Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockStatementRepo.On("FindPreviousStatementInTx", suite.ctx, mock.Anything, int64(1), day("2024-01-31"), int64(math.MaxInt64)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStatementRepo.On("SaveStatementInTx", suite.ctx, mock.Anything,
		mock.MatchedBy(func(s domain.Statement) bool {
			return s.JournalID == 1 && s.Name == "2024-01" && s.BalanceStart.Equal(start) && s.PreviousStatementID == nil && s.CreatedBy == "treasurer"
		}),
		mock.MatchedBy(func(lines []domain.StatementLine) bool {
			return len(lines) == 2 && lines[0].Sequence == 1 && lines[1].Sequence == 2 && lines[0].PaymentRef == "donation"
		}),
	).Return(int64(11), nil).Once()
	suite.mockReconciler.On("ReconcileInTx", suite.ctx, mock.Anything, int64(11)).Return(result, nil).Once()
	suite.mockStatementRepo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockStatementRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	got, err := suite.service.CreateStatement(suite.ctx, 1, req, "treasurer")

	suite.Require().NoError(err)
	suite.Equal(result, got)
	suite.mockStatementRepo.AssertExpectations(suite.T())
	suite.mockReconciler.AssertExpectations(suite.T())
	suite.mockReconciler.AssertNotCalled(suite.T(), "Reconcile", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestCreateStatement_DefaultsPreviousStatement() {
	req := dto.StatementRequest{Name: "2024-02", Date: "2024-02-29", BalanceEndReal: dec("0")}
	previous := &domain.Statement{StatementID: 11, JournalID: 1}

	suite.mockJournalRepo.On("FindJournalByID", suite.ctx, int64(1)).Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockStatementRepo.On("FindPreviousStatementInTx", suite.ctx, mock.Anything, int64(1), day("2024-02-29"), int64(math.MaxInt64)).Return(previous, nil).Once()
	suite.mockStatementRepo.On("SaveStatementInTx", suite.ctx, mock.Anything,
		mock.MatchedBy(func(s domain.Statement) bool {
			return s.PreviousStatementID != nil && *s.PreviousStatementID == 11 && s.BalanceStart.IsZero()
		}),
		[]domain.StatementLine{},
	).Return(int64(12), nil).Once()
	suite.mockReconciler.On("ReconcileInTx", suite.ctx, mock.Anything, int64(12)).Return(&domain.ReconcileResult{StatementID: 12}, nil).Once()
	suite.mockStatementRepo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockStatementRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateStatement(suite.ctx, 1, req, "treasurer")

	suite.Require().NoError(err)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestCreateStatement_InvalidLineDate() {
	req := dto.StatementRequest{
		Name:  "2024-01",
		Date:  "2024-01-31",
		Lines: []dto.StatementLineRequest{{Date: "31/01/2024", Amount: dec("1")}},
	}

	_, err := suite.service.CreateStatement(suite.ctx, 1, req, "treasurer")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *StatementServiceTestSuite) TestCreateStatement_PreviousFromOtherJournal() {
	req := dto.StatementRequest{Name: "2024-01", Date: "2024-01-31", PreviousStatementID: int64Ptr(40)}

	suite.mockJournalRepo.On("FindJournalByID", suite.ctx, int64(1)).Return(suite.bank, nil).Once()
	suite.mockStatementRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockStatementRepo.On("FindStatementByIDInTx", suite.ctx, mock.Anything, int64(40)).Return(&domain.Statement{StatementID: 40, JournalID: 2}, nil).Once()
	suite.mockStatementRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateStatement(suite.ctx, 1, req, "treasurer")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "SaveStatementInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestUpdateStatement_ReplacesLinesAndReconciles() {
	existing := &domain.Statement{StatementID: 11, JournalID: 1, Name: "Jan", BalanceStart: dec("100"), AuditFields: domain.AuditFields{CreatedBy: "alice"}}
	req := dto.StatementRequest{
		Name:           "2024-01",
		Date:           "2024-01-31",
		BalanceEndReal: dec("140"),
		Lines:          []dto.StatementLineRequest{{Date: "2024-01-05", Amount: dec("40")}},
	}

	suite.mockStatementRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockStatementRepo.On("FindStatementByIDForUpdate", suite.ctx, mock.Anything, int64(11)).Return(existing, nil).Once()
	suite.mockStatementRepo.On("FindPreviousStatementInTx", suite.ctx, mock.Anything, int64(1), day("2024-01-31"), int64(11)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStatementRepo.On("UpdateStatementInTx", suite.ctx, mock.Anything,
		mock.MatchedBy(func(s domain.Statement) bool {
			return s.StatementID == 11 && s.Name == "2024-01" && s.BalanceStart.Equal(dec("100")) && s.CreatedBy == "alice" && s.LastUpdatedBy == "bob"
		}),
		mock.AnythingOfType("[]domain.StatementLine"),
	).Return(nil).Once()
	suite.mockReconciler.On("ReconcileInTx", suite.ctx, mock.Anything, int64(11)).Return(&domain.ReconcileResult{StatementID: 11}, nil).Once()
	suite.mockStatementRepo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockStatementRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.UpdateStatement(suite.ctx, 11, req, "bob")

	suite.Require().NoError(err)
	suite.mockStatementRepo.AssertExpectations(suite.T())
	suite.mockReconciler.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestUpdateStatement_SelfAsPrevious() {
	req := dto.StatementRequest{Name: "2024-01", Date: "2024-01-31", PreviousStatementID: int64Ptr(11)}

	suite.mockStatementRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockStatementRepo.On("FindStatementByIDForUpdate", suite.ctx, mock.Anything, int64(11)).Return(&domain.Statement{StatementID: 11, JournalID: 1}, nil).Once()
	suite.mockStatementRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.UpdateStatement(suite.ctx, 11, req, "bob")

	suite.ErrorIs(err, apperrors.ErrValidation)
}
