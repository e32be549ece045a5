package services

import (
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Reconciler = NewReconcileService(repos.StatementRepo)
	container.Attachment = NewAttachmentService(
		repos.AttachmentRepo,
		repos.StatementRepo,
		repos.JournalRepo,
		repos.ConfigParamRepo,
		cfg.WebBaseURL,
	)
	container.Journal = NewJournalService(repos.JournalRepo, repos.StatementRepo)
	container.Statement = NewStatementService(
		repos.JournalRepo,
		repos.StatementRepo,
		container.Attachment,
		container.Reconciler,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.JournalSvcFacade   = (*journalService)(nil)
	_ portssvc.StatementSvcFacade = (*statementService)(nil)
)
