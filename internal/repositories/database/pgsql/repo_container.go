package pgsql

import (
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:     newPgxJournalRepository(dbPool),
		StatementRepo:   newPgxStatementRepository(dbPool),
		AttachmentRepo:  newPgxAttachmentRepository(dbPool),
		ConfigParamRepo: newPgxConfigParamRepository(dbPool),
	}
}
