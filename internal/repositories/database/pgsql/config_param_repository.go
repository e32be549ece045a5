package pgsql

import (
	"context"

	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConfigParamRepository struct {
	BaseRepository
}

func newPgxConfigParamRepository(pool *pgxpool.Pool) portsrepo.ConfigParamReader {
	return &PgxConfigParamRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// GetParam returns the value stored for key.
func (r *PgxConfigParamRepository) GetParam(ctx context.Context, key string) (string, error) {
	var value string
	err := r.Pool.QueryRow(ctx, `SELECT value FROM config_parameters WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		return "", notFoundOr(err, "failed to read config parameter "+key)
	}
	return value, nil
}
