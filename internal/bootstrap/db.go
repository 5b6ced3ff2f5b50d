package bootstrap

import (
	"context"

	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/infra/schema"
	"autoshop-backend/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// NewDBPool connects the pgx pool and applies the idempotent schema before
// the server accepts traffic.
func NewDBPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := schema.Apply(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})
	return pool, nil
}

func NewQuerier(pool *pgxpool.Pool) db.DBTX {
	return pool
}
