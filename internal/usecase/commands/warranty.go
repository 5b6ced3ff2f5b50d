package commands

import (
	"context"
	"log/slog"
	"time"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/pkg/errs"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WarrantyCommands interface {
	// UpdateModelConfig overwrites the model's full warranty template and
	// returns the stored result.
	UpdateModelConfig(ctx context.Context, modelID uuid.UUID, cfg warranty.ModelConfig) (*queries.ModelConfigView, error)
	// AutoAssign is the explicit administrative trigger: it computes and
	// persists the per-component warranty parts for a vehicle from the
	// given model's template and purchase date.
	AutoAssign(ctx context.Context, vehicleID, modelID uuid.UUID, purchaseDate time.Time) ([]*queries.PartView, error)
}

type warrantyCommandsImpl struct {
	componentRepo   ComponentRepository
	modelRepo       ModelRepository
	partRepo        PartRepository
	vehicleRepo     VehicleRepository
	warrantyQueries queries.WarrantyQueries
	db              TxBeginner
}

func NewWarrantyCommands(
	componentRepo ComponentRepository,
	modelRepo ModelRepository,
	partRepo PartRepository,
	vehicleRepo VehicleRepository,
	warrantyQueries queries.WarrantyQueries,
	db TxBeginner,
) WarrantyCommands {
	return &warrantyCommandsImpl{
		componentRepo:   componentRepo,
		modelRepo:       modelRepo,
		partRepo:        partRepo,
		vehicleRepo:     vehicleRepo,
		warrantyQueries: warrantyQueries,
		db:              db,
	}
}

func (c *warrantyCommandsImpl) UpdateModelConfig(ctx context.Context, modelID uuid.UUID, cfg warranty.ModelConfig) (*queries.ModelConfigView, error) {
	normalized := cfg.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Existence check doubles as the NotFound signal before any write.
	if _, err := c.modelRepo.GetConfig(ctx, modelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrModelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	err := c.inTx(ctx, func(tx pgx.Tx) error {
		return c.modelRepo.ReplaceConfig(ctx, tx, modelID, normalized)
	})
	if err != nil {
		return nil, err
	}

	return c.warrantyQueries.GetModelConfig(ctx, modelID)
}

func (c *warrantyCommandsImpl) AutoAssign(ctx context.Context, vehicleID, modelID uuid.UUID, purchaseDate time.Time) ([]*queries.PartView, error) {
	if _, err := c.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	cfg, err := c.modelRepo.GetConfig(ctx, modelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrModelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	catalog, err := c.componentRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	parts, err := warranty.AssignParts(catalog, vehicleID, *cfg, purchaseDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if len(parts) == 0 {
		return []*queries.PartView{}, nil
	}

	var inserted int64
	err = c.inTx(ctx, func(tx pgx.Tx) error {
		n, insertErr := c.partRepo.InsertParts(ctx, tx, parts)
		inserted = n
		return insertErr
	})
	if err != nil {
		return nil, err
	}

	// The uniqueness constraint makes concurrent assignment a no-op for the
	// loser; an explicit re-assign that writes nothing is surfaced as a
	// conflict instead.
	if inserted == 0 {
		return nil, errs.ErrWarrantyAlreadyAssigned
	}

	views := make([]*queries.PartView, len(parts))
	for i, p := range parts {
		views[i] = queries.PartViewFromDomain(p)
	}
	return views, nil
}

func (c *warrantyCommandsImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return runInTx(ctx, c.db, fn)
}

// runInTx wraps fn in a single transaction so multi-row writes are
// all-or-nothing: a vehicle must never end up with partial warranty
// coverage.
func runInTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
