package repository

import (
	"context"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ModelRepository struct {
	db db.DBTX
}

func NewModelRepository(pool db.DBTX) *ModelRepository {
	return &ModelRepository{db: pool}
}

func (r *ModelRepository) GetConfig(ctx context.Context, modelID uuid.UUID) (*warranty.ModelConfig, error) {
	var hasHybrid bool
	err := r.db.QueryRow(ctx,
		`SELECT has_hybrid_battery FROM vehicle_models WHERE id = $1`, modelID).Scan(&hasHybrid)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle model not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle model", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT c.name, mwc.warranty_years, mwc.warranty_km, mwc.is_applicable
		FROM model_warranty_configs mwc
		JOIN warranty_components c ON c.id = mwc.component_id
		WHERE mwc.model_id = $1`, modelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load model warranty config", err)
	}
	defer rows.Close()

	cfg := warranty.ModelConfig{
		PerComponent:     make(map[string]warranty.ComponentTerms),
		HasHybridBattery: hasHybrid,
	}
	for rows.Next() {
		var name string
		var years, km int32
		var applicable bool
		if err := rows.Scan(&name, &years, &km, &applicable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan model warranty config", err)
		}
		cfg.PerComponent[name] = warranty.ComponentTerms{
			Years:      uint(years),
			KM:         uint(km),
			Applicable: applicable,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate model warranty config", err)
	}
	return &cfg, nil
}

// ReplaceConfig deletes and rewrites every per-component row for the model.
// Callers normalize partial payloads to the complete component set before
// reaching this point.
func (r *ModelRepository) ReplaceConfig(ctx context.Context, tx pgx.Tx, modelID uuid.UUID, cfg warranty.ModelConfig) error {
	if _, err := tx.Exec(ctx,
		`UPDATE vehicle_models SET has_hybrid_battery = $2, updated_at = now() WHERE id = $1`,
		modelID, cfg.HasHybridBattery); err != nil {
		return infra.WrapRepoErr("failed to update vehicle model", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM model_warranty_configs WHERE model_id = $1`, modelID); err != nil {
		return infra.WrapRepoErr("failed to clear model warranty config", err)
	}

	for name, terms := range cfg.PerComponent {
		tag, err := tx.Exec(ctx, `
			INSERT INTO model_warranty_configs (model_id, component_id, warranty_years, warranty_km, is_applicable)
			SELECT $1, id, $3, $4, $5 FROM warranty_components WHERE name = $2`,
			modelID, name, int32(terms.Years), int32(terms.KM), terms.Applicable)
		if err != nil {
			return infra.WrapRepoErr("failed to insert model warranty config row", err)
		}
		// Unknown component names are data errors in the payload, not
		// rows to drop silently on the write path.
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("unknown warranty component: "+name, pgx.ErrNoRows, infra.KindNotFound)
		}
	}
	return nil
}
