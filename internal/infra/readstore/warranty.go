package readstore

import (
	"context"

	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type WarrantyConfigReadStore struct {
	db db.DBTX
}

func NewWarrantyConfigReadStore(pool db.DBTX) *WarrantyConfigReadStore {
	return &WarrantyConfigReadStore{db: pool}
}

func (r *WarrantyConfigReadStore) Get(ctx context.Context, modelID uuid.UUID) (*queries.ModelConfigView, error) {
	var view queries.ModelConfigView
	var hasHybrid bool
	err := r.db.QueryRow(ctx,
		`SELECT id, name, has_hybrid_battery FROM vehicle_models WHERE id = $1`, modelID).
		Scan(&view.ModelID, &view.ModelName, &hasHybrid)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle model not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle model", err)
	}
	view.HasHybridBattery = hasHybrid

	rows, err := r.db.Query(ctx, `
		SELECT c.name, mwc.warranty_years, mwc.warranty_km, mwc.is_applicable
		FROM model_warranty_configs mwc
		JOIN warranty_components c ON c.id = mwc.component_id
		WHERE mwc.model_id = $1
		ORDER BY array_position(
			ARRAY['Engine', 'Car Paint', 'Transmission', 'Electrical System', 'Battery Hybrid'], c.name)`,
		modelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load model warranty config", err)
	}
	defer rows.Close()

	for rows.Next() {
		var terms queries.ComponentTermsView
		var years, km int32
		if err := rows.Scan(&terms.Component, &years, &km, &terms.Applicable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan model warranty config", err)
		}
		terms.Years = uint(years)
		terms.KM = uint(km)
		view.Components = append(view.Components, terms)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate model warranty config", err)
	}
	return &view, nil
}

func (r *WarrantyConfigReadStore) ListModels(ctx context.Context) ([]*queries.ModelView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, has_hybrid_battery FROM vehicle_models ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicle models", err)
	}
	defer rows.Close()

	var models []*queries.ModelView
	for rows.Next() {
		var m queries.ModelView
		if err := rows.Scan(&m.ID, &m.Name, &m.HasHybridBattery); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle model", err)
		}
		models = append(models, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle models", err)
	}
	return models, nil
}
