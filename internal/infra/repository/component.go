package repository

import (
	"context"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
)

// Components are seeded in canonical display order; queries preserve it.
const componentOrder = `array_position(
	ARRAY['Engine', 'Car Paint', 'Transmission', 'Electrical System', 'Battery Hybrid'], name)`

type ComponentRepository struct {
	db db.DBTX
}

func NewComponentRepository(pool db.DBTX) *ComponentRepository {
	return &ComponentRepository{db: pool}
}

func (r *ComponentRepository) List(ctx context.Context) ([]warranty.Component, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category FROM warranty_components ORDER BY `+componentOrder)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list warranty components", err)
	}
	defer rows.Close()

	var components []warranty.Component
	for rows.Next() {
		var c warranty.Component
		var category string
		if err := rows.Scan(&c.ID, &c.Name, &category); err != nil {
			return nil, infra.WrapRepoErr("failed to scan warranty component", err)
		}
		c.Category = warranty.Category(category)
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate warranty components", err)
	}
	return components, nil
}

func (r *ComponentRepository) LoadCatalog(ctx context.Context) (*warranty.Catalog, error) {
	components, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return warranty.NewCatalog(components), nil
}
