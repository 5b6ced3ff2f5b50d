package repository

import (
	"context"

	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(pool db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: pool}
}

func (r *CustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer existence", err)
	}
	return exists, nil
}
