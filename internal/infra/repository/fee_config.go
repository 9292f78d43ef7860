package repository

import (
	"context"

	"coach-booking-engine/internal/domain/fees"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FeeConfig is the admin-configured commission and service-fee rates. A
// capture attempt reads it exactly once; later changes never affect an
// in-flight capture.
type FeeConfig struct {
	CommissionPercent   float64
	ServiceFeePercent   float64
	ServiceFeeFlatCents int64
}

func (c FeeConfig) ServiceFeeRates() fees.ServiceFeeRates {
	return fees.ServiceFeeRates{
		Percent:   c.ServiceFeePercent,
		FlatCents: c.ServiceFeeFlatCents,
	}
}

type FeeConfigRepository struct {
	pool *pgxpool.Pool
}

func NewFeeConfigRepository(pool *pgxpool.Pool) *FeeConfigRepository {
	return &FeeConfigRepository{pool: pool}
}

func (r *FeeConfigRepository) Active(ctx context.Context, tx db.DBTX) (FeeConfig, error) {
	var cfg FeeConfig
	err := tx.QueryRow(ctx, `
		SELECT commission_percent, service_fee_percent, service_fee_flat_cents
		FROM fee_configs
		WHERE active
		ORDER BY created_at DESC
		LIMIT 1`,
	).Scan(&cfg.CommissionPercent, &cfg.ServiceFeePercent, &cfg.ServiceFeeFlatCents)
	if err != nil {
		if isNoRows(err) {
			return FeeConfig{}, infra.WrapRepoErr("no active fee configuration", err, infra.KindNotFound)
		}
		return FeeConfig{}, infra.WrapRepoErr("failed to load fee configuration", err)
	}
	return cfg, nil
}
