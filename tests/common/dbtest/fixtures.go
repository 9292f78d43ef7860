//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference fee rates used by every test: 10% commission, 5% service fee,
// no flat component. A $100.00 session charges $105.00 and retains $90.00.
const (
	testCommissionPercent = 10.0
	testServiceFeePercent = 5.0
	testServiceFeeFlat    = 0
)

// CreateTestPaymentProfile inserts the processor identities for a party.
// Pass an empty payoutAccountRef for a party that cannot receive payouts yet.
func CreateTestPaymentProfile(t *testing.T, db DBLike, partyID uuid.UUID, payoutAccountRef string) {
	t.Helper()

	ctx := context.Background()
	customerRef := "cus_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:14]

	var payout *string
	if payoutAccountRef != "" {
		payout = &payoutAccountRef
	}

	_, err := db.Exec(ctx, `
		INSERT INTO payment_profiles (party_id, customer_ref, payout_account_ref)
		VALUES ($1, $2, $3)
		ON CONFLICT (party_id) DO UPDATE SET payout_account_ref = EXCLUDED.payout_account_ref`,
		partyID, customerRef, payout)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO fee_configs (commission_percent, service_fee_percent, service_fee_flat_cents, active)
		SELECT $1, $2, $3, true
		WHERE NOT EXISTS (SELECT 1 FROM fee_configs WHERE active)`,
		testCommissionPercent, testServiceFeePercent, testServiceFeeFlat)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
