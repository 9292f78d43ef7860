package fees

import (
	"math"

	"coach-booking-engine/internal/pkg/errs"
)

// All amounts are minor currency units (cents).
const (
	MaxPercent      = 30.0
	MaxFlatFeeCents = 2000
	MinPayoutCents  = 100
)

var (
	ErrNonPositivePrice = errs.New("base price must be positive")
	ErrInvalidSplit     = errs.New("commission split leaves counterparty below payout floor")
)

// LineItem is a single requester-facing fee with a human-readable label.
type LineItem struct {
	Code        string
	Label       string
	AmountCents int64
}

// ServiceFeeRates is the admin-configured requester service fee.
type ServiceFeeRates struct {
	Percent   float64
	FlatCents int64
}

// Breakdown is the full money split for one capture attempt.
type Breakdown struct {
	BasePriceCents    int64
	CommissionPercent float64
	CommissionCents   int64
	ServiceFeeCents   int64
	ServiceFees       []LineItem
	TotalChargedCents int64
	RetainedCents     int64
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > MaxPercent {
		return MaxPercent
	}
	return p
}

func clampFlat(cents int64) int64 {
	if cents < 0 {
		return 0
	}
	if cents > MaxFlatFeeCents {
		return MaxFlatFeeCents
	}
	return cents
}

// PlatformCut computes the marketplace commission on a base price. The
// percentage is clamped to [0, MaxPercent] and the cut never leaves the
// counterparty with less than one minor unit.
func PlatformCut(basePriceCents int64, commissionPercent float64) int64 {
	if basePriceCents <= 0 {
		return 0
	}

	pct := clampPercent(commissionPercent)
	cut := int64(math.Round(float64(basePriceCents) * pct / 100.0))

	if basePriceCents-cut < 1 {
		cut = basePriceCents - 1
	}
	if cut < 0 {
		cut = 0
	}
	return cut
}

// RequesterServiceFee expands the configured rates into line items. A line
// item is emitted only when its computed amount is strictly positive.
func RequesterServiceFee(basePriceCents int64, rates ServiceFeeRates) []LineItem {
	var items []LineItem

	pct := clampPercent(rates.Percent)
	if pctAmount := int64(math.Round(float64(basePriceCents) * pct / 100.0)); pctAmount > 0 {
		items = append(items, LineItem{
			Code:        "service_fee_percent",
			Label:       "Service fee",
			AmountCents: pctAmount,
		})
	}

	if flat := clampFlat(rates.FlatCents); flat > 0 {
		items = append(items, LineItem{
			Code:        "service_fee_flat",
			Label:       "Booking fee",
			AmountCents: flat,
		})
	}

	return items
}

// Validate rejects splits that are non-positive, take more than half the
// base price, or leave the counterparty under the minimum payout floor.
func Validate(basePriceCents, commissionCents int64) bool {
	if commissionCents <= 0 {
		return false
	}
	if commissionCents*2 > basePriceCents {
		return false
	}
	if basePriceCents-commissionCents < MinPayoutCents {
		return false
	}
	return true
}

// ComputeBreakdown derives the complete split for a capture attempt.
// Invariants: RetainedCents + CommissionCents == BasePriceCents and
// TotalChargedCents == BasePriceCents + ServiceFeeCents.
func ComputeBreakdown(basePriceCents int64, commissionPercent float64, rates ServiceFeeRates) (Breakdown, error) {
	if basePriceCents <= 0 {
		return Breakdown{}, ErrNonPositivePrice
	}

	commission := PlatformCut(basePriceCents, commissionPercent)
	serviceFees := RequesterServiceFee(basePriceCents, rates)

	var serviceTotal int64
	for _, item := range serviceFees {
		serviceTotal += item.AmountCents
	}

	return Breakdown{
		BasePriceCents:    basePriceCents,
		CommissionPercent: clampPercent(commissionPercent),
		CommissionCents:   commission,
		ServiceFeeCents:   serviceTotal,
		ServiceFees:       serviceFees,
		TotalChargedCents: basePriceCents + serviceTotal,
		RetainedCents:     basePriceCents - commission,
	}, nil
}
