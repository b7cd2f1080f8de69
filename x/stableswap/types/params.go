package types

import "cosmossdk.io/math"

// Fixed-at-construction global constants (spec.md §6).
const (
	// FeeDenominator is the denominator every mint/swap/redeem fee fraction
	// is expressed over.
	FeeDenominator uint64 = 1e10

	// APrecision is the scale factor between the on-wire amplification
	// value and the true amplification coefficient.
	APrecision uint64 = 100

	// PoolAssetLimit is the maximum number of assets a single pool may hold.
	PoolAssetLimit = 5

	// NewtonIterLimit bounds the D and Y Newton iterations.
	NewtonIterLimit = 255

	// MinPoolAssets is the minimum number of assets a pool must hold.
	MinPoolAssets = 2
)

// FeeDenominatorWide and APrecisionWide are the WideInt-typed forms of the
// two scale constants above, computed once rather than re-converted at
// every call site.
var (
	FeeDenominatorWide = math.NewUint(FeeDenominator)
	APrecisionWide     = math.NewUint(APrecision)
)

// ValidateFee checks a mint/swap/redeem fee fraction against
// spec.md §3 invariant 6: every fee numerator is strictly below the
// denominator.
func ValidateFee(fee math.Uint) error {
	if fee.GTE(FeeDenominatorWide) {
		return ErrArgumentsError.Wrapf("fee %s must be < fee denominator %s", fee.String(), FeeDenominatorWide.String())
	}
	return nil
}

// ValidateAssetCount checks n against the pool asset bounds in spec.md §3.
func ValidateAssetCount(n int) error {
	if n < MinPoolAssets || n > PoolAssetLimit {
		return ErrArgumentsError.Wrapf("pool asset count %d out of bounds [%d, %d]", n, MinPoolAssets, PoolAssetLimit)
	}
	return nil
}

// FeeRatio expresses a raw fee numerator (parts per FeeDenominator) as a
// LegacyDec fraction, the display form the keeper writes to its create_pool
// log line. The CLI takes and prints the raw integer numerators.
func FeeRatio(fee math.Uint) math.LegacyDec {
	return math.LegacyNewDecFromBigInt(fee.BigInt()).QuoInt64(int64(FeeDenominator))
}
