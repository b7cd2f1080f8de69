package core

import (
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// Snapshot is the read-only view of a pool's numeric state that every
// quote function in this file operates on. It never mutates; the keeper
// is responsible for turning a quote result into a new PoolRecord.
type Snapshot struct {
	Balances    []WideInt
	Precisions  []WideInt
	TotalSupply WideInt
	MintFee     WideInt
	SwapFee     WideInt
	RedeemFee   WideInt
	A           WideInt // effective, scaled amplification for this operation
}

func (s Snapshot) n() int { return len(s.Balances) }

func (s Snapshot) checkIndex(i int) error {
	if i < 0 || i >= s.n() {
		return types.ErrArgumentsError.Wrapf("asset index %d out of range [0, %d)", i, s.n())
	}
	return nil
}

// ceilQuo computes ceil(a/b) for b > 0, the rounding-up counterpart to
// CheckedQuo. GetSwapAmountExact uses it so that the input it quotes is
// rounded up, against the user; the swap and redeem quotes round their
// raw outputs down with CheckedQuo instead.
func ceilQuo(a, b WideInt) (WideInt, error) {
	if b.IsZero() {
		return WideInt{}, types.ErrMathError.Wrap("checked division by zero")
	}
	if a.IsZero() {
		return ZeroWideInt(), nil
	}
	numer, err := CheckedAdd(a, b)
	if err != nil {
		return WideInt{}, err
	}
	numer, err = CheckedSub(numer, NewWideInt(1))
	if err != nil {
		return WideInt{}, err
	}
	return CheckedQuo(numer, b)
}

// MintQuote is the pure mint-quote computation of spec.md §4.5.
type MintQuote struct {
	MintAmount     WideInt
	FeeAmount      WideInt
	NewBalances    []WideInt
	NewTotalSupply WideInt
	DIterations    int // Newton iterations the D solve took, for metrics
}

func QuoteMint(s Snapshot, rawAmounts []WideInt) (MintQuote, error) {
	n := s.n()
	if len(rawAmounts) != n {
		return MintQuote{}, types.ErrArgumentsMismatch.Wrapf("mint amounts length %d != pool asset count %d", len(rawAmounts), n)
	}

	anyNonZero := false
	newBalances := make([]WideInt, n)
	for i, raw := range rawAmounts {
		if raw.IsZero() {
			newBalances[i] = s.Balances[i]
			continue
		}
		anyNonZero = true
		scaled, err := CheckedMul(raw, s.Precisions[i])
		if err != nil {
			return MintQuote{}, err
		}
		newBalances[i], err = CheckedAdd(s.Balances[i], scaled)
		if err != nil {
			return MintQuote{}, err
		}
	}
	if !anyNonZero && s.TotalSupply.IsZero() {
		return MintQuote{}, types.ErrArgumentsError.Wrap("at least one mint amount must be non-zero for a fresh pool")
	}

	dOld := s.TotalSupply
	dNew, dIterations, err := D(newBalances, s.A)
	if err != nil {
		return MintQuote{}, err
	}
	gross, err := CheckedSub(dNew, dOld)
	if err != nil {
		return MintQuote{}, err
	}
	fee, err := CheckedMulDiv(gross, s.MintFee, types.FeeDenominatorWide)
	if err != nil {
		return MintQuote{}, err
	}
	net, err := CheckedSub(gross, fee)
	if err != nil {
		return MintQuote{}, err
	}

	return MintQuote{
		MintAmount:     net,
		FeeAmount:      fee,
		NewBalances:    newBalances,
		NewTotalSupply: dNew,
		DIterations:    dIterations,
	}, nil
}

// SwapQuote is the pure swap-quote computation of spec.md §4.5.
type SwapQuote struct {
	Dy          WideInt
	NewBalanceI WideInt
	NewBalanceJ WideInt
	YIterations int // Newton iterations the Y solve took, for metrics
}

func QuoteSwap(s Snapshot, i, j int, dxRaw WideInt) (SwapQuote, error) {
	if err := s.checkIndex(i); err != nil {
		return SwapQuote{}, err
	}
	if err := s.checkIndex(j); err != nil {
		return SwapQuote{}, err
	}
	if i == j {
		return SwapQuote{}, types.ErrArgumentsError.Wrap("swap source and destination index must differ")
	}
	if dxRaw.IsZero() {
		return SwapQuote{}, types.ErrArgumentsError.Wrap("swap amount must be non-zero")
	}

	scaled, err := CheckedMul(dxRaw, s.Precisions[i])
	if err != nil {
		return SwapQuote{}, err
	}
	newBalances := append([]WideInt(nil), s.Balances...)
	newBalances[i], err = CheckedAdd(s.Balances[i], scaled)
	if err != nil {
		return SwapQuote{}, err
	}

	y, yIterations, err := Y(newBalances, j, s.TotalSupply, s.A)
	if err != nil {
		return SwapQuote{}, err
	}
	if y.GTE(s.Balances[j]) {
		return SwapQuote{}, types.ErrMathError.Wrap("swap produced non-decreasing output balance")
	}
	dyInternal, err := CheckedSub(s.Balances[j], y)
	if err != nil {
		return SwapQuote{}, err
	}
	dyInternal, err = CheckedSub(dyInternal, NewWideInt(1))
	if err != nil {
		return SwapQuote{}, err
	}

	dyRaw, err := CheckedQuo(dyInternal, s.Precisions[j])
	if err != nil {
		return SwapQuote{}, err
	}
	if s.SwapFee.GT(ZeroWideInt()) {
		fee, err := CheckedMulDiv(dyRaw, s.SwapFee, types.FeeDenominatorWide)
		if err != nil {
			return SwapQuote{}, err
		}
		dyRaw, err = CheckedSub(dyRaw, fee)
		if err != nil {
			return SwapQuote{}, err
		}
	}

	return SwapQuote{
		Dy:          dyRaw,
		NewBalanceI: newBalances[i],
		NewBalanceJ: y,
		YIterations: yIterations,
	}, nil
}

// GetSwapAmountExact is the read-only pricing helper of SPEC_FULL.md
// "Supplemented Features" #1: given a desired post-fee output dyTarget at
// index j, it returns the dxRaw at index i that achieves at least that
// output, inverting QuoteSwap via the Y solver run against index i instead
// of j.
func GetSwapAmountExact(s Snapshot, i, j int, dyTargetRaw WideInt) (WideInt, error) {
	if err := s.checkIndex(i); err != nil {
		return WideInt{}, err
	}
	if err := s.checkIndex(j); err != nil {
		return WideInt{}, err
	}
	if i == j {
		return WideInt{}, types.ErrArgumentsError.Wrap("swap source and destination index must differ")
	}
	if dyTargetRaw.IsZero() {
		return WideInt{}, types.ErrArgumentsError.Wrap("target output amount must be non-zero")
	}

	dyBeforeFee := dyTargetRaw
	if s.SwapFee.GT(ZeroWideInt()) {
		denom, err := CheckedSub(types.FeeDenominatorWide, s.SwapFee)
		if err != nil {
			return WideInt{}, err
		}
		numer, err := CheckedMul(dyTargetRaw, types.FeeDenominatorWide)
		if err != nil {
			return WideInt{}, err
		}
		dyBeforeFee, err = ceilQuo(numer, denom)
		if err != nil {
			return WideInt{}, err
		}
	}

	dyInternal, err := CheckedMul(dyBeforeFee, s.Precisions[j])
	if err != nil {
		return WideInt{}, err
	}
	dyInternal, err = CheckedAdd(dyInternal, NewWideInt(1))
	if err != nil {
		return WideInt{}, err
	}
	y, err := CheckedSub(s.Balances[j], dyInternal)
	if err != nil {
		return WideInt{}, types.ErrMathError.Wrap("target output exceeds pool balance")
	}

	modified := append([]WideInt(nil), s.Balances...)
	modified[j] = y

	x, _, err := Y(modified, i, s.TotalSupply, s.A)
	if err != nil {
		return WideInt{}, err
	}
	if x.LTE(s.Balances[i]) {
		return WideInt{}, types.ErrMathError.Wrap("inverted swap produced non-increasing input balance")
	}
	dxInternal, err := CheckedSub(x, s.Balances[i])
	if err != nil {
		return WideInt{}, err
	}
	return ceilQuo(dxInternal, s.Precisions[i])
}

// GetBalance returns the internal (precision-scaled) balance at index i
// (SPEC_FULL.md "Supplemented Features" #2).
func GetBalance(s Snapshot, i int) (WideInt, error) {
	if err := s.checkIndex(i); err != nil {
		return WideInt{}, err
	}
	return s.Balances[i], nil
}

// RedeemProportionQuote is the pure redeem-proportion computation of
// spec.md §4.5.
type RedeemProportionQuote struct {
	OutRaw         []WideInt
	NewBalances    []WideInt
	FeeAmount      WideInt
	NewTotalSupply WideInt
	BurnAmount     WideInt
}

func QuoteRedeemProportion(s Snapshot, amount WideInt) (RedeemProportionQuote, error) {
	if amount.IsZero() {
		return RedeemProportionQuote{}, types.ErrArgumentsError.Wrap("redeem amount must be non-zero")
	}

	fee := ZeroWideInt()
	netAmount := amount
	if s.RedeemFee.GT(ZeroWideInt()) {
		var err error
		fee, err = CheckedMulDiv(amount, s.RedeemFee, types.FeeDenominatorWide)
		if err != nil {
			return RedeemProportionQuote{}, err
		}
		netAmount, err = CheckedSub(amount, fee)
		if err != nil {
			return RedeemProportionQuote{}, err
		}
	}

	n := s.n()
	outRaw := make([]WideInt, n)
	newBalances := make([]WideInt, n)
	for i, bal := range s.Balances {
		diff, err := CheckedMulDiv(bal, netAmount, s.TotalSupply)
		if err != nil {
			return RedeemProportionQuote{}, err
		}
		newBalances[i], err = CheckedSub(bal, diff)
		if err != nil {
			return RedeemProportionQuote{}, err
		}
		outRaw[i], err = CheckedQuo(diff, s.Precisions[i])
		if err != nil {
			return RedeemProportionQuote{}, err
		}
	}

	newTotalSupply, err := CheckedSub(s.TotalSupply, netAmount)
	if err != nil {
		return RedeemProportionQuote{}, err
	}

	return RedeemProportionQuote{
		OutRaw:         outRaw,
		NewBalances:    newBalances,
		FeeAmount:      fee,
		NewTotalSupply: newTotalSupply,
		BurnAmount:     netAmount,
	}, nil
}

// RedeemSingleQuote is the pure redeem-single computation of spec.md §4.5.
type RedeemSingleQuote struct {
	DyRaw          WideInt
	NewBalances    []WideInt
	FeeAmount      WideInt
	NewTotalSupply WideInt
	BurnAmount     WideInt
	YIterations    int // Newton iterations the Y solve took, for metrics
}

func QuoteRedeemSingle(s Snapshot, amount WideInt, i int) (RedeemSingleQuote, error) {
	if err := s.checkIndex(i); err != nil {
		return RedeemSingleQuote{}, err
	}
	if amount.IsZero() {
		return RedeemSingleQuote{}, types.ErrArgumentsError.Wrap("redeem amount must be non-zero")
	}

	fee := ZeroWideInt()
	netAmount := amount
	if s.RedeemFee.GT(ZeroWideInt()) {
		var err error
		fee, err = CheckedMulDiv(amount, s.RedeemFee, types.FeeDenominatorWide)
		if err != nil {
			return RedeemSingleQuote{}, err
		}
		netAmount, err = CheckedSub(amount, fee)
		if err != nil {
			return RedeemSingleQuote{}, err
		}
	}

	newTotalSupply, err := CheckedSub(s.TotalSupply, netAmount)
	if err != nil {
		return RedeemSingleQuote{}, err
	}

	y, yIterations, err := Y(s.Balances, i, newTotalSupply, s.A)
	if err != nil {
		return RedeemSingleQuote{}, err
	}
	if y.GTE(s.Balances[i]) {
		return RedeemSingleQuote{}, types.ErrMathError.Wrap("redeem-single produced non-decreasing output balance")
	}
	dyInternal, err := CheckedSub(s.Balances[i], y)
	if err != nil {
		return RedeemSingleQuote{}, err
	}
	dyInternal, err = CheckedSub(dyInternal, NewWideInt(1))
	if err != nil {
		return RedeemSingleQuote{}, err
	}
	dyRaw, err := CheckedQuo(dyInternal, s.Precisions[i])
	if err != nil {
		return RedeemSingleQuote{}, err
	}

	newBalances := append([]WideInt(nil), s.Balances...)
	newBalances[i] = y

	return RedeemSingleQuote{
		DyRaw:          dyRaw,
		NewBalances:    newBalances,
		FeeAmount:      fee,
		NewTotalSupply: newTotalSupply,
		BurnAmount:     netAmount,
		YIterations:    yIterations,
	}, nil
}

// RedeemMultiQuote is the pure redeem-multi computation of spec.md §4.5.
type RedeemMultiQuote struct {
	NewBalances    []WideInt
	FeeAmount      WideInt
	Burn           WideInt
	GrossBurn      WideInt // fee-inclusive gross burn, checked against max_burn
	NewTotalSupply WideInt
	DIterations    int // Newton iterations the D solve took, for metrics
}

func QuoteRedeemMulti(s Snapshot, rawAmounts []WideInt) (RedeemMultiQuote, error) {
	n := s.n()
	if len(rawAmounts) != n {
		return RedeemMultiQuote{}, types.ErrArgumentsMismatch.Wrapf("redeem amounts length %d != pool asset count %d", len(rawAmounts), n)
	}

	newBalances := make([]WideInt, n)
	for i, raw := range rawAmounts {
		scaled, err := CheckedMul(raw, s.Precisions[i])
		if err != nil {
			return RedeemMultiQuote{}, err
		}
		newBalances[i], err = CheckedSub(s.Balances[i], scaled)
		if err != nil {
			return RedeemMultiQuote{}, err
		}
	}

	dNew, dIterations, err := D(newBalances, s.A)
	if err != nil {
		return RedeemMultiQuote{}, err
	}
	grossBurn, err := CheckedSub(s.TotalSupply, dNew)
	if err != nil {
		return RedeemMultiQuote{}, err
	}

	// burn is the amount actually removed from total_supply; it equals
	// gross_burn even when a fee applies (spec.md §4.5: "burn = gross_burn'
	// − fee (= gross_burn)"). grossBurnAdjusted is the fee-inclusive figure
	// callers must check against max_burn.
	burn := grossBurn
	grossBurnAdjusted := grossBurn
	fee := ZeroWideInt()
	if s.RedeemFee.GT(ZeroWideInt()) {
		denom, err := CheckedSub(types.FeeDenominatorWide, s.RedeemFee)
		if err != nil {
			return RedeemMultiQuote{}, err
		}
		grossBurnAdjusted, err = CheckedMulDiv(grossBurn, types.FeeDenominatorWide, denom)
		if err != nil {
			return RedeemMultiQuote{}, err
		}
		fee, err = CheckedSub(grossBurnAdjusted, grossBurn)
		if err != nil {
			return RedeemMultiQuote{}, err
		}
	}

	newTotalSupply, err := CheckedSub(s.TotalSupply, burn)
	if err != nil {
		return RedeemMultiQuote{}, err
	}

	return RedeemMultiQuote{
		NewBalances:    newBalances,
		FeeAmount:      fee,
		Burn:           burn,
		GrossBurn:      grossBurnAdjusted,
		NewTotalSupply: newTotalSupply,
		DIterations:    dIterations,
	}, nil
}
