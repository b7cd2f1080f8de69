package keeper

import (
	"time"

	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// collectFee reconciles upward-only against the current book (not the
// ledger): any positive drift between the invariant recomputed from the
// post-operation balances and the recorded total_supply is minted as LP
// to the fee recipient (spec.md §4.8). Called at the end of every
// operation's pipeline, after the book has already been updated to the
// quote's outputs. A no-op arm (dNew <= total_supply) never fails the
// caller's operation — it is reachable only from rounding artefacts.
func (k Keeper) collectFee(pool types.PoolRecord, effectiveA core.WideInt) (types.PoolRecord, error) {
	dNew, iterations, err := core.D(pool.Balances, effectiveA)
	k.metrics.observeNewtonIterations("D", iterations)
	if err != nil {
		return pool, err
	}
	if dNew.LTE(pool.TotalSupply) {
		return pool, nil
	}

	fee, err := core.CheckedSub(dNew, pool.TotalSupply)
	if err != nil {
		return pool, err
	}
	rawFee, err := core.WideIntToRaw(fee)
	if err != nil {
		return pool, err
	}
	if err := k.ledger.MintInto(pool.PoolAsset, pool.FeeRecipient, rawFee); err != nil {
		return pool, types.ErrLedgerFailure.Wrapf("mint fee: %s", err)
	}
	pool.TotalSupply = dNew

	k.emit(types.EventTypeFeeCollected, map[string]string{
		types.AttributeKeyPoolID:    poolIDString(pool.PoolID),
		types.AttributeKeyFeeAmount: fee.String(),
		types.AttributeKeyTotalSupply: dNew.String(),
	})

	return pool, nil
}

// CollectFee is the standalone maintenance operation of spec.md §6: a
// caller may invoke fee reconciliation directly against a pool's current
// book, independent of any mint/swap/redeem.
func (k Keeper) CollectFee(poolID uint64, now uint64) (types.PoolRecord, error) {
	const op = "collect_fee"
	defer k.metrics.observeLatency(op, time.Now())
	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, err
	}

	effectiveA, err := k.effectiveA(pool, now)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, err
	}

	pool, err = k.collectFee(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}

	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}
	k.metrics.observeOperation(op, "success")
	return pool, nil
}
