package keeper

import (
	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// collectYield reconciles upward-only: it replaces the book's balances
// with the true on-ledger balances, and if the resulting invariant value
// has grown, mints the difference as LP to the yield recipient
// (spec.md §4.7). Called at the start of every operation's pipeline,
// before any quote is computed.
func (k Keeper) collectYield(pool types.PoolRecord, effectiveA core.WideInt) (types.PoolRecord, error) {
	balances := make([]core.WideInt, pool.NAssets())
	for i, asset := range pool.Assets {
		raw := k.ledger.Balance(asset, pool.AccountID)
		wide, err := core.WideIntFromRaw(raw)
		if err != nil {
			return pool, err
		}
		internal, err := core.CheckedMul(wide, pool.Precisions[i])
		if err != nil {
			return pool, err
		}
		balances[i] = internal
	}

	dNew, iterations, err := core.D(balances, effectiveA)
	k.metrics.observeNewtonIterations("D", iterations)
	if err != nil {
		return pool, err
	}

	pool.Balances = balances

	if dNew.LT(pool.TotalSupply) {
		return pool, types.ErrInvalidPoolValue.Wrapf("pool %d: reconciled D %s below total_supply %s", pool.PoolID, dNew.String(), pool.TotalSupply.String())
	}
	if dNew.GT(pool.TotalSupply) {
		diff, err := core.CheckedSub(dNew, pool.TotalSupply)
		if err != nil {
			return pool, err
		}
		rawDiff, err := core.WideIntToRaw(diff)
		if err != nil {
			return pool, err
		}
		if err := k.ledger.MintInto(pool.PoolAsset, pool.YieldRecipient, rawDiff); err != nil {
			return pool, types.ErrLedgerFailure.Wrapf("mint yield: %s", err)
		}
		pool.TotalSupply = dNew
		k.emit(types.EventTypeYieldCollected, map[string]string{
			types.AttributeKeyPoolID:      poolIDString(pool.PoolID),
			types.AttributeKeyYieldAmount: diff.String(),
			types.AttributeKeyTotalSupply: dNew.String(),
		})
	}

	return pool, nil
}
