package keeper

import (
	"time"

	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

func (k Keeper) ramp(pool types.PoolRecord) core.AmplificationRamp {
	return core.AmplificationRamp{
		A:            pool.A,
		ABlock:       pool.ABlock,
		FutureA:      pool.FutureA,
		FutureABlock: pool.FutureABlock,
	}
}

// effectiveA resolves the pool's amplification ramp at now, read once per
// operation and treated as a constant for the remainder of the pipeline
// (spec.md §5).
func (k Keeper) effectiveA(pool types.PoolRecord, now uint64) (core.WideInt, error) {
	return core.EffectiveA(k.ramp(pool), now)
}

// EffectiveA exposes the amplification ramp resolution for read-only
// callers (queries) that need it without running a full operation pipeline.
func (k Keeper) EffectiveA(pool types.PoolRecord, now uint64) (core.WideInt, error) {
	return k.effectiveA(pool, now)
}

// ModifyA applies an authorized amplification ramp update (spec.md §4.2,
// §6 "modify_a"). origin must satisfy the configured Authorizer's admin
// predicate.
func (k Keeper) ModifyA(origin string, poolID uint64, now uint64, newFutureA core.WideInt, newFutureABlock uint64) (types.PoolRecord, error) {
	const op = "modify_a"
	defer k.metrics.observeLatency(op, time.Now())

	if !k.authorizer.IsAdmin(origin) {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, types.ErrUnauthorized.Wrap("modify_a requires admin origin")
	}

	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, err
	}

	newRamp, err := core.ModifyA(k.ramp(pool), now, newFutureA, newFutureABlock)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}
	pool.A = newRamp.A
	pool.ABlock = newRamp.ABlock
	pool.FutureA = newRamp.FutureA
	pool.FutureABlock = newRamp.FutureABlock

	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}

	k.emit(types.EventTypeAModified, map[string]string{
		types.AttributeKeyPoolID: poolIDString(poolID),
		types.AttributeKeyValue:  newFutureA.String(),
		types.AttributeKeyTime:   poolIDString(newFutureABlock),
	})

	k.metrics.observeOperation(op, "success")
	return pool, nil
}
