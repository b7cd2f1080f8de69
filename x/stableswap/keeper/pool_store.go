package keeper

import (
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"

	"github.com/stableswap/stableswap/x/stableswap/types"
)

// nextPoolID returns the next pool id and advances the counter.
// Grounded on the teacher's keeper/pool.go GetNextPoolID (big-endian
// counter key), generalized to fail with InconsistentStorage on overflow
// rather than silently wrapping (spec.md §4.9).
func (k Keeper) nextPoolID() (uint64, error) {
	bz := k.store.Get(types.PoolCountKey)

	var current uint64
	if bz != nil {
		current = binary.BigEndian.Uint64(bz)
	}
	if current == ^uint64(0) {
		return 0, types.ErrInconsistentStorage.Wrap("pool counter overflow")
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, current+1)
	k.store.Set(types.PoolCountKey, next)

	return current + 1, nil
}

// poolCount returns the current value of the monotonic pool counter
// without advancing it.
func (k Keeper) poolCount() uint64 {
	bz := k.store.Get(types.PoolCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setPoolCount(count uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	k.store.Set(types.PoolCountKey, bz)
}

// GetPool loads a pool record, failing with PoolNotFound if absent
// (spec.md §4.9).
func (k Keeper) GetPool(poolID uint64) (types.PoolRecord, error) {
	bz := k.store.Get(types.PoolRecordKey(poolID))
	if bz == nil {
		return types.PoolRecord{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	return types.UnmarshalRecord(bz)
}

// SetPool persists a pool record, overwriting any prior value.
func (k Keeper) SetPool(pool types.PoolRecord) error {
	bz, err := types.MarshalRecord(pool)
	if err != nil {
		return err
	}
	k.store.Set(types.PoolRecordKey(pool.PoolID), bz)
	return nil
}

// IteratePools calls fn for every persisted pool record in ascending pool
// id order, stopping early if fn returns false.
func (k Keeper) IteratePools(fn func(types.PoolRecord) bool) {
	iterator := storetypes.KVStorePrefixIterator(k.store, types.PoolRecordPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		record, err := types.UnmarshalRecord(iterator.Value())
		if err != nil {
			panic(err)
		}
		if !fn(record) {
			return
		}
	}
}
