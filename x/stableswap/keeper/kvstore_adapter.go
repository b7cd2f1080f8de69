package keeper

import (
	dbm "github.com/cosmos/cosmos-db"
	storetypes "cosmossdk.io/store/types"
)

// dbKVStore adapts a cosmos-db database directly into the
// cosmossdk.io/store/types.KVStore interface. The teacher wires this same
// database underneath a full CommitMultiStore; this module has no
// baseapp to construct one (spec.md §1 scopes chain/runtime plumbing out),
// so the keeper talks to the database through the bare KVStore shape
// instead — the same access pattern, one layer thinner.
//
// Like the store implementations it stands in for, a low-level database
// error is unrecoverable here and panics rather than threading an error
// return through an interface that has none.
type dbKVStore struct {
	db dbm.DB
}

// newDBKVStore wraps db as a storetypes.KVStore.
func newDBKVStore(db dbm.DB) storetypes.KVStore {
	return dbKVStore{db: db}
}

// NewMemStore returns a fresh in-memory KVStore, exported for callers (such
// as the standalone stableswapd command) that have no CommitMultiStore of
// their own to carve a module store out of.
func NewMemStore() storetypes.KVStore {
	return newDBKVStore(dbm.NewMemDB())
}

func (s dbKVStore) GetStoreType() storetypes.StoreType {
	return storetypes.StoreTypeMemory
}

func (s dbKVStore) Get(key []byte) []byte {
	v, err := s.db.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (s dbKVStore) Has(key []byte) bool {
	ok, err := s.db.Has(key)
	if err != nil {
		panic(err)
	}
	return ok
}

func (s dbKVStore) Set(key, value []byte) {
	if err := s.db.Set(key, value); err != nil {
		panic(err)
	}
}

func (s dbKVStore) Delete(key []byte) {
	if err := s.db.Delete(key); err != nil {
		panic(err)
	}
}

func (s dbKVStore) Iterator(start, end []byte) storetypes.Iterator {
	it, err := s.db.Iterator(start, end)
	if err != nil {
		panic(err)
	}
	return it
}

func (s dbKVStore) ReverseIterator(start, end []byte) storetypes.Iterator {
	it, err := s.db.ReverseIterator(start, end)
	if err != nil {
		panic(err)
	}
	return it
}
