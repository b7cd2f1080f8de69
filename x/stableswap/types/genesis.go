package types

// GenesisState is the logical persisted state layout of spec.md §6:
// a monotonic pool counter and the map of pool id to pool record.
type GenesisState struct {
	PoolCount uint64       `json:"pool_count"`
	Pools     []PoolRecord `json:"pools"`
}

// DefaultGenesis returns an empty genesis state: no pools, counter at zero.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		PoolCount: 0,
		Pools:     []PoolRecord{},
	}
}

// Validate checks internal consistency of a genesis state: every pool
// record is individually valid, pool ids are unique, and the counter is
// at least as large as the highest pool id present (spec.md §3 "the
// counter never rewinds").
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]bool, len(gs.Pools))
	var maxID uint64
	for _, p := range gs.Pools {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.PoolID] {
			return ErrInconsistentStorage.Wrapf("duplicate pool id %d in genesis", p.PoolID)
		}
		seen[p.PoolID] = true
		if p.PoolID > maxID {
			maxID = p.PoolID
		}
	}
	if gs.PoolCount < maxID {
		return ErrInconsistentStorage.Wrapf("pool_count %d below highest pool id %d", gs.PoolCount, maxID)
	}
	return nil
}
