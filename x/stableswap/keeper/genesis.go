package keeper

import (
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// InitGenesis loads a genesis state into the pool store: it writes every
// pool record first, then sets the pool counter.
func (k Keeper) InitGenesis(gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	for _, pool := range gs.Pools {
		if err := k.SetPool(pool); err != nil {
			return err
		}
	}
	k.setPoolCount(gs.PoolCount)
	k.metrics.PoolCount.Set(float64(len(gs.Pools)))
	return nil
}

// ExportGenesis reads the full pool store back into a GenesisState.
func (k Keeper) ExportGenesis() types.GenesisState {
	gs := types.GenesisState{
		PoolCount: k.poolCount(),
		Pools:     []types.PoolRecord{},
	}
	k.IteratePools(func(p types.PoolRecord) bool {
		gs.Pools = append(gs.Pools, p)
		return true
	})
	return gs
}
