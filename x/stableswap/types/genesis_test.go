package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultGenesisValidates(t *testing.T) {
	require.NoError(t, DefaultGenesis().Validate())
}

func TestGenesisDuplicatePoolID(t *testing.T) {
	p := samplePool()
	gs := GenesisState{PoolCount: 2, Pools: []PoolRecord{p, p}}
	require.Error(t, gs.Validate())
}

func TestGenesisCounterBelowHighestID(t *testing.T) {
	p := samplePool()
	gs := GenesisState{PoolCount: 0, Pools: []PoolRecord{p}}
	require.Error(t, gs.Validate())
}

func TestGenesisValid(t *testing.T) {
	p := samplePool()
	gs := GenesisState{PoolCount: 1, Pools: []PoolRecord{p}}
	require.NoError(t, gs.Validate())
}
