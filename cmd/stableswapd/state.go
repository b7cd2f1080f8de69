package main

import (
	"encoding/json"
	"os"

	"cosmossdk.io/math"

	"github.com/stableswap/stableswap/x/stableswap/types"
)

// appState is the on-disk shape the standalone command persists between
// invocations: the pool registry (types.GenesisState) plus the in-memory
// ledger's own balances and durable-holder set. A real host keeps these
// in two entirely separate systems (a chain's bank module vs. this
// module's own store); the standalone command has neither, so it keeps
// both halves of the "thin shell" in one file rather than inventing a
// second persistence layer spec.md explicitly scopes out.
type appState struct {
	Genesis        types.GenesisState           `json:"genesis"`
	LedgerBalances map[string]map[string]string `json:"ledger_balances"`
	DurableHolders []string                     `json:"durable_holders"`
}

func newAppState() *appState {
	return &appState{
		Genesis:        *types.DefaultGenesis(),
		LedgerBalances: make(map[string]map[string]string),
		DurableHolders: []string{},
	}
}

func loadAppState(path string) (*appState, error) {
	bz, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return newAppState(), nil
	}
	if err != nil {
		return nil, err
	}
	var s appState
	if err := json.Unmarshal(bz, &s); err != nil {
		return nil, err
	}
	if s.LedgerBalances == nil {
		s.LedgerBalances = make(map[string]map[string]string)
	}
	return &s, nil
}

func saveAppState(path string, s *appState) error {
	bz, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}

func (s *appState) ledgerBalance(asset, account string) math.Int {
	accts, ok := s.LedgerBalances[asset]
	if !ok {
		return math.ZeroInt()
	}
	raw, ok := accts[account]
	if !ok {
		return math.ZeroInt()
	}
	v, ok := math.NewIntFromString(raw)
	if !ok {
		return math.ZeroInt()
	}
	return v
}

func (s *appState) setLedgerBalance(asset, account string, v math.Int) {
	if _, ok := s.LedgerBalances[asset]; !ok {
		s.LedgerBalances[asset] = make(map[string]string)
	}
	s.LedgerBalances[asset][account] = v.String()
}
