package main

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/keeper"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

const (
	flagState        = "state"
	flagAdmin        = "admin"
	flagNow          = "now"
	defaultStatePath = "stableswap-state.json"
)

// session bundles the loaded appState with a keeper wired directly on top
// of it: the pool store is a fresh in-memory KVStore re-seeded from
// appState.Genesis on every invocation, and the ledger reads/writes
// appState.LedgerBalances directly, so the two stay consistent without a
// shared transaction.
type session struct {
	state *appState
	keep  keeper.Keeper
	path  string
}

func openSession(cmd *cobra.Command) (*session, error) {
	path, err := cmd.Flags().GetString(flagState)
	if err != nil {
		return nil, err
	}
	admin, err := cmd.Flags().GetString(flagAdmin)
	if err != nil {
		return nil, err
	}

	state, err := loadAppState(path)
	if err != nil {
		return nil, err
	}

	store := keeper.NewMemStore()
	logger := log.NewLogger(cmd.OutOrStdout())
	k := keeper.NewKeeper(store, fileLedger{state: state}, cliAuthorizer{admin: admin}, stdoutEventSink{logger: logger}, nil, logger)
	if err := k.InitGenesis(state.Genesis); err != nil {
		return nil, err
	}

	return &session{state: state, keep: k, path: path}, nil
}

func (s *session) close() error {
	s.state.Genesis = s.keep.ExportGenesis()
	return saveAppState(s.path, s.state)
}

func nowFlag(cmd *cobra.Command) (uint64, error) {
	return cmd.Flags().GetUint64(flagNow)
}

// parseWideInt parses a non-negative base-10 raw ledger amount into the
// keeper's wide integer type.
func parseWideInt(s string) (core.WideInt, error) {
	raw, ok := math.NewIntFromString(s)
	if !ok {
		return core.WideInt{}, types.ErrArgumentsError.Wrapf("invalid integer amount %q", s)
	}
	return core.WideIntFromRaw(raw)
}

func parseWideInts(args []string) ([]core.WideInt, error) {
	out := make([]core.WideInt, len(args))
	for i, a := range args {
		w, err := parseWideInt(a)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}
