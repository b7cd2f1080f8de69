// Command stableswapd is a standalone thin shell over the stableswap
// keeper: it has no baseapp, no consensus, and no bank module of its own.
// Each invocation loads the JSON-persisted appState, wires a fresh
// in-memory keeper over it, performs one operation, and writes the state
// back out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the stableswapd command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stableswapd",
		Short: "Standalone stable-swap pool CLI",
		Long: `stableswapd drives the stableswap keeper's pool lifecycle
(create, mint, swap, redeem, amplification ramp, fee/yield reconciliation)
against a single JSON state file, without a surrounding chain.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().String(flagState, defaultStatePath, "path to the JSON state file")
	root.PersistentFlags().String(flagAdmin, "admin", "account id treated as the admin origin")
	root.PersistentFlags().Uint64(flagNow, 0, "current block height used for amplification ramp and genesis timestamps")
	root.PersistentFlags().String(flagConfig, "", "optional config file overriding --state/--admin/--now defaults")

	root.AddCommand(
		CmdCreatePool(),
		CmdMint(),
		CmdSwap(),
		CmdRedeemProportion(),
		CmdRedeemSingle(),
		CmdRedeemMulti(),
		CmdModifyA(),
		CmdCollectFee(),
		CmdDeposit(),
		CmdQueryPool(),
		CmdQueryAmplification(),
		CmdQueryBalance(),
		CmdQuoteSwapExact(),
		CmdQueryAssetBalance(),
	)

	return root
}
