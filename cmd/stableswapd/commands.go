package main

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// CmdCreatePool registers a new pool.
func CmdCreatePool() *cobra.Command {
	var precisionsCSV, feeRecipient, yieldRecipient string
	var mintFee, swapFee, redeemFee, initialA, precision uint64

	cmd := &cobra.Command{
		Use:   "create-pool [pool-asset] [asset1,asset2,...]",
		Short: "Create a new stable-swap pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			admin, err := cmd.Flags().GetString(flagAdmin)
			if err != nil {
				return err
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}

			assets := splitCSV(args[1])
			precStrs := splitCSV(precisionsCSV)
			if len(precStrs) != len(assets) {
				return fmt.Errorf("precisions count %d must match asset count %d", len(precStrs), len(assets))
			}
			precisions := make([]core.WideInt, len(precStrs))
			for i, p := range precStrs {
				v, err := strconv.ParseUint(p, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid precision %q: %w", p, err)
				}
				precisions[i] = core.NewWideInt(v)
			}

			pool, err := sess.keep.CreatePool(
				admin, args[0], assets, precisions,
				core.NewWideInt(mintFee), core.NewWideInt(swapFee), core.NewWideInt(redeemFee),
				core.NewWideInt(initialA), feeRecipient, yieldRecipient, core.NewWideInt(precision), now,
			)
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pool %d created, custodian %s\n", pool.PoolID, pool.AccountID)
			return nil
		},
	}

	cmd.Flags().StringVar(&precisionsCSV, "precisions", "", "comma-separated precision multipliers, one per asset")
	cmd.Flags().StringVar(&feeRecipient, "fee-recipient", "", "account to receive mint/swap/redeem fees")
	cmd.Flags().StringVar(&yieldRecipient, "yield-recipient", "", "account to receive yield reconciliation")
	cmd.Flags().Uint64Var(&mintFee, "mint-fee", 0, "mint fee, parts per 1e10")
	cmd.Flags().Uint64Var(&swapFee, "swap-fee", 0, "swap fee, parts per 1e10")
	cmd.Flags().Uint64Var(&redeemFee, "redeem-fee", 0, "redeem fee, parts per 1e10")
	cmd.Flags().Uint64Var(&initialA, "initial-a", 100, "initial amplification coefficient (A precision units)")
	cmd.Flags().Uint64Var(&precision, "precision", 1, "pool-asset precision multiplier")
	return cmd
}

// CmdDeposit credits an asset balance to an account on the file ledger,
// the standalone shell's substitute for a bank module faucet: there is no
// external minting authority to call instead.
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [asset] [account] [amount]",
		Short: "Credit a raw asset balance to an account (test/bootstrap helper)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[2])
			}
			if err := (fileLedger{state: sess.state}).MintInto(args[0], args[1], amount); err != nil {
				return err
			}
			return sess.close()
		},
	}
	return cmd
}

// CmdMint executes the mint operation.
func CmdMint() *cobra.Command {
	var minMint string
	cmd := &cobra.Command{
		Use:   "mint [from] [pool-id] [amount1,amount2,...]",
		Short: "Deposit assets into a pool and mint LP tokens",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			amounts, err := parseWideInts(splitCSV(args[2]))
			if err != nil {
				return err
			}
			minMintAmount, err := parseWideInt(minMint)
			if err != nil {
				return err
			}

			pool, quote, err := sess.keep.Mint(args[0], poolID, now, amounts, minMintAmount)
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "minted %s LP (fee %s), pool total supply now %s\n",
				quote.MintAmount.String(), quote.FeeAmount.String(), pool.TotalSupply.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&minMint, "min-mint-amount", "0", "minimum acceptable LP mint amount")
	return cmd
}

// CmdSwap executes the swap operation.
func CmdSwap() *cobra.Command {
	var minDy string
	cmd := &cobra.Command{
		Use:   "swap [from] [pool-id] [i] [j] [dx]",
		Short: "Swap asset i for asset j within a pool",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			i, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid asset index i: %w", err)
			}
			j, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid asset index j: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			dx, err := parseWideInt(args[4])
			if err != nil {
				return err
			}
			minDyAmount, err := parseWideInt(minDy)
			if err != nil {
				return err
			}

			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}

			_, quote, err := sess.keep.Swap(args[0], poolID, now, i, j, dx, minDyAmount, pool.NAssets())
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "swapped %s of asset %d for %s of asset %d\n", dx.String(), i, quote.Dy.String(), j)
			return nil
		},
	}
	cmd.Flags().StringVar(&minDy, "min-dy", "0", "minimum acceptable output amount")
	return cmd
}

// CmdRedeemProportion executes the redeem-proportion operation.
func CmdRedeemProportion() *cobra.Command {
	var minAmountsCSV string
	cmd := &cobra.Command{
		Use:   "redeem-proportion [from] [pool-id] [amount]",
		Short: "Burn LP tokens for a proportional share of every pool asset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			amount, err := parseWideInt(args[2])
			if err != nil {
				return err
			}

			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}
			minAmounts := make([]core.WideInt, pool.NAssets())
			if minAmountsCSV != "" {
				minAmounts, err = parseWideInts(splitCSV(minAmountsCSV))
				if err != nil {
					return err
				}
				if len(minAmounts) != pool.NAssets() {
					return fmt.Errorf("min-amounts count %d must match pool asset count %d", len(minAmounts), pool.NAssets())
				}
			} else {
				for i := range minAmounts {
					minAmounts[i] = core.ZeroWideInt()
				}
			}

			_, quote, err := sess.keep.RedeemProportion(args[0], poolID, now, amount, minAmounts)
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "redeemed, burned %s LP (fee %s)\n", quote.BurnAmount.String(), quote.FeeAmount.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&minAmountsCSV, "min-amounts", "", "comma-separated minimum output per asset")
	return cmd
}

// CmdRedeemSingle executes the redeem-single operation.
func CmdRedeemSingle() *cobra.Command {
	var minAmount string
	cmd := &cobra.Command{
		Use:   "redeem-single [from] [pool-id] [amount] [i]",
		Short: "Burn LP tokens for a single pool asset",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			amount, err := parseWideInt(args[2])
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid asset index i: %w", err)
			}
			minRedeemAmount, err := parseWideInt(minAmount)
			if err != nil {
				return err
			}

			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}

			_, quote, err := sess.keep.RedeemSingle(args[0], poolID, now, amount, i, minRedeemAmount, pool.NAssets())
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "redeemed %s of asset %d, burned %s LP (fee %s)\n",
				quote.DyRaw.String(), i, quote.BurnAmount.String(), quote.FeeAmount.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&minAmount, "min-redeem-amount", "0", "minimum acceptable output amount")
	return cmd
}

// CmdRedeemMulti executes the redeem-multi operation.
func CmdRedeemMulti() *cobra.Command {
	var maxBurn string
	cmd := &cobra.Command{
		Use:   "redeem-multi [from] [pool-id] [amount1,amount2,...]",
		Short: "Burn LP tokens for a caller-chosen multi-asset basket",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			amounts, err := parseWideInts(splitCSV(args[2]))
			if err != nil {
				return err
			}
			maxRedeemAmount, err := parseWideInt(maxBurn)
			if err != nil {
				return err
			}

			_, quote, err := sess.keep.RedeemMulti(args[0], poolID, now, amounts, maxRedeemAmount)
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "redeemed multi, burned %s LP (gross %s, fee %s)\n",
				quote.Burn.String(), quote.GrossBurn.String(), quote.FeeAmount.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&maxBurn, "max-redeem-amount", "0", "maximum acceptable fee-inclusive LP burn; with the default 0 any redeem that burns LP is rejected")
	return cmd
}

// CmdModifyA executes the amplification ramp update.
func CmdModifyA() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify-a [pool-id] [future-a] [future-a-block]",
		Short: "Schedule an amplification coefficient ramp (admin only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			admin, err := cmd.Flags().GetString(flagAdmin)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			futureA, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid future-a: %w", err)
			}
			futureABlock, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid future-a-block: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}

			pool, err := sess.keep.ModifyA(admin, poolID, now, core.NewWideInt(futureA), futureABlock)
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pool %d ramp scheduled: a=%s future_a=%s future_a_block=%d\n",
				pool.PoolID, pool.A.String(), pool.FutureA.String(), pool.FutureABlock)
			return nil
		},
	}
	return cmd
}

// CmdCollectFee executes the standalone fee reconciliation maintenance op.
func CmdCollectFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect-fee [pool-id]",
		Short: "Reconcile accrued fee against the pool's recorded total supply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}

			pool, err := sess.keep.CollectFee(poolID, now)
			if err != nil {
				return err
			}
			if err := sess.close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pool %d total supply now %s\n", pool.PoolID, pool.TotalSupply.String())
			return nil
		},
	}
	return cmd
}

// CmdQueryPool prints a pool's full record.
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-pool [pool-id]",
		Short: "Print a pool's stored record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}
			bz, err := types.MarshalRecord(pool)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
	return cmd
}

// CmdQueryAmplification prints a pool's effective amplification coefficient
// at the given --now height.
func CmdQueryAmplification() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-amplification [pool-id]",
		Short: "Print a pool's effective amplification coefficient at --now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}
			effectiveA, err := sess.keep.EffectiveA(pool, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), effectiveA.String())
			return nil
		},
	}
	return cmd
}

// CmdQuoteSwapExact prints the dx required at index i to obtain at least
// dyTarget at index j, without mutating anything.
func CmdQuoteSwapExact() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-swap-exact [pool-id] [i] [j] [dy-target]",
		Short: "Quote the input amount needed to achieve a target output amount",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid asset index i: %w", err)
			}
			j, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid asset index j: %w", err)
			}
			dyTarget, err := parseWideInt(args[3])
			if err != nil {
				return err
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}

			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}
			effectiveA, err := sess.keep.EffectiveA(pool, now)
			if err != nil {
				return err
			}
			dx, err := core.GetSwapAmountExact(sess.keep.Snapshot(pool, effectiveA), i, j, dyTarget)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dx.String())
			return nil
		},
	}
	return cmd
}

// CmdQueryAssetBalance prints the internal, precision-scaled balance of one
// pool asset.
func CmdQueryAssetBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-asset-balance [pool-id] [i]",
		Short: "Print a pool asset's internal precision-scaled balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid asset index i: %w", err)
			}
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			pool, err := sess.keep.GetPool(poolID)
			if err != nil {
				return err
			}
			effectiveA, err := sess.keep.EffectiveA(pool, now)
			if err != nil {
				return err
			}
			bal, err := core.GetBalance(sess.keep.Snapshot(pool, effectiveA), i)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bal.String())
			return nil
		},
	}
	return cmd
}

// CmdQueryBalance prints an account's raw ledger balance for one asset.
func CmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-balance [asset] [account]",
		Short: "Print an account's raw ledger balance for one asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}
			bal := (fileLedger{state: sess.state}).Balance(args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), bal.String())
			return nil
		},
	}
	return cmd
}
