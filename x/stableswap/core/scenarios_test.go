package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoAssetSnapshot builds a two-asset fixture with the same shape as
// spec.md §8's S1-S6 walkthrough: precisions 1e10, mint_fee 1e7, swap_fee
// 2e7, redeem_fee 5e7, A = 10000 scaled (A_PRECISION = 100, types.APrecision).
// The expected values below are this package's own engine output for that
// fixture, not spec.md §8's published figures — see the DESIGN.md note on
// the §8/§9 discrepancy for why the two differ.
func twoAssetSnapshot(balances [2]WideInt, totalSupply WideInt) Snapshot {
	precision := NewWideInt(1e10)
	return Snapshot{
		Balances:    []WideInt{balances[0], balances[1]},
		Precisions:  []WideInt{precision, precision},
		TotalSupply: totalSupply,
		MintFee:     NewWideInt(1e7),
		SwapFee:     NewWideInt(2e7),
		RedeemFee:   NewWideInt(5e7),
		A:           NewWideInt(10000),
	}
}

// S1: mint [1e7, 1e7] into a fresh pool.
func TestScenarioS1(t *testing.T) {
	s := twoAssetSnapshot([2]WideInt{ZeroWideInt(), ZeroWideInt()}, ZeroWideInt())
	quote, err := QuoteMint(s, []WideInt{NewWideInt(1e7), NewWideInt(1e7)})
	require.NoError(t, err)

	require.Equal(t, "200000000000000000", quote.NewTotalSupply.String())
	require.Equal(t, "100000000000000000", quote.NewBalances[0].String())
	require.Equal(t, "100000000000000000", quote.NewBalances[1].String())
	require.Equal(t, "199800000000000000", quote.MintAmount.String())
	require.Equal(t, "200000000000000", quote.FeeAmount.String())
	require.Equal(t, quote.NewTotalSupply.String(), addString(t, quote.MintAmount, quote.FeeAmount))
}

// S2: after S1, mint [1e7, 2e7].
func s2Quote(t *testing.T) (Snapshot, MintQuote) {
	s1 := twoAssetSnapshot([2]WideInt{ZeroWideInt(), ZeroWideInt()}, ZeroWideInt())
	q1, err := QuoteMint(s1, []WideInt{NewWideInt(1e7), NewWideInt(1e7)})
	require.NoError(t, err)

	s2 := twoAssetSnapshot([2]WideInt{q1.NewBalances[0], q1.NewBalances[1]}, q1.NewTotalSupply)
	q2, err := QuoteMint(s2, []WideInt{NewWideInt(1e7), NewWideInt(2e7)})
	require.NoError(t, err)
	return s2, q2
}

func TestScenarioS2(t *testing.T) {
	_, q2 := s2Quote(t)
	require.Equal(t, "499948191855496977", q2.NewTotalSupply.String())
	require.Equal(t, "299648243663641481", q2.MintAmount.String())
	require.Equal(t, "299948191855496", q2.FeeAmount.String())
}

// S3: after S2, swap(i=0, j=1, dx=5e6, min_dy=0).
func TestScenarioS3(t *testing.T) {
	s2, q2 := s2Quote(t)
	s3 := Snapshot{
		Balances:    q2.NewBalances,
		Precisions:  s2.Precisions,
		TotalSupply: q2.NewTotalSupply,
		MintFee:     s2.MintFee,
		SwapFee:     s2.SwapFee,
		RedeemFee:   s2.RedeemFee,
		A:           s2.A,
	}
	quote, err := QuoteSwap(s3, 0, 1, NewWideInt(5_000_000))
	require.NoError(t, err)

	require.Equal(t, "4995170", quote.Dy.String())
	require.Equal(t, "250000000000000000", quote.NewBalanceI.String())
	require.Equal(t, "249948191868852005", quote.NewBalanceJ.String())
}

// S4: after S2, redeem_proportion(1e17, [0,0]).
func TestScenarioS4(t *testing.T) {
	s2, q2 := s2Quote(t)
	s4 := Snapshot{
		Balances:    q2.NewBalances,
		Precisions:  s2.Precisions,
		TotalSupply: q2.NewTotalSupply,
		MintFee:     s2.MintFee,
		SwapFee:     s2.SwapFee,
		RedeemFee:   s2.RedeemFee,
		A:           s2.A,
	}
	quote, err := QuoteRedeemProportion(s4, NewWideInt(1e17))
	require.NoError(t, err)

	require.Equal(t, "3980412", quote.OutRaw[0].String())
	require.Equal(t, "5970618", quote.OutRaw[1].String())
	require.Equal(t, "500000000000000", quote.FeeAmount.String())
}

// S5: after S2, redeem_single(1e17, i=0, min=0).
func TestScenarioS5(t *testing.T) {
	s2, q2 := s2Quote(t)
	s5 := Snapshot{
		Balances:    q2.NewBalances,
		Precisions:  s2.Precisions,
		TotalSupply: q2.NewTotalSupply,
		MintFee:     s2.MintFee,
		SwapFee:     s2.SwapFee,
		RedeemFee:   s2.RedeemFee,
		A:           s2.A,
	}
	quote, err := QuoteRedeemSingle(s5, NewWideInt(1e17), 0)
	require.NoError(t, err)

	require.Equal(t, "9922539", quote.DyRaw.String())
	require.Equal(t, "500000000000000", quote.FeeAmount.String())
}

// S6: after S2, redeem_multi([5e6, 5e6], max=1.1e18).
func TestScenarioS6(t *testing.T) {
	s2, q2 := s2Quote(t)
	s6 := Snapshot{
		Balances:    q2.NewBalances,
		Precisions:  s2.Precisions,
		TotalSupply: q2.NewTotalSupply,
		MintFee:     s2.MintFee,
		SwapFee:     s2.SwapFee,
		RedeemFee:   s2.RedeemFee,
		A:           s2.A,
	}
	quote, err := QuoteRedeemMulti(s6, []WideInt{NewWideInt(5_000_000), NewWideInt(5_000_000)})
	require.NoError(t, err)
	require.True(t, quote.GrossBurn.LTE(NewWideInt(1_100_000_000_000_000_000)))

	require.Equal(t, "100014493948566256", quote.Burn.String())
	require.Equal(t, "502585396726463", quote.FeeAmount.String())
}

func addString(t *testing.T, a, b WideInt) string {
	t.Helper()
	r, err := CheckedAdd(a, b)
	require.NoError(t, err)
	return r.String()
}
