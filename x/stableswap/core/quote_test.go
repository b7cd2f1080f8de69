package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Balances:    []WideInt{NewWideInt(1_000_000_000_000), NewWideInt(1_000_000_000_000)},
		Precisions:  []WideInt{NewWideInt(1e10), NewWideInt(1e10)},
		TotalSupply: NewWideInt(2_000_000_000_000),
		MintFee:     NewWideInt(1e7),
		SwapFee:     NewWideInt(2e7),
		RedeemFee:   NewWideInt(5e7),
		A:           NewWideInt(10000),
	}
}

func TestQuoteMintZeroAmountsAtBootstrapFails(t *testing.T) {
	s := sampleSnapshot()
	s.TotalSupply = ZeroWideInt()
	s.Balances = []WideInt{ZeroWideInt(), ZeroWideInt()}
	_, err := QuoteMint(s, []WideInt{ZeroWideInt(), ZeroWideInt()})
	require.Error(t, err)
}

func TestQuoteMintWrongLength(t *testing.T) {
	_, err := QuoteMint(sampleSnapshot(), []WideInt{NewWideInt(1)})
	require.Error(t, err)
}

func TestQuoteSwapSameIndexFails(t *testing.T) {
	_, err := QuoteSwap(sampleSnapshot(), 0, 0, NewWideInt(1000))
	require.Error(t, err)
}

func TestQuoteSwapZeroAmountFails(t *testing.T) {
	_, err := QuoteSwap(sampleSnapshot(), 0, 1, ZeroWideInt())
	require.Error(t, err)
}

func TestQuoteSwapOutOfRangeIndex(t *testing.T) {
	_, err := QuoteSwap(sampleSnapshot(), 0, 5, NewWideInt(1000))
	require.Error(t, err)
}

func TestQuoteRedeemProportionZeroAmountFails(t *testing.T) {
	_, err := QuoteRedeemProportion(sampleSnapshot(), ZeroWideInt())
	require.Error(t, err)
}

func TestQuoteRedeemSingleZeroAmountFails(t *testing.T) {
	_, err := QuoteRedeemSingle(sampleSnapshot(), ZeroWideInt(), 0)
	require.Error(t, err)
}

func TestGetBalanceOutOfRange(t *testing.T) {
	_, err := GetBalance(sampleSnapshot(), 9)
	require.Error(t, err)
}

func TestGetBalance(t *testing.T) {
	v, err := GetBalance(sampleSnapshot(), 0)
	require.NoError(t, err)
	require.Equal(t, NewWideInt(1_000_000_000_000), v)
}

func TestGetSwapAmountExactMonotonicity(t *testing.T) {
	s := sampleSnapshot()
	// The fixture holds 100 raw units of each asset (1e12 internal / 1e10).
	targetDy := NewWideInt(10)

	dx, err := GetSwapAmountExact(s, 0, 1, targetDy)
	require.NoError(t, err)

	quote, err := QuoteSwap(s, 0, 1, dx)
	require.NoError(t, err)
	require.True(t, quote.Dy.GTE(targetDy))
}

func TestCeilQuo(t *testing.T) {
	r, err := ceilQuo(NewWideInt(10), NewWideInt(3))
	require.NoError(t, err)
	require.Equal(t, NewWideInt(4), r)

	r, err = ceilQuo(NewWideInt(9), NewWideInt(3))
	require.NoError(t, err)
	require.Equal(t, NewWideInt(3), r)
}
