package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func samplePool() PoolRecord {
	return PoolRecord{
		PoolID:     1,
		PoolAsset:  "lp/1",
		Assets:     []string{"usdc", "usdt"},
		Precisions: []math.Uint{math.NewUint(1e10), math.NewUint(1e10)},
		MintFee:    math.NewUint(1e7),
		SwapFee:    math.NewUint(2e7),
		RedeemFee:  math.NewUint(5e7),
		TotalSupply: math.NewUint(0),
		A:           math.NewUint(10000),
		ABlock:      0,
		FutureA:     math.NewUint(10000),
		FutureABlock: 0,
		Balances:     []math.Uint{math.NewUint(0), math.NewUint(0)},
		FeeRecipient:   "fee-acct",
		YieldRecipient: "yield-acct",
		AccountID:      "custodian-1",
		Precision:      math.NewUint(1),
	}
}

func TestPoolRecordValidate(t *testing.T) {
	require.NoError(t, samplePool().Validate())
}

func TestPoolRecordValidateMismatchedLengths(t *testing.T) {
	p := samplePool()
	p.Balances = []math.Uint{math.NewUint(0)}
	require.Error(t, p.Validate())
}

func TestPoolRecordValidateFeeTooHigh(t *testing.T) {
	p := samplePool()
	p.SwapFee = math.NewUint(FeeDenominator)
	require.Error(t, p.Validate())
}

func TestPoolRecordMarshalRoundTrip(t *testing.T) {
	p := samplePool()
	bz, err := MarshalRecord(p)
	require.NoError(t, err)

	back, err := UnmarshalRecord(bz)
	require.NoError(t, err)
	require.Equal(t, p.PoolID, back.PoolID)
	require.Equal(t, p.PoolAsset, back.PoolAsset)
	require.Equal(t, p.Assets, back.Assets)
	require.True(t, p.TotalSupply.Equal(back.TotalSupply))
	require.True(t, p.A.Equal(back.A))
}
