package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestValidateFee(t *testing.T) {
	require.NoError(t, ValidateFee(math.NewUint(0)))
	require.NoError(t, ValidateFee(math.NewUint(FeeDenominator-1)))
	require.Error(t, ValidateFee(math.NewUint(FeeDenominator)))
	require.Error(t, ValidateFee(math.NewUint(FeeDenominator+1)))
}

func TestValidateAssetCount(t *testing.T) {
	require.Error(t, ValidateAssetCount(1))
	require.NoError(t, ValidateAssetCount(2))
	require.NoError(t, ValidateAssetCount(PoolAssetLimit))
	require.Error(t, ValidateAssetCount(PoolAssetLimit+1))
}

func TestFeeRatio(t *testing.T) {
	require.True(t, FeeRatio(math.NewUint(0)).IsZero())
	// 1e7 / 1e10 == 0.001
	require.Equal(t, math.LegacyNewDecWithPrec(1, 3).String(), FeeRatio(math.NewUint(1e7)).String())
}
