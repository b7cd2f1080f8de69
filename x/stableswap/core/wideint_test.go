package core

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestCheckedAddOverflow(t *testing.T) {
	max := math.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
	_, err := CheckedAdd(max, NewWideInt(1))
	require.Error(t, err)
}

func TestCheckedSubUnderflow(t *testing.T) {
	_, err := CheckedSub(NewWideInt(1), NewWideInt(2))
	require.Error(t, err)
}

func TestCheckedMulZero(t *testing.T) {
	r, err := CheckedMul(ZeroWideInt(), NewWideInt(12345))
	require.NoError(t, err)
	require.True(t, r.IsZero())
}

func TestCheckedQuoByZero(t *testing.T) {
	_, err := CheckedQuo(NewWideInt(10), ZeroWideInt())
	require.Error(t, err)
}

func TestCheckedMulDiv(t *testing.T) {
	r, err := CheckedMulDiv(NewWideInt(10), NewWideInt(3), NewWideInt(5))
	require.NoError(t, err)
	require.Equal(t, NewWideInt(6), r)
}

func TestAbsDiff(t *testing.T) {
	require.Equal(t, NewWideInt(5), AbsDiff(NewWideInt(10), NewWideInt(5)))
	require.Equal(t, NewWideInt(5), AbsDiff(NewWideInt(5), NewWideInt(10)))
}

func TestWideIntRawRoundTrip(t *testing.T) {
	raw := math.NewInt(42)
	wide, err := WideIntFromRaw(raw)
	require.NoError(t, err)
	back, err := WideIntToRaw(wide)
	require.NoError(t, err)
	require.True(t, raw.Equal(back))
}

func TestWideIntFromRawNegative(t *testing.T) {
	_, err := WideIntFromRaw(math.NewInt(-1))
	require.Error(t, err)
}
