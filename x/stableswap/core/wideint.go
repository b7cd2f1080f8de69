// Package core implements the pure stable-swap invariant math: checked wide
// integer arithmetic, the D/Y Newton solvers, the amplification ramp, and
// the mint/swap/redeem quote functions. Nothing in this package touches
// storage or has side effects — every exported function takes its inputs
// by value and returns a result or an error.
package core

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/stableswap/stableswap/x/stableswap/types"
)

// WideInt is the unsigned wide integer all pool arithmetic is defined on.
// cosmossdk.io/math.Uint wraps a big.Int internally but is bounded to 256
// bits by its own constructors, which is comfortably above the "at least
// 128 bits" the spec requires.
type WideInt = math.Uint

// wideBound is the upper bound math.Uint enforces on any value it holds.
// Checked arithmetic below mirrors that bound explicitly rather than
// relying on a panic from math.Uint's own constructors, so every overflow
// becomes a typed error instead of a runtime panic.
var wideBound = new(big.Int).Lsh(big.NewInt(1), 256)

func fromBig(b *big.Int) (WideInt, bool) {
	if b.Sign() < 0 || b.Cmp(wideBound) >= 0 {
		return WideInt{}, false
	}
	return math.NewUintFromBigInt(b), true
}

// NewWideInt constructs a WideInt from a uint64, never fails.
func NewWideInt(v uint64) WideInt {
	return math.NewUint(v)
}

// ZeroWideInt returns the additive identity.
func ZeroWideInt() WideInt {
	return math.ZeroUint()
}

// CheckedAdd returns a+b, or MathError on overflow past the wide bound.
func CheckedAdd(a, b WideInt) (WideInt, error) {
	r, ok := fromBig(new(big.Int).Add(a.BigInt(), b.BigInt()))
	if !ok {
		return WideInt{}, types.ErrMathError.Wrap("checked add overflow")
	}
	return r, nil
}

// CheckedSub returns a-b, or MathError if b > a (unsigned underflow).
func CheckedSub(a, b WideInt) (WideInt, error) {
	if a.LT(b) {
		return WideInt{}, types.ErrMathError.Wrapf("checked sub underflow: %s - %s", a.String(), b.String())
	}
	return a.Sub(b), nil
}

// CheckedMul returns a*b, or MathError on overflow past the wide bound.
func CheckedMul(a, b WideInt) (WideInt, error) {
	if a.IsZero() || b.IsZero() {
		return ZeroWideInt(), nil
	}
	r, ok := fromBig(new(big.Int).Mul(a.BigInt(), b.BigInt()))
	if !ok {
		return WideInt{}, types.ErrMathError.Wrap("checked mul overflow")
	}
	return r, nil
}

// CheckedQuo returns a/b (truncated toward zero), or MathError on division
// by zero.
func CheckedQuo(a, b WideInt) (WideInt, error) {
	if b.IsZero() {
		return WideInt{}, types.ErrMathError.Wrap("checked division by zero")
	}
	return a.Quo(b), nil
}

// CheckedMulDiv computes (a*b)/c with the intermediate product checked for
// overflow before the division, the pattern every invariant formula in
// this package relies on.
func CheckedMulDiv(a, b, c WideInt) (WideInt, error) {
	if c.IsZero() {
		return WideInt{}, types.ErrMathError.Wrap("checked division by zero")
	}
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if product.Cmp(wideBound) >= 0 {
		return WideInt{}, types.ErrMathError.Wrap("checked mul-div overflow in intermediate product")
	}
	return math.NewUintFromBigInt(new(big.Int).Quo(product, c.BigInt())), nil
}

// AbsDiff returns |a-b| without ever underflowing.
func AbsDiff(a, b WideInt) WideInt {
	if a.GT(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// WideIntFromRaw converts a raw (ledger-native) balance into a WideInt,
// checked the same way any other conversion on a user-triggered path is.
func WideIntFromRaw(raw math.Int) (WideInt, error) {
	if raw.IsNegative() {
		return WideInt{}, types.ErrMathError.Wrap("negative raw balance")
	}
	return math.NewUintFromBigInt(raw.BigInt()), nil
}

// maxRawMagnitude is the largest magnitude cosmossdk.io/math.Int can hold
// (a signed 256-bit-backed integer), used to bounds-check the conversion
// back from the unsigned wide integer.
var maxRawMagnitude = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))

// WideIntToRaw converts an internal WideInt back to the ledger's signed
// balance type, checked for the signed type's own range.
func WideIntToRaw(w WideInt) (math.Int, error) {
	b := w.BigInt()
	if b.Cmp(maxRawMagnitude) > 0 {
		return math.Int{}, types.ErrMathError.Wrap("wide integer too large for raw balance type")
	}
	return math.NewIntFromBigInt(b), nil
}
