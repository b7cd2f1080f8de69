package core

import (
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// AmplificationRamp is the four ramp fields from spec.md §3/§4.2: the
// amplification was `a` at block `aBlock` and linearly interpolates to
// `futureA` by `futureABlock`.
type AmplificationRamp struct {
	A            WideInt
	ABlock       uint64
	FutureA      WideInt
	FutureABlock uint64
}

// EffectiveA computes the on-wire scaled amplification at currentBlock,
// per spec.md §4.2. The returned value is still scaled by
// types.APrecision; callers needing the true amplification divide by that
// constant exactly once, at the point a formula calls for it.
func EffectiveA(r AmplificationRamp, currentBlock uint64) (WideInt, error) {
	if currentBlock >= r.FutureABlock {
		return r.FutureA, nil
	}
	if currentBlock < r.ABlock {
		return WideInt{}, types.ErrMathError.Wrapf("current block %d before ramp start block %d", currentBlock, r.ABlock)
	}

	deltaT := NewWideInt(currentBlock - r.ABlock)
	total := NewWideInt(r.FutureABlock - r.ABlock)

	if r.FutureA.GT(r.A) {
		diff, err := CheckedSub(r.FutureA, r.A)
		if err != nil {
			return WideInt{}, err
		}
		step, err := CheckedMulDiv(diff, deltaT, total)
		if err != nil {
			return WideInt{}, err
		}
		return CheckedAdd(r.A, step)
	}

	diff, err := CheckedSub(r.A, r.FutureA)
	if err != nil {
		return WideInt{}, err
	}
	step, err := CheckedMulDiv(diff, deltaT, total)
	if err != nil {
		return WideInt{}, err
	}
	return CheckedSub(r.A, step)
}

// ModifyA applies an authorized amplification update: it snapshots the
// ramp's current effective value at now before overwriting the target, so
// the ramp stays continuous (spec.md §4.2, §9 "Amplification updates").
func ModifyA(r AmplificationRamp, now uint64, newFutureA WideInt, newFutureABlock uint64) (AmplificationRamp, error) {
	if newFutureABlock <= r.ABlock {
		return AmplificationRamp{}, types.ErrArgumentsError.Wrapf("new future_a_block %d must be > current a_block %d", newFutureABlock, r.ABlock)
	}
	effective, err := EffectiveA(r, now)
	if err != nil {
		return AmplificationRamp{}, err
	}
	return AmplificationRamp{
		A:            effective,
		ABlock:       now,
		FutureA:      newFutureA,
		FutureABlock: newFutureABlock,
	}, nil
}
