package core

import (
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// ann computes A·nⁿ: A multiplied by n, n times, the scaling factor every
// invariant formula below calls `Ann` (spec.md §4.3 step 2).
func ann(a WideInt, n int) (WideInt, error) {
	result := a
	nWide := NewWideInt(uint64(n))
	var err error
	for i := 0; i < n; i++ {
		result, err = CheckedMul(result, nWide)
		if err != nil {
			return WideInt{}, err
		}
	}
	return result, nil
}

// D solves the stable-swap invariant for the given internal balances and
// scaled amplification, via Newton's method (spec.md §4.3). The second
// return value is the number of Newton iterations the solve took, for
// callers that report it as a metric.
func D(balances []WideInt, a WideInt) (WideInt, int, error) {
	n := len(balances)

	s := ZeroWideInt()
	for _, x := range balances {
		var err error
		s, err = CheckedAdd(s, x)
		if err != nil {
			return WideInt{}, 0, err
		}
	}
	if s.IsZero() {
		return ZeroWideInt(), 0, nil
	}

	annVal, err := ann(a, n)
	if err != nil {
		return WideInt{}, 0, err
	}
	nWide := NewWideInt(uint64(n))
	nPlusOne := NewWideInt(uint64(n + 1))

	d := s
	for iter := 0; iter < types.NewtonIterLimit; iter++ {
		dP := d
		for _, x := range balances {
			denom, err := CheckedMul(x, nWide)
			if err != nil {
				return WideInt{}, 0, err
			}
			numer, err := CheckedMul(dP, d)
			if err != nil {
				return WideInt{}, 0, err
			}
			dP, err = CheckedQuo(numer, denom)
			if err != nil {
				return WideInt{}, 0, err
			}
		}
		dPrev := d

		annS, err := CheckedMul(annVal, s)
		if err != nil {
			return WideInt{}, 0, err
		}
		annSOverP, err := CheckedQuo(annS, types.APrecisionWide)
		if err != nil {
			return WideInt{}, 0, err
		}
		dPn, err := CheckedMul(dP, nWide)
		if err != nil {
			return WideInt{}, 0, err
		}
		numerator, err := CheckedAdd(annSOverP, dPn)
		if err != nil {
			return WideInt{}, 0, err
		}
		numerator, err = CheckedMul(numerator, d)
		if err != nil {
			return WideInt{}, 0, err
		}

		annMinusP, err := CheckedSub(annVal, types.APrecisionWide)
		if err != nil {
			return WideInt{}, 0, err
		}
		left, err := CheckedMul(annMinusP, d)
		if err != nil {
			return WideInt{}, 0, err
		}
		left, err = CheckedQuo(left, types.APrecisionWide)
		if err != nil {
			return WideInt{}, 0, err
		}
		right, err := CheckedMul(nPlusOne, dP)
		if err != nil {
			return WideInt{}, 0, err
		}
		denominator, err := CheckedAdd(left, right)
		if err != nil {
			return WideInt{}, 0, err
		}

		d, err = CheckedQuo(numerator, denominator)
		if err != nil {
			return WideInt{}, 0, err
		}

		if AbsDiff(d, dPrev).LTE(NewWideInt(1)) {
			return d, iter + 1, nil
		}
	}
	return WideInt{}, 0, types.ErrMathError.Wrap("D failed to converge within iteration limit")
}

// Y solves for the new balance at index j that keeps the invariant at
// target D, given every other balance is held fixed (spec.md §4.4). The
// second return value is the number of Newton iterations the solve took.
func Y(balances []WideInt, j int, targetD WideInt, a WideInt) (WideInt, int, error) {
	n := len(balances)
	annVal, err := ann(a, n)
	if err != nil {
		return WideInt{}, 0, err
	}
	nWide := NewWideInt(uint64(n))

	c := targetD
	sPrime := ZeroWideInt()
	for i, x := range balances {
		if i == j {
			continue
		}
		sPrime, err = CheckedAdd(sPrime, x)
		if err != nil {
			return WideInt{}, 0, err
		}
		denom, err := CheckedMul(x, nWide)
		if err != nil {
			return WideInt{}, 0, err
		}
		numer, err := CheckedMul(c, targetD)
		if err != nil {
			return WideInt{}, 0, err
		}
		c, err = CheckedQuo(numer, denom)
		if err != nil {
			return WideInt{}, 0, err
		}
	}

	cNumer, err := CheckedMul(c, targetD)
	if err != nil {
		return WideInt{}, 0, err
	}
	cNumer, err = CheckedMul(cNumer, types.APrecisionWide)
	if err != nil {
		return WideInt{}, 0, err
	}
	annN, err := CheckedMul(annVal, nWide)
	if err != nil {
		return WideInt{}, 0, err
	}
	c, err = CheckedQuo(cNumer, annN)
	if err != nil {
		return WideInt{}, 0, err
	}

	dAP, err := CheckedMul(targetD, types.APrecisionWide)
	if err != nil {
		return WideInt{}, 0, err
	}
	dAP, err = CheckedQuo(dAP, annVal)
	if err != nil {
		return WideInt{}, 0, err
	}
	b, err := CheckedAdd(sPrime, dAP)
	if err != nil {
		return WideInt{}, 0, err
	}

	y := targetD
	two := NewWideInt(2)
	for iter := 0; iter < types.NewtonIterLimit; iter++ {
		yPrev := y

		ySquared, err := CheckedMul(y, y)
		if err != nil {
			return WideInt{}, 0, err
		}
		numerator, err := CheckedAdd(ySquared, c)
		if err != nil {
			return WideInt{}, 0, err
		}

		twoY, err := CheckedMul(two, y)
		if err != nil {
			return WideInt{}, 0, err
		}
		denominator, err := CheckedAdd(twoY, b)
		if err != nil {
			return WideInt{}, 0, err
		}
		denominator, err = CheckedSub(denominator, targetD)
		if err != nil {
			return WideInt{}, 0, err
		}

		y, err = CheckedQuo(numerator, denominator)
		if err != nil {
			return WideInt{}, 0, err
		}

		if AbsDiff(y, yPrev).LTE(NewWideInt(1)) {
			return y, iter + 1, nil
		}
	}
	return WideInt{}, 0, types.ErrMathError.Wrap("Y failed to converge within iteration limit")
}
