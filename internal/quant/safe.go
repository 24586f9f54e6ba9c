// Package quant is the null-safe numeric kernel every calculator builds
// on. Operands and results are optional floats (*float64); a nil value
// means "unknown". Every operation propagates absence instead of
// panicking or returning a sentinel: missing operands, zero divisors,
// empty series and out-of-domain parameters all yield nil. Absence is the
// single failure mode of the whole engine.
package quant

import "math"

// Ptr returns a pointer to v. Convenience for literals in call sites and
// tests.
func Ptr(v float64) *float64 { return &v }

// Val unpacks an optional float.
func Val(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SafeDiv divides a by b. Nil when either operand is absent or b is zero.
func SafeDiv(a, b *float64) *float64 {
	if a == nil || b == nil || *b == 0 {
		return nil
	}
	return finite(*a / *b)
}

// SafeMul multiplies a by b. Nil when either operand is absent.
func SafeMul(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return finite(*a * *b)
}

// SafeAdd sums all terms. Nil when any term is absent or none are given.
func SafeAdd(terms ...*float64) *float64 {
	if len(terms) == 0 {
		return nil
	}
	sum := 0.0
	for _, t := range terms {
		if t == nil {
			return nil
		}
		sum += *t
	}
	return finite(sum)
}

// SafeSub subtracts b from a. Nil when either operand is absent.
func SafeSub(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return finite(*a - *b)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// finite screens out NaN and ±Inf so they never leak into results as
// phantom values.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
