// SPDX-License-Identifier: MIT

// Package partition: tolerance configuration for Validate and Equal.
//
// Design goals:
//   - No global state: the tolerance is an explicit, per-call parameter.
//   - "Set once, apply broadly": build the option (or a Tolerance) once and
//     pass it to every comparison.
//   - Tolerance never influences transform arithmetic.
package partition

import "math"

// DefaultEpsilon is the tolerance used by Validate and Equal when no option is given.
const DefaultEpsilon = 1e-8

const panicEpsilonInvalid = "partition: WithEpsilon: eps must be finite, non-negative"

// Option mutates comparison options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective comparison configuration.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used by Validate and Equal.
// Panics when eps is negative, NaN or ±Inf.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Tolerance binds an epsilon once so it can be applied to many comparisons.
//
//	tol := partition.Tolerance(1e-6)
//	ok := tol.Validate(p) && tol.Equal(p, q)
type Tolerance float64

// Option returns the tolerance as a WithEpsilon option.
func (t Tolerance) Option() Option { return WithEpsilon(float64(t)) }

// Validate is p.Validate(WithEpsilon(t)).
func (t Tolerance) Validate(p *Partition) bool { return p.Validate(t.Option()) }

// Equal is a.Equal(b, WithEpsilon(t)).
func (t Tolerance) Equal(a, b *Partition) bool { return a.Equal(b, t.Option()) }
