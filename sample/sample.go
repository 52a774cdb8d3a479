// Package sample draws the values stochastic estimators ask for: power-law
// variates, bootstrap resamples and random visiting orders.
package sample

import (
	"errors"
	"fmt"
	"math"

	"github.com/tutils/mtrand/mt"
)

var (
	ErrInvalidXmin  = errors.New("xmin must be positive")
	ErrInvalidAlpha = errors.New("alpha must be greater than 1")
)

// Pareto returns a continuous power-law variate with density proportional
// to x^-alpha on [xmin, inf).
func Pareto(g *mt.Generator, xmin, alpha float64) (float64, error) {
	if !(xmin > 0) {
		return 0, fmt.Errorf("pareto: %w: %v", ErrInvalidXmin, xmin)
	}
	if !(alpha > 1) {
		return 0, fmt.Errorf("pareto: %w: %v", ErrInvalidAlpha, alpha)
	}
	return xmin * math.Pow(1-g.Float64(), -1/(alpha-1)), nil
}

// Resample returns len(xs) values drawn from xs with replacement.
func Resample(g *mt.Generator, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		out[i] = xs[g.Uint32n(uint32(len(xs)))]
	}
	return out
}

// Shuffle permutes n elements with Fisher-Yates. n must fit in 32 bits.
func Shuffle(g *mt.Generator, n int, swap func(i, j int)) {
	if n < 0 || uint64(n) > mt.MaxUint32 {
		panic("sample: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := int(g.Uint32n(uint32(i + 1)))
		swap(i, j)
	}
}

// Perm returns a random permutation of [0, n).
func Perm(g *mt.Generator, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(g, n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}
