// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scale

import (
	"math"
	"sort"
)

// Threshold maps a value onto Range using the sorted cutoffs in Domain.
// Values below Domain[0] map to Range[0], values at or above Domain[i-1]
// and below Domain[i] map to Range[i].
type Threshold struct {
	Domain []float64 `json:"domain" yaml:"domain"`
	Range  []string  `json:"range" yaml:"range"`
}

// NewThreshold returns a threshold scale. len(rng) is expected to be
// len(domain)+1.
func NewThreshold(domain []float64, rng []string) Threshold {
	return Threshold{Domain: domain, Range: rng}
}

// Evaluate returns the output for v. NaN and an empty range yield "".
func (t Threshold) Evaluate(v float64) string {
	if len(t.Range) == 0 || math.IsNaN(v) {
		return ""
	}
	return t.Range[t.bucket(v)]
}

func (t Threshold) bucket(v float64) int {
	n := min(len(t.Domain), len(t.Range)-1)
	return sort.Search(n, func(i int) bool { return t.Domain[i] > v })
}

// ExtentAt returns the domain interval [lo, hi) of bucket i. Open ends are
// returned as -Inf and +Inf, an unknown bucket as NaN, NaN.
func (t Threshold) ExtentAt(i int) (float64, float64) {
	if i < 0 || i >= len(t.Range) {
		return math.NaN(), math.NaN()
	}
	lo, hi := math.Inf(-1), math.Inf(1)
	if i > 0 && i-1 < len(t.Domain) {
		lo = t.Domain[i-1]
	}
	if i < len(t.Domain) {
		hi = t.Domain[i]
	}
	return lo, hi
}
