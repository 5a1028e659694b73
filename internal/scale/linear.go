// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scale

import "math"

// DefaultTickCount is the approximate number of ticks an axis asks for.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Linear maps Domain linearly onto Range.
type Linear struct {
	Domain [2]float64 `json:"domain" yaml:"domain"`
	Range  [2]float64 `json:"range" yaml:"range"`
}

// NewLinear returns a linear scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Evaluate maps x from the domain into the range. A collapsed domain maps
// every input onto the middle of the range.
func (l Linear) Evaluate(x float64) float64 {
	return interpolate(l.Range[0], l.Range[1], normalize(l.Domain[0], l.Domain[1], x))
}

// Invert maps y from the range back into the domain.
func (l Linear) Invert(y float64) float64 {
	return interpolate(l.Domain[0], l.Domain[1], normalize(l.Range[0], l.Range[1], y))
}

// Ticks returns roughly count human friendly values within the domain,
// spaced at 1, 2 or 5 times a power of ten.
func (l Linear) Ticks(count int) []float64 {
	start, stop := l.Domain[0], l.Domain[1]
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	i1, i2, inc := tickSpec(start, stop, float64(count))
	if i2 < i1 {
		return nil
	}
	ticks := make([]float64, 0, int(i2-i1)+1)
	for i := i1; i <= i2; i++ {
		if inc < 0 {
			ticks = append(ticks, i/-inc)
			continue
		}
		ticks = append(ticks, i*inc)
	}
	if reverse {
		for a, b := 0, len(ticks)-1; a < b; a, b = a+1, b-1 {
			ticks[a], ticks[b] = ticks[b], ticks[a]
		}
	}
	return ticks
}

// tickSpec returns the first and last tick index and the increment. A
// negative increment means the ticks are i / -inc, which keeps fractional
// steps exact.
func tickSpec(start, stop, count float64) (float64, float64, float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}

	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = roundHalfUp(start * inc)
		i2 = roundHalfUp(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = roundHalfUp(start / inc)
		i2 = roundHalfUp(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 0.5 && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func normalize(a, b, x float64) float64 {
	if b-a == 0 {
		return 0.5
	}
	return (x - a) / (b - a)
}

func interpolate(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
