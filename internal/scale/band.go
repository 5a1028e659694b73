// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scale

import "math"

// Band assigns Count equally sized slots within Range, without padding and
// centred in the range. With Round set, step, offset and bandwidth are
// whole pixels.
type Band struct {
	Count int        `json:"count" yaml:"count"`
	Range [2]float64 `json:"range" yaml:"range"`
	Round bool       `json:"round" yaml:"round"`
}

// NewBand returns a band scale with count slots over [r0, r1].
func NewBand(count int, r0, r1 float64, round bool) Band {
	return Band{Count: count, Range: [2]float64{r0, r1}, Round: round}
}

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 {
	step := (b.Range[1] - b.Range[0]) / math.Max(1, float64(b.Count))
	if b.Round {
		step = math.Floor(step)
	}
	return step
}

// Bandwidth returns the width of a single band.
func (b Band) Bandwidth() float64 {
	if b.Round {
		return roundHalfUp(b.Step())
	}
	return b.Step()
}

// Evaluate returns the start of band i, or NaN if i is not a valid band index.
func (b Band) Evaluate(i int) float64 {
	if i < 0 || i >= b.Count {
		return math.NaN()
	}
	return b.offset() + b.Step()*float64(i)
}

// offset centres the bands when rounding leaves unused pixels.
func (b Band) offset() float64 {
	start := b.Range[0]
	start += (b.Range[1] - start - b.Step()*float64(b.Count)) * 0.5
	if b.Round {
		start = roundHalfUp(start)
	}
	return start
}
