// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/wneessen/heatmap/internal/dataset"
)

// BuildColorScale splits the temperature range of obs into bucketCount
// evenly spaced buckets. A nil palette selects DefaultPalette.
func BuildColorScale(base float64, obs []dataset.Observation, bucketCount int, palette []string) (ColorScale, error) {
	if len(obs) == 0 {
		return ColorScale{}, fmt.Errorf("%w: observation list is empty", dataset.ErrInvalidDataset)
	}
	if palette == nil {
		palette = DefaultPalette
	}
	if bucketCount < 2 {
		return ColorScale{}, fmt.Errorf("%w: at least 2 buckets are required, got %d", ErrInvalidPalette,
			bucketCount)
	}
	if len(palette) != bucketCount {
		return ColorScale{}, fmt.Errorf("%w: %d buckets need %d colours, got %d", ErrInvalidPalette,
			bucketCount, bucketCount, len(palette))
	}

	variances := make([]float64, len(obs))
	for i, o := range obs {
		variances[i] = o.Variance
	}
	tempMin := round3(base + floats.Min(variances))
	tempMax := round3(base + floats.Max(variances))

	step := (tempMax - tempMin) / float64(bucketCount)
	thresholds := make([]float64, 0, bucketCount-1)
	for i := 1; i < bucketCount; i++ {
		thresholds = append(thresholds, round3(tempMin+float64(i)*step))
	}

	colors := make([]string, len(palette))
	copy(colors, palette)

	return ColorScale{
		Min:        tempMin,
		Max:        tempMax,
		Thresholds: thresholds,
		Colors:     colors,
	}, nil
}

// AbsoluteTemp returns the absolute temperature of a variance, rounded to
// three decimals.
func AbsoluteTemp(base, variance float64) float64 {
	return round3(base + variance)
}

func round3(v float64) float64 {
	return scalar.Round(v, 3)
}

// Spread samples n colours evenly from palette, keeping both ends. It lets
// the default palette serve bucket counts other than DefaultBuckets.
func Spread(palette []string, n int) []string {
	if n < 1 || len(palette) == 0 {
		return nil
	}
	if n == 1 {
		return []string{palette[0]}
	}
	colors := make([]string, n)
	last := float64(len(palette) - 1)
	for i := range colors {
		colors[i] = palette[int(math.Round(float64(i)*last/float64(n-1)))]
	}
	return colors
}
