// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"math"

	"github.com/wneessen/heatmap/internal/scale"
)

// LegendBuckets returns one legend swatch per colour, laid out along
// [0, width]. When the colour scale spans a single temperature, the last
// bucket takes the full width and all others collapse to zero width at 0.
func LegendBuckets(colors ColorScale, width float64) []LegendBucket {
	thresholds := colors.Scale()
	buckets := make([]LegendBucket, len(colors.Colors))

	if colors.Min == colors.Max {
		for i, c := range colors.Colors {
			buckets[i] = LegendBucket{Color: c, From: colors.Min, To: colors.Max}
		}
		if len(buckets) > 0 {
			buckets[len(buckets)-1].Width = width
		}
		return buckets
	}

	legend := scale.NewLinear(colors.Min, colors.Max, 0, width)
	for i, c := range colors.Colors {
		lo, hi := thresholds.ExtentAt(i)
		from := clamp(lo, colors.Min, colors.Max)
		to := clamp(hi, colors.Min, colors.Max)
		x := legend.Evaluate(from)
		buckets[i] = LegendBucket{
			Color: c,
			From:  from,
			To:    to,
			X:     x,
			Width: legend.Evaluate(to) - x,
		}
	}
	return buckets
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
