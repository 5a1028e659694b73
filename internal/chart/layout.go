// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"math"

	"github.com/wneessen/heatmap/internal/dataset"
	"github.com/wneessen/heatmap/internal/scale"
)

// ComputeCellLayout places one cell per observation, in input order.
func ComputeCellLayout(base float64, obs []dataset.Observation, layout Layout, colors ColorScale) ([]Cell, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: observation list is empty", dataset.ErrInvalidDataset)
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	years := YearAxis(obs, layout, 0)
	xScale := years.Scale()
	yScale := monthScale(layout)

	tileWidth := math.Round(layout.PlotWidth() / (float64(len(obs)) / MonthsPerYear))
	tileHeight := math.Round(layout.PlotHeight() / MonthsPerYear)

	cells := make([]Cell, len(obs))
	for i, o := range obs {
		y := yScale.Evaluate(o.Month - 1)
		if math.IsNaN(y) {
			return nil, fmt.Errorf("%w: observation %d has month %d outside 1-12", dataset.ErrInvalidDataset,
				i, o.Month)
		}
		temp := AbsoluteTemp(base, o.Variance)
		cells[i] = Cell{
			Year:         o.Year,
			Month:        o.Month,
			Variance:     o.Variance,
			AbsoluteTemp: temp,
			Color:        colors.ColorFor(temp),
			X:            xScale.Evaluate(float64(o.Year)),
			Y:            y,
			Width:        tileWidth,
			Height:       tileHeight,
		}
	}
	return cells, nil
}

// YearAxis returns the year axis spanning the plot area horizontally. A
// tickCount of zero or less selects scale.DefaultTickCount.
func YearAxis(obs []dataset.Observation, layout Layout, tickCount int) AxisSpec {
	if tickCount <= 0 {
		tickCount = scale.DefaultTickCount
	}
	minYear, maxYear := math.Inf(1), math.Inf(-1)
	for _, o := range obs {
		minYear = math.Min(minYear, float64(o.Year))
		maxYear = math.Max(maxYear, float64(o.Year))
	}
	if len(obs) == 0 {
		minYear, maxYear = 0, 0
	}

	axis := AxisSpec{
		DomainMin: minYear,
		DomainMax: maxYear,
		RangeMin:  layout.Margins.Left,
		RangeMax:  layout.Width - layout.Margins.Right,
	}
	axis.Ticks = axis.Scale().Ticks(tickCount)
	return axis
}

// MonthAxis returns the month axis spanning the plot area vertically.
func MonthAxis(layout Layout) BandAxisSpec {
	band := monthScale(layout)
	offsets := make([]float64, band.Count)
	for i := range offsets {
		offsets[i] = band.Evaluate(i)
	}
	return BandAxisSpec{
		Bands:     band.Count,
		RangeMin:  band.Range[0],
		RangeMax:  band.Range[1],
		Step:      band.Step(),
		Bandwidth: band.Bandwidth(),
		Offsets:   offsets,
	}
}

func monthScale(layout Layout) scale.Band {
	return scale.NewBand(MonthsPerYear, 0, layout.PlotHeight(), true)
}
