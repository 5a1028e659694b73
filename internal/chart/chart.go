// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"github.com/wneessen/heatmap/internal/dataset"
)

// Build validates ds and derives the complete heat map model from it. The
// number of colour buckets follows the length of palette, a nil palette
// selects DefaultPalette. The legend spans the plot width.
func Build(ds *dataset.Dataset, layout Layout, palette []string) (*Model, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if palette == nil {
		palette = DefaultPalette
	}

	colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, len(palette), palette)
	if err != nil {
		return nil, fmt.Errorf("failed to build colour scale: %w", err)
	}
	cells, err := ComputeCellLayout(ds.BaseTemperature, ds.Observations, layout, colors)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cell layout: %w", err)
	}

	legendWidth := layout.PlotWidth()
	return &Model{
		Layout:          layout,
		BaseTemperature: ds.BaseTemperature,
		FirstYear:       ds.FirstYear(),
		LastYear:        ds.LastYear(),
		Cells:           cells,
		YearAxis:        YearAxis(ds.Observations, layout, 0),
		MonthAxis:       MonthAxis(layout),
		ColorScale:      colors,
		LegendWidth:     legendWidth,
		Legend:          LegendBuckets(colors, legendWidth),
	}, nil
}
