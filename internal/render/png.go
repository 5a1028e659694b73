// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/wneessen/heatmap/internal/chart"
	"github.com/wneessen/heatmap/internal/presenter"
)

// cellGrid draws the cells in data coordinates: one unit per year along x
// and one unit per month along y, January on top.
type cellGrid struct {
	cells  []chart.Cell
	colors []color.Color
	minX   float64
	maxX   float64
}

func newCellGrid(cells []chart.Cell) (*cellGrid, error) {
	grid := &cellGrid{cells: cells, colors: make([]color.Color, len(cells))}
	for i, c := range cells {
		rgb, err := colorful.Hex(c.Color)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", c.Color, err)
		}
		grid.colors[i] = rgb
		x := float64(c.Year)
		if i == 0 || x < grid.minX {
			grid.minX = x
		}
		if i == 0 || x+1 > grid.maxX {
			grid.maxX = x + 1
		}
	}
	return grid, nil
}

func (g *cellGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, cell := range g.cells {
		x0, x1 := trX(float64(cell.Year)), trX(float64(cell.Year+1))
		y0 := trY(float64(chart.MonthsPerYear - cell.Month))
		y1 := trY(float64(chart.MonthsPerYear - cell.Month + 1))
		c.FillPolygon(g.colors[i], []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	}
}

func (g *cellGrid) DataRange() (xmin, xmax, ymin, ymax float64) {
	return g.minX, g.maxX, 0, chart.MonthsPerYear
}

// PNG renders the grid as raster image sized after the chart layout in
// points, with the title as plot title and localized month names on the
// y axis.
func PNG(w io.Writer, view *presenter.View) error {
	if view == nil || view.Model == nil {
		return fmt.Errorf("failed to render PNG: view is empty")
	}
	grid, err := newCellGrid(view.Cells)
	if err != nil {
		return fmt.Errorf("failed to render PNG: %w", err)
	}

	p := plot.New()
	p.Title.Text = view.Title
	p.X.Label.Text = view.Description
	p.Add(grid)

	yearTicks := make([]plot.Tick, len(view.YearTicks))
	for i, t := range view.YearTicks {
		yearTicks[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks)

	monthTicks := make([]plot.Tick, len(view.MonthLabels))
	for i, label := range view.MonthLabels {
		monthTicks[i] = plot.Tick{Value: float64(chart.MonthsPerYear-i) - 0.5, Label: label}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(monthTicks)

	writer, err := p.WriterTo(vg.Length(view.Layout.Width), vg.Length(view.Layout.Height), "png")
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err = writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}
