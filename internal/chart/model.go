// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"

	"github.com/wneessen/heatmap/internal/scale"
)

const (
	// DefaultBuckets is the number of colour buckets of the default palette.
	DefaultBuckets = 11
	// MonthsPerYear is the number of bands on the month axis.
	MonthsPerYear = 12
)

// DefaultPalette is a diverging red to blue palette ordered from the
// coldest bucket to the warmest.
var DefaultPalette = []string{
	"#053061", // dark blue
	"#2166ac",
	"#4393c3",
	"#92c5de",
	"#d1e5f0",
	"#f7f7f7", // near white
	"#fddbc7",
	"#f4a582",
	"#d6604d",
	"#b2182b",
	"#67001f", // dark red
}

var (
	// ErrInvalidPalette is returned when the bucket count and the palette do not fit together.
	ErrInvalidPalette = errors.New("invalid colour palette")
	// ErrInvalidLayout is returned when the margins leave no room for the plot.
	ErrInvalidLayout = errors.New("invalid chart layout")
)

// Margins are the distances between the plot area and the chart edges.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
}

// Layout describes the overall chart size in pixels.
type Layout struct {
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Margins Margins `json:"margins" yaml:"margins"`
}

// DefaultLayout is a 1000x500 plot area surrounded by the default margins.
func DefaultLayout() Layout {
	m := Margins{Top: 20, Bottom: 20, Left: 60, Right: 60}
	return Layout{
		Width:   1000 + m.Left + m.Right,
		Height:  500 + m.Top + m.Bottom,
		Margins: m,
	}
}

// PlotWidth returns the width available to the grid.
func (l Layout) PlotWidth() float64 {
	return l.Width - l.Margins.Left - l.Margins.Right
}

// PlotHeight returns the height available to the grid.
func (l Layout) PlotHeight() float64 {
	return l.Height - l.Margins.Top - l.Margins.Bottom
}

func (l Layout) validate() error {
	if l.PlotWidth() <= 0 || l.PlotHeight() <= 0 {
		return fmt.Errorf("%w: %gx%g leaves no plot area with margins %+v", ErrInvalidLayout,
			l.Width, l.Height, l.Margins)
	}
	return nil
}

// ColorScale is the discretized temperature to colour mapping.
type ColorScale struct {
	Min        float64   `json:"min" yaml:"min"`
	Max        float64   `json:"max" yaml:"max"`
	Thresholds []float64 `json:"thresholds" yaml:"thresholds"`
	Colors     []string  `json:"colors" yaml:"colors"`
}

// Scale returns the threshold scale backing the colour scale.
func (c ColorScale) Scale() scale.Threshold {
	return scale.NewThreshold(c.Thresholds, c.Colors)
}

// ColorFor returns the colour of the bucket temp falls into.
func (c ColorScale) ColorFor(temp float64) string {
	return c.Scale().Evaluate(temp)
}

// Cell is one rectangle of the grid.
type Cell struct {
	Year         int     `json:"year" yaml:"year"`
	Month        int     `json:"month" yaml:"month"`
	Variance     float64 `json:"variance" yaml:"variance"`
	AbsoluteTemp float64 `json:"absoluteTemp" yaml:"absoluteTemp"`
	Color        string  `json:"color" yaml:"color"`
	X            float64 `json:"x" yaml:"x"`
	Y            float64 `json:"y" yaml:"y"`
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
}

// AxisSpec describes the continuous year axis.
type AxisSpec struct {
	DomainMin float64   `json:"domainMin" yaml:"domainMin"`
	DomainMax float64   `json:"domainMax" yaml:"domainMax"`
	RangeMin  float64   `json:"rangeMin" yaml:"rangeMin"`
	RangeMax  float64   `json:"rangeMax" yaml:"rangeMax"`
	Ticks     []float64 `json:"ticks" yaml:"ticks"`
}

// Scale returns the linear scale of the axis.
func (a AxisSpec) Scale() scale.Linear {
	return scale.NewLinear(a.DomainMin, a.DomainMax, a.RangeMin, a.RangeMax)
}

// BandAxisSpec describes the month axis. Offsets holds the start of each
// band, index 0 being January.
type BandAxisSpec struct {
	Bands     int       `json:"bands" yaml:"bands"`
	RangeMin  float64   `json:"rangeMin" yaml:"rangeMin"`
	RangeMax  float64   `json:"rangeMax" yaml:"rangeMax"`
	Step      float64   `json:"step" yaml:"step"`
	Bandwidth float64   `json:"bandwidth" yaml:"bandwidth"`
	Offsets   []float64 `json:"offsets" yaml:"offsets"`
}

// LegendBucket is one swatch of the legend. From and To are the
// temperatures covered, X and Width the pixel span along the legend axis.
type LegendBucket struct {
	Color string  `json:"color" yaml:"color"`
	From  float64 `json:"from" yaml:"from"`
	To    float64 `json:"to" yaml:"to"`
	X     float64 `json:"x" yaml:"x"`
	Width float64 `json:"width" yaml:"width"`
}

// Model is everything a renderer needs to draw the heat map.
type Model struct {
	Layout          Layout         `json:"layout" yaml:"layout"`
	BaseTemperature float64        `json:"baseTemperature" yaml:"baseTemperature"`
	FirstYear       int            `json:"firstYear" yaml:"firstYear"`
	LastYear        int            `json:"lastYear" yaml:"lastYear"`
	Cells           []Cell         `json:"cells" yaml:"cells"`
	YearAxis        AxisSpec       `json:"yearAxis" yaml:"yearAxis"`
	MonthAxis       BandAxisSpec   `json:"monthAxis" yaml:"monthAxis"`
	ColorScale      ColorScale     `json:"colorScale" yaml:"colorScale"`
	LegendWidth     float64        `json:"legendWidth" yaml:"legendWidth"`
	Legend          []LegendBucket `json:"legend" yaml:"legend"`
}
