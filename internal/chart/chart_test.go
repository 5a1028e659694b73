// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wneessen/heatmap/internal/dataset"
)

const floatTolerance = 1e-9

func exampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		BaseTemperature: 8.66,
		Observations: []dataset.Observation{
			{Year: 1753, Month: 1, Variance: -6.2},
			{Year: 1753, Month: 2, Variance: -2.2},
		},
	}
}

func fixtureDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	file, err := os.Open("../../testdata/global-temperature.json")
	if err != nil {
		t.Fatalf("failed to open fixture: %s", err)
	}
	t.Cleanup(func() { _ = file.Close() })
	ds, err := dataset.Decode(file)
	if err != nil {
		t.Fatalf("failed to decode fixture: %s", err)
	}
	return ds
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()
	if layout.Width != 1120 || layout.Height != 540 {
		t.Errorf("expected layout of 1120x540, got %gx%g", layout.Width, layout.Height)
	}
	if layout.PlotWidth() != 1000 {
		t.Errorf("expected plot width to be 1000, got %g", layout.PlotWidth())
	}
	if layout.PlotHeight() != 500 {
		t.Errorf("expected plot height to be 500, got %g", layout.PlotHeight())
	}
}

func TestBuildColorScale(t *testing.T) {
	t.Run("thresholds are evenly spaced between min and max", func(t *testing.T) {
		ds := exampleDataset()
		colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		if colors.Min != 2.46 {
			t.Errorf("expected min temperature to be 2.46, got %g", colors.Min)
		}
		if colors.Max != 6.46 {
			t.Errorf("expected max temperature to be 6.46, got %g", colors.Max)
		}
		want := []float64{2.824, 3.187, 3.551, 3.915, 4.278, 4.642, 5.005, 5.369, 5.733, 6.096}
		if diff := cmp.Diff(want, colors.Thresholds); diff != "" {
			t.Errorf("thresholds mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(DefaultPalette, colors.Colors); diff != "" {
			t.Errorf("colours mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("thresholds are ascending", func(t *testing.T) {
		ds := fixtureDataset(t)
		colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		if len(colors.Thresholds) != DefaultBuckets-1 {
			t.Fatalf("expected %d thresholds, got %d", DefaultBuckets-1, len(colors.Thresholds))
		}
		for i := 1; i < len(colors.Thresholds); i++ {
			if colors.Thresholds[i] < colors.Thresholds[i-1] {
				t.Errorf("expected thresholds to be ascending, got %v", colors.Thresholds)
			}
		}
		if colors.Min != 6.437 || colors.Max != 9.76 {
			t.Errorf("expected temperature range 6.437-9.76, got %g-%g", colors.Min, colors.Max)
		}
	})
	t.Run("equal variances collapse all thresholds", func(t *testing.T) {
		obs := []dataset.Observation{
			{Year: 2000, Month: 1, Variance: 0.5},
			{Year: 2000, Month: 2, Variance: 0.5},
		}
		colors, err := BuildColorScale(8.66, obs, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		for _, th := range colors.Thresholds {
			if th != 9.16 {
				t.Errorf("expected every threshold to be 9.16, got %v", colors.Thresholds)
				break
			}
		}
		if got := colors.ColorFor(9.16); got != DefaultPalette[len(DefaultPalette)-1] {
			t.Errorf("expected the last colour, got %s", got)
		}
	})
	t.Run("custom palette", func(t *testing.T) {
		ds := exampleDataset()
		palette := []string{"#000", "#888", "#fff"}
		colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, 3, palette)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		want := []float64{3.793, 5.127}
		if diff := cmp.Diff(want, colors.Thresholds); diff != "" {
			t.Errorf("thresholds mismatch (-want +got):\n%s", diff)
		}
		palette[0] = "#123"
		if colors.Colors[0] != "#000" {
			t.Error("expected colour scale to own a copy of the palette")
		}
	})
	t.Run("invalid arguments", func(t *testing.T) {
		ds := exampleDataset()
		tests := []struct {
			name    string
			obs     []dataset.Observation
			buckets int
			palette []string
			wantErr error
		}{
			{"empty observations", nil, DefaultBuckets, nil, dataset.ErrInvalidDataset},
			{"single bucket", ds.Observations, 1, []string{"#000"}, ErrInvalidPalette},
			{"palette length mismatch", ds.Observations, 5, nil, ErrInvalidPalette},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := BuildColorScale(ds.BaseTemperature, tc.obs, tc.buckets, tc.palette)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("expected error to be %s, got %v", tc.wantErr, err)
				}
			})
		}
	})
}

func TestSpread(t *testing.T) {
	t.Run("spreading to the palette size returns the palette", func(t *testing.T) {
		got := Spread(DefaultPalette, len(DefaultPalette))
		if diff := cmp.Diff(DefaultPalette, got); diff != "" {
			t.Errorf("unexpected palette (-want +got):\n%s", diff)
		}
	})
	t.Run("spreading keeps both ends of the palette", func(t *testing.T) {
		got := Spread(DefaultPalette, 3)
		want := []string{DefaultPalette[0], DefaultPalette[5], DefaultPalette[10]}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected palette (-want +got):\n%s", diff)
		}
	})
	t.Run("spreading to zero colours returns nil", func(t *testing.T) {
		if got := Spread(DefaultPalette, 0); got != nil {
			t.Errorf("expected nil palette, got %v", got)
		}
	})
}

func TestComputeCellLayout(t *testing.T) {
	t.Run("example observations", func(t *testing.T) {
		ds := exampleDataset()
		colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		cells, err := ComputeCellLayout(ds.BaseTemperature, ds.Observations, DefaultLayout(), colors)
		if err != nil {
			t.Fatalf("failed to compute cell layout: %s", err)
		}
		want := []Cell{
			{
				Year: 1753, Month: 1, Variance: -6.2, AbsoluteTemp: 2.46, Color: "#053061",
				X: 560, Y: 4, Width: 6000, Height: 42,
			},
			{
				Year: 1753, Month: 2, Variance: -2.2, AbsoluteTemp: 6.46, Color: "#67001f",
				X: 560, Y: 45, Width: 6000, Height: 42,
			},
		}
		if diff := cmp.Diff(want, cells); diff != "" {
			t.Errorf("cells mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("years spread over the plot width", func(t *testing.T) {
		ds := fixtureDataset(t)
		colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		cells, err := ComputeCellLayout(ds.BaseTemperature, ds.Observations, DefaultLayout(), colors)
		if err != nil {
			t.Fatalf("failed to compute cell layout: %s", err)
		}
		if len(cells) != len(ds.Observations) {
			t.Fatalf("expected %d cells, got %d", len(ds.Observations), len(cells))
		}
		first, last := cells[0], cells[len(cells)-1]
		if first.X != 60 {
			t.Errorf("expected first cell at x=60, got %g", first.X)
		}
		if last.X != 1060 {
			t.Errorf("expected last cell at x=1060, got %g", last.X)
		}
		if first.Width != 500 {
			t.Errorf("expected tile width of 500, got %g", first.Width)
		}
		if last.Y != 455 {
			t.Errorf("expected December at y=455, got %g", last.Y)
		}
		for _, c := range cells {
			if c.Color == "" {
				t.Errorf("expected cell %d/%d to have a colour", c.Year, c.Month)
			}
		}
	})
	t.Run("month outside the band scale fails", func(t *testing.T) {
		obs := []dataset.Observation{{Year: 1753, Month: 13, Variance: 0}}
		colors, err := BuildColorScale(8.66, obs, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		_, err = ComputeCellLayout(8.66, obs, DefaultLayout(), colors)
		if !errors.Is(err, dataset.ErrInvalidDataset) {
			t.Errorf("expected error to be %s, got %v", dataset.ErrInvalidDataset, err)
		}
	})
	t.Run("margins wider than the chart fail", func(t *testing.T) {
		ds := exampleDataset()
		layout := Layout{Width: 100, Height: 100, Margins: Margins{Left: 60, Right: 60}}
		_, err := ComputeCellLayout(ds.BaseTemperature, ds.Observations, layout, ColorScale{})
		if !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("expected error to be %s, got %v", ErrInvalidLayout, err)
		}
	})
}

func TestMonthAxis(t *testing.T) {
	axis := MonthAxis(DefaultLayout())
	if axis.Bands != MonthsPerYear {
		t.Errorf("expected %d bands, got %d", MonthsPerYear, axis.Bands)
	}
	if axis.Step != 41 || axis.Bandwidth != 41 {
		t.Errorf("expected step and bandwidth of 41, got %g and %g", axis.Step, axis.Bandwidth)
	}
	if axis.Offsets[0] != 4 || axis.Offsets[11] != 455 {
		t.Errorf("expected bands from 4 to 455, got %g to %g", axis.Offsets[0], axis.Offsets[11])
	}
}

func TestYearAxis(t *testing.T) {
	obs := []dataset.Observation{{Year: 1753, Month: 1}, {Year: 2015, Month: 12}}
	axis := YearAxis(obs, DefaultLayout(), 0)
	if axis.DomainMin != 1753 || axis.DomainMax != 2015 {
		t.Errorf("expected domain 1753-2015, got %g-%g", axis.DomainMin, axis.DomainMax)
	}
	if axis.RangeMin != 60 || axis.RangeMax != 1060 {
		t.Errorf("expected range 60-1060, got %g-%g", axis.RangeMin, axis.RangeMax)
	}
	want := []float64{1760, 1780, 1800, 1820, 1840, 1860, 1880, 1900, 1920, 1940, 1960, 1980, 2000}
	if diff := cmp.Diff(want, axis.Ticks); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestLegendBuckets(t *testing.T) {
	t.Run("buckets cover the legend width", func(t *testing.T) {
		for _, ds := range []*dataset.Dataset{exampleDataset(), fixtureDataset(t)} {
			colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, DefaultBuckets, nil)
			if err != nil {
				t.Fatalf("failed to build colour scale: %s", err)
			}
			buckets := LegendBuckets(colors, 1000)
			if len(buckets) != DefaultBuckets {
				t.Fatalf("expected %d buckets, got %d", DefaultBuckets, len(buckets))
			}
			if buckets[0].X != 0 {
				t.Errorf("expected first bucket to start at 0, got %g", buckets[0].X)
			}
			if buckets[0].From != colors.Min {
				t.Errorf("expected first bucket to start at %g, got %g", colors.Min, buckets[0].From)
			}
			lastBucket := buckets[len(buckets)-1]
			if lastBucket.To != colors.Max {
				t.Errorf("expected last bucket to end at %g, got %g", colors.Max, lastBucket.To)
			}
			if end := lastBucket.X + lastBucket.Width; math.Abs(end-1000) > floatTolerance {
				t.Errorf("expected last bucket to end at 1000, got %g", end)
			}
			for i, b := range buckets {
				if b.Width < 0 {
					t.Errorf("expected bucket %d to have a non-negative width, got %g", i, b.Width)
				}
				if b.Color != colors.Colors[i] {
					t.Errorf("expected bucket %d to have colour %s, got %s", i, colors.Colors[i], b.Color)
				}
				if i == 0 {
					continue
				}
				prev := buckets[i-1]
				if math.Abs(prev.X+prev.Width-b.X) > floatTolerance {
					t.Errorf("expected bucket %d to start where bucket %d ends, got %g and %g", i, i-1,
						b.X, prev.X+prev.Width)
				}
			}
		}
	})
	t.Run("first bucket width of the example", func(t *testing.T) {
		ds := exampleDataset()
		colors, err := BuildColorScale(ds.BaseTemperature, ds.Observations, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		buckets := LegendBuckets(colors, 1000)
		if math.Abs(buckets[0].Width-91) > 1e-6 {
			t.Errorf("expected first bucket width of 91, got %g", buckets[0].Width)
		}
	})
	t.Run("degenerate scale gives the full width to the last bucket", func(t *testing.T) {
		obs := []dataset.Observation{{Year: 2000, Month: 1, Variance: 1}}
		colors, err := BuildColorScale(8.66, obs, DefaultBuckets, nil)
		if err != nil {
			t.Fatalf("failed to build colour scale: %s", err)
		}
		buckets := LegendBuckets(colors, 500)
		for i, b := range buckets[:len(buckets)-1] {
			if b.X != 0 || b.Width != 0 {
				t.Errorf("expected bucket %d to be empty at 0, got x=%g width=%g", i, b.X, b.Width)
			}
		}
		if last := buckets[len(buckets)-1]; last.X != 0 || last.Width != 500 {
			t.Errorf("expected last bucket to span 0-500, got x=%g width=%g", last.X, last.Width)
		}
	})
}

func TestBuild(t *testing.T) {
	t.Run("building the example model", func(t *testing.T) {
		model, err := Build(exampleDataset(), DefaultLayout(), nil)
		if err != nil {
			t.Fatalf("failed to build model: %s", err)
		}
		if len(model.Cells) != 2 {
			t.Fatalf("expected 2 cells, got %d", len(model.Cells))
		}
		if model.FirstYear != 1753 || model.LastYear != 1753 {
			t.Errorf("expected year range 1753-1753, got %d-%d", model.FirstYear, model.LastYear)
		}
		if model.LegendWidth != 1000 {
			t.Errorf("expected legend width of 1000, got %g", model.LegendWidth)
		}
		if len(model.Legend) != DefaultBuckets {
			t.Errorf("expected %d legend buckets, got %d", DefaultBuckets, len(model.Legend))
		}
	})
	t.Run("building twice yields identical models", func(t *testing.T) {
		ds := fixtureDataset(t)
		first, err := Build(ds, DefaultLayout(), nil)
		if err != nil {
			t.Fatalf("failed to build model: %s", err)
		}
		second, err := Build(ds, DefaultLayout(), nil)
		if err != nil {
			t.Fatalf("failed to build model: %s", err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("models differ (-first +second):\n%s", diff)
		}
	})
	t.Run("equal variances share one colour", func(t *testing.T) {
		ds := &dataset.Dataset{
			BaseTemperature: 8.66,
			Observations: []dataset.Observation{
				{Year: 1753, Month: 1, Variance: -0.5},
				{Year: 1753, Month: 2, Variance: -0.5},
				{Year: 1753, Month: 3, Variance: -0.5},
			},
		}
		model, err := Build(ds, DefaultLayout(), nil)
		if err != nil {
			t.Fatalf("failed to build model: %s", err)
		}
		for _, c := range model.Cells {
			if c.Color != model.Cells[0].Color {
				t.Errorf("expected all cells to share colour %s, got %s", model.Cells[0].Color, c.Color)
			}
		}
	})
	t.Run("invalid datasets are rejected", func(t *testing.T) {
		tests := []struct {
			name string
			ds   *dataset.Dataset
		}{
			{"nil dataset", nil},
			{"empty observations", &dataset.Dataset{BaseTemperature: 8.66}},
			{"NaN base temperature", &dataset.Dataset{
				BaseTemperature: math.NaN(),
				Observations:    []dataset.Observation{{Year: 1753, Month: 1}},
			}},
			{"infinite base temperature", &dataset.Dataset{
				BaseTemperature: math.Inf(1),
				Observations:    []dataset.Observation{{Year: 1753, Month: 1}},
			}},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				model, err := Build(tc.ds, DefaultLayout(), nil)
				if !errors.Is(err, dataset.ErrInvalidDataset) {
					t.Errorf("expected error to be %s, got %v", dataset.ErrInvalidDataset, err)
				}
				if model != nil {
					t.Error("expected no model on error")
				}
			})
		}
	})
}
