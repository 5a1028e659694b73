// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wneessen/heatmap/internal/chart"
	"github.com/wneessen/heatmap/internal/presenter"
)

// document is the exported form of a view.
type document struct {
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generatedAt"`
	MonthLabels []string         `json:"monthLabels" yaml:"monthLabels"`
	YearTicks   []presenter.Tick `json:"yearTicks" yaml:"yearTicks"`
	LegendTicks []presenter.Tick `json:"legendTicks" yaml:"legendTicks"`
	Tooltips    []string         `json:"tooltips" yaml:"tooltips"`
	Model       *chart.Model     `json:"model" yaml:"model"`
}

func newDocument(view *presenter.View) (document, error) {
	if view == nil || view.Model == nil {
		return document{}, fmt.Errorf("view is empty")
	}
	return document{
		Title:       view.Title,
		Description: view.Description,
		GeneratedAt: view.GeneratedAt,
		MonthLabels: view.MonthLabels,
		YearTicks:   view.YearTicks,
		LegendTicks: view.LegendTicks,
		Tooltips:    cellTooltips(view),
		Model:       view.Model,
	}, nil
}

// JSON writes the view as indented JSON document.
func JSON(w io.Writer, view *presenter.View) error {
	doc, err := newDocument(view)
	if err != nil {
		return fmt.Errorf("failed to render JSON: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// YAML writes the view as YAML document.
func YAML(w io.Writer, view *presenter.View) error {
	doc, err := newDocument(view)
	if err != nil {
		return fmt.Errorf("failed to render YAML: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
