// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/wneessen/heatmap/internal/chart"
	"github.com/wneessen/heatmap/internal/presenter"
)

const (
	svgHeaderHeight = 60
	svgLegendHeight = 300
	svgLegendArea   = 90
)

//go:embed templates/heatmap.svg.tmpl
var templates embed.FS

// SVG renders a standalone SVG document. Each cell carries its tooltip as
// native <title> element.
type SVG struct {
	tpl *template.Template
}

type svgCell struct {
	chart.Cell
	DataMonth int
	Tooltip   string
}

type svgDocument struct {
	*presenter.View

	Width        float64
	Center       float64
	PlotHeight   float64
	HeaderHeight float64
	LegendTop    float64
	SwatchHeight float64
	TotalHeight  float64
	Cells        []svgCell
	MonthTicks   []presenter.Tick
}

// NewSVG parses the embedded SVG template.
func NewSVG() (*SVG, error) {
	tpl, err := template.New("heatmap.svg.tmpl").Funcs(template.FuncMap{
		"xml": escapeXML,
		"num": formatNumber,
		"neg": func(v float64) float64 { return -v },
		"sub": func(a, b float64) float64 { return a - b },
	}).ParseFS(templates, "templates/heatmap.svg.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG template: %w", err)
	}
	return &SVG{tpl: tpl}, nil
}

func (s *SVG) Render(w io.Writer, view *presenter.View) error {
	if view == nil || view.Model == nil {
		return fmt.Errorf("failed to render SVG: view is empty")
	}
	layout := view.Layout
	doc := svgDocument{
		View:         view,
		Width:        layout.Width,
		Center:       layout.Width / 2,
		PlotHeight:   layout.PlotHeight(),
		HeaderHeight: svgHeaderHeight,
		Cells:        make([]svgCell, len(view.Cells)),
		MonthTicks:   make([]presenter.Tick, 0, len(view.MonthLabels)),
	}
	if n := len(view.Legend); n > 0 {
		doc.SwatchHeight = svgLegendHeight / float64(n)
	}
	doc.LegendTop = svgHeaderHeight + layout.Height + doc.SwatchHeight
	doc.TotalHeight = doc.LegendTop + svgLegendArea

	tooltips := cellTooltips(view)
	for i, cell := range view.Cells {
		doc.Cells[i] = svgCell{Cell: cell, DataMonth: cell.Month - 1, Tooltip: tooltips[i]}
	}
	axis := view.MonthAxis
	for i, label := range view.MonthLabels {
		if i >= len(axis.Offsets) {
			break
		}
		doc.MonthTicks = append(doc.MonthTicks, presenter.Tick{
			Value:    float64(i),
			Label:    label,
			Position: axis.Offsets[i] + axis.Bandwidth/2,
		})
	}

	buf := bufio.NewWriter(w)
	if err := s.tpl.Execute(buf, doc); err != nil {
		return fmt.Errorf("failed to execute SVG template: %w", err)
	}
	return buf.Flush()
}

func escapeXML(s string) string {
	buf := bytes.NewBuffer(nil)
	_ = xml.EscapeText(buf, []byte(s))
	return buf.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
