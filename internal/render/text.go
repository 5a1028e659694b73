// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/wneessen/heatmap/internal/chart"
	"github.com/wneessen/heatmap/internal/presenter"
)

const block = "█"

// Text renders the heat map for 24-bit colour terminals: one row per month
// and one column per year present in the dataset.
func Text(w io.Writer, view *presenter.View) error {
	if view == nil || view.Model == nil {
		return fmt.Errorf("failed to render text: view is empty")
	}
	out := bufio.NewWriter(w)
	term := lipgloss.NewRenderer(out)
	term.SetColorProfile(termenv.TrueColor)

	_, _ = fmt.Fprintln(out, view.Title)
	_, _ = fmt.Fprintln(out, view.Description)
	_, _ = fmt.Fprintln(out)

	labelWidth := 0
	for _, label := range view.MonthLabels {
		labelWidth = max(labelWidth, runewidth.StringWidth(label))
	}

	years := columnYears(view.Cells)
	columns := len(years)
	rows := make([][]string, chart.MonthsPerYear)
	for i := range rows {
		rows[i] = make([]string, columns)
	}
	for _, cell := range view.Cells {
		if cell.Month < 1 || cell.Month > chart.MonthsPerYear {
			continue
		}
		col, _ := slices.BinarySearch(years, cell.Year)
		rows[cell.Month-1][col] = cell.Color
	}

	for i, row := range rows {
		label := ""
		if i < len(view.MonthLabels) {
			label = view.MonthLabels[i]
		}
		_, _ = fmt.Fprint(out, runewidth.FillRight(label, labelWidth), " ")
		for _, hex := range row {
			_, _ = fmt.Fprint(out, swatch(term, hex))
		}
		_, _ = fmt.Fprintln(out)
	}

	axis := ""
	if columns > 0 {
		axis = fmt.Sprintf("%d", years[0])
	}
	if columns > 1 {
		last := fmt.Sprintf("%d", years[columns-1])
		gap := max(1, columns-runewidth.StringWidth(axis)-runewidth.StringWidth(last))
		axis += strings.Repeat(" ", gap) + last
	}
	_, _ = fmt.Fprintln(out, strings.Repeat(" ", labelWidth+1)+axis)
	_, _ = fmt.Fprintln(out)

	_, _ = fmt.Fprint(out, view.LegendTitle, ": ")
	for i, bucket := range view.Legend {
		_, _ = fmt.Fprint(out, swatch(term, bucket.Color), swatch(term, bucket.Color))
		if i < len(view.LegendTicks) {
			_, _ = fmt.Fprint(out, " ", view.LegendTicks[i].Label, " ")
		}
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, view.Footer)

	return out.Flush()
}

// swatch draws one block in the colour hex. Unparseable colours are drawn
// unstyled.
func swatch(term *lipgloss.Renderer, hex string) string {
	if hex == "" {
		return " "
	}
	return term.NewStyle().Foreground(lipgloss.Color(hex)).Render(block)
}

// columnYears returns the distinct years of cells in ascending order.
func columnYears(cells []chart.Cell) []int {
	years := make([]int, 0, len(cells)/chart.MonthsPerYear+1)
	for _, c := range cells {
		years = append(years, c.Year)
	}
	slices.Sort(years)
	return slices.Compact(years)
}
