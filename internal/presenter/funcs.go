// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"strconv"
	"strings"
	"text/template"

	"gonum.org/v1/gonum/floats/scalar"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"temp":  formatTemp,
		"num":   p.formatNumber,
		"month": p.MonthName,
		"loc":   p.loc,
		"lc":    strings.ToLower,
		"uc":    strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	val = strings.ToLower(val)
	if raw, ok := i18nVars[val]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

// formatTemp prints a temperature with as many decimals as needed.
func formatTemp(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// formatNumber prints val with one decimal, using the locale's separators.
func (p *Presenter) formatNumber(val float64) string {
	return p.printer.Sprintf("%.1f", val)
}

func round2(val float64) float64 {
	return scalar.Round(val, 2)
}
