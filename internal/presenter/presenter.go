// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/de"
	"github.com/vorlif/humanize/locale/fr"
	"github.com/vorlif/spreak"
	"golang.org/x/text/message"

	"github.com/wneessen/heatmap/internal/chart"
	"github.com/wneessen/heatmap/internal/config"
)

// HoverHandler receives pointer events for grid cells.
type HoverHandler interface {
	// OnCellHover returns the tooltip text of the hovered cell.
	OnCellHover(cell chart.Cell) string
	// OnCellLeave is called when the pointer leaves the hovered cell.
	OnCellLeave()
}

// TooltipContext is the data available to the tooltip template.
type TooltipContext struct {
	Year         int
	Month        int
	MonthName    string
	AbsoluteTemp float64
	Variance     float64
	Color        string
}

// Tick is a labelled position on an axis.
type Tick struct {
	Value    float64 `json:"value" yaml:"value"`
	Label    string  `json:"label" yaml:"label"`
	Position float64 `json:"position" yaml:"position"`
}

// View wraps the chart model with everything that depends on the locale.
type View struct {
	*chart.Model

	Title       string
	Description string
	Footer      string
	LegendTitle string
	MonthLabels []string
	YearTicks   []Tick
	LegendTicks []Tick
	Hover       HoverHandler
	GeneratedAt time.Time
}

// Presenter turns chart models into localized views and implements
// HoverHandler.
type Presenter struct {
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
	printer   *message.Printer
	clock     clockwork.Clock
	yearTicks int

	tooltip     *template.Template
	title       *template.Template
	description *template.Template
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithClock replaces the clock used for the generation timestamp.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Presenter) {
		p.clock = clock
	}
}

var humanizers = humanize.MustNew(humanize.WithLocale(de.New(), fr.New()))

func New(conf *config.Config, loc *spreak.Localizer, opts ...Option) (*Presenter, error) {
	tag := loc.Language()
	p := &Presenter{
		localizer: loc,
		humanizer: humanizers.CreateHumanizer(tag),
		printer:   message.NewPrinter(tag),
		clock:     clockwork.NewRealClock(),
		yearTicks: conf.Chart.YearTicks,
	}
	for _, opt := range opts {
		opt(p)
	}

	var err error
	if p.tooltip, err = p.parse("tooltip", conf.Templates.Tooltip); err != nil {
		return nil, err
	}
	if p.title, err = p.parse("title", conf.Templates.Title); err != nil {
		return nil, err
	}
	if p.description, err = p.parse("description", conf.Templates.Description); err != nil {
		return nil, err
	}

	// Catch references to unknown fields before the first render
	sample := &chart.Model{FirstYear: 1753, LastYear: 2015, BaseTemperature: 8.66}
	if _, err = p.Tooltip(chart.Cell{Year: 1753, Month: 1}); err != nil {
		return nil, err
	}
	if _, err = p.Title(sample); err != nil {
		return nil, err
	}
	if _, err = p.Description(sample); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Presenter) parse(name, text string) (*template.Template, error) {
	tpl, err := template.New(name).Funcs(p.templateFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	return tpl, nil
}

func execute(tpl *template.Template, data any) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}

// Tooltip renders the tooltip text of cell. The absolute temperature is
// shown with two decimals.
func (p *Presenter) Tooltip(cell chart.Cell) (string, error) {
	return execute(p.tooltip, TooltipContext{
		Year:         cell.Year,
		Month:        cell.Month,
		MonthName:    p.MonthName(cell.Month),
		AbsoluteTemp: round2(cell.AbsoluteTemp),
		Variance:     cell.Variance,
		Color:        cell.Color,
	})
}

// Title renders the chart title.
func (p *Presenter) Title(model *chart.Model) (string, error) {
	return execute(p.title, model)
}

// Description renders the chart subtitle.
func (p *Presenter) Description(model *chart.Model) (string, error) {
	return execute(p.description, model)
}

// OnCellHover returns the tooltip of cell. A template error yields an
// empty tooltip.
func (p *Presenter) OnCellHover(cell chart.Cell) string {
	text, err := p.Tooltip(cell)
	if err != nil {
		return ""
	}
	return text
}

// OnCellLeave does nothing; static output keeps no hover state.
func (p *Presenter) OnCellLeave() {}

// MonthName returns the localized full name of month (1-12).
func (p *Presenter) MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return strconv.Itoa(month)
	}
	return p.localizer.Get(monthNames[month-1])
}

// Footer returns the localized generation notice for t.
func (p *Presenter) Footer(t time.Time) string {
	return p.localizer.Getf(i18nVars["generated"], p.humanizer.FormatTime(t, humanize.DateTimeFormat))
}

// View builds the localized view of model.
func (p *Presenter) View(model *chart.Model) (*View, error) {
	if model == nil {
		return nil, fmt.Errorf("failed to build view: model is nil")
	}
	title, err := p.Title(model)
	if err != nil {
		return nil, err
	}
	description, err := p.Description(model)
	if err != nil {
		return nil, err
	}

	months := make([]string, len(monthNames))
	for i := range months {
		months[i] = p.MonthName(i + 1)
	}

	now := p.clock.Now()
	return &View{
		Model:       model,
		Title:       title,
		Description: description,
		Footer:      p.Footer(now),
		LegendTitle: p.loc("legend"),
		MonthLabels: months,
		YearTicks:   p.yearAxisTicks(model),
		LegendTicks: p.legendTicks(model),
		Hover:       p,
		GeneratedAt: now,
	}, nil
}

func (p *Presenter) yearAxisTicks(model *chart.Model) []Tick {
	axis := model.YearAxis
	values := axis.Ticks
	if p.yearTicks > 0 {
		values = axis.Scale().Ticks(p.yearTicks)
	}
	ticks := make([]Tick, len(values))
	xScale := axis.Scale()
	for i, v := range values {
		ticks[i] = Tick{Value: v, Label: strconv.Itoa(int(v)), Position: xScale.Evaluate(v)}
	}
	return ticks
}

// legendTicks labels every threshold along the legend axis.
func (p *Presenter) legendTicks(model *chart.Model) []Tick {
	colors := model.ColorScale
	ticks := make([]Tick, 0, len(colors.Thresholds))
	for i, th := range colors.Thresholds {
		pos := 0.0
		if i+1 < len(model.Legend) {
			pos = model.Legend[i+1].X
		}
		ticks = append(ticks, Tick{Value: th, Label: p.formatNumber(th), Position: pos})
	}
	return ticks
}
