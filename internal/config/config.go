// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "HEATMAP"

	DefaultSourceURL      = "https://raw.githubusercontent.com/FreeCodeCamp/ProjectReferenceData/master/global-temperature.json"
	DefaultTooltipTpl     = "{{.MonthName}} {{.Year}}\n{{temp .AbsoluteTemp}}°, {{temp .Variance}}°"
	DefaultTitleTpl       = `{{loc "title"}}`
	DefaultDescriptionTpl = `{{loc "from"}}: {{.FirstYear}} - {{.LastYear}}, {{loc "basetemp"}}: {{temp .BaseTemperature}}°`

	// StdoutPath selects standard output as render target.
	StdoutPath = "-"

	DefaultSourceTimeout = time.Second * 10
	DefaultYearTicks     = 10
)

// Formats lists the supported output formats.
var Formats = []string{"svg", "png", "text", "json", "yaml"}

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Source struct {
		URL     string        `fig:"url"`
		File    string        `fig:"file"`
		Timeout time.Duration `fig:"timeout" default:"10s"`
	} `fig:"source"`

	Chart struct {
		Width     float64  `fig:"width" default:"1120"`
		Height    float64  `fig:"height" default:"540"`
		Buckets   int      `fig:"buckets" default:"11"`
		YearTicks int      `fig:"year_ticks" default:"10"`
		Palette   []string `fig:"palette"`
		Margins   struct {
			Top    float64 `fig:"top" default:"20"`
			Bottom float64 `fig:"bottom" default:"20"`
			Left   float64 `fig:"left" default:"60"`
			Right  float64 `fig:"right" default:"60"`
		} `fig:"margins"`
	} `fig:"chart"`

	Output struct {
		// Allowed values: svg, png, text, json, yaml
		Format string `fig:"format" default:"svg"`
		Path   string `fig:"path" default:"-"`
	} `fig:"output"`

	Templates struct {
		Tooltip     string `fig:"tooltip"`
		Title       string `fig:"title"`
		Description string `fig:"description"`
	} `fig:"templates"`

	Intervals struct {
		Fetch  time.Duration `fig:"fetch" default:"0s"`
		Render time.Duration `fig:"render" default:"0s"`
	} `fig:"intervals"`

	Metrics struct {
		Textfile string `fig:"textfile"`
	} `fig:"metrics"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Source.File == "" {
		if c.Source.URL == "" {
			c.Source.URL = DefaultSourceURL
		}
		u, err := url.Parse(c.Source.URL)
		if err != nil {
			return fmt.Errorf("invalid source URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid source URL scheme: %q", u.Scheme)
		}
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = DefaultSourceTimeout
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("invalid source timeout: %s", c.Source.Timeout)
	}

	if c.Chart.Width <= c.Chart.Margins.Left+c.Chart.Margins.Right {
		return fmt.Errorf("invalid chart width: %g leaves no room for margins", c.Chart.Width)
	}
	if c.Chart.Height <= c.Chart.Margins.Top+c.Chart.Margins.Bottom {
		return fmt.Errorf("invalid chart height: %g leaves no room for margins", c.Chart.Height)
	}
	if c.Chart.Buckets < 2 {
		return fmt.Errorf("invalid bucket count: %d", c.Chart.Buckets)
	}
	if len(c.Chart.Palette) > 0 && len(c.Chart.Palette) != c.Chart.Buckets {
		return fmt.Errorf("invalid palette: %d buckets need %d colours, got %d", c.Chart.Buckets,
			c.Chart.Buckets, len(c.Chart.Palette))
	}
	if c.Chart.YearTicks == 0 {
		c.Chart.YearTicks = DefaultYearTicks
	}
	if c.Chart.YearTicks < 0 {
		return fmt.Errorf("invalid year tick count: %d", c.Chart.YearTicks)
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if c.Output.Path == "" {
		c.Output.Path = StdoutPath
	}

	if c.Templates.Tooltip == "" {
		c.Templates.Tooltip = DefaultTooltipTpl
	}
	if c.Templates.Title == "" {
		c.Templates.Title = DefaultTitleTpl
	}
	if c.Templates.Description == "" {
		c.Templates.Description = DefaultDescriptionTpl
	}

	if c.Intervals.Fetch < 0 || c.Intervals.Render < 0 {
		return fmt.Errorf("invalid intervals: fetch %s, render %s", c.Intervals.Fetch, c.Intervals.Render)
	}
	if (c.Intervals.Fetch > 0) != (c.Intervals.Render > 0) {
		return fmt.Errorf("invalid intervals: refresh mode needs both fetch and render, got fetch %s, render %s",
			c.Intervals.Fetch, c.Intervals.Render)
	}

	return nil
}

// Refresh reports whether the configuration asks for periodic fetch and
// render jobs instead of a single pass.
func (c *Config) Refresh() bool {
	return c.Intervals.Fetch > 0 && c.Intervals.Render > 0
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
