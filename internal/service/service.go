// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/vorlif/spreak"

	"github.com/wneessen/heatmap/internal/chart"
	"github.com/wneessen/heatmap/internal/config"
	"github.com/wneessen/heatmap/internal/dataset"
	"github.com/wneessen/heatmap/internal/logger"
	"github.com/wneessen/heatmap/internal/metrics"
	"github.com/wneessen/heatmap/internal/presenter"
	"github.com/wneessen/heatmap/internal/render"
)

const (
	fetchJobName  = "dataset_fetch_job"
	renderJobName = "heatmap_render_job"
)

// ErrNoDataset is returned when a render is requested before a dataset was loaded.
var ErrNoDataset = errors.New("no dataset loaded")

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	localizer *spreak.Localizer
	clock     clockwork.Clock
	metrics   *metrics.Metrics
	presenter *presenter.Presenter
	provider  dataset.Provider
	renderer  render.Renderer
	scheduler gocron.Scheduler
	SignalSrc signalSource

	datasetLock sync.RWMutex
	dataset     *dataset.Dataset
	fetchedAt   time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock driving the scheduler and the timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithProvider replaces the dataset provider selected from the configuration.
func WithProvider(provider dataset.Provider) Option {
	return func(s *Service) {
		s.provider = provider
	}
}

func New(conf *config.Config, log *logger.Logger, loc *spreak.Localizer, opts ...Option) (*Service, error) {
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if loc == nil {
		return nil, errors.New("localizer is required")
	}

	service := &Service{
		config:    conf,
		logger:    log,
		localizer: loc,
		clock:     clockwork.NewRealClock(),
		metrics:   metrics.New(),
		SignalSrc: stdLibSignalSource{},
	}
	for _, opt := range opts {
		opt(service)
	}

	if service.provider == nil {
		service.provider = service.selectProvider()
	}

	var err error
	service.presenter, err = presenter.New(conf, loc, presenter.WithClock(service.clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}
	service.renderer, err = render.New(conf.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return service, nil
}

// Run renders the heat map. Without refresh intervals it renders once and
// returns, otherwise it keeps fetching and rendering until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if !s.config.Refresh() {
		return s.RunOnce(ctx)
	}

	// A failed initial fetch is retried by the fetch job
	if err := s.fetch(ctx); err != nil {
		s.logger.Error(s.localizer.Get("failed to load dataset"), logger.Err(err))
	} else if err = s.render(ctx); err != nil {
		s.logger.Error(s.localizer.Get("failed to render heat map"), logger.Err(err))
	}

	scheduler, err := gocron.NewScheduler(gocron.WithClock(s.clock))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	s.scheduler = scheduler
	if err = s.createScheduledJob(ctx, s.config.Intervals.Fetch, s.fetchJob, fetchJobName); err != nil {
		_ = scheduler.Shutdown()
		return err
	}
	if err = s.createScheduledJob(ctx, s.config.Intervals.Render, s.renderJob, renderJobName); err != nil {
		_ = scheduler.Shutdown()
		return err
	}
	s.scheduler.Start()

	if s.config.Source.File != "" {
		go func() {
			if err := s.watchSource(ctx, s.config.Source.File); err != nil {
				s.logger.Error("failed to watch dataset file", logger.Err(err),
					slog.String("path", s.config.Source.File))
			}
		}()
	}

	sigChan := s.notifySignals()
	defer s.SignalSrc.Stop(sigChan)
	go s.HandleSignals(ctx, sigChan)

	// Wait for the context to cancel
	<-ctx.Done()
	return s.scheduler.Shutdown()
}

// RunOnce fetches the dataset and renders the heat map a single time.
func (s *Service) RunOnce(ctx context.Context) error {
	if err := s.fetch(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.localizer.Get("failed to load dataset"), err)
	}
	if err := s.render(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.localizer.Get("failed to render heat map"), err)
	}
	return nil
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

// Dataset returns the last successfully fetched dataset.
func (s *Service) Dataset() (*dataset.Dataset, time.Time) {
	s.datasetLock.RLock()
	defer s.datasetLock.RUnlock()
	return s.dataset, s.fetchedAt
}

// Metrics returns the service's metric collection.
func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

// render builds the model from the current dataset and writes it to the
// configured output.
func (s *Service) render(context.Context) error {
	ds, _ := s.Dataset()
	if ds == nil {
		return ErrNoDataset
	}

	start := s.clock.Now()
	cells, err := s.writeOutput(ds)
	s.metrics.ObserveRender(s.config.Output.Format, s.clock.Since(start), cells, s.clock.Now(), err)
	s.writeMetrics()
	if err != nil {
		return err
	}

	s.logger.Debug(s.localizer.Get("heat map written"), slog.String("path", s.config.Output.Path),
		slog.String("format", s.config.Output.Format), slog.Int("cells", cells))
	return nil
}

func (s *Service) writeOutput(ds *dataset.Dataset) (int, error) {
	model, err := chart.Build(ds, s.layout(), s.palette())
	if err != nil {
		return 0, fmt.Errorf("failed to build heat map model: %w", err)
	}
	view, err := s.presenter.View(model)
	if err != nil {
		return 0, fmt.Errorf("failed to build heat map view: %w", err)
	}
	if err = render.WriteFile(s.config.Output.Path, s.renderer, view); err != nil {
		return 0, err
	}
	return len(model.Cells), nil
}

func (s *Service) renderJob(ctx context.Context) {
	if err := s.render(ctx); err != nil {
		s.logger.Error(s.localizer.Get("failed to render heat map"), logger.Err(err))
	}
}

func (s *Service) writeMetrics() {
	if s.config.Metrics.Textfile == "" {
		return
	}
	if err := s.metrics.WriteTextfile(s.config.Metrics.Textfile); err != nil {
		s.logger.Error("failed to export metrics", logger.Err(err))
	}
}

func (s *Service) layout() chart.Layout {
	c := s.config.Chart
	return chart.Layout{
		Width:  c.Width,
		Height: c.Height,
		Margins: chart.Margins{
			Top:    c.Margins.Top,
			Bottom: c.Margins.Bottom,
			Left:   c.Margins.Left,
			Right:  c.Margins.Right,
		},
	}
}

// palette returns the configured palette. Without one, the default palette
// is used, which requires the default bucket count.
func (s *Service) palette() []string {
	if len(s.config.Chart.Palette) > 0 {
		return s.config.Chart.Palette
	}
	if s.config.Chart.Buckets == chart.DefaultBuckets {
		return chart.DefaultPalette
	}
	return chart.Spread(chart.DefaultPalette, s.config.Chart.Buckets)
}
