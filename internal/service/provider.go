// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wneessen/heatmap/internal/dataset"
	"github.com/wneessen/heatmap/internal/dataset/provider/file"
	"github.com/wneessen/heatmap/internal/dataset/provider/remote"
	"github.com/wneessen/heatmap/internal/http"
	"github.com/wneessen/heatmap/internal/logger"
)

// selectProvider returns the file provider if a local dataset is configured
// and the remote provider otherwise.
func (s *Service) selectProvider() dataset.Provider {
	if s.config.Source.File != "" {
		return file.New(s.config.Source.File)
	}
	return remote.New(http.New(s.logger), s.logger, s.config.Source.URL, s.config.Source.Timeout)
}

// fetch loads a fresh dataset from the provider. On failure the previously
// loaded dataset is kept.
func (s *Service) fetch(ctx context.Context) error {
	s.logger.Debug(s.localizer.Get("loading dataset"), slog.String("provider", s.provider.Name()))

	start := s.clock.Now()
	ds, err := s.provider.GetDataset(ctx)
	if err == nil {
		err = ds.Validate()
	}
	s.metrics.ObserveFetch(s.provider.Name(), s.clock.Since(start), err)
	if err != nil {
		return err
	}
	if len(ds.Observations)%12 != 0 {
		s.logger.Debug("dataset does not cover complete years",
			slog.Int("observations", len(ds.Observations)))
	}
	s.metrics.Observations.Set(float64(len(ds.Observations)))

	s.datasetLock.Lock()
	s.dataset = ds
	s.fetchedAt = s.clock.Now()
	s.datasetLock.Unlock()
	return nil
}

func (s *Service) fetchJob(ctx context.Context) {
	if err := s.fetch(ctx); err != nil {
		s.logger.Error(s.localizer.Get("failed to load dataset"), logger.Err(err),
			slog.String("provider", s.provider.Name()))
	}
}

// datasetAge returns how long ago the current dataset was fetched.
func (s *Service) datasetAge() time.Duration {
	_, at := s.Dataset()
	if at.IsZero() {
		return 0
	}
	return s.clock.Since(at)
}
