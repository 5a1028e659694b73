// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wneessen/heatmap/internal/logger"
)

type signalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

// stdLibSignalSource is the production implementation.
type stdLibSignalSource struct{}

func (stdLibSignalSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (stdLibSignalSource) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

func (s *Service) notifySignals() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	s.SignalSrc.Notify(sigChan, syscall.SIGUSR1, syscall.SIGUSR2)
	return sigChan
}

// HandleSignals re-renders the heat map on SIGUSR1 and logs the state of the
// loaded dataset on SIGUSR2.
func (s *Service) HandleSignals(ctx context.Context, sigChan chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigChan:
			switch sig {
			case syscall.SIGUSR1:
				if err := s.render(ctx); err != nil {
					s.logger.Error(s.localizer.Get("failed to render heat map"), logger.Err(err))
				}
			case syscall.SIGUSR2:
				s.logDatasetState()
			}
		}
	}
}

func (s *Service) logDatasetState() {
	ds, _ := s.Dataset()
	if ds == nil {
		s.logger.Info("no dataset loaded", slog.String("provider", s.provider.Name()))
		return
	}
	s.logger.Info("currently loaded dataset", slog.String("provider", s.provider.Name()),
		slog.Int("observations", len(ds.Observations)), slog.Int("first_year", ds.FirstYear()),
		slog.Int("last_year", ds.LastYear()), slog.Duration("age", s.datasetAge()))
}
