// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/wneessen/heatmap/internal/dataset"
	"github.com/wneessen/heatmap/internal/http"
	"github.com/wneessen/heatmap/internal/logger"
)

const (
	name = "remote"

	// DefaultURL is the public dataset the chart was designed for.
	DefaultURL = "https://raw.githubusercontent.com/FreeCodeCamp/ProjectReferenceData/master/global-temperature.json"

	breakerFailures = 3
	breakerCooldown = time.Minute * 5
)

// ErrBreakerOpen is returned while the source is considered unavailable after
// repeated failures.
var ErrBreakerOpen = errors.New("dataset source temporarily disabled after repeated failures")

// Remote fetches the dataset document from a HTTP(S) endpoint.
type Remote struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	log      *logger.Logger
	breaker  *gobreaker.CircuitBreaker
}

// New returns a remote provider for endpoint. The endpoint is passed in
// explicitly so that nothing about the source lives in package state.
func New(client *http.Client, log *logger.Logger, endpoint string, timeout time.Duration) *Remote {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	if timeout <= 0 {
		timeout = http.DefaultTimeout
	}
	r := &Remote{
		endpoint: endpoint,
		timeout:  timeout,
		http:     client,
		log:      log,
	}
	r.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: isSourceHealthy,
		OnStateChange: func(_ string, from, to gobreaker.State) {
			log.Warn("dataset source circuit breaker changed state", slog.String("endpoint", endpoint),
				slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
	return r
}

func (r *Remote) Name() string {
	return name
}

// GetDataset performs a single GET of the dataset document.
func (r *Remote) GetDataset(ctx context.Context) (*dataset.Dataset, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		ds := new(dataset.Dataset)
		start := time.Now()
		status, err := r.http.GetJSON(ctx, r.endpoint, ds, r.timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset from %s (status %d): %w", r.endpoint, status, err)
		}
		r.log.Debug("dataset fetched", slog.String("endpoint", r.endpoint),
			slog.Int("observations", len(ds.Observations)), slog.Duration("took", time.Since(start)))
		return ds, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s", ErrBreakerOpen, r.endpoint)
		}
		return nil, err
	}
	ds, ok := result.(*dataset.Dataset)
	if !ok {
		return nil, errors.New("unexpected result type from dataset fetch")
	}
	return ds, nil
}

// isSourceHealthy reports whether err leaves the source usable. Cancelled
// requests and 4xx responses do not indicate an unavailable source.
func isSourceHealthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *http.StatusError
	return errors.As(err, &statusErr) && statusErr.ClientError()
}
