// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/wneessen/heatmap/internal/logger"
)

// watchSource reloads the dataset and re-renders the heat map whenever the
// dataset file at path is written. It runs until ctx is cancelled.
func (s *Service) watchSource(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Atomic saves replace the file, so the parent directory is watched
	dir := filepath.Dir(path)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	s.logger.Debug("watching dataset file for changes", slog.String("path", path))

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.reload(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("dataset file watcher failed", logger.Err(err))
		}
	}
}

// reload fetches the dataset and renders it. A dataset that fails to load
// keeps the previous one in place.
func (s *Service) reload(ctx context.Context) {
	if err := s.fetch(ctx); err != nil {
		s.logger.Error(s.localizer.Get("failed to load dataset"), logger.Err(err))
		return
	}
	if err := s.render(ctx); err != nil {
		s.logger.Error(s.localizer.Get("failed to render heat map"), logger.Err(err))
	}
}
