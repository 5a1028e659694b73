// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package render writes localized heat map views in the supported output
// formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wneessen/heatmap/internal/presenter"
)

// ErrUnknownFormat is returned for output formats without a renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer encodes a view into w.
type Renderer interface {
	Render(w io.Writer, view *presenter.View) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, view *presenter.View) error

func (f RendererFunc) Render(w io.Writer, view *presenter.View) error {
	return f(w, view)
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return NewSVG()
	case "png":
		return RendererFunc(PNG), nil
	case "text":
		return RendererFunc(Text), nil
	case "json":
		return RendererFunc(JSON), nil
	case "yaml":
		return RendererFunc(YAML), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile renders view into path. A path of "-" writes to stdout, any
// other path is replaced atomically.
func WriteFile(path string, r Renderer, view *presenter.View) error {
	if path == "-" {
		return r.Render(os.Stdout, view)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err = r.Render(tmp, view); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to render output: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary output file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output file permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}

// cellTooltips collects the hover text of every cell of view.
func cellTooltips(view *presenter.View) []string {
	tooltips := make([]string, len(view.Cells))
	if view.Hover == nil {
		return tooltips
	}
	for i, cell := range view.Cells {
		tooltips[i] = view.Hover.OnCellHover(cell)
		view.Hover.OnCellLeave()
	}
	return tooltips
}
