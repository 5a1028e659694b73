// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package file

import (
	"context"
	"fmt"
	"os"

	"github.com/wneessen/heatmap/internal/dataset"
)

const name = "file"

// File reads the dataset document from the local filesystem.
type File struct {
	path string
}

func New(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string {
	return name
}

// Path returns the file the provider reads from.
func (f *File) Path() string {
	return f.path
}

func (f *File) GetDataset(ctx context.Context) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	ds, err := dataset.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", f.path, err)
	}
	return ds, nil
}
