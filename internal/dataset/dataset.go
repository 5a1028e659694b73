// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package dataset holds the monthly temperature variance data model and the
// providers that supply it.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Provider is implemented by each dataset source.
type Provider interface {
	Name() string
	GetDataset(ctx context.Context) (*Dataset, error)
}

// Observation is one monthly variance record.
type Observation struct {
	Year     int     `json:"year" yaml:"year"`
	Month    int     `json:"month" yaml:"month" validate:"min=1,max=12"`
	Variance float64 `json:"variance" yaml:"variance" validate:"finite"`
}

// Dataset is the base temperature together with its ordered observations.
type Dataset struct {
	BaseTemperature float64       `json:"baseTemperature" yaml:"baseTemperature" validate:"finite"`
	Observations    []Observation `json:"monthlyVariance" yaml:"monthlyVariance" validate:"required,min=1,dive"`
}

// Decode reads a JSON dataset document from r.
func Decode(r io.Reader) (*Dataset, error) {
	ds := new(Dataset)
	if err := json.NewDecoder(r).Decode(ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return ds, nil
}

// FirstYear returns the year of the first observation in sequence order.
func (d *Dataset) FirstYear() int {
	if len(d.Observations) == 0 {
		return 0
	}
	return d.Observations[0].Year
}

// LastYear returns the year of the last observation in sequence order.
func (d *Dataset) LastYear() int {
	if len(d.Observations) == 0 {
		return 0
	}
	return d.Observations[len(d.Observations)-1].Year
}
