// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDataset is returned when a dataset cannot be turned into a chart.
var ErrInvalidDataset = errors.New("invalid dataset")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// Validate checks the preconditions of the chart model: at least one
// observation, a finite base temperature and months within 1-12.
// The twelve-months-per-year layout assumption is not checked.
func (d *Dataset) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: dataset is nil", ErrInvalidDataset)
	}
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrInvalidDataset, err)
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDataset, strings.Join(reasons, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Dataset.")
	switch fe.Tag() {
	case "required", "min":
		if fe.Field() == "Observations" {
			return "observation list is empty"
		}
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "finite":
		return fmt.Sprintf("%s must be a finite number, got %v", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed on %q", field, fe.Tag())
	}
}
