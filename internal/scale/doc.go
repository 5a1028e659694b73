// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package scale implements the three scales the heat map is drawn with.
//
// Each scale is an immutable value with a single Evaluate method that maps
// an input to an output. Nothing is captured in closures, so a scale can be
// copied, compared and serialized like any other value.
//
//   - Linear maps a continuous domain onto a continuous pixel range.
//   - Band splits a pixel range into equally sized slots for a fixed number
//     of ordinal categories.
//   - Threshold maps a continuous value onto a discrete set of outputs using
//     sorted cutoff values.
package scale
