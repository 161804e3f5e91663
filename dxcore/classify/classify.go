/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package classify maps numbers to discrete buckets: letter grades for
// percentiles and arbitrary values for threshold tables.
package classify

import (
	"dirpx.dev/dxstat/dxcore/errors"
)

// Grade is the display bucket of a percentile. Color is a palette name of
// the dashboard theme, not a CSS value.
type Grade struct {
	Color string `json:"color" yaml:"color"`
	Grade string `json:"grade" yaml:"grade"`
}

// Palette names used by Percentile.
const (
	Green  = "green"
	Blue   = "blue"
	Golden = "golden"
	Yelor  = "yelor"
	Red    = "red"
)

// Percentile grades a fraction in [0, 1]:
//
//	>= 0.8  green  A
//	>= 0.6  blue   B
//	>= 0.4  golden C
//	>= 0.2  yelor  D
//	else    red    F
//
// NaN falls through to F.
func Percentile(pct float64) Grade {
	switch {
	case pct >= 0.8:
		return Grade{Color: Green, Grade: "A"}
	case pct >= 0.6:
		return Grade{Color: Blue, Grade: "B"}
	case pct >= 0.4:
		return Grade{Color: Golden, Grade: "C"}
	case pct >= 0.2:
		return Grade{Color: Yelor, Grade: "D"}
	default:
		return Grade{Color: Red, Grade: "F"}
	}
}

// Threshold assigns Values[i] to numbers in the half-open range
// [bounds[i], bounds[i+1]), where bounds is Start followed by Limits.
//
// A range whose bounds are reversed is swapped before testing, so
// descending tables work too. When ranges overlap the last matching value
// wins.
type Threshold[T any] struct {
	Start  float64
	Limits []float64
	Values []T
}

// NewThreshold builds a table. It fails with a *errors.ValidationError when
// limits and values have different lengths.
func NewThreshold[T any](start float64, limits []float64, values []T) (*Threshold[T], error) {
	if len(limits) != len(values) {
		return nil, &errors.ValidationError{
			Type:   "Threshold",
			Field:  "Values",
			Reason: "limits and values must have equal lengths",
			Value:  [2]int{len(limits), len(values)},
		}
	}
	return &Threshold[T]{
		Start:  start,
		Limits: append([]float64(nil), limits...),
		Values: append([]T(nil), values...),
	}, nil
}

// MustThreshold is NewThreshold for package-level tables. It panics on
// error.
func MustThreshold[T any](start float64, limits []float64, values []T) *Threshold[T] {
	t, err := NewThreshold(start, limits, values)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify returns the value whose range contains v. The second result is
// false, and the value the zero T, when no range matches.
func (t *Threshold[T]) Classify(v float64) (T, bool) {
	var zero T
	for i := len(t.Values) - 1; i >= 0; i-- {
		lo := t.Start
		if i > 0 {
			lo = t.Limits[i-1]
		}
		if inRange(lo, t.Limits[i], v) {
			return t.Values[i], true
		}
	}
	return zero, false
}

func inRange(start, end, v float64) bool {
	if start > end {
		start, end = end, start
	}
	return v >= start && v < end
}
