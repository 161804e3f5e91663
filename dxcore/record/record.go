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

// Package record defines the open row type consumed by the dxstat engine and
// the coercion rules used to read scalar fields out of it.
//
// A Record is whatever the statistics API returned for one row: a map from
// field name to scalar or nested value. The engine never assumes a closed
// schema. Any field may be absent, and an absent field reads as the zero value
// of the requested kind.
//
// Rows typically come from encoding/json (numbers are float64 or json.Number)
// or from gopkg.in/yaml.v3 (numbers are int or float64), so the accessors
// accept every Go numeric kind as well as numeric strings.
package record

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Record is an open mapping from field name to value.
type Record map[string]any

// Has reports whether the field is present, even if its value is nil.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Value returns the raw field value, or nil when absent.
func (r Record) Value(field string) any {
	return r[field]
}

// Float returns the field as a finite float64. The second result is false
// when the field is absent, not numeric, or not finite.
func (r Record) Float(field string) (float64, bool) {
	return ToFloat(r[field])
}

// FloatOr returns the field as a float64, or def when it is not numeric.
func (r Record) FloatOr(field string, def float64) float64 {
	if f, ok := r.Float(field); ok {
		return f
	}
	return def
}

// Int returns the field truncated to int64.
func (r Record) Int(field string) (int64, bool) {
	f, ok := r.Float(field)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// String returns the field as a string. Numbers and booleans are rendered
// with fmt; nil and absent fields yield "".
func (r Record) String(field string) string {
	return ToString(r[field])
}

// Bool returns the field if it holds a bool.
func (r Record) Bool(field string) (bool, bool) {
	b, ok := r[field].(bool)
	return b, ok
}

// Truthy reports whether the field holds a truthy value. See Truthy.
func (r Record) Truthy(field string) bool {
	return Truthy(r[field])
}

// Truthy reports whether v is truthy under the dashboard's rules: nil, false,
// numeric zero, NaN and the empty string are falsy; everything else, including
// empty maps and slices, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// ToFloat converts v to a finite float64.
//
// Accepted inputs are every Go integer and float kind, json.Number, and
// strings that parse as a float after trimming surrounding whitespace.
// Booleans and nil are not numbers here.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		v = strings.TrimSpace(x)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToString renders v for display. nil becomes "". Values cast cannot render,
// such as maps and slices, fall back to fmt.
func ToString(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
