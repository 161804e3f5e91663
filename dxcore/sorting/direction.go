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

package sorting

import (
	"encoding/json"

	"dirpx.dev/dxstat/dxcore/errors"
	"dirpx.dev/dxstat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Direction is the sort-direction state of a table column.
//
// Clicking a column header cycles the direction with Next: a column that is
// sorted ascending becomes descending and vice versa. The transition is a
// pure function of the current value; there is no hidden state.
type Direction int

const (
	// Ascending orders smaller keys first.
	Ascending Direction = iota

	// Descending orders larger keys first.
	Descending
)

// Compile-time check that Direction implements model.Model interface.
var _ model.Model = (*Direction)(nil)

// String constants for Direction values used in serialization, parsing, URL
// query strings and CLI flags. Changing them is a breaking change.
const (
	AscendingStr  = "asc"
	DescendingStr = "desc"
)

// String returns "asc" or "desc", or "unknown" for values outside the
// defined set.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return AscendingStr
	case Descending:
		return DescendingStr
	default:
		return "unknown"
	}
}

// ParseDirection converts a textual representation into a Direction.
//
// Accepted inputs:
//
//	"asc",  "Asc",  "ASC",  "ascending",  "Ascending",  "ASCENDING"  -> Ascending
//	"desc", "Desc", "DESC", "descending", "Descending", "DESCENDING" -> Descending
//
// Any other input yields Ascending together with a *ParseError.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case AscendingStr, "Asc", "ASC", "ascending", "Ascending", "ASCENDING":
		return Ascending, nil
	case DescendingStr, "Desc", "DESC", "descending", "Descending", "DESCENDING":
		return Descending, nil
	default:
		return Ascending, &errors.ParseError{Type: "Direction", Value: s}
	}
}

// Valid reports whether d is Ascending or Descending.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// Next returns the direction that follows d in the column-header cycle:
// Ascending -> Descending -> Ascending.
//
// Values outside the defined set fail closed to Ascending.
func (d Direction) Next() Direction {
	if !d.Valid() {
		return Ascending
	}
	if d >= Descending {
		return Ascending
	}
	return d + 1
}

// TypeName returns "Direction".
func (d Direction) TypeName() string {
	return "Direction"
}

// IsZero reports whether d is Ascending, the zero value. Ascending is a valid
// direction, so true here is not an error condition.
func (d Direction) IsZero() bool {
	return d == Ascending
}

// Equal reports whether other is a Direction or *Direction with the same
// value.
func (d Direction) Equal(other any) bool {
	switch v := other.(type) {
	case Direction:
		return d == v
	case *Direction:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError for values outside the defined set.
func (d Direction) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "Direction",
			Reason: "invalid Direction value",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON encodes a valid Direction as "asc" or "desc".
func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Direction", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the string forms understood by ParseDirection as well
// as the numeric forms 0 and 1, which is how older dashboards persisted the
// column state in local storage.
func (d *Direction) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDirection(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: err.Error()}
	}
	if !Direction(i).Valid() {
		return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: "invalid numeric value"}
	}
	*d = Direction(i)
	return nil
}

// MarshalYAML encodes a valid Direction as its string form.
func (d Direction) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Direction", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML accepts the string forms understood by ParseDirection.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Direction", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler so that Direction works as a
// map key and with flag/env decoders.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Direction", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
