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

package format

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dirpx.dev/dxstat/dxcore/errors"
	"dirpx.dev/dxstat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Ladder unit sizes in seconds. A month is 30 days and a year is 12 months.
const (
	Second int64 = 1
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Month        = 30 * Day
	Year         = 12 * Month
)

// TimeUnit is one rung of the "time ago" ladder.
//
// Name and Plural are dictionary keys, not words: Name is used when the
// computed value is 1 ("a minute"), Plural is a format string with one "%s"
// verb used otherwise ("%s minutes"). Limit is the exclusive upper bound in
// seconds for which the unit applies; zero means "no upper bound" and is only
// legal on the last rung. Size is the length of one unit in seconds.
type TimeUnit struct {
	Name   string `json:"name" yaml:"name"`
	Plural string `json:"plural" yaml:"plural"`
	Limit  int64  `json:"limit,omitempty" yaml:"limit,omitempty"`
	Size   int64  `json:"size" yaml:"size"`
}

var _ model.Model = (*TimeUnit)(nil)

// TypeName returns "TimeUnit".
func (u TimeUnit) TypeName() string {
	return "TimeUnit"
}

// IsZero reports whether every field of u is empty.
func (u TimeUnit) IsZero() bool {
	return u == TimeUnit{}
}

// String returns a compact form such as "time_m/time_mm<3600/60".
func (u TimeUnit) String() string {
	limit := "inf"
	if u.Limit != 0 {
		limit = strconv.FormatInt(u.Limit, 10)
	}
	return u.Name + "/" + u.Plural + "<" + limit + "/" + strconv.FormatInt(u.Size, 10)
}

// Validate checks a single rung in isolation. Ordering between rungs is
// checked by Ladder.Validate.
func (u TimeUnit) Validate() error {
	switch {
	case strings.TrimSpace(u.Name) == "":
		return &errors.ValidationError{Type: "TimeUnit", Field: "Name", Reason: "must not be empty"}
	case strings.TrimSpace(u.Plural) == "":
		return &errors.ValidationError{Type: "TimeUnit", Field: "Plural", Reason: "must not be empty"}
	case u.Size <= 0:
		return &errors.ValidationError{Type: "TimeUnit", Field: "Size", Reason: "must be positive", Value: u.Size}
	case u.Limit < 0:
		return &errors.ValidationError{Type: "TimeUnit", Field: "Limit", Reason: "must not be negative", Value: u.Limit}
	case u.Limit != 0 && u.Limit < u.Size:
		return &errors.ValidationError{Type: "TimeUnit", Field: "Limit", Reason: "must not be smaller than Size", Value: u.Limit}
	}
	return nil
}

// MarshalJSON encodes a valid TimeUnit.
func (u TimeUnit) MarshalJSON() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	type alias TimeUnit
	return json.Marshal(alias(u))
}

// UnmarshalJSON decodes and validates a TimeUnit. An empty object decodes to
// the zero TimeUnit without error so that ladder loaders can drop it.
func (u *TimeUnit) UnmarshalJSON(data []byte) error {
	type alias TimeUnit
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return &errors.UnmarshalError{Type: "TimeUnit", Data: data, Reason: err.Error()}
	}
	return u.set(TimeUnit(a))
}

// MarshalYAML encodes a valid TimeUnit.
func (u TimeUnit) MarshalYAML() (any, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	type alias TimeUnit
	return alias(u), nil
}

// UnmarshalYAML decodes and validates a TimeUnit. See UnmarshalJSON.
func (u *TimeUnit) UnmarshalYAML(node *yaml.Node) error {
	type alias TimeUnit
	var a alias
	if err := node.Decode(&a); err != nil {
		return &errors.UnmarshalError{Type: "TimeUnit", Data: []byte(node.Value), Reason: err.Error()}
	}
	return u.set(TimeUnit(a))
}

func (u *TimeUnit) set(v TimeUnit) error {
	if !v.IsZero() {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	*u = v
	return nil
}

// Ladder is the ordered list of units walked by Formatter.FromNow, smallest
// unit first.
type Ladder []TimeUnit

var _ model.Model = (*Ladder)(nil)

var defaultLadder = model.MustValidate(Ladder{
	{Name: "time_s", Plural: "time_ss", Limit: Minute, Size: Second},
	{Name: "time_m", Plural: "time_mm", Limit: Hour, Size: Minute},
	{Name: "time_h", Plural: "time_hh", Limit: Day, Size: Hour},
	{Name: "time_d", Plural: "time_dd", Limit: Month, Size: Day},
	{Name: "time_M", Plural: "time_MM", Limit: Year, Size: Month},
	{Name: "time_y", Plural: "time_yy", Size: Year},
})

// DefaultLadder returns a copy of the built-in ladder: seconds, minutes,
// hours, days, 30-day months and 360-day years.
func DefaultLadder() Ladder {
	l := make(Ladder, len(defaultLadder))
	copy(l, defaultLadder)
	return l
}

// TypeName returns "Ladder".
func (l Ladder) TypeName() string {
	return "Ladder"
}

// IsZero reports whether the ladder has no rungs.
func (l Ladder) IsZero() bool {
	return len(l) == 0
}

// String joins the rungs with ", ".
func (l Ladder) String() string {
	parts := make([]string, len(l))
	for i, u := range l {
		parts[i] = u.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Validate checks every rung and the ordering rules: limits strictly
// increase, and only the last rung has no upper bound.
func (l Ladder) Validate() error {
	if len(l) == 0 {
		return &errors.ValidationError{Type: "Ladder", Reason: "must have at least one unit"}
	}
	if err := model.ValidateAll(l); err != nil {
		return err
	}

	last := len(l) - 1
	if l[last].Limit != 0 {
		return &errors.ValidationError{
			Type:   "Ladder",
			Field:  fmt.Sprintf("[%d].Limit", last),
			Reason: "last unit must have no upper bound",
			Value:  l[last].Limit,
		}
	}
	for i := 0; i < last; i++ {
		if l[i].Limit == 0 {
			return &errors.ValidationError{
				Type:   "Ladder",
				Field:  fmt.Sprintf("[%d].Limit", i),
				Reason: "only the last unit may have no upper bound",
			}
		}
		if i > 0 && l[i].Limit <= l[i-1].Limit {
			return &errors.ValidationError{
				Type:   "Ladder",
				Field:  fmt.Sprintf("[%d].Limit", i),
				Reason: "limits must strictly increase",
				Value:  l[i].Limit,
			}
		}
	}
	return nil
}

// MarshalJSON encodes a valid ladder as a JSON array.
func (l Ladder) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal([]TimeUnit(l))
}

// UnmarshalJSON decodes a JSON array of units, dropping empty entries, and
// validates the result.
func (l *Ladder) UnmarshalJSON(data []byte) error {
	var units []TimeUnit
	if err := json.Unmarshal(data, &units); err != nil {
		return err
	}
	return l.set(units)
}

// MarshalYAML encodes a valid ladder as a YAML sequence.
func (l Ladder) MarshalYAML() (any, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return []TimeUnit(l), nil
}

// UnmarshalYAML decodes a YAML sequence of units, dropping empty entries, and
// validates the result.
func (l *Ladder) UnmarshalYAML(node *yaml.Node) error {
	var units []TimeUnit
	if err := node.Decode(&units); err != nil {
		return err
	}
	return l.set(units)
}

func (l *Ladder) set(units []TimeUnit) error {
	v := Ladder(model.FilterZero(units))
	if err := v.Validate(); err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLadder decodes a ladder from a YAML or JSON document.
func ParseLadder(data []byte) (Ladder, error) {
	var l Ladder
	if err := model.FromYAML(data, &l); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadLadder reads a ladder from a file. Files with a .json extension are
// decoded as strict JSON; anything else as YAML.
func LoadLadder(file string) (Ladder, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(file), ".json") {
		return ParseLadder(data)
	}

	var l Ladder
	if err := model.FromJSON(data, &l); err != nil {
		return nil, err
	}
	return l, nil
}
