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
	stderrors "errors"
	"testing"

	"dirpx.dev/dxstat/dxcore/errors"
	"gopkg.in/yaml.v3"
)

func TestDirection_String(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want string
	}{
		{"Ascending", Ascending, "asc"},
		{"Descending", Descending, "desc"},
		{"Unknown", Direction(5), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.want {
				t.Errorf("Direction.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr bool
	}{
		{"asc", "asc", Ascending, false},
		{"ASC", "ASC", Ascending, false},
		{"ascending", "ascending", Ascending, false},
		{"Ascending", "Ascending", Ascending, false},
		{"desc", "desc", Descending, false},
		{"Desc", "Desc", Descending, false},
		{"DESCENDING", "DESCENDING", Descending, false},

		{"empty", "", Ascending, true},
		{"numeric", "1", Ascending, true},
		{"garbage", "up", Ascending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDirection() = %v, want %v", got, tt.want)
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) {
					t.Errorf("ParseDirection() error type = %T, want *errors.ParseError", err)
				}
			}
		})
	}
}

func TestDirection_Next(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Direction
	}{
		{"ascending to descending", Ascending, Descending},
		{"descending to ascending", Descending, Ascending},
		{"negative fails closed", Direction(-1), Ascending},
		{"out of range fails closed", Direction(7), Ascending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.Next(); got != tt.want {
				t.Errorf("Direction(%d).Next() = %v, want %v", int(tt.dir), got, tt.want)
			}
		})
	}
}

func TestDirection_Next_Cycles(t *testing.T) {
	d := Ascending
	for i := 0; i < 5; i++ {
		d = d.Next().Next()
		if d != Ascending {
			t.Fatalf("after %d double steps got %v, want asc", i+1, d)
		}
	}
}

func TestDirection_Validate(t *testing.T) {
	if err := Ascending.Validate(); err != nil {
		t.Errorf("Ascending.Validate() = %v, want nil", err)
	}
	if err := Descending.Validate(); err != nil {
		t.Errorf("Descending.Validate() = %v, want nil", err)
	}
	err := Direction(3).Validate()
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatalf("Direction(3).Validate() = %v, want *errors.ValidationError", err)
	}
}

func TestDirection_Equal(t *testing.T) {
	d := Descending
	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{"same value", Descending, true},
		{"different value", Ascending, false},
		{"pointer equal", &d, true},
		{"nil pointer", (*Direction)(nil), false},
		{"different type", "desc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Descending.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirection_IsZero(t *testing.T) {
	if !Ascending.IsZero() {
		t.Error("Ascending.IsZero() = false, want true")
	}
	if Descending.IsZero() {
		t.Error("Descending.IsZero() = true, want false")
	}
}

func TestDirection_JSON(t *testing.T) {
	data, err := json.Marshal(Descending)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"desc"` {
		t.Errorf("json.Marshal() = %s, want %q", data, "desc")
	}

	if _, err := json.Marshal(Direction(9)); err == nil {
		t.Error("json.Marshal(Direction(9)) error = nil, want error")
	}

	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr bool
	}{
		{"string asc", `"asc"`, Ascending, false},
		{"string descending", `"descending"`, Descending, false},
		{"numeric 1", `1`, Descending, false},
		{"numeric 0", `0`, Ascending, false},
		{"numeric out of range", `2`, Ascending, true},
		{"bad string", `"sideways"`, Ascending, true},
		{"object", `{}`, Ascending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Direction
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.want {
				t.Errorf("json.Unmarshal() = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestDirection_YAML(t *testing.T) {
	type column struct {
		Field string    `yaml:"field"`
		Order Direction `yaml:"order"`
	}

	var c column
	if err := yaml.Unmarshal([]byte("field: duration\norder: desc\n"), &c); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if c.Order != Descending {
		t.Errorf("Order = %v, want desc", c.Order)
	}

	out, err := yaml.Marshal(column{Field: "kills", Order: Ascending})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if string(out) != "field: kills\norder: asc\n" {
		t.Errorf("yaml.Marshal() = %q", out)
	}

	if err := yaml.Unmarshal([]byte("field: x\norder: up\n"), &c); err == nil {
		t.Error("yaml.Unmarshal(order: up) error = nil, want error")
	}
}

func TestDirection_Text(t *testing.T) {
	m := map[Direction]int{Ascending: 1, Descending: 2}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal(map) error = %v", err)
	}
	if string(data) != `{"asc":1,"desc":2}` {
		t.Errorf("json.Marshal(map) = %s", data)
	}

	var d Direction
	if err := d.UnmarshalText([]byte("DESC")); err != nil || d != Descending {
		t.Errorf("UnmarshalText(DESC) = %v, %v", d, err)
	}
}
