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
	"math"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		n     int64
		width int
		want  string
	}{
		{7, 2, "07"},
		{123, 2, "123"},
		{0, 3, "000"},
		{5, 0, "5"},
		{-7, 3, "0-7"},
	}

	for _, tt := range tests {
		if got := Pad(tt.n, tt.width); got != tt.want {
			t.Errorf("Pad(%d, %d) = %q, want %q", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestPadWith(t *testing.T) {
	tests := []struct {
		s     string
		width int
		fill  string
		want  string
	}{
		{"7", 3, " ", "  7"},
		{"ab", 4, "*", "**ab"},
		{"ab", 4, "xy", "xyxyab"},
		{"abc", 2, "0", "abc"},
		{"é", 2, "0", "0é"},
		{"x", 5, "", "x"},
	}

	for _, tt := range tests {
		if got := PadWith(tt.s, tt.width, tt.fill); got != tt.want {
			t.Errorf("PadWith(%q, %d, %q) = %q, want %q", tt.s, tt.width, tt.fill, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		want   string
		wantOK bool
	}{
		{"zero", 0, "0:00", true},
		{"minute and change", 65, "1:05", true},
		{"negative", -65, "-1:05", true},
		{"minutes not wrapped", 3600, "60:00", true},
		{"fraction dropped", 59.9, "0:59", true},
		{"long game", 4523, "75:23", true},
		{"nan", math.NaN(), "", false},
		{"positive infinity", math.Inf(1), "", false},
		{"negative infinity", math.Inf(-1), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatSeconds(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FormatSeconds(%v) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormatSecondsValue(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   string
		wantOK bool
	}{
		{"int", 90, "1:30", true},
		{"float", 90.7, "1:30", true},
		{"numeric string", "90", "1:30", true},
		{"nil", nil, "", false},
		{"bool", true, "", false},
		{"text", "abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatSecondsValue(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FormatSecondsValue(%v) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		0:   "0th",
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
		112: "112th",
	}

	for n, want := range tests {
		if got := Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"kdaRatio":    "kda_ratio",
		"heroID":      "hero_id",
		"stats.Kills": "stats_kills",
		"Kills":       "kills",
		"plain":       "plain",
		"":            "",
	}

	for in, want := range tests {
		if got := CamelToSnake(in); got != want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsRadiant(t *testing.T) {
	tests := []struct {
		slot int
		want bool
	}{
		{0, true},
		{4, true},
		{127, true},
		{128, false},
		{132, false},
	}

	for _, tt := range tests {
		if got := IsRadiant(tt.slot); got != tt.want {
			t.Errorf("IsRadiant(%d) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestLevelFromXP(t *testing.T) {
	table := DefaultXPTable()
	tests := []struct {
		xp   int64
		want int
	}{
		{-1, 0},
		{0, 1},
		{229, 1},
		{230, 2},
		{599, 2},
		{56044, 29},
		{56045, 30},
		{1000000, 30},
	}

	for _, tt := range tests {
		if got := LevelFromXP(table, tt.xp); got != tt.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}

	if got := LevelFromXP(nil, 100); got != 0 {
		t.Errorf("LevelFromXP(nil, 100) = %d, want 0", got)
	}
}

func TestLevelFromXP_NonDecreasing(t *testing.T) {
	tables := map[string][]int64{
		"default":    DefaultXPTable(),
		"repeated":   {0, 0, 50, 50, 50, 120},
		"negative":   {-500, -10, 0, 10},
		"single":     {100},
		"empty":      nil,
		"wide steps": {0, 1, 1000, 1000000},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			prev := LevelFromXP(table, -1000)
			for xp := int64(-999); xp <= 60000; xp++ {
				got := LevelFromXP(table, xp)
				if got < prev {
					t.Fatalf("LevelFromXP(%d) = %d, below LevelFromXP(%d) = %d", xp, got, xp-1, prev)
				}
				if got < 0 || got > len(table) {
					t.Fatalf("LevelFromXP(%d) = %d, want within [0, %d]", xp, got, len(table))
				}
				prev = got
			}
		})
	}
}

func TestDefaultXPTable_IsCopy(t *testing.T) {
	a := DefaultXPTable()
	a[1] = 0
	if b := DefaultXPTable(); b[1] != 230 {
		t.Errorf("DefaultXPTable()[1] = %d after mutating a copy, want 230", b[1])
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		x      float64
		digits int
		want   string
	}{
		{1.25, 1, "1.3"},
		{1.35, 1, "1.4"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{1.04, 1, "1.0"},
		{999.4, 0, "999"},
	}

	for _, tt := range tests {
		if got := Fixed(tt.x, tt.digits); got != tt.want {
			t.Errorf("Fixed(%v, %d) = %q, want %q", tt.x, tt.digits, got, tt.want)
		}
	}
}
