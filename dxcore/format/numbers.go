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

// Package format turns raw statistics values into short display strings:
// zero-padded numbers, match clocks, abbreviated counters, "time ago"
// phrases, ordinals and rank names.
//
// The free functions in this package are pure. Everything that needs a word
// from the localization dictionary, or the current time, hangs off a
// Formatter so that both collaborators are injected rather than global.
//
// Soft failures never produce an error. A clock formatter handed NaN returns
// ("", false), AbbreviateNumber returns "-" for zero, and RankTier returns the
// dictionary's "unknown" label for anything that is not an integer.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxstat/dxcore/record"
)

// Pad renders n in base 10 and left-pads it with zeros to width characters.
// Longer values are never truncated: Pad(7, 2) is "07", Pad(123, 2) is "123".
func Pad(n int64, width int) string {
	return PadWith(strconv.FormatInt(n, 10), width, "0")
}

// PadWith left-pads s with fill until it is width characters long. The fill
// string is repeated once per missing character, so a multi-character fill
// may overshoot width.
func PadWith(s string, width int, fill string) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 || fill == "" {
		return s
	}
	return strings.Repeat(fill, missing) + s
}

// FormatSeconds renders a duration in seconds as a match clock "[-]M:SS".
// Minutes are not padded and may exceed 59; seconds are always two digits.
// Fractions of a second are dropped.
//
// The second result is false, and the string empty, when v is NaN or
// infinite.
func FormatSeconds(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}

	abs := math.Abs(v)
	minutes := int64(math.Floor(abs / 60))
	seconds := int64(math.Floor(math.Mod(abs, 60)))

	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + strconv.FormatInt(minutes, 10) + ":" + Pad(seconds, 2), true
}

// FormatSecondsValue is FormatSeconds for a raw record value. Numeric strings
// are accepted; nil, booleans and other non-numeric values yield ("", false).
func FormatSecondsValue(v any) (string, bool) {
	f, ok := record.ToFloat(v)
	if !ok {
		return "", false
	}
	return FormatSeconds(f)
}

var ordinalSuffixes = [...]string{"th", "st", "nd", "rd"}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 21st, 112th.
func Ordinal(n int) string {
	v := n % 100
	suffix := ordinalSuffixes[0]
	if i := (v - 20) % 10; i >= 0 && i < len(ordinalSuffixes) {
		suffix = ordinalSuffixes[i]
	} else if v >= 0 && v < len(ordinalSuffixes) {
		suffix = ordinalSuffixes[v]
	}
	return strconv.Itoa(n) + suffix
}

var upperRun = regexp.MustCompile(`\.?[A-Z]+`)

// CamelToSnake converts a camelCase or dotted identifier to snake_case:
// "kdaRatio" becomes "kda_ratio", "heroID" becomes "hero_id" and
// "stats.Kills" becomes "stats_kills".
func CamelToSnake(s string) string {
	out := upperRun.ReplaceAllStringFunc(s, func(m string) string {
		return "_" + strings.ToLower(strings.TrimPrefix(m, "."))
	})
	return strings.TrimPrefix(out, "_")
}

// IsRadiant reports whether a player slot belongs to the Radiant team. Slots
// 0-127 are Radiant, 128 and above are Dire.
func IsRadiant(slot int) bool {
	return slot < 128
}

// Fixed formats x with exactly digits decimals, the way the dashboard
// displays percentages: exact halves round away from zero, everything else
// to the nearest decimal.
func Fixed(x float64, digits int) string {
	scale := math.Pow(10, float64(digits))
	t := x * scale
	if math.FMA(x, scale, -t) == 0 && math.Abs(t-math.Trunc(t)) == 0.5 {
		return strconv.FormatFloat(math.Round(t)/scale, 'f', digits, 64)
	}
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// trimNumber drops redundant trailing zeros from a decimal string: "1.0"
// becomes "1", "12.50" becomes "12.5".
func trimNumber(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
