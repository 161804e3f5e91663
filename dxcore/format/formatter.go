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
	"strconv"
	"time"

	"dirpx.dev/dxstat/dxcore/locale"
	"dirpx.dev/dxstat/dxcore/record"
)

// Dictionary keys read by Formatter.
const (
	KeyThousand = "abbr_thousand"
	KeyMillion  = "abbr_million"
	KeyBillion  = "abbr_billion"
	KeyTrillion = "abbr_trillion"
	KeyJustNow  = "time_just_now"
	KeyPast     = "time_past"
	KeyUnknown  = "general_unknown"
	KeyRadiant  = "general_radiant"
	KeyDire     = "general_dire"
	KeyRankTier = "rank_tier_"
)

// justNow is the elapsed time, in seconds, below which FromNow stops counting.
const justNow = 5

// Formatter renders values that need words from the localization dictionary
// or the current time. A Formatter is immutable after New and safe for
// concurrent use as long as the dictionary is not mutated.
type Formatter struct {
	strings locale.Dictionary
	now     func() time.Time
	xp      []int64
	ladder  Ladder
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithXPTable replaces the experience table used by Level.
func WithXPTable(table []int64) Option {
	return func(f *Formatter) {
		if len(table) > 0 {
			f.xp = append([]int64(nil), table...)
		}
	}
}

// WithLadder replaces the unit ladder used by FromNow. The ladder should have
// been validated; see Ladder.Validate.
func WithLadder(l Ladder) Option {
	return func(f *Formatter) {
		if len(l) > 0 {
			f.ladder = append(Ladder(nil), l...)
		}
	}
}

// New returns a Formatter reading words from strings. A nil dictionary
// behaves as an empty one.
func New(strings locale.Dictionary, opts ...Option) *Formatter {
	if strings == nil {
		strings = locale.Strings{}
	}
	f := &Formatter{
		strings: strings,
		now:     time.Now,
		xp:      DefaultXPTable(),
		ladder:  DefaultLadder(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dictionary returns the dictionary the formatter reads from.
func (f *Formatter) Dictionary() locale.Dictionary {
	return f.strings
}

// Ladder returns a copy of the unit ladder used by FromNow.
func (f *Formatter) Ladder() Ladder {
	return append(Ladder(nil), f.ladder...)
}

// Now returns the formatter's notion of the current time.
func (f *Formatter) Now() time.Time {
	return f.now()
}

// AbbreviateNumber shortens large counters: 1500 becomes "1.5k", 2000000
// becomes "2m". Values are divided by the largest power of a thousand not
// above them, rounded to one decimal, and suffixed with the matching
// dictionary word; a trailing ".0" is dropped. Values below one thousand are
// rounded to an integer. Zero and NaN render as "-".
func (f *Formatter) AbbreviateNumber(num float64) string {
	switch {
	case num == 0 || math.IsNaN(num):
		return "-"
	case num >= 1e3 && num < 1e6:
		return trimNumber(Fixed(num/1e3, 1)) + f.strings.Lookup(KeyThousand)
	case num >= 1e6 && num < 1e9:
		return trimNumber(Fixed(num/1e6, 1)) + f.strings.Lookup(KeyMillion)
	case num >= 1e9 && num < 1e12:
		return trimNumber(Fixed(num/1e9, 1)) + f.strings.Lookup(KeyBillion)
	case num >= 1e12:
		return trimNumber(Fixed(num/1e12, 1)) + f.strings.Lookup(KeyTrillion)
	}
	return Fixed(num, 0)
}

// AbbreviateValue is AbbreviateNumber for a raw record value. Falsy and
// non-numeric values render as "-".
func (f *Formatter) AbbreviateValue(v any) string {
	n, ok := record.ToFloat(v)
	if !ok {
		return "-"
	}
	return f.AbbreviateNumber(n)
}

// FromNow renders the time elapsed since the Unix timestamp ts (in seconds)
// as a "time ago" phrase, for example "5 minutes ago" or "a day ago".
//
// Less than five seconds, including timestamps in the future, renders as the
// "just now" phrase. Otherwise the first ladder unit whose limit exceeds the
// elapsed time is chosen and the elapsed time is floored to whole units.
func (f *Formatter) FromNow(ts int64) string {
	elapsed := f.now().Sub(time.Unix(ts, 0)).Seconds()
	if elapsed < justNow {
		return f.strings.Lookup(KeyJustNow)
	}

	for _, u := range f.ladder {
		if u.Limit != 0 && elapsed >= float64(u.Limit) {
			continue
		}
		value := int64(math.Floor(elapsed / float64(u.Size)))
		phrase := f.strings.Lookup(u.Name)
		if value > 1 {
			phrase = locale.Sprintf(f.strings.Lookup(u.Plural), value)
		}
		return locale.Sprintf(f.strings.Lookup(KeyPast), phrase)
	}
	return ""
}

// Level returns the hero level reached with xp experience.
func (f *Formatter) Level(xp int64) int {
	return LevelFromXP(f.xp, xp)
}

// RankTier renders a two-digit rank tier such as 54 as "Legend [4]": the tens
// digit selects the medal, the units digit the star count. Tiers below ten
// render the medal alone. Anything that is not an integral number, including
// numeric strings, renders as the "unknown" label.
func (f *Formatter) RankTier(v any) string {
	tier, ok := integral(v)
	if !ok {
		return f.strings.Lookup(KeyUnknown)
	}
	rank := f.strings.Lookup(KeyRankTier + strconv.FormatInt(tier/10, 10))
	if tier > 9 {
		rank += " [" + strconv.FormatInt(tier%10, 10) + "]"
	}
	return rank
}

// TeamName returns name, or the localized side name when name is empty.
func (f *Formatter) TeamName(name string, radiant bool) string {
	if name != "" {
		return name
	}
	if radiant {
		return f.strings.Lookup(KeyRadiant)
	}
	return f.strings.Lookup(KeyDire)
}

func integral(v any) (int64, bool) {
	switch v.(type) {
	case string, bool, nil:
		return 0, false
	}
	n, ok := record.ToFloat(v)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	return int64(n), true
}
