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

package transform

// Display records returned by the built-in transformations. They carry no
// markup; a host renders them however it likes.

// Link is a navigable label.
type Link struct {
	Text    string `json:"text" yaml:"text"`
	Href    string `json:"href" yaml:"href"`
	Subtext string `json:"subtext,omitempty" yaml:"subtext,omitempty"`
}

// Relative is a timestamp paired with its "time ago" phrase.
type Relative struct {
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	Text      string `json:"text" yaml:"text"`
}

// Duration is a match length as a clock, plus how long ago the match ended
// when the start time is known.
type Duration struct {
	Clock string    `json:"clock" yaml:"clock"`
	Ended *Relative `json:"ended,omitempty" yaml:"ended,omitempty"`
}

// Match results.
const (
	ResultWin      = "win"
	ResultLoss     = "loss"
	ResultNoResult = "no_result"
)

// Palette names used by display records.
const (
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorMuted  = "muted"
	ColorRanked = "ranked"
)

// RankedLobby is the lobby type of ranked matchmaking.
const RankedLobby = 7

// Outcome describes a match from one player's side.
type Outcome struct {
	Result string `json:"result" yaml:"result"`
	Label  string `json:"label" yaml:"label"`
	Color  string `json:"color" yaml:"color"`
	Href   string `json:"href" yaml:"href"`

	// GameMode is the localized game mode, empty when the dictionary has no
	// entry for it.
	GameMode string `json:"game_mode,omitempty" yaml:"game_mode,omitempty"`

	// Lobby is the league name when the match was a league game, the
	// localized lobby type otherwise.
	Lobby      string `json:"lobby,omitempty" yaml:"lobby,omitempty"`
	LobbyColor string `json:"lobby_color,omitempty" yaml:"lobby_color,omitempty"`

	PartySize  int    `json:"party_size,omitempty" yaml:"party_size,omitempty"`
	PartyLabel string `json:"party_label,omitempty" yaml:"party_label,omitempty"`
	Skill      int    `json:"skill,omitempty" yaml:"skill,omitempty"`
	SkillLabel string `json:"skill_label,omitempty" yaml:"skill_label,omitempty"`
}

// Solo reports whether the player queued alone.
func (o Outcome) Solo() bool {
	return o.PartySize == 1
}

// KDA is a kills/deaths/assists line.
type KDA struct {
	Kills   int64   `json:"kills" yaml:"kills"`
	Deaths  int64   `json:"deaths" yaml:"deaths"`
	Assists int64   `json:"assists" yaml:"assists"`
	Ratio   float64 `json:"ratio" yaml:"ratio"`
}

// Colored is a label with a palette color.
type Colored struct {
	Text  string `json:"text" yaml:"text"`
	Color string `json:"color" yaml:"color"`
}

// Player is a player cell.
type Player struct {
	AccountID  int64  `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`
	Title      string `json:"title" yaml:"title"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Registered bool   `json:"registered" yaml:"registered"`
}

// HeroCell is a hero cell.
type HeroCell struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty"`
	Href     string `json:"href,omitempty" yaml:"href,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// Lane is the lane role number as text, "roam" for roaming players, or
	// empty. LaneLabel is its localized tooltip.
	Lane      string `json:"lane,omitempty" yaml:"lane,omitempty"`
	LaneLabel string `json:"lane_label,omitempty" yaml:"lane_label,omitempty"`

	Parsed   bool   `json:"parsed" yaml:"parsed"`
	Leaver   bool   `json:"leaver,omitempty" yaml:"leaver,omitempty"`
	GuideURL string `json:"guide_url,omitempty" yaml:"guide_url,omitempty"`
}
