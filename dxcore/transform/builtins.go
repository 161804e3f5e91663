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

import (
	"math"
	"strconv"
	"strings"

	"dirpx.dev/dxstat/dxcore/classify"
	"dirpx.dev/dxstat/dxcore/format"
	"dirpx.dev/dxstat/dxcore/record"
	"dirpx.dev/dxstat/dxcore/stats"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GuideBase is the hero guide index linked from hero cells.
const GuideBase = "https://moremmr.com/en/heroes/"

// Builtins returns a fresh map of every built-in transformation.
func Builtins() map[string]Func {
	m := map[string]Func{
		FieldMatchID:               matchID,
		FieldMatchIDWithTime:       matchIDWithTime,
		FieldRadiantWinAndGameMode: outcome,
		FieldStartTime:             relative,
		FieldLastPlayed:            relative,
		FieldDuration:              duration,
		FieldPatch:                 patch,
		FieldWinPercent:            winPercent,
		FieldKDA:                   kda,
		FieldRank:                  rank,
		FieldRankPercentile:        rankPercentile,
		FieldPlayer:                player,
		FieldHeroID:                hero,
	}
	for i := 0; i < ItemSlots; i++ {
		m[ItemField(i)] = item
	}
	return m
}

func matchHref(id any) string {
	return "/matches/" + record.ToString(id)
}

func matchID(_ Env, row record.Record, field string) any {
	return Link{Text: row.String(field), Href: matchHref(row[field])}
}

func matchIDWithTime(env Env, row record.Record, field string) any {
	link := Link{Text: row.String(field), Href: matchHref(row[field])}
	if ts, ok := row.Int(rowStartTime); ok {
		link.Subtext = env.Formatter.FromNow(ts)
	}
	return link
}

func outcome(env Env, row record.Record, field string) any {
	s := env.Strings
	o := Outcome{Href: matchHref(row[rowMatchID])}

	slot, ok := row.Int(rowPlayerSlot)
	radiant := ok && format.IsRadiant(int(slot))
	switch v := row[field]; {
	case v == nil:
		o.Result, o.Label, o.Color = ResultNoResult, s.Lookup("td_no_result"), ColorMuted
	case record.Truthy(v) == radiant:
		o.Result, o.Label, o.Color = ResultWin, s.Lookup("td_win"), ColorGreen
	default:
		o.Result, o.Label, o.Color = ResultLoss, s.Lookup("td_loss"), ColorRed
	}

	if mode, ok := row.Int(rowGameMode); ok {
		o.GameMode = s.Lookup("game_mode_" + strconv.FormatInt(mode, 10))
	}
	if league := row.String(rowLeagueName); league != "" {
		o.Lobby = league
	} else if lobby, ok := row.Int(rowLobbyType); ok {
		o.Lobby = s.Lookup("lobby_type_" + strconv.FormatInt(lobby, 10))
		if lobby == RankedLobby {
			o.LobbyColor = ColorRanked
		}
	}
	if size, ok := row.Int(rowPartySize); ok {
		o.PartySize = int(size)
		o.PartyLabel = s.Lookup("filter_party_size") + " " + strconv.FormatInt(size, 10)
	}
	if skill, ok := row.Int(rowSkill); ok && skill != 0 {
		o.Skill = int(skill)
		o.SkillLabel = s.Lookup("skill_"+strconv.FormatInt(skill, 10)) + " " + s.Lookup("th_skill")
	}
	return o
}

func relative(env Env, row record.Record, field string) any {
	ts, ok := row.Int(field)
	if !ok {
		return row[field]
	}
	return Relative{Timestamp: ts, Text: env.Formatter.FromNow(ts)}
}

func duration(env Env, row record.Record, field string) any {
	clock, _ := format.FormatSecondsValue(row[field])
	d := Duration{Clock: clock}

	start, ok := row.Int(rowStartTime)
	length, ok2 := row.Int(rowDuration)
	if ok && ok2 {
		end := start + length
		d.Ended = &Relative{Timestamp: end, Text: env.Formatter.FromNow(end)}
	}
	return d
}

func patch(env Env, row record.Record, field string) any {
	i, ok := row.Int(field)
	if ok && i >= 0 && i < int64(len(env.Patches)) && env.Patches[i] != "" {
		return env.Patches[i]
	}
	return row[field]
}

func winPercent(_ Env, row record.Record, field string) any {
	f, ok := row.Float(field)
	if !ok {
		return "-"
	}
	return format.Fixed(f*100, 2) + "%"
}

func kda(_ Env, row record.Record, field string) any {
	k, _ := row.Int(field)
	d, _ := row.Int(rowDeaths)
	a, _ := row.Int(rowAssists)
	return KDA{
		Kills:   k,
		Deaths:  d,
		Assists: a,
		Ratio:   math.Round(float64(k+a)/float64(d+1)*100) / 100,
	}
}

func rank(_ Env, row record.Record, field string) any {
	n, ok := row.Int(field)
	if !ok {
		return row[field]
	}
	return format.Ordinal(int(n))
}

func rankPercentile(_ Env, row record.Record, _ string) any {
	r := row.FloatOr(FieldRank, 0)
	card := row.FloatOr(rowCard, 0)
	return Colored{
		Text:  format.Fixed(stats.PercentWin(r, card), 2) + "%",
		Color: classify.Percentile(r / card).Color,
	}
}

func player(env Env, row record.Record, _ string) any {
	p := Player{
		Image:      firstString(row, rowAvatar, rowAvatarFull),
		Title:      firstString(row, rowName, rowPersonaName),
		Subtitle:   row.String(rowSubtitle),
		Registered: row.Truthy(rowLastLogin),
	}
	if id, ok := row.Int(rowAccountID); ok {
		p.AccountID = id
	}
	if p.Subtitle == "" && row.Truthy(rowLastPlayed) {
		ts, _ := row.Int(rowLastPlayed)
		p.Subtitle = env.Formatter.FromNow(ts)
	}
	return p
}

func hero(env Env, row record.Record, field string) any {
	s := env.Strings
	id64, _ := row.Int(field)
	id := int(id64)

	h := HeroCell{
		ID:     id,
		Name:   s.Lookup("general_no_hero"),
		Image:  env.Assets.HeroImage(id, Small),
		Parsed: row.Truthy(rowVersion),
		Leaver: row.Truthy(rowLeaver),
	}
	if meta, ok := env.Heroes[id]; ok && meta.Name != "" {
		h.Name = meta.Name
		h.GuideURL = GuideURL(meta.Name)
	}

	switch slot, hasSlot := row.Int(rowPlayerSlot); {
	case row.Truthy(rowMatchID) && row.Has(rowPlayerSlot):
		h.Href = matchHref(row[rowMatchID])
		if hasSlot && format.IsRadiant(int(slot)) {
			h.Subtitle = s.Lookup("general_radiant")
		} else {
			h.Subtitle = s.Lookup("general_dire")
		}
		if row.Truthy(rowIsRoaming) {
			h.Lane, h.LaneLabel = "roam", s.Lookup("roaming")
		} else if row.Truthy(rowLaneRole) {
			h.Lane = row.String(rowLaneRole)
			h.LaneLabel = s.Lookup("lane_role_" + h.Lane)
		}
	case row.Truthy(rowLastPlayed):
		ts, _ := row.Int(rowLastPlayed)
		h.Subtitle = env.Formatter.FromNow(ts)
	case row.Truthy(rowStartTime):
		ts, _ := row.Int(rowStartTime)
		h.Subtitle = env.Formatter.FromNow(ts)
	}
	return h
}

func item(env Env, row record.Record, field string) any {
	id, ok := row.Int(field)
	if !ok || id == 0 {
		return false
	}
	if url := env.Assets.ItemImage(int(id)); url != "" {
		return url
	}
	return false
}

func abbreviated(env Env, row record.Record, field string) any {
	if s, ok := row[field].(string); ok {
		return s
	}
	return env.Formatter.AbbreviateValue(row[field])
}

// GuideURL returns the video guide page of a hero by localized name, or the
// guide index when name is empty.
func GuideURL(name string) string {
	if name == "" {
		return GuideBase
	}
	slug := strings.Replace(cases.Lower(language.English).String(name), " ", "-", 1)
	return GuideBase + slug + "/videos?utm_source=opendota&utm_medium=heroes&utm_campaign=" + slug
}

func firstString(row record.Record, fields ...string) string {
	for _, f := range fields {
		if s := row.String(f); s != "" {
			return s
		}
	}
	return ""
}
