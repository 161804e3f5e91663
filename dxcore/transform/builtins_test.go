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
	"testing"

	"dirpx.dev/dxstat/dxcore/classify"
	"dirpx.dev/dxstat/dxcore/record"
	"github.com/stretchr/testify/assert"
)

func TestMatchID(t *testing.T) {
	r := New(testEnv())

	assert.Equal(t,
		Link{Text: "7234567890", Href: "/matches/7234567890"},
		r.Format(record.Record{FieldMatchID: float64(7234567890)}, FieldMatchID),
	)

	row := record.Record{FieldMatchIDWithTime: 99, "start_time": now.Unix() - 120}
	assert.Equal(t,
		Link{Text: "99", Href: "/matches/99", Subtext: "2 minutes ago"},
		r.Format(row, FieldMatchIDWithTime),
	)

	row = record.Record{FieldMatchIDWithTime: 99}
	assert.Equal(t, Link{Text: "99", Href: "/matches/99"}, r.Format(row, FieldMatchIDWithTime))
}

func TestOutcome(t *testing.T) {
	r := New(testEnv())

	tests := []struct {
		name string
		row  record.Record
		want Outcome
	}{
		{
			name: "radiant player, radiant won",
			row: record.Record{
				"match_id": 1, FieldRadiantWinAndGameMode: true, "player_slot": 2,
				"game_mode": 22, "lobby_type": 7, "party_size": 1, "skill": 2,
			},
			want: Outcome{
				Result: ResultWin, Label: "Won Match", Color: ColorGreen, Href: "/matches/1",
				GameMode: "Ranked All Pick", Lobby: "Ranked", LobbyColor: ColorRanked,
				PartySize: 1, PartyLabel: "Party Size 1", Skill: 2, SkillLabel: "High Skill",
			},
		},
		{
			name: "dire player, radiant won",
			row: record.Record{
				"match_id": 2, FieldRadiantWinAndGameMode: true, "player_slot": 130,
				"game_mode": 1, "lobby_type": 0,
			},
			want: Outcome{
				Result: ResultLoss, Label: "Lost Match", Color: ColorRed, Href: "/matches/2",
				GameMode: "All Pick", Lobby: "Normal",
			},
		},
		{
			name: "dire player, dire won",
			row:  record.Record{"match_id": 3, FieldRadiantWinAndGameMode: false, "player_slot": 131},
			want: Outcome{Result: ResultWin, Label: "Won Match", Color: ColorGreen, Href: "/matches/3"},
		},
		{
			name: "no result",
			row:  record.Record{"match_id": 4, FieldRadiantWinAndGameMode: nil, "player_slot": 0},
			want: Outcome{Result: ResultNoResult, Label: "No Result", Color: ColorMuted, Href: "/matches/4"},
		},
		{
			name: "league game",
			row: record.Record{
				"match_id": 5, FieldRadiantWinAndGameMode: true, "player_slot": 0,
				"lobby_type": 2, "league_name": "The International",
			},
			want: Outcome{
				Result: ResultWin, Label: "Won Match", Color: ColorGreen, Href: "/matches/5",
				Lobby: "The International",
			},
		},
		{
			name: "unknown game mode",
			row:  record.Record{"match_id": 6, FieldRadiantWinAndGameMode: true, "player_slot": 0, "game_mode": 99},
			want: Outcome{Result: ResultWin, Label: "Won Match", Color: ColorGreen, Href: "/matches/6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Format(tt.row, FieldRadiantWinAndGameMode))
		})
	}

	solo := r.Format(tests[0].row, FieldRadiantWinAndGameMode).(Outcome)
	assert.True(t, solo.Solo())
}

func TestRelative(t *testing.T) {
	r := New(testEnv())
	ts := now.Unix() - 3*86400

	assert.Equal(t, Relative{Timestamp: ts, Text: "3 days ago"}, r.Format(record.Record{FieldStartTime: ts}, FieldStartTime))
	assert.Equal(t, Relative{Timestamp: ts, Text: "3 days ago"}, r.Format(record.Record{FieldLastPlayed: ts}, FieldLastPlayed))
	assert.Nil(t, r.Format(record.Record{}, FieldStartTime))
}

func TestDuration(t *testing.T) {
	r := New(testEnv())
	start := now.Unix() - 7200

	got := r.Format(record.Record{FieldDuration: 2423, "start_time": start}, FieldDuration)
	assert.Equal(t, Duration{
		Clock: "40:23",
		Ended: &Relative{Timestamp: start + 2423, Text: "an hour ago"},
	}, got)

	assert.Equal(t, Duration{Clock: "1:05"}, r.Format(record.Record{FieldDuration: 65}, FieldDuration))
	assert.Equal(t, Duration{}, r.Format(record.Record{FieldDuration: "n/a"}, FieldDuration))
}

func TestPatch(t *testing.T) {
	r := New(testEnv())

	tests := []struct {
		value any
		want  any
	}{
		{0, "6.70"},
		{3, "7.00"},
		{2, 2},
		{17, 17},
		{-1, -1},
		{"x", "x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Format(record.Record{FieldPatch: tt.value}, FieldPatch), "patch %v", tt.value)
	}
}

func TestWinPercent(t *testing.T) {
	r := New(testEnv())

	tests := []struct {
		value any
		want  string
	}{
		{0.5, "50.00%"},
		{0.56789, "56.79%"},
		{1, "100.00%"},
		{0, "0.00%"},
		{"abc", "-"},
		{nil, "-"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Format(record.Record{FieldWinPercent: tt.value}, FieldWinPercent), "winPercent %v", tt.value)
	}
}

func TestKDA(t *testing.T) {
	r := New(testEnv())

	got := r.Format(record.Record{FieldKDA: 10, "deaths": 2, "assists": 5}, FieldKDA)
	assert.Equal(t, KDA{Kills: 10, Deaths: 2, Assists: 5, Ratio: 5}, got)

	got = r.Format(record.Record{FieldKDA: 1, "assists": 1}, FieldKDA)
	assert.Equal(t, KDA{Kills: 1, Assists: 1, Ratio: 2}, got)
}

func TestRank(t *testing.T) {
	r := New(testEnv())

	assert.Equal(t, "1st", r.Format(record.Record{FieldRank: 1}, FieldRank))
	assert.Equal(t, "112th", r.Format(record.Record{FieldRank: 112}, FieldRank))
	assert.Equal(t, "n/a", r.Format(record.Record{FieldRank: "n/a"}, FieldRank))
}

func TestRankPercentile(t *testing.T) {
	r := New(testEnv())

	tests := []struct {
		name string
		row  record.Record
		want Colored
	}{
		{"top", record.Record{"rank": 95, "card": 100}, Colored{Text: "95.00%", Color: classify.Green}},
		{"middle", record.Record{"rank": 1, "card": 2}, Colored{Text: "50.00%", Color: classify.Golden}},
		{"bottom", record.Record{"rank": 5, "card": 100}, Colored{Text: "5.00%", Color: classify.Red}},
		{"thirds", record.Record{"rank": 1, "card": 3}, Colored{Text: "33.33%", Color: classify.Yelor}},
		{"empty card", record.Record{"rank": 0, "card": 0}, Colored{Text: "0.00%", Color: classify.Red}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Format(tt.row, FieldRankPercentile))
		})
	}
}

func TestPlayer(t *testing.T) {
	r := New(testEnv())

	got := r.Format(record.Record{
		"account_id":  88367253,
		"avatarfull":  "https://avatars.example.com/full.jpg",
		"personaname": "Dendi",
		"last_played": now.Unix() - 60,
		"last_login":  "2017-01-01",
	}, FieldPlayer)
	assert.Equal(t, Player{
		AccountID:  88367253,
		Image:      "https://avatars.example.com/full.jpg",
		Title:      "Dendi",
		Subtitle:   "a minute ago",
		Registered: true,
	}, got)

	got = r.Format(record.Record{
		"avatar":     "a.jpg",
		"avatarfull": "b.jpg",
		"name":       "Pro Name",
		"subtitle":   "Team Liquid",
	}, FieldPlayer)
	assert.Equal(t, Player{Image: "a.jpg", Title: "Pro Name", Subtitle: "Team Liquid"}, got)
}

func TestHero(t *testing.T) {
	r := New(testEnv())

	tests := []struct {
		name string
		row  record.Record
		want HeroCell
	}{
		{
			name: "match player",
			row:  record.Record{FieldHeroID: 1, "match_id": 10, "player_slot": 129, "lane_role": 2, "version": 21},
			want: HeroCell{
				ID:        1,
				Name:      "Anti-Mage",
				Image:     "https://cdn.example.com/apps/dota2/images/heroes/antimage_sb.png",
				Href:      "/matches/10",
				Subtitle:  "Dire",
				Lane:      "2",
				LaneLabel: "Mid",
				Parsed:    true,
				GuideURL:  GuideBase + "anti-mage/videos?utm_source=opendota&utm_medium=heroes&utm_campaign=anti-mage",
			},
		},
		{
			name: "roaming radiant",
			row:  record.Record{FieldHeroID: 64, "match_id": 10, "player_slot": 0, "is_roaming": true, "lane_role": 1},
			want: HeroCell{
				ID:        64,
				Name:      "Jakiro",
				Image:     "https://cdn.example.com/apps/dota2/images/heroes/jakiro_sb.png",
				Href:      "/matches/10",
				Subtitle:  "Radiant",
				Lane:      "roam",
				LaneLabel: "Roaming",
				GuideURL:  GuideBase + "jakiro/videos?utm_source=opendota&utm_medium=heroes&utm_campaign=jakiro",
			},
		},
		{
			name: "hero stats row",
			row:  record.Record{FieldHeroID: 64, "last_played": now.Unix() - 7200, "leaver_status": 1},
			want: HeroCell{
				ID:       64,
				Name:     "Jakiro",
				Image:    "https://cdn.example.com/apps/dota2/images/heroes/jakiro_sb.png",
				Subtitle: "2 hours ago",
				Leaver:   true,
				GuideURL: GuideBase + "jakiro/videos?utm_source=opendota&utm_medium=heroes&utm_campaign=jakiro",
			},
		},
		{
			name: "unknown hero",
			row:  record.Record{FieldHeroID: 0},
			want: HeroCell{ID: 0, Name: "No Hero"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Format(tt.row, FieldHeroID))
		})
	}
}

func TestItem(t *testing.T) {
	r := New(testEnv())

	for i := 0; i < ItemSlots; i++ {
		field := ItemField(i)
		assert.Equal(t, "https://cdn.example.com/apps/dota2/images/items/blink_lg.png?t=1", r.Format(record.Record{field: 1}, field))
		assert.Equal(t, false, r.Format(record.Record{field: 0}, field), "empty slot")
		assert.Equal(t, false, r.Format(record.Record{field: 9999}, field), "unknown item")
		assert.Equal(t, false, r.Format(record.Record{}, field), "absent slot")
	}
}

func TestGuideURL(t *testing.T) {
	assert.Equal(t, GuideBase, GuideURL(""))
	assert.Equal(t,
		GuideBase+"queen-of pain/videos?utm_source=opendota&utm_medium=heroes&utm_campaign=queen-of pain",
		GuideURL("Queen of Pain"),
	)
}
