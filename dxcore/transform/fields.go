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

import "strconv"

// Field names with a built-in transformation.
const (
	FieldMatchID               = "match_id"
	FieldMatchIDWithTime       = "match_id_with_time"
	FieldRadiantWinAndGameMode = "radiant_win_and_game_mode"
	FieldStartTime             = "start_time"
	FieldLastPlayed            = "last_played"
	FieldDuration              = "duration"
	FieldPatch                 = "patch"
	FieldWinPercent            = "winPercent"
	FieldKDA                   = "kda"
	FieldRank                  = "rank"
	FieldRankPercentile        = "rank_percentile"
	FieldPlayer                = "player"
	FieldHeroID                = "hero_id"
	FieldItem0                 = "item_0"
	FieldItem1                 = "item_1"
	FieldItem2                 = "item_2"
	FieldItem3                 = "item_3"
	FieldItem4                 = "item_4"
	FieldItem5                 = "item_5"
)

// ItemSlots is the number of inventory slots, item_0 through item_5.
const ItemSlots = 6

// ItemField returns the field name of inventory slot i.
func ItemField(i int) string {
	return "item_" + strconv.Itoa(i)
}

// BuiltinFields lists every field that has a built-in transformation, in
// declaration order.
func BuiltinFields() []string {
	return []string{
		FieldMatchID,
		FieldMatchIDWithTime,
		FieldRadiantWinAndGameMode,
		FieldStartTime,
		FieldLastPlayed,
		FieldDuration,
		FieldPatch,
		FieldWinPercent,
		FieldKDA,
		FieldRank,
		FieldRankPercentile,
		FieldPlayer,
		FieldHeroID,
		FieldItem0,
		FieldItem1,
		FieldItem2,
		FieldItem3,
		FieldItem4,
		FieldItem5,
	}
}

// Row fields read by the built-in transformations besides the one being
// formatted.
const (
	rowMatchID     = "match_id"
	rowStartTime   = "start_time"
	rowDuration    = "duration"
	rowLastPlayed  = "last_played"
	rowPlayerSlot  = "player_slot"
	rowGameMode    = "game_mode"
	rowLobbyType   = "lobby_type"
	rowLeagueName  = "league_name"
	rowPartySize   = "party_size"
	rowSkill       = "skill"
	rowDeaths      = "deaths"
	rowAssists     = "assists"
	rowCard        = "card"
	rowAvatar      = "avatar"
	rowAvatarFull  = "avatarfull"
	rowName        = "name"
	rowPersonaName = "personaname"
	rowSubtitle    = "subtitle"
	rowLastLogin   = "last_login"
	rowAccountID   = "account_id"
	rowIsRoaming   = "is_roaming"
	rowLaneRole    = "lane_role"
	rowVersion     = "version"
	rowLeaver      = "leaver_status"
)
