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

// defaultXPTable holds the cumulative experience needed to reach each hero
// level, starting at level 1.
var defaultXPTable = [...]int64{
	0, 230, 600, 1080, 1660, 2260, 2980, 3730, 4620, 5550,
	6520, 7530, 8580, 9805, 11055, 12330, 13630, 14955, 16455, 18045,
	19645, 21495, 23595, 25945, 28545, 32045, 36545, 42045, 48545, 56045,
}

// DefaultXPTable returns a copy of the built-in 30-level experience table.
func DefaultXPTable() []int64 {
	t := make([]int64, len(defaultXPTable))
	copy(t, defaultXPTable[:])
	return t
}

// LevelFromXP returns the smallest index whose threshold exceeds xp, or
// len(table) when xp reaches the last threshold. With the default table the
// result is the hero level for that much experience.
func LevelFromXP(table []int64, xp int64) int {
	for i, threshold := range table {
		if threshold > xp {
			return i
		}
	}
	return len(table)
}
