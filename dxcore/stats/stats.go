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

// Package stats holds the small statistical helpers used to rank heroes and
// players by their win record.
package stats

import "math"

// WilsonZ is the 0.95 quantile of the standard normal distribution used by
// WilsonScore. It bounds a two-sided 90% interval, which is the same as a
// one-sided 95% lower bound.
const WilsonZ = 1.64485

// WilsonScore returns the lower bound of the Wilson score interval for a
// record of successes and failures. Zero successes score 0 regardless of
// failures, and so do negative or NaN counts. The score favors records with
// more games over a lucky short streak with the same ratio.
func WilsonScore(successes, failures float64) float64 {
	if !(successes > 0) || !(failures >= 0) {
		return 0
	}
	n := successes + failures
	z2 := WilsonZ * WilsonZ
	phat := successes / n
	return (phat + z2/(2*n) - WilsonZ*math.Sqrt((phat*(1-phat)+z2/(4*n))/n)) / (1 + z2/n)
}

// PercentWin returns wins as a percentage of games, rounded to two decimals.
// Zero games yields 0.
func PercentWin(wins, games float64) float64 {
	if games == 0 || math.IsNaN(games) {
		return 0
	}
	return math.Round(wins*100/games*100) / 100
}

// Sum adds values.
func Sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key    K   `json:"key" yaml:"key"`
	Values []T `json:"values" yaml:"values"`
}

// GroupBy buckets items by key. Groups appear in the order their key was
// first seen, and items keep their input order within a group.
func GroupBy[K comparable, T any](items []T, key func(T) K) []Group[K, T] {
	var groups []Group[K, T]
	index := map[K]int{}
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Values = append(groups[i].Values, item)
	}
	return groups
}
