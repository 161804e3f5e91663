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

// Package sorting orders table rows by a column value.
//
// The ordering reproduces the dashboard's column sort exactly, including two
// behaviors that look like bugs but that downstream display code relies on:
//
//   - Every falsy key (nil, false, 0, NaN, "") is replaced by 0 before
//     comparison. A legitimate 0 therefore sorts together with a missing
//     value, and "" sorts as if it were 0.
//
//   - The sort is not stable. Rows with equal keys may come out in any order.
package sorting

import (
	"sort"

	"dirpx.dev/dxstat/dxcore/record"
)

// Sort orders items in place by the key derived from each item.
//
// Keys are compared with a plain less-than: two strings compare
// lexically, two values that both read as numbers (including numeric strings
// and booleans) compare numerically, and anything else falls back to a
// lexical comparison of the rendered values. An invalid dir sorts ascending.
func Sort[T any](items []T, dir Direction, key func(T) any) {
	keys := make([]any, len(items))
	for i, it := range items {
		keys[i] = normalize(key(it))
	}

	desc := dir == Descending
	sort.Sort(&keyed[T]{items: items, keys: keys, desc: desc})
}

// DefaultSort orders rows by the named field, or by accessor when it is not
// nil, and returns rows for chaining. The input slice is reordered in place.
func DefaultSort(rows []record.Record, dir Direction, field string, accessor record.Accessor) []record.Record {
	d := record.Descriptor{Field: field, Accessor: accessor}
	Sort(rows, dir, d.Get)
	return rows
}

// keyed sorts items and their precomputed keys together.
type keyed[T any] struct {
	items []T
	keys  []any
	desc  bool
}

func (k *keyed[T]) Len() int { return len(k.items) }

func (k *keyed[T]) Less(i, j int) bool {
	if k.desc {
		return less(k.keys[j], k.keys[i])
	}
	return less(k.keys[i], k.keys[j])
}

func (k *keyed[T]) Swap(i, j int) {
	k.items[i], k.items[j] = k.items[j], k.items[i]
	k.keys[i], k.keys[j] = k.keys[j], k.keys[i]
}

func normalize(v any) any {
	if !record.Truthy(v) {
		return 0.0
	}
	return v
}

func less(a, b any) bool {
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as < bs
	}
	af, aNum := number(a)
	bf, bNum := number(b)
	if aNum && bNum {
		return af < bf
	}
	return record.ToString(a) < record.ToString(b)
}

func number(v any) (float64, bool) {
	if b, ok := v.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	return record.ToFloat(v)
}
