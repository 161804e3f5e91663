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

// Package template implements the placeholder mini language used by the
// dashboard's localized sentences.
//
// A template is plain text with "{name}" placeholders. Format splits the text
// around the placeholders and substitutes each one whose name is a key of
// the dictionary. The result is an ordered list of segments rather than a
// string, because a substituted value may be a structured display record
// (a hero link, a colored number) that the host renders on its own.
//
// There is no escaping and no nesting: "{" cannot be written literally in
// front of a word that closes with "}", and "{{a}}" is the placeholder "{a"
// followed by "}".
package template

import (
	"regexp"
	"strings"

	"dirpx.dev/dxstat/dxcore/record"
)

// Invalid is the single segment returned for an empty template.
const Invalid = "(invalid template)"

var placeholder = regexp.MustCompile(`\{[^}]+\}`)

// Segments is the ordered output of Format. Each element is either a literal
// string or a value taken from the dictionary.
type Segments []any

// String concatenates the segments as text.
func (s Segments) String() string {
	var b strings.Builder
	for _, v := range s {
		b.WriteString(record.ToString(v))
	}
	return b.String()
}

// Format splits tmpl around its placeholders and substitutes the known ones.
//
// Placeholders whose name is not a key of dict stay in the output verbatim,
// braces included. Empty string segments, whether literal or substituted,
// are dropped. An empty template yields Segments{Invalid}.
//
//	Format("{a} and {b}", map[string]any{"a": "X"})
//	// Segments{"X", " and ", "{b}"}
func Format(tmpl string, dict map[string]any) Segments {
	if tmpl == "" {
		return Segments{Invalid}
	}

	out := Segments{}
	add := func(v any) {
		if s, ok := v.(string); ok && s == "" {
			return
		}
		out = append(out, v)
	}

	last := 0
	for _, loc := range placeholder.FindAllStringIndex(tmpl, -1) {
		add(tmpl[last:loc[0]])

		token := tmpl[loc[0]:loc[1]]
		if v, ok := dict[token[1:len(token)-1]]; ok {
			add(v)
		} else {
			add(token)
		}
		last = loc[1]
	}
	add(tmpl[last:])

	return out
}
