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

package locale

import (
	"strconv"
	"strings"

	"dirpx.dev/dxstat/dxcore/record"
)

// Sprintf fills a dictionary format string the way the dashboard's message
// tables expect: "%s" inserts the argument as text, "%d" and "%i" insert it as
// a number, and "%%" is a literal percent sign. Verbs without a matching
// argument are left untouched, and surplus arguments are appended separated
// by spaces.
//
// fmt.Sprintf is not used because the tables are authored for this looser
// contract: "%s" routinely receives integers, and a missing argument must not
// produce "%!s(MISSING)" in front of a user.
func Sprintf(format string, args ...any) string {
	var b strings.Builder
	next := 0

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			b.WriteByte(c)
			continue
		}
		verb := format[i+1]
		switch verb {
		case '%':
			b.WriteByte('%')
			i++
		case 's', 'd', 'i':
			if next >= len(args) {
				b.WriteByte('%')
				continue
			}
			if verb == 's' {
				b.WriteString(record.ToString(args[next]))
			} else {
				b.WriteString(number(args[next]))
			}
			next++
			i++
		default:
			b.WriteByte(c)
		}
	}

	for ; next < len(args); next++ {
		b.WriteByte(' ')
		b.WriteString(record.ToString(args[next]))
	}

	return b.String()
}

func number(v any) string {
	f, ok := record.ToFloat(v)
	if !ok {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
