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

package record

// Accessor derives a value from a record in place of a direct field lookup.
type Accessor func(Record) any

// Descriptor identifies which value of a Record to read: either the named
// Field or, when Accessor is set, whatever the accessor computes.
type Descriptor struct {
	Field    string
	Accessor Accessor
}

// Field returns a Descriptor that reads the named field directly.
func Field(name string) Descriptor {
	return Descriptor{Field: name}
}

// Get reads the described value from r.
func (d Descriptor) Get(r Record) any {
	if d.Accessor != nil {
		return d.Accessor(r)
	}
	return r[d.Field]
}
