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

// Package model defines the contract shared by the configurable value types of
// the dxstat engine: sort directions, time unit ladders, image sizes and any
// other table that callers may load from JSON or YAML.
//
// Every such type SHOULD implement Model. The contract guarantees that a value
// can be validated, serialized in both JSON and YAML, identified by a stable
// type name in error messages and logs, and checked for its zero value. The
// generic helpers in this package (ValidateAll, FilterZero, MustValidate,
// ToJSON, FromJSON, ToYAML, FromYAML) are constrained to Model or its
// value-receiver half Value, and therefore fail at compile time when applied
// to a type that does not honor it.
//
// Model types are immutable value types. Concurrent reads are safe; callers
// MUST synchronize concurrent unmarshaling into the same instance.
package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for dxstat
// value types.
//
// Example implementation:
//
//	type Direction int
//
//	func (d Direction) Validate() error  { ... }
//	func (d Direction) TypeName() string { return "Direction" }
//	func (d Direction) IsZero() bool     { return d == Ascending }
//	func (d Direction) String() string   { ... }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Direction)(nil)
type Model interface {
	Value
	Serializable
}

// Value is the part of Model declared on the value receiver. Unmarshal
// methods need a pointer receiver, so a plain value such as Ladder{} is a
// Value while only *Ladder is a Model. Helpers that never decode (ValidateAll,
// FilterZero, MustValidate, ToJSON, ToYAML) accept any Value.
type Value interface {
	Validatable
	Identifiable
	ZeroCheckable
	fmt.Stringer
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST be fast, deterministic and free of side effects. It returns
// nil if and only if the receiver is usable. Errors SHOULD be
// *errors.ValidationError values naming the offending field, for example
// "TimeUnit.Size: must be positive".
//
// Callers SHOULD validate immediately after unmarshaling a table from a
// configuration file and before handing it to the formatter.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types that round-trip through JSON and YAML.
//
// Marshal methods MUST reject invalid receivers instead of emitting them.
// Unmarshal methods MUST validate the decoded value and return an error
// rather than leave an invalid value behind.
//
// Implementations SHOULD use the local "type alias" pattern to delegate to the
// standard encoders without recursing into their own methods:
//
//	func (u TimeUnit) MarshalJSON() ([]byte, error) {
//	    if err := u.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias TimeUnit
//	    return json.Marshal(alias(u))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Identifiable is implemented by types that report a canonical CamelCase type
// name without package prefix. The name is used in error messages and log
// fields and MUST be constant for the type.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can report whether they carry
// meaningful data. IsZero MUST NOT allocate and MUST be safe to call
// concurrently.
type ZeroCheckable interface {
	IsZero() bool
}
