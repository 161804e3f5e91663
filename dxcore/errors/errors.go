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

// Package errors provides the error value types shared by the dxstat
// formatting engine.
//
// The engine distinguishes two failure classes. Soft failures (a non-finite
// number handed to a clock formatter, an empty template, an unknown field
// name) never produce an error at all: the operation returns a well-defined
// sentinel value instead. Hard failures indicate a bug in the caller, such as
// a threshold table whose limits and values have different lengths, and are
// reported with the types in this package so callers can recognize them with
// errors.As.
//
// # Error Types
//
//   - ParseError
//     Returned when a textual value (for example, a sort direction read from a
//     CLI flag or a config file) does not name a known constant.
//
//   - MarshalError
//     Returned by MarshalJSON / MarshalYAML / MarshalText when an enum-like
//     value is outside its defined set.
//
//   - UnmarshalError
//     Returned by UnmarshalJSON / UnmarshalYAML when the payload cannot be
//     decoded.
//
//   - ValidationError
//     Returned by Validate methods and constructors when a table or record
//     violates its invariants.
//
// All messages carry the stable "dxstat:" prefix.
package errors

import "strconv"

// ParseError is returned when parsing a string into an enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Direction"),
// and Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is:
//
//	"dxstat: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxstat: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it
// does not correspond to a known constant.
//
// A MarshalError almost always points at a numeric cast that was never
// validated, so it is treated as a programming error.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that was rejected.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is:
//
//	"dxstat: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxstat: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when decoding data into a typed value fails.
//
// Data holds the raw payload and is deliberately left out of Error() so that
// large record dumps do not end up in log lines.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is:
//
//	"dxstat: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxstat: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when a value or table violates its invariants.
//
// Field is optional; when empty the error applies to the whole value. Value
// optionally carries the offending input for diagnostics.
//
// # Example
//
//	if len(limits) != len(values) {
//	    return nil, &errors.ValidationError{
//	        Type:   "Threshold",
//	        Field:  "Values",
//	        Reason: "limits and values must have equal lengths",
//	        Value:  [2]int{len(limits), len(values)},
//	    }
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is:
//
//	"dxstat: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxstat: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxstat: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxstat: invalid " + e.Type + ": " + e.Reason
}
