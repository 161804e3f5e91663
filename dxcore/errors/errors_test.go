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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Direction type",
			&ParseError{Type: "Direction", Value: "sideways"},
			"dxstat: invalid Direction value: sideways",
		},
		{
			"ImageSize type",
			&ParseError{Type: "ImageSize", Value: "huge"},
			"dxstat: invalid ImageSize value: huge",
		},
		{
			"empty value",
			&ParseError{Type: "Direction", Value: ""},
			"dxstat: invalid Direction value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Direction", Value: 7},
			"dxstat: cannot marshal invalid Direction value: 7",
		},
		{
			"negative value",
			&MarshalError{Type: "Direction", Value: -1},
			"dxstat: cannot marshal invalid Direction value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "ImageSize", Value: 42},
			"dxstat: cannot marshal invalid ImageSize value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Direction", Data: []byte{}, Reason: "empty data"},
			"dxstat: cannot unmarshal Direction: empty data",
		},
		{
			"data is not part of the message",
			&UnmarshalError{Type: "TimeUnit", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"},
			"dxstat: cannot unmarshal TimeUnit: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Threshold", Field: "Values", Reason: "limits and values must have equal lengths"},
			"dxstat: invalid Threshold.Values: limits and values must have equal lengths",
		},
		{
			"without field",
			&ValidationError{Type: "Direction", Reason: "invalid Direction value", Value: 9},
			"dxstat: invalid Direction: invalid Direction value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_As(t *testing.T) {
	wrapped := fmt.Errorf("loading table: %w", &ValidationError{Type: "Threshold", Reason: "x"})

	var ve *ValidationError
	if !stderrors.As(wrapped, &ve) {
		t.Fatalf("errors.As() = false, want true")
	}
	if ve.Type != "Threshold" {
		t.Errorf("Type = %q, want %q", ve.Type, "Threshold")
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
}
