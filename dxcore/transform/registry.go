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

// Package transform is the field transformation registry: a table from field
// name to a function that turns one cell of a statistics row into a
// display-ready value.
//
// The registry is built once from the built-in transformations and may be
// extended with Register. Formatting a field without a registered
// transformation is not an error: the raw value is returned unchanged.
//
// Transformations compose the primitives of the format, classify and stats
// packages. They read words through Env.Strings, the current time through
// Env.Formatter, and asset URLs through Env.Assets; none of them touches
// global state.
package transform

import (
	"sort"
	"sync"

	"dirpx.dev/dxstat/dxcore/format"
	"dirpx.dev/dxstat/dxcore/locale"
	"dirpx.dev/dxstat/dxcore/record"
	"go.uber.org/zap"
)

// Func formats the value of field in row. It MUST NOT modify row.
type Func func(env Env, row record.Record, field string) any

// Env holds the collaborators shared by every transformation.
type Env struct {
	// Strings is the localization dictionary. Defaults to the bundled en-US
	// table.
	Strings locale.Dictionary

	// Formatter renders numbers and relative times. Defaults to a Formatter
	// over Strings with the real clock.
	Formatter *format.Formatter

	// Assets builds image URLs. Defaults to HostAssets on DefaultAPIHost.
	Assets AssetURLs

	// Patches maps a patch index to its name.
	Patches []string

	// Heroes maps a hero id to its metadata.
	Heroes map[int]Hero
}

func (e Env) withDefaults() Env {
	if e.Strings == nil {
		e.Strings = locale.English()
	}
	if e.Formatter == nil {
		e.Formatter = format.New(e.Strings)
	}
	if e.Assets == nil {
		e.Assets = HostAssets{Heroes: e.Heroes}
	}
	return e
}

// Registry maps field names to transformations. It is safe for concurrent
// use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
	env   Env
	log   *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report passthrough fields at debug
// level. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithAbbreviated formats the named fields with Formatter.AbbreviateValue.
// Values that are already strings are returned as is, so a row that went
// through the registry once is not abbreviated twice.
func WithAbbreviated(fields ...string) Option {
	return func(r *Registry) {
		for _, f := range fields {
			r.funcs[f] = abbreviated
		}
	}
}

// WithFunc registers fn for field, replacing any built-in.
func WithFunc(field string, fn Func) Option {
	return func(r *Registry) {
		r.funcs[field] = fn
	}
}

// New returns a registry holding every built-in transformation, with env
// filled in with defaults for its nil collaborators.
func New(env Env, opts ...Option) *Registry {
	r := &Registry{
		funcs: Builtins(),
		env:   env.withDefaults(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Env returns the environment passed to transformations.
func (r *Registry) Env() Env {
	return r.env
}

// Register adds or replaces the transformation of field. A nil fn removes
// it.
func (r *Registry) Register(field string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fn == nil {
		delete(r.funcs, field)
		return
	}
	r.funcs[field] = fn
}

// Lookup returns the transformation of field.
func (r *Registry) Lookup(field string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[field]
	return fn, ok
}

// Format formats the value of field in row. Fields without a transformation
// yield row[field] unchanged, which is nil for absent fields.
func (r *Registry) Format(row record.Record, field string) any {
	fn, ok := r.Lookup(field)
	if !ok {
		r.log.Debug("no transformation for field, passing through",
			zap.String("field", field),
		)
		return row[field]
	}
	return fn(r.env, row, field)
}

// FormatRow formats the given fields of row into a new record. With no
// fields every field of row is formatted.
func (r *Registry) FormatRow(row record.Record, fields ...string) record.Record {
	if len(fields) == 0 {
		fields = make([]string, 0, len(row))
		for f := range row {
			fields = append(fields, f)
		}
	}

	out := make(record.Record, len(fields))
	for _, f := range fields {
		out[f] = r.Format(row, f)
	}
	return out
}

// Fields returns the names of all registered transformations, sorted.
func (r *Registry) Fields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fields := make([]string, 0, len(r.funcs))
	for f := range r.funcs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
