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

// Package locale provides the localization dictionary injected into the
// dxstat formatters.
//
// The engine never owns user-facing words. Unit suffixes, "time ago" phrases,
// rank names and match outcome labels are all looked up by key in a
// Dictionary supplied by the caller. A key missing from the dictionary is a
// configuration error of the caller and simply renders as "".
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Dictionary maps message keys to format strings or labels.
type Dictionary interface {
	Lookup(key string) string
}

// Strings is a Dictionary backed by a plain map. The zero value is an empty
// dictionary. Strings MUST NOT be mutated while a formatter reads it.
type Strings map[string]string

// Lookup returns the entry for key, or "" when absent.
func (s Strings) Lookup(key string) string {
	return s[key]
}

// Parse decodes a flat YAML or JSON object of key/value strings.
func Parse(data []byte) (Strings, error) {
	s := Strings{}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("locale: cannot parse dictionary: %w", err)
	}
	return s, nil
}

// Load reads a dictionary file from disk. See Parse.
func Load(file string) (Strings, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	return Parse(data)
}

// Overlay returns a dictionary that consults top first and falls back to base.
func Overlay(top, base Dictionary) Dictionary {
	return overlay{top: top, base: base}
}

type overlay struct {
	top, base Dictionary
}

func (o overlay) Lookup(key string) string {
	if v := o.top.Lookup(key); v != "" {
		return v
	}
	return o.base.Lookup(key)
}

//go:embed strings/*.yaml
var embedded embed.FS

var (
	bundledOnce sync.Once
	bundled     map[language.Tag]Strings
	bundledTags []language.Tag
	bundledErr  error
)

func loadBundled() {
	bundled = map[language.Tag]Strings{}
	entries, err := fs.ReadDir(embedded, "strings")
	if err != nil {
		bundledErr = err
		return
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		tag, err := language.Parse(name)
		if err != nil {
			bundledErr = fmt.Errorf("locale: bundled file %s: %w", e.Name(), err)
			return
		}
		data, err := embedded.ReadFile("strings/" + e.Name())
		if err != nil {
			bundledErr = err
			return
		}
		s, err := Parse(data)
		if err != nil {
			bundledErr = fmt.Errorf("locale: bundled file %s: %w", e.Name(), err)
			return
		}
		bundled[tag] = s
		bundledTags = append(bundledTags, tag)
	}
	// The first supported tag is the matcher's fallback.
	sort.SliceStable(bundledTags, func(i, j int) bool {
		return bundledTags[i] == language.AmericanEnglish && bundledTags[j] != language.AmericanEnglish
	})
}

// Bundled returns the embedded dictionary that best matches the requested
// BCP 47 tags, falling back to en-US. The returned tag is the bundled locale
// that was chosen.
func Bundled(requested ...string) (Strings, language.Tag, error) {
	bundledOnce.Do(loadBundled)
	if bundledErr != nil {
		return nil, language.Und, bundledErr
	}

	want := make([]language.Tag, 0, len(requested))
	for _, r := range requested {
		if r == "" {
			continue
		}
		tag, err := language.Parse(r)
		if err != nil {
			return nil, language.Und, fmt.Errorf("locale: invalid language tag %q: %w", r, err)
		}
		want = append(want, tag)
	}

	_, idx, _ := language.NewMatcher(bundledTags).Match(want...)
	tag := bundledTags[idx]
	return bundled[tag], tag, nil
}

// English returns the bundled en-US dictionary. It panics if the embedded
// table is broken, which can only happen with a bad build.
func English() Strings {
	s, _, err := Bundled("en-US")
	if err != nil {
		panic(err)
	}
	return s
}
