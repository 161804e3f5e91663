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

// Package config loads the dxstat engine configuration with viper and turns
// it into the transformation environment.
//
// Settings come, in decreasing priority, from command-line flags bound by the
// caller, DXSTAT_* environment variables, an optional YAML, JSON or TOML
// config file, and the defaults below.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxstat/dxcore/format"
	"dirpx.dev/dxstat/dxcore/locale"
	"dirpx.dev/dxstat/dxcore/logging"
	"dirpx.dev/dxstat/dxcore/transform"
)

// EnvPrefix is the prefix of environment variables read by New.
const EnvPrefix = "DXSTAT"

// Configuration keys.
const (
	KeyLocale      = "locale"
	KeyStrings     = "strings"
	KeyAPIHost     = "api-host"
	KeyXPTable     = "xp-table"
	KeyLadder      = "ladder"
	KeyHeroes      = "heroes"
	KeyItems       = "items"
	KeyPatches     = "patches"
	KeyAbbreviate  = "abbreviate"
	KeyLogLevel    = "log-level"
	KeyLogEncoding = "log-encoding"
)

// Config is the decoded engine configuration.
type Config struct {
	// Locale is a BCP 47 tag selecting the bundled dictionary.
	Locale string `mapstructure:"locale" validate:"required"`

	// Strings is an optional dictionary file layered over the bundled one.
	Strings string `mapstructure:"strings"`

	APIHost string  `mapstructure:"api-host" validate:"omitempty,http_url"`
	XPTable []int64 `mapstructure:"xp-table"`

	// Ladder, Heroes and Items are optional YAML or JSON table files.
	Ladder string `mapstructure:"ladder"`
	Heroes string `mapstructure:"heroes"`
	Items  string `mapstructure:"items"`

	Patches    []string `mapstructure:"patches"`
	Abbreviate []string `mapstructure:"abbreviate"`

	LogLevel    string `mapstructure:"log-level"`
	LogEncoding string `mapstructure:"log-encoding" validate:"omitempty,oneof=console json"`
}

// New returns a viper instance with the dxstat defaults and environment
// binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	SetEnvPrefix(v, EnvPrefix)
	return v
}

// SetDefaults registers the default value of every key. Keys without a
// default are registered empty so that Unmarshal picks them up from the
// environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLocale, "en-US")
	v.SetDefault(KeyStrings, "")
	v.SetDefault(KeyAPIHost, transform.DefaultAPIHost)
	v.SetDefault(KeyXPTable, format.DefaultXPTable())
	v.SetDefault(KeyLadder, "")
	v.SetDefault(KeyHeroes, "")
	v.SetDefault(KeyItems, "")
	v.SetDefault(KeyPatches, []string{})
	v.SetDefault(KeyAbbreviate, []string{"gold", "hero_damage", "tower_damage", "hero_healing", "last_hits"})
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogEncoding, logging.EncodingConsole)
}

// SetEnvPrefix makes v read PREFIX_KEY environment variables, with dashes in
// keys mapped to underscores.
func SetEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

// Load reads file into v when file is non-empty, then decodes and validates
// the configuration.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, cerr.WithHint(
				cerr.Wrapf(err, "reading config file %s", file),
				"check that the file exists and is valid YAML, JSON or TOML",
			)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, cerr.Wrap(err, "decoding configuration")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var err error

	var verrs validator.ValidationErrors
	if verr := newValidator().Struct(c); cerr.As(verr, &verrs) {
		for _, fe := range verrs {
			err = multierr.Append(err, cerr.Newf("%s: failed %s check (got %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
		}
	} else if verr != nil {
		err = multierr.Append(err, verr)
	}

	for i := 1; i < len(c.XPTable); i++ {
		if c.XPTable[i] < c.XPTable[i-1] {
			err = multierr.Append(err, cerr.Newf("xp-table must not decrease (entry %d)", i))
			break
		}
	}
	if err != nil {
		return cerr.WithHint(err, "fix the configuration file or the DXSTAT_* environment")
	}
	return nil
}

// newValidator reports fields by their configuration key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	return v
}

// Dictionary returns the bundled dictionary matching c.Locale, overlaid with
// c.Strings when set.
func (c Config) Dictionary() (locale.Dictionary, error) {
	bundled, _, err := locale.Bundled(c.Locale)
	if err != nil {
		return nil, cerr.WithHint(cerr.Wrap(err, "selecting dictionary"), "use a BCP 47 tag such as en-US")
	}
	if c.Strings == "" {
		return bundled, nil
	}
	own, err := locale.Load(c.Strings)
	if err != nil {
		return nil, cerr.Wrapf(err, "loading dictionary %s", c.Strings)
	}
	return locale.Overlay(own, bundled), nil
}

// Env builds the transformation environment described by c.
func (c Config) Env(opts ...format.Option) (transform.Env, error) {
	dict, err := c.Dictionary()
	if err != nil {
		return transform.Env{}, err
	}

	fopts := []format.Option{format.WithXPTable(c.XPTable)}
	if c.Ladder != "" {
		ladder, err := format.LoadLadder(c.Ladder)
		if err != nil {
			return transform.Env{}, cerr.Wrapf(err, "loading ladder %s", c.Ladder)
		}
		fopts = append(fopts, format.WithLadder(ladder))
	}
	fopts = append(fopts, opts...)

	heroes, err := loadTable(c.Heroes, func(h transform.Hero) int { return h.ID })
	if err != nil {
		return transform.Env{}, cerr.Wrapf(err, "loading heroes %s", c.Heroes)
	}
	items, err := loadTable(c.Items, func(i transform.Item) int { return i.ID })
	if err != nil {
		return transform.Env{}, cerr.Wrapf(err, "loading items %s", c.Items)
	}

	return transform.Env{
		Strings:   dict,
		Formatter: format.New(dict, fopts...),
		Assets:    transform.HostAssets{Host: c.APIHost, Heroes: heroes, Items: items},
		Patches:   c.Patches,
		Heroes:    heroes,
	}, nil
}

// loadTable reads a YAML or JSON object or array of entries and indexes it by
// id. Objects are the layout of the public constants dumps, where each entry
// is keyed by name or id.
func loadTable[T any](file string, id func(T) int) (map[int]T, error) {
	if file == "" {
		return nil, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	var entries []T
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
		var m map[string]T
		if err := node.Decode(&m); err != nil {
			return nil, err
		}
		for _, e := range m {
			entries = append(entries, e)
		}
	} else if err := node.Decode(&entries); err != nil {
		return nil, err
	}

	table := make(map[int]T, len(entries))
	for _, e := range entries {
		table[id(e)] = e
	}
	return table, nil
}
