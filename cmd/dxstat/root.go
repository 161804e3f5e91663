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

package main

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dirpx.dev/dxstat/dxcore/config"
	"dirpx.dev/dxstat/dxcore/logging"
	"dirpx.dev/dxstat/dxcore/transform"
)

// app is the state shared by subcommands once the root command has loaded
// the configuration.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	log      *zap.Logger
	registry *transform.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "dxstat",
		Short:         "Format, sort and score game statistics rows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (YAML, JSON or TOML)")
	f.String(config.KeyLocale, "en-US", "BCP 47 tag of the bundled dictionary")
	f.String(config.KeyStrings, "", "dictionary file layered over the bundled one")
	f.String(config.KeyAPIHost, transform.DefaultAPIHost, "asset host for image URLs")
	f.String(config.KeyHeroes, "", "hero metadata file")
	f.String(config.KeyItems, "", "item metadata file")
	f.String(config.KeyLadder, "", "time unit ladder file")
	f.StringSlice(config.KeyPatches, nil, "patch names by index")
	f.StringSlice(config.KeyAbbreviate, nil, "fields rendered as abbreviated numbers")
	f.String(config.KeyLogLevel, "info", "log level")
	f.String(config.KeyLogEncoding, logging.EncodingConsole, "log encoding (console or json)")

	root.AddCommand(
		newFormatCmd(a),
		newSortCmd(a),
		newWilsonCmd(a),
		newTemplateCmd(a),
		newLadderCmd(a),
		newFieldsCmd(a),
	)
	return root
}

// setup binds the flags that were set, loads the configuration and builds
// the logger and registry.
func (a *app) setup(cmd *cobra.Command) error {
	if err := bindChangedFlags(cmd.Flags(), a.v); err != nil {
		return cerr.Wrap(err, "binding flags")
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return cerr.Wrap(err, "building logger")
	}
	a.log = log.Named("dxstat")

	env, err := cfg.Env()
	if err != nil {
		return err
	}
	a.registry = transform.New(env,
		transform.WithLogger(a.log.Named("transform")),
		transform.WithAbbreviated(cfg.Abbreviate...),
	)

	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgFile),
		zap.String("locale", cfg.Locale),
		zap.String("api_host", cfg.APIHost),
		zap.Int("patches", len(cfg.Patches)),
		zap.Int("heroes", len(env.Heroes)),
	)
	return nil
}

// bindChangedFlags binds every flag the user set explicitly, so that unset
// flags do not shadow the config file and environment.
func bindChangedFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var result error
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed || v == nil {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			result = multierr.Append(result, err)
		}
	})
	return result
}
