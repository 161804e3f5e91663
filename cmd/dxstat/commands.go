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
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dxstat/dxcore/classify"
	"dirpx.dev/dxstat/dxcore/record"
	"dirpx.dev/dxstat/dxcore/sorting"
	"dirpx.dev/dxstat/dxcore/stats"
	"dirpx.dev/dxstat/dxcore/template"
)

func newFormatCmd(a *app) *cobra.Command {
	var fields []string
	var output string

	cmd := &cobra.Command{
		Use:   "format [file...]",
		Short: "Format rows with the field transformations",
		Long: `Read rows from the given files, or stdin, and print every row with its
fields replaced by their display values. Fields without a transformation are
printed unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			a.log.Debug("formatting rows", zap.Int("rows", len(rows)), zap.Strings("fields", fields))

			out := make([]record.Record, len(rows))
			for i, row := range rows {
				out[i] = a.registry.FormatRow(row, fields...)
			}
			return write(cmd.OutOrStdout(), output, out)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to output (default: all)")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format (json or yaml)")
	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var field, order, output string
	var formatted bool
	var fields []string

	cmd := &cobra.Command{
		Use:   "sort --field NAME [file...]",
		Short: "Sort rows by one field",
		Long: `Sort rows by the value of one field. Missing, null, false, zero and empty
values all sort as 0. The sort is not stable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := sorting.ParseDirection(order)
			if err != nil {
				return cerr.WithHint(err, "use asc or desc")
			}
			rows, err := readRows(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			a.log.Debug("sorting rows",
				zap.Int("rows", len(rows)),
				zap.String("field", field),
				zap.Stringer("order", dir),
			)

			sorting.DefaultSort(rows, dir, field, nil)
			if formatted {
				for i, row := range rows {
					rows[i] = a.registry.FormatRow(row, fields...)
				}
			}
			return write(cmd.OutOrStdout(), output, rows)
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "field to sort by")
	cmd.Flags().StringVar(&order, "order", sorting.AscendingStr, "sort order (asc or desc)")
	cmd.Flags().BoolVar(&formatted, "format", false, "format the sorted rows")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to output when formatting (default: all)")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format (json or yaml)")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

// score is the output of the wilson command.
type score struct {
	Wins       float64        `json:"wins" yaml:"wins"`
	Losses     float64        `json:"losses" yaml:"losses"`
	Wilson     float64        `json:"wilson" yaml:"wilson"`
	PercentWin float64        `json:"percent_win" yaml:"percent_win"`
	Grade      classify.Grade `json:"grade" yaml:"grade"`
}

func newWilsonCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "wilson WINS LOSSES",
		Short: "Score a win/loss record",
		Long: `Print the Wilson score lower bound of a win/loss record, its win
percentage and the percentile grade of the score.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wins, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return cerr.Wrapf(err, "parsing wins %q", args[0])
			}
			losses, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return cerr.Wrapf(err, "parsing losses %q", args[1])
			}

			w := stats.WilsonScore(wins, losses)
			a.log.Debug("scored record", zap.Float64("wins", wins), zap.Float64("losses", losses), zap.Float64("wilson", w))
			return write(cmd.OutOrStdout(), output, score{
				Wins:       wins,
				Losses:     losses,
				Wilson:     w,
				PercentWin: stats.PercentWin(wins, wins+losses),
				Grade:      classify.Percentile(w),
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format (json or yaml)")
	return cmd
}

func newTemplateCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template TEMPLATE [key=value...]",
		Short: "Fill a template and print its segments",
		Long: `Substitute {key} placeholders of TEMPLATE with the given values. Values
are taken from the dictionary when they name one of its keys with an "@"
prefix, for example general_radiant=@general_radiant.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict := make(map[string]any, len(args)-1)
			for _, kv := range args[1:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return cerr.WithHint(cerr.Newf("invalid substitution %q", kv), "use key=value")
				}
				if key, isRef := strings.CutPrefix(v, "@"); isRef {
					v = a.registry.Env().Strings.Lookup(key)
				}
				dict[k] = v
			}

			segments := template.Format(args[0], dict)
			if output == "text" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), segments.String())
				return err
			}
			return write(cmd.OutOrStdout(), output, segments)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json or yaml)")
	return cmd
}

func newLadderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Print the time unit ladder",
		Long: `Print the time units used for "time ago" phrases, either the built-in
ladder or the one loaded from the ladder file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeModel(cmd.OutOrStdout(), output, a.registry.Env().Formatter.Ladder())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format (json or yaml)")
	return cmd
}

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List fields with a transformation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range a.registry.Fields() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
