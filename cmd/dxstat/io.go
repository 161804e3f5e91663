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
	"encoding/json"
	"io"
	"os"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxstat/dxcore/model"
	"dirpx.dev/dxstat/dxcore/record"
)

// Output encodings.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// readRows decodes a YAML or JSON list of rows from every file, or from in
// when files is empty or "-". All files are read; the errors of every broken
// file are reported together.
func readRows(in io.Reader, files []string) ([]record.Record, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	var rows []record.Record
	var errs error
	for _, file := range files {
		batch, err := readFile(in, file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rows = append(rows, batch...)
	}
	return rows, errs
}

func readFile(in io.Reader, file string) ([]record.Record, error) {
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, cerr.Wrapf(err, "reading %s", file)
	}

	var rows []record.Record
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, cerr.WithHint(
			cerr.Wrapf(err, "decoding %s", file),
			"input must be a JSON array or YAML list of objects",
		)
	}
	return rows, nil
}

// write encodes v to out as JSON or YAML.
func write(out io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return cerr.Wrap(err, "encoding YAML")
		}
		return enc.Close()
	case outputJSON, "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return cerr.Wrap(enc.Encode(v), "encoding JSON")
	default:
		return cerr.WithHint(cerr.Newf("unknown output format %q", format), "use json or yaml")
	}
}

// writeModel validates m and encodes it to out as JSON or YAML.
func writeModel[T model.Value](out io.Writer, format string, m T) error {
	var data []byte
	var err error
	switch format {
	case outputYAML:
		data, err = model.ToYAML(m)
	case outputJSON, "":
		data, err = model.ToJSON(m)
		data = append(data, '\n')
	default:
		return cerr.WithHint(cerr.Newf("unknown output format %q", format), "use json or yaml")
	}
	if err != nil {
		return cerr.Wrapf(err, "encoding %s", m.TypeName())
	}
	_, err = out.Write(data)
	return err
}
