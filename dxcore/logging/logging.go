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

// Package logging builds the zap logger used by the dxstat command and
// handed to the transformation registry.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings accepted by Config.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config returns the zap configuration for level and encoding. Logs go to
// stderr so that stdout stays free for formatted output. An unknown encoding
// falls back to console.
func Config(level, encoding string) zap.Config {
	enc := EncodingConsole
	if strings.EqualFold(encoding, EncodingJSON) {
		enc = EncodingJSON
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Encoding:         enc,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
	}
}

// New builds a logger from Config.
func New(level, encoding string) (*zap.Logger, error) {
	return Config(level, encoding).Build()
}

// ParseLevel maps a level name, in any case, to a zap level. Unknown names
// yield InfoLevel.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	case "DPANIC":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}
