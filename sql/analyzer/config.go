// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned when the analyzer configuration can't be read.
var ErrInvalidConfig = errors.NewKind("invalid analyzer configuration: %s")

// Config holds the options of an Analyzer that can be set from a file.
type Config struct {
	// Debug enables the debug messages of the analyzer.
	Debug bool `yaml:"debug"`
	// Verbose logs the plans before and after they are rewritten.
	Verbose bool `yaml:"verbose"`
	// LogLevel is the logrus level debug messages are written with.
	LogLevel string `yaml:"log_level,omitempty"`
}

// ReadConfig decodes a YAML analyzer configuration. Unknown keys are rejected
// and an empty document yields the default configuration.
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	d := yaml.NewDecoder(r)
	d.SetStrict(true)
	if err := d.Decode(&cfg); err != nil && err != io.EOF {
		return nil, ErrInvalidConfig.Wrap(err, err.Error())
	}

	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			return nil, ErrInvalidConfig.Wrap(err, err.Error())
		}
	}

	return &cfg, nil
}

// ReadConfigFile reads the analyzer configuration stored at the given path.
func ReadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadConfig(f)
}
