// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/recompute/pkg/approval"
	"github.com/walteh/recompute/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is the config file read when none is given explicitly.
const DefaultFile = ".recompute.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the complete run configuration
type Config struct {
	Directory       string   `json:"directory" yaml:"directory"`
	OutputDirectory string   `json:"output_directory" yaml:"output_directory"`
	DryRun          bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Wrapper         string   `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
	Mode            string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Include         []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude         []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// identifier matches a dotted call name such as Ember.computed.
var identifier = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

// 🔍 Validate checks required fields and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Directory == "" {
		return errors.Errorf("directory is required")
	}
	if cfg.OutputDirectory == "" {
		return errors.Errorf("output_directory is required")
	}

	cfg.Directory = filepath.Clean(cfg.Directory)
	cfg.OutputDirectory = filepath.Clean(cfg.OutputDirectory)

	if cfg.Wrapper == "" {
		cfg.Wrapper = pattern.DefaultWrapper
	}
	if !identifier.MatchString(cfg.Wrapper) {
		return errors.Errorf("wrapper %q is not a valid call name", cfg.Wrapper)
	}

	mode, err := approval.ParseMode(cfg.Mode)
	if err != nil {
		return errors.Errorf("mode: %w", err)
	}
	cfg.Mode = mode.String()

	for _, glob := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(glob) {
			return errors.Errorf("invalid glob pattern %q", glob)
		}
	}

	return nil
}

// RunMode returns the parsed mode. Validate must have succeeded.
func (cfg *Config) RunMode() approval.Mode {
	mode, _ := approval.ParseMode(cfg.Mode)
	return mode
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	var sb strings.Builder
	sb.WriteString(cfg.Directory)
	sb.WriteString(" -> ")
	if cfg.DryRun {
		sb.WriteString("(dry run)")
	} else {
		sb.WriteString(cfg.OutputDirectory)
	}
	return sb.String()
}
