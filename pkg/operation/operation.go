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

package operation

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/walteh/recompute/pkg/approval"
	"github.com/walteh/recompute/pkg/config"
	"github.com/walteh/recompute/pkg/diff"
	"github.com/walteh/recompute/pkg/log"
	"github.com/walteh/recompute/pkg/output"
	"github.com/walteh/recompute/pkg/patch"
	"github.com/walteh/recompute/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// ❌ IOError reports a filesystem failure while collecting, reading or
// writing files.
type IOError struct {
	Op   string // collect, read or write
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Prompter answers questions; required for the ask and review modes
	Prompter approval.Prompter
	// Logger prints the file report
	Logger *log.Logger
	// Output writes rewritten files; defaults to the configured output directory
	Output *output.Manager
	// Preview receives interactive previews and dry-run diffs; defaults to
	// the logger console
	Preview io.Writer
}

// 🏃 Runner executes one rewrite run
type Runner struct {
	config   *config.Config
	prompter approval.Prompter
	logger   *log.Logger
	output   *output.Manager
	preview  io.Writer
	matcher  *pattern.Matcher
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}

	mode := opts.Config.RunMode()
	if opts.Prompter == nil && (mode == approval.ModeAsk || mode == approval.ModeReview) {
		return nil, errors.Errorf("prompter is required for mode %s", mode)
	}

	if !opts.Config.DryRun {
		src, err := filepath.Abs(opts.Config.Directory)
		if err != nil {
			return nil, errors.Errorf("resolving directory: %w", err)
		}
		dst, err := filepath.Abs(opts.Config.OutputDirectory)
		if err != nil {
			return nil, errors.Errorf("resolving output directory: %w", err)
		}
		if src == dst {
			return nil, errors.Errorf("output directory must differ from the source directory")
		}
	}

	out := opts.Output
	if out == nil {
		out = output.New(opts.Config.OutputDirectory)
	}

	preview := opts.Preview
	if preview == nil {
		preview = opts.Logger.Console()
	}

	return &Runner{
		config:   opts.Config,
		prompter: opts.Prompter,
		logger:   opts.Logger,
		output:   out,
		preview:  preview,
		matcher:  pattern.New(opts.Config.Wrapper),
	}, nil
}

// 📄 FileResult is the outcome for one file that contained the pattern
type FileResult struct {
	Path     string       // path as collected
	Rel      string       // slash path relative to the source root
	Mode     fs.FileMode  // permission bits of the source, kept on write
	Original string       // content read during the filter pass
	Final    string       // content after applying Tasks
	Tasks    []patch.Task // accepted replacements
	Matches  int          // occurrences found
	Parts    []diff.Part  // line diff of Original and Final
	Status   log.FileStatus
}

// 📊 Summary describes a finished run
type Summary struct {
	Mode     approval.Mode
	Files    []FileResult
	Matches  int
	Accepted int
	Written  int
}
