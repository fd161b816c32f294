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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/recompute/pkg/approval"
	"github.com/walteh/recompute/pkg/config"
	"github.com/walteh/recompute/pkg/log"
	"github.com/walteh/recompute/pkg/operation"
	"github.com/walteh/recompute/pkg/patch"
	"github.com/walteh/recompute/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitIO      = 2
	exitOverlap = 3
)

// rootFlags holds the values bound to the root command flags
type rootFlags struct {
	configFile      string
	directory       string
	outputDirectory string
	dryRun          bool
	wrapper         string
	mode            string
	include         []string
	exclude         []string
	debug           bool
}

func newTerminalPrompter() approval.Prompter {
	return prompt.NewTerminal()
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newPrompter func() approval.Prompter) int {
	cmd := newRootCmd(stdout, stderr, newPrompter)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	report := log.New(stderr, zerolog.Nop())
	if errors.Is(err, approval.ErrAborted) {
		report.Warning("aborted, nothing was written")
		return exitOK
	}

	report.Error(err.Error())
	return exitCode(err)
}

// exitCode maps a failed run to its exit code.
func exitCode(err error) int {
	var ioErr *operation.IOError
	var overlap *patch.OverlapError
	switch {
	case err == nil, errors.Is(err, approval.ErrAborted):
		return exitOK
	case errors.As(err, &ioErr):
		return exitIO
	case errors.As(err, &overlap):
		return exitOverlap
	default:
		return exitFailure
	}
}

// newRootCmd creates the root command
func newRootCmd(stdout, stderr io.Writer, newPrompter func() approval.Prompter) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Rewrite legacy .property() computed declarations",
		Long: `recompute finds function literals followed by a .property(...) call and
rewrites them as Wrapper(args, function...). Every proposal can be reviewed,
merged automatically, edited or declined. Rewritten files are mirrored under
the output directory; the source tree is never modified.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), stderr, flags.debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := flags.resolveConfig(ctx, cmd)
			if err != nil {
				return err
			}
			zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("mode", cfg.Mode).Msg("resolved configuration")

			var prompter approval.Prompter
			if mode := cfg.RunMode(); mode == approval.ModeAsk || mode == approval.ModeReview {
				prompter = newPrompter()
			}

			logger := log.New(stdout, *zerolog.Ctx(ctx))
			runner, err := operation.New(operation.Options{
				Config:   cfg,
				Prompter: prompter,
				Logger:   logger,
				Preview:  stderr,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			if _, err := runner.Run(ctx); err != nil {
				return errors.Errorf("running: %w", err)
			}
			return nil
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the root command flags
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.directory, "directory", "", "source directory to scan")
	f.StringVar(&flags.outputDirectory, "output-directory", "", "directory receiving rewritten files")
	f.BoolVar(&flags.dryRun, "dry-run", false, "print diffs instead of writing files")
	f.StringVar(&flags.wrapper, "wrapper", "", "call name used in the rewritten form (default \"Canonical\")")
	f.StringVar(&flags.mode, "mode", "", "run mode: ask, review, merge or quit (default \"ask\")")
	f.StringArrayVar(&flags.include, "include", nil, "only process files matching this glob (repeatable)")
	f.StringArrayVar(&flags.exclude, "exclude", nil, "skip files matching this glob (repeatable)")

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging builds the zerolog console logger and stores it in ctx
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// resolveConfig loads the config file, overlays explicitly set flags and
// validates the result.
func (f *rootFlags) resolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}

	explicit := cmd.Flags().Changed("config")
	if _, err := os.Stat(f.configFile); err == nil || explicit {
		loaded, err := config.Load(ctx, f.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("directory") {
		cfg.Directory = f.directory
	}
	if changed("output-directory") {
		cfg.OutputDirectory = f.outputDirectory
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("wrapper") {
		cfg.Wrapper = f.wrapper
	}
	if changed("mode") {
		cfg.Mode = f.mode
	}
	if changed("include") {
		cfg.Include = f.include
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
