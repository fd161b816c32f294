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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 10 // Width for status text
)

// FileStatus is the outcome reported for one file.
type FileStatus string

const (
	StatusWritten   FileStatus = "written"   // rewritten file saved under the output root
	StatusDryRun    FileStatus = "dry-run"   // diff printed, nothing saved
	StatusUnchanged FileStatus = "unchanged" // every match was declined
	StatusFailed    FileStatus = "failed"    // the file could not be applied or saved
)

// 🎯 FileOperation represents a processed file for logging
type FileOperation struct {
	Path     string     // Path relative to the source root
	Status   FileStatus // Outcome
	Matches  int        // Occurrences found
	Accepted int        // Occurrences queued for replacement
	Added    int        // Lines added in the final content
	Removed  int        // Lines removed from the original content
}

// 📦 RunOperation describes a whole run for logging
type RunOperation struct {
	Directory       string
	OutputDirectory string
	Mode            string
	DryRun          bool
}

// 🎯 Logger prints a human report to the console and mirrors every line
// into zerolog.
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case StatusWritten:
		symbol = '✓'
		symbolColor = color.FgGreen
	case StatusDryRun:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status)),
		fmt.Sprintf("%d/%d accepted +%d -%d", op.Accepted, op.Matches, op.Added, op.Removed))
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("status", string(op.Status)).
		Int("matches", op.Matches).
		Int("accepted", op.Accepted).
		Int("added", op.Added).
		Int("removed", op.Removed).
		Msg("file operation")
}

// 📝 StartRun prints the run header
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.operations = nil

	target := op.OutputDirectory
	if op.DryRun {
		target = "dry run"
	}

	fmt.Fprintf(l.console, "[rewriting %s]\n",
		color.New(color.FgCyan).Sprint(op.Directory))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(target),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Mode))

	l.zlog.Info().
		Str("directory", op.Directory).
		Str("output_directory", op.OutputDirectory).
		Str("mode", op.Mode).
		Bool("dry_run", op.DryRun).
		Msg("starting run")
}

// 📝 EndRun logs a summary of the current run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	accepted := 0
	for _, op := range l.operations {
		accepted += op.Accepted
	}

	l.zlog.Info().
		Str("directory", l.currentRun.Directory).
		Int("files", len(l.operations)).
		Int("accepted", accepted).
		Msg("run complete")

	l.currentRun = nil
	l.operations = nil
}

// Console returns the writer used for human output.
func (l *Logger) Console() io.Writer {
	return l.console
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
