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
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/recompute/pkg/approval"
	"github.com/walteh/recompute/pkg/collect"
	"github.com/walteh/recompute/pkg/diff"
	"github.com/walteh/recompute/pkg/log"
	"github.com/walteh/recompute/pkg/patch"
	"github.com/walteh/recompute/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// sourceFile is a file kept by the filter pass.
type sourceFile struct {
	path    string
	rel     string
	content string
	mode    fs.FileMode
	matches int
}

// session carries the state of one run through the approval loop.
type session struct {
	policy approval.Policy
	queue  *patch.Queue
	files  []*sourceFile
}

// 🏃 Run executes the rewrite. A reviewer quitting returns an error
// wrapping approval.ErrAborted; nothing is written in that case.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	zlog := zerolog.Ctx(ctx)

	mode, err := r.resolveMode(ctx)
	if err != nil {
		return nil, err
	}
	summary := &Summary{Mode: mode}

	r.logger.StartRun(ctx, log.RunOperation{
		Directory:       r.config.Directory,
		OutputDirectory: r.config.OutputDirectory,
		Mode:            mode.String(),
		DryRun:          r.config.DryRun,
	})
	defer r.logger.EndRun(ctx)

	if mode == approval.ModeQuit {
		r.logger.Info("quit before processing any file")
		return summary, nil
	}

	sess := &session{
		policy: approval.PolicyFor(mode, r.prompter, r.preview),
		queue:  patch.NewQueue(),
	}
	if sess.policy == nil {
		return nil, errors.Errorf("no approval policy for mode %s", mode)
	}

	if err := r.filter(ctx, sess); err != nil {
		return nil, err
	}
	zlog.Debug().Int("files", len(sess.files)).Msg("files containing the pattern")

	if len(sess.files) == 0 {
		r.logger.Info("no files contain the pattern")
		return summary, nil
	}

	if err := r.review(ctx, sess); err != nil {
		return nil, err
	}

	results, err := r.apply(sess)
	if err != nil {
		return nil, err
	}

	for i := range results {
		if err := r.emit(ctx, &results[i]); err != nil {
			return nil, err
		}
		summary.Matches += results[i].Matches
		summary.Accepted += len(results[i].Tasks)
		if results[i].Status == log.StatusWritten {
			summary.Written++
		}
	}
	summary.Files = results

	if r.config.DryRun {
		r.logger.Successf("dry run: %d of %d matches accepted in %d files", summary.Accepted, summary.Matches, len(results))
	} else {
		r.logger.Successf("wrote %d files (%d of %d matches accepted)", summary.Written, summary.Accepted, summary.Matches)
	}

	return summary, nil
}

func (r *Runner) resolveMode(ctx context.Context) (approval.Mode, error) {
	mode := r.config.RunMode()
	if mode != approval.ModeAsk {
		return mode, nil
	}

	mode, err := r.prompter.AskMode(ctx)
	if err != nil {
		return approval.ModeQuit, errors.Errorf("choosing run mode: %w", err)
	}
	if mode == approval.ModeAsk {
		return approval.ModeQuit, errors.Errorf("prompter returned mode %s", mode)
	}
	return mode, nil
}

// filter collects every file and keeps the ones that pass the globs and
// contain the pattern.
func (r *Runner) filter(ctx context.Context, sess *session) error {
	zlog := zerolog.Ctx(ctx)

	paths, err := collect.Files(ctx, r.config.Directory, collect.Options{
		SkipDirs: []string{r.config.OutputDirectory},
	})
	if err != nil {
		return errors.WithStack(&IOError{Op: "collect", Path: r.config.Directory, Err: err})
	}

	for _, path := range paths {
		rel, err := filepath.Rel(r.config.Directory, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if !r.selected(rel) {
			zlog.Debug().Str("file", rel).Msg("file skipped by glob")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return errors.WithStack(&IOError{Op: "read", Path: path, Err: err})
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.WithStack(&IOError{Op: "read", Path: path, Err: err})
		}

		text := string(content)
		if !r.matcher.Matches(text) {
			continue
		}

		sess.files = append(sess.files, &sourceFile{path: path, rel: rel, content: text, mode: info.Mode().Perm()})
	}

	return nil
}

// selected reports whether rel passes the include and exclude globs.
func (r *Runner) selected(rel string) bool {
	if len(r.config.Include) > 0 {
		included := false
		for _, glob := range r.config.Include {
			if ok, _ := doublestar.Match(glob, rel); ok {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}
	for _, glob := range r.config.Exclude {
		if ok, _ := doublestar.Match(glob, rel); ok {
			return false
		}
	}
	return true
}

// review asks the policy about every match, in file order and match order.
func (r *Runner) review(ctx context.Context, sess *session) error {
	zlog := zerolog.Ctx(ctx)

	for _, file := range sess.files {
		for match := range r.matcher.Scan(file.content) {
			file.matches++

			if !match.Balanced() {
				zlog.Warn().
					Str("file", file.rel).
					Int("start", match.Start).
					Str("args", match.Args).
					Msg("captured arguments have unbalanced parentheses")
			}

			line, col := pattern.Position(file.content, match.Start)
			decision, err := sess.policy.Decide(ctx, approval.Request{
				File:     file.rel,
				Line:     line,
				Column:   col,
				Match:    match,
				Proposed: r.matcher.Canonical(match),
			})
			if err != nil {
				return errors.Errorf("deciding on %s:%d:%d: %w", file.rel, line, col, err)
			}

			switch decision.Verdict {
			case approval.Accept:
				sess.queue.Enqueue(patch.Task{
					File:        file.path,
					Start:       match.Start,
					End:         match.End,
					Replacement: decision.Text,
				})
			case approval.Abort:
				zlog.Debug().Int("queued", sess.queue.Len()).Msg("discarding queued tasks")
				return errors.Errorf("reviewing %s: %w", file.rel, approval.ErrAborted)
			}
		}
	}

	return nil
}

// apply partitions the queue by file and splices each file's tasks into its
// content. Nothing is written here.
func (r *Runner) apply(sess *session) ([]FileResult, error) {
	tasks := make(map[string][]patch.Task, len(sess.files))
	for _, ft := range sess.queue.Partition() {
		tasks[ft.File] = ft.Tasks
	}

	results := make([]FileResult, 0, len(sess.files))
	for _, file := range sess.files {
		final, err := patch.Apply(file.content, tasks[file.path])
		if err != nil {
			return nil, errors.Errorf("applying %s: %w", file.rel, err)
		}

		results = append(results, FileResult{
			Path:     file.path,
			Rel:      file.rel,
			Mode:     file.mode,
			Original: file.content,
			Final:    final,
			Tasks:    tasks[file.path],
			Matches:  file.matches,
			Parts:    diff.Compute(diff.Lines, file.content, final),
		})
	}
	return results, nil
}

// emit prints or writes one result and logs it.
func (r *Runner) emit(ctx context.Context, res *FileResult) error {
	added, removed := diff.Stats(res.Parts)
	op := log.FileOperation{
		Path:     res.Rel,
		Matches:  res.Matches,
		Accepted: len(res.Tasks),
		Added:    added,
		Removed:  removed,
	}

	switch {
	case len(res.Tasks) == 0, !diff.Changed(res.Parts):
		res.Status = log.StatusUnchanged
	case r.config.DryRun:
		if err := diff.RenderLines(r.preview, "a/"+res.Rel, "b/"+res.Rel, res.Parts); err != nil {
			return errors.Errorf("printing diff for %s: %w", res.Rel, err)
		}
		res.Status = log.StatusDryRun
	default:
		if err := r.output.WriteFile(ctx, res.Rel, []byte(res.Final), res.Mode); err != nil {
			op.Status = log.StatusFailed
			r.logger.LogFileOperation(ctx, op)
			return errors.WithStack(&IOError{Op: "write", Path: res.Rel, Err: err})
		}
		res.Status = log.StatusWritten
	}

	op.Status = res.Status
	r.logger.LogFileOperation(ctx, op)
	return nil
}
