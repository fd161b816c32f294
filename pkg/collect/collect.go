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

// Package collect enumerates the files below a source root.
package collect

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Options tunes a collection.
type Options struct {
	// SkipDirs lists directories that are not descended into. Paths are
	// compared after filepath.Abs.
	SkipDirs []string
}

// 📂 Files returns every regular file below root, in lexical order.
// Entries are returned as root joined with their relative path. A symlink is
// kept when its target is a regular file; links to directories, dangling
// links, pipes, sockets and devices are skipped. Any error while walking,
// including one in a nested directory, aborts the walk.
func Files(ctx context.Context, root string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("reading source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("source %s is not a directory", root)
	}

	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, dir := range opts.SkipDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.Errorf("resolving skipped directory %s: %w", dir, err)
		}
		skip[abs] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path == root || len(skip) == 0 {
				return nil
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			if skip[abs] {
				logger.Debug().Str("dir", path).Msg("skipping directory")
				return filepath.SkipDir
			}
			return nil
		}
		if !isRegular(path, d) {
			logger.Debug().Str("file", path).Stringer("type", d.Type()).Msg("skipping non-regular file")
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Str("root", root).Int("files", len(files)).Msg("collected files")
	return files, nil
}

func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	return err == nil && target.Mode().IsRegular()
}
