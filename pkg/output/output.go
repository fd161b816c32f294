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

// Package output writes rewritten files below an output root, mirroring
// their location below the source root.
package output

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 Manager writes files relative to a base directory.
type Manager struct {
	baseDir string
}

// 🏭 New creates a manager rooted at baseDir
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 Path returns the absolute location for rel. A rel that would escape
// the base directory is rejected.
func (m *Manager) Path(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("path %q escapes output directory", rel)
	}
	return filepath.Join(m.baseDir, clean), nil
}

// DefaultPerm is used when WriteFile is given no permission bits.
const DefaultPerm fs.FileMode = 0644

// 📝 WriteFile writes content to rel with the permission bits of perm,
// creating parent directories first.
func (m *Manager) WriteFile(ctx context.Context, rel string, content []byte, perm fs.FileMode) error {
	absPath, err := m.Path(rel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	perm = perm.Perm()
	if perm == 0 {
		perm = DefaultPerm
	}

	return m.writeFileAtomic(ctx, absPath, content, perm)
}

// writeFileAtomic writes through a temp file in the target directory so a
// failed write never leaves a truncated file behind.
func (m *Manager) writeFileAtomic(ctx context.Context, absPath string, content []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Stringer("perm", perm).Msg("wrote file")
	return nil
}
