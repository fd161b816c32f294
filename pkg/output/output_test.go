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

package output

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WriteFile(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	base := filepath.Join(t.TempDir(), "out")
	m := New(base)

	require.NoError(t, m.WriteFile(ctx, "app/models/user.js", []byte("rewritten"), 0))

	got, err := os.ReadFile(filepath.Join(base, "app", "models", "user.js"))
	require.NoError(t, err)
	assert.Equal(t, "rewritten", string(got))

	// overwrite keeps a single file and no temp leftovers
	require.NoError(t, m.WriteFile(ctx, "app/models/user.js", []byte("again"), 0))
	entries, err := os.ReadDir(filepath.Join(base, "app", "models"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user.js", entries[0].Name())

	got, err = os.ReadFile(filepath.Join(base, "app", "models", "user.js"))
	require.NoError(t, err)
	assert.Equal(t, "again", string(got))
}

func TestManager_WriteFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not kept")
	}

	tests := []struct {
		name string
		perm fs.FileMode
		want fs.FileMode
	}{
		{name: "default", perm: 0, want: DefaultPerm},
		{name: "executable", perm: 0755, want: 0755},
		{name: "type_bits_dropped", perm: fs.ModeSymlink | 0600, want: 0600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			require.NoError(t, New(base).WriteFile(context.Background(), "bin/run.sh", []byte("#!/bin/sh\n"), tt.perm))

			info, err := os.Stat(filepath.Join(base, "bin", "run.sh"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Mode().Perm())
		})
	}
}

func TestManager_Path(t *testing.T) {
	m := New("/out")

	tests := []struct {
		name    string
		rel     string
		want    string
		wantErr bool
	}{
		{name: "nested", rel: "a/b.js", want: filepath.Join("/out", "a", "b.js")},
		{name: "cleaned", rel: "a/../b.js", want: filepath.Join("/out", "b.js")},
		{name: "parent", rel: "../b.js", wantErr: true},
		{name: "parent_only", rel: "..", wantErr: true},
		{name: "absolute", rel: "/etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Path(tt.rel)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "escapes output directory")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManager_WriteFileError(t *testing.T) {
	base := t.TempDir()
	// a regular file where a directory is needed
	require.NoError(t, os.WriteFile(filepath.Join(base, "blocked"), []byte("x"), 0644))

	err := New(base).WriteFile(context.Background(), "blocked/a.js", []byte("y"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating parent directories")
}
