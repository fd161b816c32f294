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

//go:build unix

package collect

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_SpecialEntries(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.js":     "a",
		"lib/b.js": "b",
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "lib"), filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.js"), filepath.Join(root, "alias.js")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.js"), filepath.Join(root, "dangling.js")))
	require.NoError(t, syscall.Mkfifo(filepath.Join(root, "pipe"), 0644))

	files, err := Files(testContext(t), root, Options{})
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.js"),
		filepath.Join(root, "alias.js"),
		filepath.Join(root, "lib", "b.js"),
	}
	assert.Equal(t, want, files)
}
