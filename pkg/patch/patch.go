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

// Package patch queues approved replacements and splices them into the
// original file content.
package patch

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidSpan is returned when a task does not fit the content it is
// applied to.
var ErrInvalidSpan = errors.Base("invalid task span")

// 📝 Task replaces the original bytes [Start, End) of File with Replacement.
// Offsets always refer to the content the file had when it was scanned.
type Task struct {
	File        string
	Start       int
	End         int
	Replacement string
}

// String returns a short description of the task
func (t Task) String() string {
	return fmt.Sprintf("%s[%d:%d]", t.File, t.Start, t.End)
}

// ❌ OverlapError reports two tasks for one file whose spans intersect.
type OverlapError struct {
	File   string
	First  Task
	Second Task
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping replacements in %s: [%d,%d) and [%d,%d)",
		e.File, e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// 🔧 Apply returns original with every task spliced in.
//
// Tasks are applied from the highest start offset down. A replacement only
// shifts the bytes after it, so spans that start earlier still point at
// unmodified text when their turn comes.
func Apply(original string, tasks []Task) (string, error) {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b Task) int {
		return cmp.Compare(b.Start, a.Start)
	})

	for i, t := range ordered {
		if t.Start < 0 || t.Start >= t.End || t.End > len(original) {
			return "", errors.Errorf("%w: %s in content of length %d", ErrInvalidSpan, t, len(original))
		}
		// ordered[i-1] starts at or after t, so t must end before it begins
		if i > 0 && t.End > ordered[i-1].Start {
			return "", errors.WithStack(&OverlapError{File: t.File, First: t, Second: ordered[i-1]})
		}
	}

	content := original
	for _, t := range ordered {
		var sb strings.Builder
		sb.Grow(len(content) - (t.End - t.Start) + len(t.Replacement))
		sb.WriteString(content[:t.Start])
		sb.WriteString(t.Replacement)
		sb.WriteString(content[t.End:])
		content = sb.String()
	}

	return content, nil
}
