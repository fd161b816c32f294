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

package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	commonColor  = color.New(color.Faint)
	headerColor  = color.New(color.Bold)
)

// 🎨 Render writes parts inline: added text in green, removed text in red
// and common text dimmed.
func Render(w io.Writer, parts []Part) error {
	for _, p := range parts {
		c := commonColor
		switch p.Op {
		case Added:
			c = addedColor
		case Removed:
			c = removedColor
		}
		if _, err := c.Fprint(w, p.Text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// 📝 RenderLines writes a line diff as a `+`/`-` prefixed report. Common
// lines are printed with a leading space.
func RenderLines(w io.Writer, oldName, newName string, parts []Part) error {
	if _, err := headerColor.Fprintf(w, "--- %s\n+++ %s\n", oldName, newName); err != nil {
		return err
	}
	for _, p := range parts {
		prefix, c := " ", commonColor
		switch p.Op {
		case Added:
			prefix, c = "+", addedColor
		case Removed:
			prefix, c = "-", removedColor
		}
		for _, line := range splitLines(p.Text) {
			if _, err := c.Fprintln(w, prefix+strings.TrimSuffix(line, "\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
