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

// Package pattern locates function literals that carry a trailing
// `.property(...)` call and builds their canonical wrapper-call form.
//
// Matching is textual. The argument capture stops at the first `)` after
// `.property(` and does not balance nested parentheses; see Match.Balanced.
package pattern

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// DefaultWrapper is the call name used by Canonical when none is configured.
const DefaultWrapper = "Canonical"

// space matches what a JavaScript `\s` matches. RE2's `\s` only covers
// ASCII `[\t\n\f\r ]`.
const space = `\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}`

// expression must capture exactly what the legacy codemod captured.
const expression = `(function[` + space + `]*\([\w` + space + `,]*\)[` + space + `]*\{[\w\W]*?)\.property\(([\w\W]*?)\)`

var propertyPattern = regexp.MustCompile(expression)

// 🎯 Match is one occurrence of the pattern in a file.
type Match struct {
	Text  string // full matched source text
	Start int    // byte offset of the first matched byte
	End   int    // byte offset one past the last matched byte
	Body  string // the function literal, up to (not including) `.property(`
	Args  string // the text between `.property(` and the first `)`
}

// Balanced reports whether Args contains as many `(` as `)`. An unbalanced
// capture means the textual match cut a nested call short.
func (m Match) Balanced() bool {
	return strings.Count(m.Args, "(") == strings.Count(m.Args, ")")
}

// 🔍 Matcher scans text for pattern occurrences.
//
// A Matcher keeps no scan position between calls, so one instance can serve
// the filter pass and the extraction pass of any number of files.
type Matcher struct {
	re      *regexp.Regexp
	wrapper string
}

// 🏭 New creates a matcher that rewrites occurrences into wrapper calls.
// An empty wrapper selects DefaultWrapper.
func New(wrapper string) *Matcher {
	if wrapper == "" {
		wrapper = DefaultWrapper
	}
	return &Matcher{
		re:      propertyPattern,
		wrapper: wrapper,
	}
}

// Matches reports whether text holds at least one occurrence.
func (m *Matcher) Matches(text string) bool {
	return m.re.MatchString(text)
}

// 🔄 Scan yields the occurrences in text from left to right. Each match
// starts searching where the previous one ended, so spans never overlap.
// Every call starts a fresh scan.
func (m *Matcher) Scan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(text) {
			loc := m.re.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			match := Match{
				Text:  text[pos+loc[0] : pos+loc[1]],
				Start: pos + loc[0],
				End:   pos + loc[1],
				Body:  text[pos+loc[2] : pos+loc[3]],
				Args:  text[pos+loc[4] : pos+loc[5]],
			}
			if !yield(match) {
				return
			}
			pos = match.End
		}
	}
}

// 📝 Canonical returns the rewritten form of match: the wrapper call with
// the former property arguments first and the function literal second.
func (m *Matcher) Canonical(match Match) string {
	return fmt.Sprintf("%s(%s, %s)", m.wrapper, match.Args, match.Body)
}

// Position converts a byte offset in text into a 1-based line and column.
func Position(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	prefix := text[:offset]
	line = strings.Count(prefix, "\n") + 1
	col = offset - (strings.LastIndexByte(prefix, '\n') + 1) + 1
	return line, col
}
