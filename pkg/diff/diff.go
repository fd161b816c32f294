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

// Package diff computes char, word and line level differences between two
// texts and renders them for the console.
package diff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📏 Kind selects the granularity of a diff.
type Kind int

const (
	Chars Kind = iota
	Words
	Lines
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Chars:
		return "chars"
	case Words:
		return "words"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Op tells whether a part is shared, inserted or deleted.
type Op int

const (
	Common Op = iota
	Added
	Removed
)

// String returns a string representation of Op
func (o Op) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "common"
	}
}

// 🧩 Part is one contiguous piece of a diff.
type Part struct {
	Text string
	Op   Op
}

// 🔍 Compute diffs before against after. Joining the text of every part that
// is not Removed yields after; joining every part that is not Added yields
// before.
func Compute(kind Kind, before, after string) []Part {
	dmp := diffmatchpatch.New()

	switch kind {
	case Words:
		return diffTokens(dmp, splitWords(before), splitWords(after))
	case Lines:
		return diffTokens(dmp, splitLines(before), splitLines(after))
	default:
		return diffTokens(dmp, splitChars(before), splitChars(after))
	}
}

// diffTokens maps each distinct token to a single rune, diffs the rune
// strings and expands the result back into tokens.
func diffTokens(dmp *diffmatchpatch.DiffMatchPatch, before, after []string) []Part {
	enc := &encoder{index: map[string]rune{}}
	a := enc.encode(before)
	b := enc.encode(after)
	return merge(convert(dmp.DiffMainRunes(a, b, false), enc.tokens))
}

func convert(diffs []diffmatchpatch.Diff, tokens []string) []Part {
	parts := make([]Part, 0, len(diffs))
	for _, d := range diffs {
		text := decode(d.Text, tokens)
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Added
		case diffmatchpatch.DiffDelete:
			op = Removed
		default:
			op = Common
		}
		parts = append(parts, Part{Text: text, Op: op})
	}
	return parts
}

// merge drops empty parts and joins neighbours with the same op.
func merge(parts []Part) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Op == p.Op {
			out[n-1].Text += p.Text
			continue
		}
		out = append(out, p)
	}
	return out
}

// encoder assigns runes to tokens in first-seen order. Surrogate code points
// are skipped because they do not survive a string round trip.
type encoder struct {
	index  map[string]rune
	tokens []string
}

func (e *encoder) encode(tokens []string) []rune {
	out := make([]rune, 0, len(tokens))
	for _, tok := range tokens {
		r, ok := e.index[tok]
		if !ok {
			r = runeFor(len(e.tokens))
			e.index[tok] = r
			e.tokens = append(e.tokens, tok)
		}
		out = append(out, r)
	}
	return out
}

func runeFor(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func indexFor(r rune) int {
	if r >= 0xE000 {
		r -= 0x800
	}
	return int(r - 1)
}

func decode(text string, tokens []string) string {
	var sb strings.Builder
	for _, r := range text {
		sb.WriteString(tokens[indexFor(r)])
	}
	return sb.String()
}

// splitChars cuts s into single characters. An invalid byte becomes a
// token of its own, so the bytes survive the round trip unchanged.
func splitChars(s string) []string {
	tokens := make([]string, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		tokens = append(tokens, s[:size])
		s = s[size:]
	}
	return tokens
}

// splitWords cuts s into runs of word characters, runs of whitespace and
// single punctuation characters.
func splitWords(s string) []string {
	var tokens []string
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		class := classOf(r)
		end := size
		if class != classOther {
			for end < len(s) {
				next, n := utf8.DecodeRuneInString(s[end:])
				if classOf(next) != class {
					break
				}
				end += n
			}
		}
		tokens = append(tokens, s[:end])
		s = s[end:]
	}
	return tokens
}

const (
	classWord = iota
	classSpace
	classOther
)

func classOf(r rune) int {
	switch {
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	case unicode.IsSpace(r):
		return classSpace
	default:
		return classOther
	}
}

// splitLines cuts s into lines that keep their trailing newline.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// Changed reports whether any part is Added or Removed.
func Changed(parts []Part) bool {
	for _, p := range parts {
		if p.Op != Common {
			return true
		}
	}
	return false
}

// 📊 Stats counts the lines touched by Added and Removed parts.
func Stats(parts []Part) (added, removed int) {
	for _, p := range parts {
		n := len(splitLines(p.Text))
		switch p.Op {
		case Added:
			added += n
		case Removed:
			removed += n
		}
	}
	return added, removed
}
