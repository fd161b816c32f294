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

package pattern

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findAll(m *Matcher, text string) []Match {
	return slices.Collect(m.Scan(text))
}

func TestMatcher_NoOccurrences(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "plain_code", text: "var x = 1;\nconsole.log(x);\n"},
		{name: "property_without_function", text: "obj.property('a', 'b');"},
		{name: "function_without_property", text: "var f = function(a) { return a; };"},
		{name: "arrow_function", text: "var f = (a) => { return a; }.property('a');"},
		{name: "rest_params", text: "function(...args) { }.property('a')"},
	}

	m := New("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, m.Matches(tt.text), "matches should be false")
			assert.Empty(t, findAll(m, tt.text), "find all should be empty")
		})
	}
}

func TestMatcher_Scan(t *testing.T) {
	first := "function(x){ return x; }.property('a')"
	second := "function ( y, z ) {\n  return y + z;\n}.property('b', 'c')"
	third := "function(){ return this.get('q'); }.property('q')"
	text := "a = " + first + ";\nb = " + second + ";\n// noise\nc = " + third + ";\n"

	m := New("")
	require.True(t, m.Matches(text))

	matches := findAll(m, text)
	require.Len(t, matches, 3)

	for i, want := range []string{first, second, third} {
		start := strings.Index(text, want)
		assert.Equal(t, want, matches[i].Text, "match %d text", i)
		assert.Equal(t, start, matches[i].Start, "match %d start", i)
		assert.Equal(t, start+len(want), matches[i].End, "match %d end", i)
		assert.Equal(t, text[matches[i].Start:matches[i].End], matches[i].Text)
	}

	assert.Equal(t, "function ( y, z ) {\n  return y + z;\n}", matches[1].Body)
	assert.Equal(t, "'b', 'c'", matches[1].Args)

	for i := 1; i < len(matches); i++ {
		assert.Less(t, matches[i-1].Start, matches[i].Start, "starts must increase")
		assert.LessOrEqual(t, matches[i-1].End, matches[i].Start, "spans must not overlap")
	}
}

func TestMatcher_Canonical(t *testing.T) {
	text := "foo(function(a,b){ return a+b; }.property('x','y'));"

	m := New("")
	matches := findAll(m, text)
	require.Len(t, matches, 1)

	match := matches[0]
	assert.Equal(t, "function(a,b){ return a+b; }", match.Body)
	assert.Equal(t, "'x','y'", match.Args)
	assert.Equal(t, "Canonical('x','y', function(a,b){ return a+b; })", m.Canonical(match))

	rewritten := text[:match.Start] + m.Canonical(match) + text[match.End:]
	assert.Equal(t, "foo(Canonical('x','y', function(a,b){ return a+b; }));", rewritten)
}

func TestMatcher_CanonicalIsStable(t *testing.T) {
	m := New("")
	text := "foo(function(a,b){ return a+b; }.property('x','y'));"
	match := findAll(m, text)[0]
	rewritten := text[:match.Start] + m.Canonical(match) + text[match.End:]

	assert.False(t, m.Matches(rewritten), "canonical form must not match again")
	assert.Empty(t, findAll(m, rewritten))
}

func TestMatcher_JavaScriptWhitespace(t *testing.T) {
	tests := []struct {
		name string
		ws   string
	}{
		{name: "vertical_tab", ws: "\v"},
		{name: "no_break_space", ws: "\u00a0"},
		{name: "byte_order_mark", ws: "\ufeff"},
		{name: "line_separator", ws: "\u2028"},
		{name: "ideographic_space", ws: "\u3000"},
	}

	m := New("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "x = function" + tt.ws + "(a," + tt.ws + "b)" + tt.ws + "{ return a; }.property('a');"
			matches := findAll(m, text)
			require.Len(t, matches, 1)
			assert.Equal(t, "function"+tt.ws+"(a,"+tt.ws+"b)"+tt.ws+"{ return a; }", matches[0].Body)
			assert.Equal(t, "'a'", matches[0].Args)
		})
	}
}

func TestMatcher_CustomWrapper(t *testing.T) {
	m := New("Ember.computed")

	match := findAll(m, "x = function() { return 1; }.property('a');")[0]
	assert.Equal(t, "Ember.computed('a', function() { return 1; })", m.Canonical(match))
}

func TestMatcher_UnbalancedCapture(t *testing.T) {
	text := "x = function(){ return 1; }.property(get('a'), 'b');"

	m := New("")
	matches := findAll(m, text)
	require.Len(t, matches, 1)

	match := matches[0]
	assert.Equal(t, "get('a'", match.Args, "capture stops at the first closing paren")
	assert.Equal(t, "function(){ return 1; }.property(get('a')", match.Text)
	assert.False(t, match.Balanced())
	assert.Equal(t, "Canonical(get('a', function(){ return 1; })", m.Canonical(match))
}

func TestMatcher_BodySpansToFirstProperty(t *testing.T) {
	text := "function(){ a(); }; function(){ b(); }.property('x')"

	matches := findAll(New(""), text)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, "function(){ a(); }; function(){ b(); }", matches[0].Body)
	assert.True(t, matches[0].Balanced())
}

func TestMatcher_ScanIsRestartable(t *testing.T) {
	text := "function(){}.property('a') function(){}.property('b')"
	m := New("")

	for range 3 {
		var got []string
		for match := range m.Scan(text) {
			got = append(got, match.Args)
		}
		assert.Equal(t, []string{"'a'", "'b'"}, got)
	}

	// stopping early must not affect the next scan
	for match := range m.Scan(text) {
		assert.Equal(t, "'a'", match.Args)
		break
	}
	assert.True(t, m.Matches(text))
	assert.Len(t, findAll(m, text), 2)
}

func TestPosition(t *testing.T) {
	text := "ab\ncd\nef"

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{name: "start", offset: 0, wantLine: 1, wantCol: 1},
		{name: "first_line", offset: 1, wantLine: 1, wantCol: 2},
		{name: "second_line", offset: 3, wantLine: 2, wantCol: 1},
		{name: "third_line", offset: 7, wantLine: 3, wantCol: 2},
		{name: "past_end", offset: 100, wantLine: 3, wantCol: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := Position(text, tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}
