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

package approval_test

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/recompute/gen/mockery"
	"github.com/walteh/recompute/pkg/approval"
	"github.com/walteh/recompute/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

func testRequest(t *testing.T) approval.Request {
	t.Helper()
	text := "foo(function(a,b){ return a+b; }.property('x','y'));"
	m := pattern.New("")
	matches := slices.Collect(m.Scan(text))
	require.Len(t, matches, 1)
	line, col := pattern.Position(text, matches[0].Start)
	return approval.Request{
		File:     "src/a.js",
		Line:     line,
		Column:   col,
		Match:    matches[0],
		Proposed: m.Canonical(matches[0]),
	}
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestAutomatic(t *testing.T) {
	req := testRequest(t)

	got, err := approval.Automatic{}.Decide(testContext(t), req)
	require.NoError(t, err)
	assert.Equal(t, approval.Decision{Verdict: approval.Accept, Text: req.Proposed}, got)
}

func TestInteractive(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name  string
		setup func(ctx context.Context, req approval.Request, p *mockery.MockPrompter_approval)
		want  approval.Decision
	}{
		{
			name: "merge",
			setup: func(ctx context.Context, req approval.Request, p *mockery.MockPrompter_approval) {
				p.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceMerge, nil)
			},
			want: approval.Decision{Verdict: approval.Accept, Text: "Canonical('x','y', function(a,b){ return a+b; })"},
		},
		{
			name: "decline",
			setup: func(ctx context.Context, req approval.Request, p *mockery.MockPrompter_approval) {
				p.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceDecline, nil)
			},
			want: approval.Decision{Verdict: approval.Reject},
		},
		{
			name: "edit",
			setup: func(ctx context.Context, req approval.Request, p *mockery.MockPrompter_approval) {
				p.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceEdit, nil)
				p.EXPECT().AskEdit(ctx, req.Proposed).Return("Other('x', function(a,b){ return a+b; })", nil)
			},
			want: approval.Decision{Verdict: approval.Accept, Text: "Other('x', function(a,b){ return a+b; })"},
		},
		{
			name: "quit",
			setup: func(ctx context.Context, req approval.Request, p *mockery.MockPrompter_approval) {
				p.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceQuit, nil)
			},
			want: approval.Decision{Verdict: approval.Abort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			req := testRequest(t)
			prompter := mockery.NewMockPrompter_approval(t)
			tt.setup(ctx, req, prompter)

			var out bytes.Buffer
			got, err := approval.NewInteractive(prompter, &out).Decide(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Contains(t, out.String(), "src/a.js:1:5 (offset 4)")
			assert.NotContains(t, out.String(), "unbalanced")
		})
	}
}

func TestInteractive_PromptErrors(t *testing.T) {
	ctx := testContext(t)
	req := testRequest(t)

	t.Run("approval_error", func(t *testing.T) {
		prompter := mockery.NewMockPrompter_approval(t)
		prompter.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceMerge, errors.New("tty closed"))

		_, err := approval.NewInteractive(prompter, nil).Decide(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "asking for approval: tty closed")
	})

	t.Run("edit_error", func(t *testing.T) {
		prompter := mockery.NewMockPrompter_approval(t)
		prompter.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceEdit, nil)
		prompter.EXPECT().AskEdit(ctx, mock.Anything).Return("", errors.New("interrupted"))

		_, err := approval.NewInteractive(prompter, nil).Decide(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "editing replacement: interrupted")
	})
}

func TestInteractive_UnbalancedNote(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := testContext(t)
	m := pattern.New("")
	text := "x = function(){ return 1; }.property(get('a'), 'b');"
	match := slices.Collect(m.Scan(text))[0]
	req := approval.Request{File: "b.js", Line: 1, Column: 5, Match: match, Proposed: m.Canonical(match)}

	prompter := mockery.NewMockPrompter_approval(t)
	prompter.EXPECT().AskApproval(ctx, req).Return(approval.ChoiceMerge, nil)

	var out bytes.Buffer
	got, err := approval.NewInteractive(prompter, &out).Decide(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, approval.Accept, got.Verdict, "unbalanced captures are still offered")
	assert.Contains(t, out.String(), "unbalanced parentheses")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    approval.Mode
		wantErr bool
	}{
		{in: "", want: approval.ModeAsk},
		{in: "ask", want: approval.ModeAsk},
		{in: "Review", want: approval.ModeReview},
		{in: " merge ", want: approval.ModeMerge},
		{in: "quit", want: approval.ModeQuit},
		{in: "yolo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := approval.ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyFor(t *testing.T) {
	prompter := mockery.NewMockPrompter_approval(t)

	assert.IsType(t, approval.Automatic{}, approval.PolicyFor(approval.ModeMerge, prompter, nil))
	assert.IsType(t, &approval.Interactive{}, approval.PolicyFor(approval.ModeReview, prompter, nil))
	assert.Nil(t, approval.PolicyFor(approval.ModeQuit, prompter, nil))
	assert.Nil(t, approval.PolicyFor(approval.ModeAsk, prompter, nil))
}
