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

// Package approval decides, match by match, whether a proposed rewrite is
// applied.
package approval

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/recompute/pkg/diff"
	"github.com/walteh/recompute/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// ErrAborted is returned when the reviewer quits the run.
var ErrAborted = errors.Base("aborted by user")

// Verdict is the outcome of a decision.
type Verdict int

const (
	Reject Verdict = iota
	Accept
	Abort
)

// String returns a string representation of Verdict
func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Abort:
		return "abort"
	default:
		return "reject"
	}
}

// 🎯 Decision is what a policy returns for one match. Text is the
// replacement to queue and is only set for Accept.
type Decision struct {
	Verdict Verdict
	Text    string
}

// Request describes one match up for decision.
type Request struct {
	File     string
	Line     int
	Column   int
	Match    pattern.Match
	Proposed string
}

// Location returns the file position of the match for display.
func (r Request) Location() string {
	return fmt.Sprintf("%s:%d:%d (offset %d)", r.File, r.Line, r.Column, r.Match.Start)
}

// 🔌 Policy turns a match into a decision.
type Policy interface {
	Decide(ctx context.Context, req Request) (Decision, error)
}

// 🤖 Automatic accepts every proposal unchanged.
type Automatic struct{}

// Decide implements Policy.
func (Automatic) Decide(ctx context.Context, req Request) (Decision, error) {
	zerolog.Ctx(ctx).Debug().
		Str("file", req.File).
		Int("start", req.Match.Start).
		Int("end", req.Match.End).
		Msg("accepting match automatically")
	return Decision{Verdict: Accept, Text: req.Proposed}, nil
}

// Choice is a reviewer's answer to one proposal.
type Choice int

const (
	ChoiceMerge Choice = iota
	ChoiceDecline
	ChoiceEdit
	ChoiceQuit
)

// String returns a string representation of Choice
func (c Choice) String() string {
	switch c {
	case ChoiceMerge:
		return "merge"
	case ChoiceDecline:
		return "decline"
	case ChoiceEdit:
		return "edit"
	case ChoiceQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// 💬 Prompter asks a human. Every call blocks until an answer is given.
type Prompter interface {
	// AskMode picks how the run proceeds before any file is touched.
	AskMode(ctx context.Context) (Mode, error)
	// AskApproval asks what to do with one proposal.
	AskApproval(ctx context.Context, req Request) (Choice, error)
	// AskEdit lets the reviewer change the proposal, starting from def.
	AskEdit(ctx context.Context, def string) (string, error)
}

// 🧑 Interactive shows each proposal as a word diff and lets the Prompter
// decide.
type Interactive struct {
	Prompter Prompter
	Out      io.Writer
}

// NewInteractive creates an interactive policy that previews diffs on out.
func NewInteractive(p Prompter, out io.Writer) *Interactive {
	return &Interactive{Prompter: p, Out: out}
}

// Decide implements Policy.
func (p *Interactive) Decide(ctx context.Context, req Request) (Decision, error) {
	logger := zerolog.Ctx(ctx)

	if err := p.preview(req); err != nil {
		return Decision{}, errors.Errorf("writing preview: %w", err)
	}

	choice, err := p.Prompter.AskApproval(ctx, req)
	if err != nil {
		return Decision{}, errors.Errorf("asking for approval: %w", err)
	}

	logger.Debug().Str("file", req.File).Int("start", req.Match.Start).Stringer("choice", choice).Msg("reviewer answered")

	switch choice {
	case ChoiceMerge:
		return Decision{Verdict: Accept, Text: req.Proposed}, nil
	case ChoiceDecline:
		return Decision{Verdict: Reject}, nil
	case ChoiceEdit:
		text, err := p.Prompter.AskEdit(ctx, req.Proposed)
		if err != nil {
			return Decision{}, errors.Errorf("editing replacement: %w", err)
		}
		return Decision{Verdict: Accept, Text: text}, nil
	case ChoiceQuit:
		return Decision{Verdict: Abort}, nil
	default:
		return Decision{}, errors.Errorf("unknown choice %d", choice)
	}
}

func (p *Interactive) preview(req Request) error {
	if p.Out == nil {
		return nil
	}
	if _, err := fmt.Fprintf(p.Out, "\n%s\n", req.Location()); err != nil {
		return err
	}
	if !req.Match.Balanced() {
		if _, err := fmt.Fprintln(p.Out, "note: captured arguments have unbalanced parentheses"); err != nil {
			return err
		}
	}
	return diff.Render(p.Out, diff.Compute(diff.Words, req.Match.Text, req.Proposed))
}
