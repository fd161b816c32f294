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

// Package prompt implements approval.Prompter on top of pterm's interactive
// printers.
package prompt

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/walteh/recompute/pkg/approval"
	"gitlab.com/tozd/go/errors"
)

var choiceLabels = []struct {
	choice approval.Choice
	label  string
}{
	{approval.ChoiceMerge, "Merge"},
	{approval.ChoiceDecline, "Decline"},
	{approval.ChoiceEdit, "Edit"},
	{approval.ChoiceQuit, "Quit"},
}

// 💬 Terminal asks questions on the controlling terminal.
type Terminal struct {
	selector *pterm.InteractiveSelectPrinter
	input    *pterm.InteractiveTextInputPrinter
}

// 🏭 NewTerminal creates a prompter using pterm's default printers.
func NewTerminal() *Terminal {
	return &Terminal{
		selector: &pterm.DefaultInteractiveSelect,
		input:    &pterm.DefaultInteractiveTextInput,
	}
}

// AskMode implements approval.Prompter.
func (t *Terminal) AskMode(ctx context.Context) (approval.Mode, error) {
	labels := make([]string, 0, len(approval.Modes))
	for _, m := range approval.Modes {
		labels = append(labels, m.Description())
	}

	answer, err := t.selector.
		WithOptions(labels).
		WithDefaultOption(labels[0]).
		Show("How do you want to proceed?")
	if err != nil {
		return approval.ModeQuit, errors.Errorf("selecting mode: %w", err)
	}

	return ModeFromLabel(answer)
}

// AskApproval implements approval.Prompter.
func (t *Terminal) AskApproval(ctx context.Context, req approval.Request) (approval.Choice, error) {
	labels := make([]string, 0, len(choiceLabels))
	for _, c := range choiceLabels {
		labels = append(labels, c.label)
	}

	answer, err := t.selector.
		WithOptions(labels).
		WithDefaultOption(labels[0]).
		Show(fmt.Sprintf("Apply change at %s?", req.Location()))
	if err != nil {
		return approval.ChoiceQuit, errors.Errorf("selecting action: %w", err)
	}

	return ChoiceFromLabel(answer)
}

// AskEdit implements approval.Prompter.
func (t *Terminal) AskEdit(ctx context.Context, def string) (string, error) {
	text, err := t.input.
		WithMultiLine(true).
		WithDefaultValue(def).
		Show("Edit the replacement")
	if err != nil {
		return "", errors.Errorf("reading replacement: %w", err)
	}
	return text, nil
}

// ChoiceFromLabel maps a menu label back to its choice.
func ChoiceFromLabel(label string) (approval.Choice, error) {
	for _, c := range choiceLabels {
		if c.label == label {
			return c.choice, nil
		}
	}
	return approval.ChoiceQuit, errors.Errorf("unknown action %q", label)
}

// ModeFromLabel maps a menu label back to its mode.
func ModeFromLabel(label string) (approval.Mode, error) {
	for _, m := range approval.Modes {
		if m.Description() == label {
			return m, nil
		}
	}
	return approval.ModeQuit, errors.Errorf("unknown mode %q", label)
}
