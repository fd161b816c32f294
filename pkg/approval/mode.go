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

package approval

import (
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🚦 Mode is the run-wide choice made before any file is processed.
type Mode int

const (
	// ModeAsk leaves the choice to the Prompter.
	ModeAsk Mode = iota
	// ModeReview asks about every match.
	ModeReview
	// ModeMerge accepts every match without prompting.
	ModeMerge
	// ModeQuit stops before any file is touched.
	ModeQuit
)

// Modes lists the modes a reviewer can pick from, in menu order.
var Modes = []Mode{ModeReview, ModeMerge, ModeQuit}

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeReview:
		return "review"
	case ModeMerge:
		return "merge"
	case ModeQuit:
		return "quit"
	default:
		return "ask"
	}
}

// Description returns the menu label of m.
func (m Mode) Description() string {
	switch m {
	case ModeReview:
		return "Review all changes"
	case ModeMerge:
		return "Merge all changes automatically"
	case ModeQuit:
		return "Quit"
	default:
		return "Ask"
	}
}

// ParseMode parses a mode name. The empty string means ModeAsk.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ask":
		return ModeAsk, nil
	case "review":
		return ModeReview, nil
	case "merge":
		return ModeMerge, nil
	case "quit":
		return ModeQuit, nil
	default:
		return ModeAsk, errors.Errorf("unknown mode %q (want ask, review, merge or quit)", s)
	}
}

// PolicyFor returns the policy used by mode. ModeAsk and ModeQuit have no
// policy and return nil.
func PolicyFor(mode Mode, p Prompter, out io.Writer) Policy {
	switch mode {
	case ModeReview:
		return NewInteractive(p, out)
	case ModeMerge:
		return Automatic{}
	default:
		return nil
	}
}
