// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package check implements the suspfmt pattern matchers.
//
// Each matcher is a pure function from a syntax-tree fragment and a
// [source.File] view to zero or one [Finding]. The matchers correlate tree
// shape with the raw text between node spans: the tree alone cannot see a
// missing space or line break, and the text alone cannot tell an assignment
// from a comparison. Whenever a required snippet is unavailable or a required
// shape is absent, a matcher simply produces no Finding.
package check

import "fillmore-labs.com/suspfmt/internal/source"

// Rule identifies the check that produced a [Finding].
type Rule uint8

//go:generate go tool stringer -type=Rule -linecomment

const (
	// SuspiciousAssignmentFormatting flags assignments written like a
	// compound assignment operator, e.g. `a =- 1`.
	SuspiciousAssignmentFormatting Rule = iota // suspicious-assignment-formatting

	// SuspiciousElseFormatting flags if/else chains whose layout hides an
	// `else if` or suggests a missing `else`.
	SuspiciousElseFormatting // suspicious-else-formatting
)

// Finding is one detected formatting ambiguity. Findings are immutable value
// records, produced fresh per match and handed to the reporting layer.
type Finding struct {
	// Rule identifies the check that matched.
	Rule Rule

	// Span is the primary diagnostic span.
	Span source.Span

	// Message is the primary diagnostic message.
	Message string

	// NoteSpan locates the disambiguation suggestion.
	NoteSpan source.Span

	// Note suggests how to rewrite the code to make the intent explicit.
	Note string
}
