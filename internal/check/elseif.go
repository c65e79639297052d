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

package check

import (
	"go/ast"
	"strings"

	"fillmore-labs.com/suspfmt/internal/source"
)

// ElseIf matches `else if` constructs where a line break between the `else`
// and the `if` makes the chain read like two independent statements:
//
//	if a {
//	} else
//	if b {
//	}
//
// Plain `else { }` blocks are not considered.
func ElseIf(f source.File, stmt *ast.IfStmt) (Finding, bool) {
	alt, ok := stmt.Else.(*ast.IfStmt)
	if !ok {
		return Finding{}, false
	}

	tspan, espan := source.NodeSpan(stmt.Body), source.NodeSpan(alt)
	if f.DifferingContexts(tspan, espan) || f.InExpansion(tspan) {
		return Finding{}, false
	}

	// From the closing brace of the then block (exclusive) to the `if` of
	// the else branch (exclusive). Reads as " else " plus optional comments
	// when everything is on one line.
	gap := source.Between(stmt.Body, alt)

	snippet, ok := f.Snippet(gap)
	if !ok {
		return Finding{}, false
	}

	// The `else` keyword sits somewhere in the gap. A comment containing the
	// word "else" before the keyword would shift the match point; accepted,
	// this stays a heuristic.
	pos := strings.Index(snippet, "else")
	if pos < 0 || !strings.Contains(snippet[pos:], "\n") {
		return Finding{}, false
	}

	return Finding{
		Rule:     SuspiciousElseFormatting,
		Span:     gap,
		Message:  "this is an `else if` but the formatting hides it",
		NoteSpan: gap,
		Note:     "remove the `else` or join the `else` and the `if` on one line",
	}, true
}
