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

// Block scans a statement list for consecutive `if` statements that are
// visually adjacent, looking like an `else if` chain missing its `else`:
//
//	if a {
//	}; if b {
//	}
//
// Every adjacent pair is examined independently, so k crowded ifs yield up
// to k-1 findings.
func Block(f source.File, stmts []ast.Stmt) []Finding {
	var findings []Finding

	for i := 0; i+1 < len(stmts); i++ {
		if finding, ok := consecutiveIfs(f, stmts[i], stmts[i+1]); ok {
			findings = append(findings, finding)
		}
	}

	return findings
}

func consecutiveIfs(f source.File, first, second ast.Stmt) (Finding, bool) {
	if !isIf(first) || !isIf(second) {
		return Finding{}, false
	}

	fspan, sspan := source.NodeSpan(first), source.NodeSpan(second)
	if f.DifferingContexts(fspan, sspan) || f.InExpansion(fspan) {
		return Finding{}, false
	}

	// Exactly where a missing `else` keyword would sit. Any gap without a
	// line break counts as too close, even one padded by comments.
	gap := source.Between(first, second)

	snippet, ok := f.Snippet(gap)
	if !ok || strings.Contains(snippet, "\n") {
		return Finding{}, false
	}

	return Finding{
		Rule:     SuspiciousElseFormatting,
		Span:     gap,
		Message:  "this looks like an `else if` but the `else` is missing",
		NoteSpan: gap,
		Note:     "add the missing `else` or insert a line break before the second `if`",
	}, true
}

func isIf(stmt ast.Stmt) bool {
	_, ok := stmt.(*ast.IfStmt)

	return ok
}
