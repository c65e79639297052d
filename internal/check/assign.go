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
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"fillmore-labs.com/suspfmt/internal/source"
)

// Assign matches assignments whose right-hand side is a prefix-operator
// expression glued to the `=`, so that `a =- 1` reads like `a -= 1` but
// parses as `a = (-1)`.
func Assign(f source.File, stmt *ast.AssignStmt) (Finding, bool) {
	if stmt.Tok != token.ASSIGN || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return Finding{}, false
	}

	lhs, rhs := stmt.Lhs[0], stmt.Rhs[0]

	op, operand, ok := prefixOperand(rhs)
	if !ok {
		return Finding{}, false
	}

	lspan, rspan := source.NodeSpan(lhs), source.NodeSpan(rhs)
	if f.DifferingContexts(lspan, rspan) || f.InExpansion(lspan) {
		return Finding{}, false
	}

	// The text expected to hold `=` plus surrounding whitespace.
	eq, ok := f.Snippet(source.Between(lhs, rhs))
	if !ok || !strings.HasSuffix(eq, "=") {
		return Finding{}, false
	}

	// Covers `=<op>` with nothing in between.
	eqop := source.Span{Lo: lhs.End(), Hi: operand.Pos()}

	return Finding{
		Rule:     SuspiciousAssignmentFormatting,
		Span:     eqop,
		Message:  fmt.Sprintf("`=%[1]s` looks like `%[1]s=` but parses as `= %[1]s`", op),
		NoteSpan: eqop,
		Note:     fmt.Sprintf("write `%[1]s=` or `= %[1]s` to make the intent explicit", op),
	}, true
}

// prefixOperand extracts the operator symbol and operand of a prefix
// expression that can be misread as half of a compound assignment.
func prefixOperand(e ast.Expr) (op string, operand ast.Expr, ok bool) {
	switch e := e.(type) {
	case *ast.UnaryExpr:
		switch e.Op {
		case token.ADD, token.SUB, token.NOT, token.XOR, token.AND:
			return e.Op.String(), e.X, true
		}

	case *ast.StarExpr:
		// Pointer dereference, confusable with `*=`.
		return "*", e.X, true
	}

	return "", nil, false
}
