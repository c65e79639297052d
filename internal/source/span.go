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

package source

import (
	"go/ast"
	"go/token"
)

// Span is a half-open position range [Lo, Hi) in a single source file.
type Span struct {
	Lo, Hi token.Pos
}

// NodeSpan returns the [Span] covered by an AST node.
func NodeSpan(n ast.Node) Span {
	return Span{Lo: n.Pos(), Hi: n.End()}
}

// Between returns the gap [Span] strictly between two adjacent AST nodes,
// from the end of the first to the start of the second. The gap recovers
// whitespace, separators and comments the syntax tree discards.
func Between(first, second ast.Node) Span {
	return Span{Lo: first.End(), Hi: second.Pos()}
}

// Valid reports whether both endpoints are valid and correctly ordered.
func (s Span) Valid() bool {
	return s.Lo.IsValid() && s.Hi.IsValid() && s.Lo <= s.Hi
}
