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

// Package source gives span-based access to the literal text of a parsed Go
// file, together with an expansion-context oracle built on line directives.
//
// Positions behind a //line directive (cgo output, yacc grammars and other
// generators emit these) do not correspond to code written verbatim at that
// location. The package models this as an expansion context per position:
// the file name and line offset reported after directives are applied.
package source

import (
	"go/ast"
	"go/token"
)

// File combines a parsed file with its literal source bytes. It is the
// read-only view the matchers use to recover the text between two nodes;
// it is never mutated after creation and is safe to share.
type File struct {
	file      *ast.File
	handle    *token.File
	content   []byte
	generated bool
}

// NewFile creates a [File] from a parsed file and its source bytes.
// A nil content slice is permitted and makes every snippet unavailable.
func NewFile(fset *token.FileSet, file *ast.File, content []byte) File {
	if file == nil {
		return File{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return File{}
	}

	return File{file, handle, content, ast.IsGenerated(file)}
}

// Valid returns true if the [File] was created from a parsed file with
// position information.
func (f File) Valid() bool {
	return f.handle != nil
}

// Generated returns true if the file carries a "Code generated" comment.
func (f File) Generated() bool {
	return f.generated
}

// Snippet returns the literal source text of a span. The second result is
// false when the text cannot be recovered: the span is invalid, lies outside
// this file, or the source bytes are missing or shorter than the file.
func (f File) Snippet(s Span) (string, bool) {
	if f.handle == nil || !s.Valid() {
		return "", false
	}

	base := token.Pos(f.handle.Base())
	if s.Lo < base || s.Hi > base+token.Pos(f.handle.Size()) {
		return "", false
	}

	lo, hi := f.handle.Offset(s.Lo), f.handle.Offset(s.Hi)
	if hi > len(f.content) {
		return "", false
	}

	return string(f.content[lo:hi]), true
}

// context identifies the literal source-expansion context of a position:
// the file name and line offset in effect after line directives. Code
// written verbatim in the file has the file's own name and a zero offset.
type context struct {
	name  string
	delta int
}

func (f File) contextOf(p token.Pos) context {
	adjusted := f.handle.PositionFor(p, true)
	raw := f.handle.PositionFor(p, false)

	return context{name: adjusted.Filename, delta: adjusted.Line - raw.Line}
}

// DifferingContexts reports whether two spans originate from different
// expansion contexts, signaling code that was not written verbatim as one
// piece at that location.
func (f File) DifferingContexts(a, b Span) bool {
	if f.handle == nil || !a.Lo.IsValid() || !b.Lo.IsValid() {
		return true
	}

	return f.contextOf(a.Lo) != f.contextOf(b.Lo)
}

// InExpansion reports whether a span lies in an expansion context different
// from the file's own top-level context.
func (f File) InExpansion(s Span) bool {
	if f.handle == nil || !s.Lo.IsValid() {
		return true
	}

	top := context{name: f.handle.Name()}

	return f.contextOf(s.Lo) != top
}
