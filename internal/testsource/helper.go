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

// Package testsource provides utilities for parsing Go source fragments in tests.
//
// It simplifies testing the suspfmt matchers by handling the boilerplate of
// wrapping statement-level fragments in a function and keeping the exact
// source bytes around, which the matchers need for snippet lookups.
package testsource

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

// Parse parses a Go statement fragment into an AST.
// The provided source `src` is automatically wrapped in a function body
// `func _() { ... }` within a package `test`. Fragment lines are not
// re-indented, so line directives at column 1 keep their meaning.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - []byte: The exact bytes of the wrapped source.
//   - *ast.BlockStmt: The body of the wrapper function.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File, []byte, *ast.BlockStmt) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()
	wrapped := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, wrapped, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn := firstFuncDecl(f)
	if fn == nil || fn.Body == nil {
		tb.Fatal("Can't find wrapper function")
	}

	return fset, f, wrapped, fn.Body
}

func wrapSource(src string) []byte {
	var buf bytes.Buffer

	buf.WriteString("package test\n\nfunc _() {\n") // ignore error
	buf.WriteString(src)                            // ignore error
	buf.WriteString("\n}\n")                        // ignore error

	return buf.Bytes()
}

func firstFuncDecl(f *ast.File) *ast.FuncDecl {
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return fn
		}
	}

	return nil
}
