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

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/suspfmt/internal/check"
	"fillmore-labs.com/suspfmt/internal/config"
	"fillmore-labs.com/suspfmt/internal/report"
	"fillmore-labs.com/suspfmt/internal/source"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the suspfmt matchers in a single traversal.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("suspfmt: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	assign := r.checks.Enabled(config.AssignCheck)
	elses := r.checks.Enabled(config.ElseCheck)
	if !assign && !elses {
		return nil, nil
	}

	// Remember the current file over all nodes inspected in it
	var current source.File

	root, types := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.IfStmt)(nil),
		(*ast.BlockStmt)(nil),
		(*ast.CaseClause)(nil),
		(*ast.CommClause)(nil),
	}

	root.Inspect(types, func(c inspector.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.File:
			current = newFile(p, node)
			if !current.Valid() {
				return false
			}

			return r.behavior.Enabled(config.IncludeGenerated) || !current.Generated()

		case *ast.AssignStmt:
			if assign {
				if finding, ok := check.Assign(current, node); ok {
					report.Finding(p, finding)
				}
			}

		case *ast.IfStmt:
			if elses {
				if finding, ok := check.ElseIf(current, node); ok {
					report.Finding(p, finding)
				}
			}

		case *ast.BlockStmt:
			if elses {
				report.Findings(p, check.Block(current, node.List))
			}

		case *ast.CaseClause:
			if elses {
				report.Findings(p, check.Block(current, node.Body))
			}

		case *ast.CommClause:
			if elses {
				report.Findings(p, check.Block(current, node.Body))
			}
		}

		return true
	})

	return nil, nil
}

// newFile builds the [source.File] view for a file of the pass. A read
// failure leaves the content empty; snippets then report unavailable and the
// matchers stay silent for this file.
func newFile(p *analysis.Pass, file *ast.File) source.File {
	handle := p.Fset.File(file.FileStart)
	if handle == nil {
		return source.File{}
	}

	content, err := p.ReadFile(handle.Name())
	if err != nil {
		content = nil
	}

	return source.NewFile(p.Fset, file, content)
}
