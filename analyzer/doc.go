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

// Package analyzer implements the suspfmt static analysis pass.
//
// # Overview
//
// Suspfmt detects code whose formatting is syntactically valid but visually
// misleading: the layout suggests a different meaning than what Go assigns
// to it. Two patterns are flagged.
//
// A suspicious assignment glues a prefix operator to the `=`:
//
//	a =- 1 // compound `a -= 1` or plain `a = -1`?
//
// Suspicious else formatting hides the structure of an if/else chain, either
// by breaking the line between `else` and `if`:
//
//	if foo {
//	} else
//	if bar { // the `else` branch of the first if — intended?
//	}
//
// or by crowding two independent ifs onto one line, where an `else` seems to
// be missing:
//
//	if foo {
//	}; if bar { // looks like the `else` was dropped
//	}
//
// The pass correlates the shape of the syntax tree with the raw source text
// between node positions. It never suggests fixes: both readings of each
// pattern are plausible, so the intent is for the author to state.
//
// # Limits
//
// Code behind line directives (cgo, yacc and similar generators) was not
// written verbatim where it appears and is never flagged. Generated files
// are skipped unless configured otherwise.
package analyzer
