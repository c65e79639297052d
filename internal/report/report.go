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

// Package report converts findings into analysis diagnostics.
//
// Severity, rendering and suppression policy stay with the driver; this
// package only shapes the records.
package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/suspfmt/internal/check"
)

// Finding reports a single [check.Finding] to the analysis framework. The
// secondary span and message become related information, the rule identifier
// the diagnostic category.
func Finding(p *analysis.Pass, f check.Finding) {
	p.Report(analysis.Diagnostic{
		Pos:      f.Span.Lo,
		End:      f.Span.Hi,
		Category: f.Rule.String(),
		Message:  f.Message,
		Related: []analysis.RelatedInformation{{
			Pos:     f.NoteSpan.Lo,
			End:     f.NoteSpan.Hi,
			Message: f.Note,
		}},
	})
}

// Findings reports a slice of findings in order.
func Findings(p *analysis.Pass, fs []check.Finding) {
	for _, f := range fs {
		Finding(p, f)
	}
}
