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
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/suspfmt/internal/config"
)

// runOptions represent the configuration of a suspfmt analyzer instance.
type runOptions struct {
	// checks represents the checks to be enabled.
	checks config.BitMask[config.Checks]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Behavior]
}

// defaultRunOptions initializes a new runOptions instance with default
// values: both checks on, generated files skipped.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks: config.NewBitMask(config.AssignCheck, config.ElseCheck),
	}
}

// analyzer returns a suspfmt *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
}
