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

// Package config holds the flag enums and bitmask type configuring a
// suspfmt run. The enabled-check mask is the rule registry of the analyzer:
// each check is an independently registrable rule with an on/off state.
package config

// Checks represents the individual suspfmt checks.
type Checks uint8

const (
	// AssignCheck enables detection of suspicious assignment formatting
	// such as `a =- 1`.
	AssignCheck Checks = 1 << iota

	// ElseCheck enables detection of suspicious else formatting, both the
	// hidden `else if` and the missing-else shape.
	ElseCheck
)

// Behavior represents behavioral options independent of the checks.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated Behavior = 1 << iota
)
