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

package gclplugin

import suspfmt "fillmore-labs.com/suspfmt/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Assign enables the suspicious-assignment check.
	Assign *bool `json:"assign,omitzero"`
	// Else enables the suspicious-else checks.
	Else *bool `json:"else,omitzero"`
}

// Options converts [Settings] into a list of [suspfmt.Option] for the suspfmt analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []suspfmt.Option {
	var opts []suspfmt.Option

	opts = appendOption(opts, s.Assign, suspfmt.WithAssign)
	opts = appendOption(opts, s.Else, suspfmt.WithElse)

	return opts
}

// appendOption appends a non-nil setting to a [suspfmt.Option] list.
func appendOption[T any](opts []suspfmt.Option, value *T, constructor func(T) suspfmt.Option) []suspfmt.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
