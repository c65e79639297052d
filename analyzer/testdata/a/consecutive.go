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

package a

// Consecutive ifs that read like a chain missing its else

func missingElse(a, b, c bool, ch chan int) {
	if a {
	}
	if b {
	}

	if a {
	}

	if b {
	}

	if a {
	}; if b { // want "this looks like an `else if` but the `else` is missing"
	}

	if a {
	}; if b { // want "this looks like an `else if` but the `else` is missing"
	}; if c { // want "this looks like an `else if` but the `else` is missing"
	}

	if a {
	} else {
	}; if b { // want "this looks like an `else if` but the `else` is missing"
	}

	switch {
	case a:
		if b {
		}; if c { // want "this looks like an `else if` but the `else` is missing"
		}
	}

	select {
	case <-ch:
		if a {
		}; if b { // want "this looks like an `else if` but the `else` is missing"
		}
	default:
	}
}
