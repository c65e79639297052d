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

package elseonly

// With the assign check disabled, only else formatting is flagged.

func mixed(a, b bool) {
	x := 0
	x =- 1
	_ = x

	if a {
	} else // want "this is an `else if` but the formatting hides it"
	if b {
	}

	if a {
	}; if b { // want "this looks like an `else if` but the `else` is missing"
	}
}
