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

// Assignments that visually suggest a compound operator

func suspiciousAssignments(done bool, ch chan int) {
	a := 0
	a =- 42 // want "`=-` looks like `-=` but parses as `= -`"
	a =+ 1  // want "`=\\+` looks like `\\+=` but parses as `= \\+`"
	a =^ 7  // want "`=\\^` looks like `\\^=` but parses as `= \\^`"
	_ = a

	ok := true
	ok =! done // want "`=!` looks like `!=` but parses as `= !`"
	_ = ok

	v := 2
	p := &v
	v =* p // want "`=\\*` looks like `\\*=` but parses as `= \\*`"
	p =& v // want "`=&` looks like `&=` but parses as `= &`"
	_ = p

	b := 0
	b = -42 // a space disambiguates
	b -= 42
	b =
		-42 // a line break disambiguates, too
	_ = b

	c :=- 3 // short declarations have no compound form
	c =<- ch
	_ = c

	x, y := 1, 2
	x, y =- 1, 2 // only single assignments are inspected
	_, _ = x, y
}
