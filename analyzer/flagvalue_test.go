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

package analyzer_test

import (
	"flag"
	"io"
	"testing"

	. "fillmore-labs.com/suspfmt/analyzer"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{
			name: "DisableAssign",
			args: []string{"-assign=false"},
			flag: "assign",
			want: false,
		},
		{
			name: "DisableElseOff",
			args: []string{"-else=off"},
			flag: "else",
			want: false,
		},
		{
			name: "EnableGenerated",
			args: []string{"-generated"},
			flag: "generated",
			want: true,
		},
		{
			name: "DefaultAssign",
			args: nil,
			flag: "assign",
			want: true,
		},
		{
			name: "DefaultGenerated",
			args: nil,
			flag: "generated",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.Flags.Init(a.Name, flag.ContinueOnError)
			a.Flags.SetOutput(io.Discard)

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Can't parse %v: %v", tt.args, err)
			}

			value, ok := a.Flags.Lookup(tt.flag).Value.(flag.Getter)
			if !ok {
				t.Fatalf("Flag %q is not a flag.Getter", tt.flag)
			}

			if got := value.Get(); got != tt.want {
				t.Errorf("Got %v for flag %q with args %v, want %v", got, tt.flag, tt.args, tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init(a.Name, flag.ContinueOnError)
	a.Flags.SetOutput(io.Discard)

	if err := a.Flags.Parse([]string{"-assign=maybe"}); err == nil {
		t.Error("Got no error for an invalid boolean value")
	}
}
