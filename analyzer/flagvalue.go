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
	"strconv"

	"fillmore-labs.com/suspfmt/internal/config"
)

// boolValue adapts a single flag of a [config.BitMask] to [flag.Value].
type boolValue[F ~uint8] struct {
	flags *config.BitMask[F]
	flag  F
}

// Set implements [flag.Value].
func (v boolValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.flags.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v boolValue[_]) String() string {
	if v.flags == nil {
		return "false"
	}

	return strconv.FormatBool(v.flags.Enabled(v.flag))
}

// Get implements [flag.Getter].
func (v boolValue[_]) Get() any {
	if v.flags == nil {
		return false
	}

	return v.flags.Enabled(v.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (v boolValue[_]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
