// Copyright 2025 go-highway Authors
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

package radix

import (
	"os"
	"strconv"
)

// Environment variables read once at startup into DefaultSelector.
const (
	EnvNoRadix   = "RADIX_NO_RADIX"
	EnvMinLen    = "RADIX_MIN_LEN"
	EnvMaxPasses = "RADIX_MAX_PASSES"
)

// NoRadixEnv checks if the RADIX_NO_RADIX environment variable is set.
func NoRadixEnv() bool {
	val := os.Getenv(EnvNoRadix)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// intEnv returns the non-negative integer value of name. Unset or
// malformed values are ignored.
func intEnv(name string) (int, bool) {
	val := os.Getenv(name)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func selectorFromEnv() Selector {
	s := Selector{
		MinRadixLen: DefaultMinRadixLen,
		MaxPasses:   DefaultMaxPasses,
		Disabled:    NoRadixEnv(),
	}
	if n, ok := intEnv(EnvMinLen); ok {
		s.MinRadixLen = n
	}
	if n, ok := intEnv(EnvMaxPasses); ok {
		s.MaxPasses = n
	}
	return s
}
