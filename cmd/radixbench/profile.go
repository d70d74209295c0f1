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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/ajroetker/go-radix/radix"
)

// Algorithm names accepted in profiles and on the command line.
const (
	algRadix      = "radix"
	algLinear     = "linear"
	algComparison = "comparison"
)

var allAlgorithms = []string{algRadix, algLinear, algComparison}

// Profile describes one benchmark run. It can be loaded from a TOML file
// and is then overridden by explicitly set flags.
type Profile struct {
	Seed       uint64        `toml:"seed"`
	Multiplier int           `toml:"multiplier"`
	MinSize    int           `toml:"min_size"`
	MaxSize    int           `toml:"max_size"`
	MinTime    time.Duration `toml:"min_time"`
	Shapes     []string      `toml:"shapes"`
	Algorithms []string      `toml:"algorithms"`
	Verify     bool          `toml:"verify"`
	Chart      string        `toml:"chart"`

	// Selector thresholds used by the linear algorithm.
	MinRadixLen int  `toml:"min_radix_len"`
	MaxPasses   int  `toml:"max_passes"`
	NoRadix     bool `toml:"no_radix"`
}

// defaultProfile runs sizes from 4 to 2<<15 growing by 4x.
func defaultProfile() Profile {
	return Profile{
		Seed:        77342348,
		Multiplier:  4,
		MinSize:     4,
		MaxSize:     2 << 15,
		MinTime:     100 * time.Millisecond,
		Shapes:      []string{"int32", "pair-bool-float32", "int64-payload64"},
		Algorithms:  allAlgorithms,
		Verify:      true,
		MinRadixLen: radix.DefaultSelector.MinRadixLen,
		MaxPasses:   radix.DefaultSelector.MaxPasses,
		NoRadix:     radix.DefaultSelector.Disabled,
	}
}

// loadProfile decodes path over the defaults. Keys missing from the file
// keep their default values.
func loadProfile(path string) (Profile, error) {
	p := defaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile: %w", err)
	}
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return p, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return p, fmt.Errorf("profile %s: unknown keys %v", path, undecoded)
	}
	return p, nil
}

// validate checks the profile and normalizes its lists.
func (p *Profile) validate() error {
	if p.Multiplier < 2 {
		return fmt.Errorf("multiplier must be at least 2, got %d", p.Multiplier)
	}
	if p.MinSize < 1 || p.MaxSize < p.MinSize {
		return fmt.Errorf("invalid size range [%d, %d]", p.MinSize, p.MaxSize)
	}
	if p.MinTime < 0 {
		return fmt.Errorf("min_time must not be negative, got %s", p.MinTime)
	}

	p.Shapes = lo.Uniq(p.Shapes)
	if len(p.Shapes) == 0 {
		return fmt.Errorf("no shapes selected")
	}
	for _, name := range p.Shapes {
		if _, ok := findShape(name); !ok {
			return fmt.Errorf("unknown shape %q (available: %v)", name, shapeNames())
		}
	}

	p.Algorithms = lo.Uniq(p.Algorithms)
	if len(p.Algorithms) == 0 {
		return fmt.Errorf("no algorithms selected")
	}
	for _, a := range p.Algorithms {
		if !lo.Contains(allAlgorithms, a) {
			return fmt.Errorf("unknown algorithm %q (available: %v)", a, allAlgorithms)
		}
	}
	return nil
}

// sizes returns MinSize, MinSize*Multiplier, ... up to MaxSize.
func (p Profile) sizes() []int {
	var out []int
	for n := p.MinSize; n <= p.MaxSize; n *= p.Multiplier {
		out = append(out, n)
	}
	return out
}

func (p Profile) selector() radix.Selector {
	return radix.Selector{MinRadixLen: p.MinRadixLen, MaxPasses: p.MaxPasses, Disabled: p.NoRadix}
}
