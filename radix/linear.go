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

import "slices"

// Thresholds for choosing radix sort over comparison sort.
const (
	// DefaultMinRadixLen: inputs this size or smaller are comparison sorted.
	DefaultMinRadixLen = 512

	// DefaultMaxPasses: keys costing more passes than this are comparison sorted.
	DefaultMaxPasses = 10
)

// Algorithm is the sort LinearSort runs for a given input.
type Algorithm int

const (
	// Comparison is slices.SortFunc ordered by Key.Compare. It sorts in
	// place and is not stable.
	Comparison Algorithm = iota

	// Radix is RadixSort.
	Radix
)

func (a Algorithm) String() string {
	switch a {
	case Comparison:
		return "comparison"
	case Radix:
		return "radix"
	default:
		return "unknown"
	}
}

// Selector holds the cost model used by LinearSort. Every radix pass is
// two O(n) traversals plus a 256-bucket histogram; that fixed cost only
// pays off for inputs longer than MinRadixLen and keys of at most
// MaxPasses passes.
type Selector struct {
	MinRadixLen int
	MaxPasses   int

	// Disabled forces comparison sort regardless of size.
	Disabled bool
}

// DefaultSelector is used by LinearSort and LinearSortScalars. It starts
// from DefaultMinRadixLen and DefaultMaxPasses, overridden by the
// RADIX_NO_RADIX, RADIX_MIN_LEN and RADIX_MAX_PASSES environment
// variables.
var DefaultSelector = selectorFromEnv()

// Choose returns the algorithm for n elements and a key of the given
// pass count.
func (s Selector) Choose(n, passes int) Algorithm {
	if s.Disabled || n <= s.MinRadixLen || passes > s.MaxPasses {
		return Comparison
	}
	return Radix
}

// LinearSort sorts data by key with whichever of radix sort and
// comparison sort DefaultSelector picks. The result flag has the same
// meaning as for RadixSort; comparison sort always reports false.
func LinearSort[E any](data, buf []E, key Key[E]) bool {
	return LinearSortWith(DefaultSelector, data, buf, key)
}

// LinearSortScalars is LinearSort with the values themselves as the key.
func LinearSortScalars[K Scalar](data, buf []K) bool {
	return LinearSort(data, buf, identityKey[K]())
}

// LinearSortWith is LinearSort with an explicit selector.
func LinearSortWith[E any](s Selector, data, buf []E, key Key[E]) bool {
	if s.Choose(len(data), key.passes) == Radix {
		return RadixSort(data, buf, key)
	}
	if key.compare != nil {
		slices.SortFunc(data, key.compare)
	}
	return false
}
