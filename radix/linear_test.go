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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var defaultSelector = Selector{MinRadixLen: DefaultMinRadixLen, MaxPasses: DefaultMaxPasses}

func TestSelectorChoose(t *testing.T) {
	tests := []struct {
		name   string
		s      Selector
		n      int
		passes int
		want   Algorithm
	}{
		{"empty", defaultSelector, 0, 2, Comparison},
		{"at_min_len", defaultSelector, 512, 9, Comparison},
		{"above_min_len", defaultSelector, 513, 9, Radix},
		{"at_max_passes", defaultSelector, 10000, 10, Radix},
		{"above_max_passes", defaultSelector, 10000, 11, Comparison},
		{"disabled", Selector{MinRadixLen: 0, MaxPasses: 100, Disabled: true}, 10000, 2, Comparison},
		{"zero_min_len", Selector{MinRadixLen: 0, MaxPasses: 10}, 1, 2, Radix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Choose(tt.n, tt.passes); got != tt.want {
				t.Errorf("Choose(%d, %d) = %s, want %s", tt.n, tt.passes, got, tt.want)
			}
		})
	}
}

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		a    Algorithm
		want string
	}{
		{Comparison, "comparison"},
		{Radix, "radix"},
		{Algorithm(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Algorithm(%d).String() = %q, want %q", int(tt.a), got, tt.want)
		}
	}
}

func TestLinearSortTuple(t *testing.T) {
	data := tripleData()
	want := slices.Clone(data)
	slices.SortFunc(want, tripleKey().Compare)

	buf := make([]triple, len(data))
	if LinearSortWith(defaultSelector, data, buf, tripleKey()) {
		t.Fatal("small inputs should be comparison sorted in place")
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("LinearSortWith mismatch (-want +got):\n%s", diff)
	}
}

// TestLinearSortSmallMatchesRadix checks that the comparison fallback
// below the length threshold yields the same values as the radix path.
func TestLinearSortSmallMatchesRadix(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for _, n := range []int{0, 1, 2, 100, 511, 512} {
		data := randomScalars[int32](r, n)
		viaRadix := slices.Clone(data)

		if LinearSortWith(defaultSelector, data, make([]int32, n), Identity[int32]()) {
			t.Errorf("n=%d: result reported in buf", n)
		}

		buf := make([]int32, n)
		radixResult := Result(viaRadix, buf, RadixSortScalars(viaRadix, buf))

		want := slices.Clone(data)
		slices.Sort(want)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("n=%d: LinearSortWith mismatch (-want +got):\n%s", n, diff)
		}
		if diff := cmp.Diff(data, radixResult); diff != "" {
			t.Errorf("n=%d: radix and comparison disagree (-comparison +radix):\n%s", n, diff)
		}
	}
}

func TestLinearSortLargeUsesRadix(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	data := randomScalars[uint8](r, 1000)
	want := slices.Clone(data)
	slices.Sort(want)

	buf := make([]uint8, len(data))
	if !LinearSortWith(defaultSelector, data, buf, Identity[uint8]()) {
		t.Fatal("a single byte pass should leave the result in buf")
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("LinearSortWith mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearSortManyPassesUsesComparison(t *testing.T) {
	type span struct {
		Start, End int64
	}
	r := rand.New(rand.NewPCG(15, 16))
	data := make([]span, 2000)
	for i := range data {
		data[i] = span{Start: r.Int64N(100), End: r.Int64N(1000)}
	}
	key := Pair(
		Of(func(s span) int64 { return s.Start }),
		Of(func(s span) int64 { return s.End }),
	)
	if key.Passes() != 18 {
		t.Fatalf("Passes() = %d, want 18", key.Passes())
	}

	buf := make([]span, len(data))
	if LinearSortWith(defaultSelector, data, buf, key) {
		t.Error("comparison sort reported result in buf")
	}
	if !IsSorted(data, key) {
		t.Error("data is not sorted")
	}
}

func TestLinearSortScalars(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 18))
	for _, n := range []int{0, 10, 512, 513, 5000} {
		data := randomScalars[float64](r, n)
		want := slices.Clone(data)
		slices.Sort(want)

		buf := make([]float64, n)
		got := Result(data, buf, LinearSortScalars(data, buf))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("n=%d: LinearSortScalars mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestLinearSortEmptyKey(t *testing.T) {
	data := []int{3, 1, 2}
	if LinearSortWith(defaultSelector, data, make([]int, 3), Tuple[int]()) {
		t.Error("empty key reported result in buf")
	}
	if diff := cmp.Diff([]int{3, 1, 2}, data); diff != "" {
		t.Errorf("empty key reordered data (-want +got):\n%s", diff)
	}
}
