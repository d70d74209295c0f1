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
	"cmp"
	"slices"
)

// Key describes how elements of type E are ordered: an ordered list of
// primitive fields, most significant first, each with an extractor that
// yields its order-preserving unsigned image.
//
// Keys are built once with Bool, Of, Rune, Identity, Pair, Tuple and
// Array, and may be reused across calls and goroutines. The pass count
// used by LinearSort is computed when the key is built.
type Key[E any] struct {
	fields  []field[E]
	passes  int
	compare func(a, b E) int
}

type field[E any] struct {
	Field
	bits func(E) uint64
}

// sort sorts data by this single field, reporting whether the result
// landed in buf.
func (f *field[E]) sort(data, buf []E) bool {
	if f.Kind == KindBool {
		return partitionBools(data, buf, f.bits)
	}
	return sortBytes(data, buf, f.Width, f.bits)
}

func newKey[E any](fields []field[E], compare func(a, b E) int) Key[E] {
	passes := 0
	for _, f := range fields {
		passes += f.Passes()
	}
	return Key[E]{fields: fields, passes: passes, compare: compare}
}

// Bool orders elements by a boolean key, false before true.
func Bool[E any](extract func(E) bool) Key[E] {
	return newKey(
		[]field[E]{{
			Field: Field{Width: 1, Kind: KindBool},
			bits:  func(e E) uint64 { return UnsignedBool(extract(e)) },
		}},
		func(a, b E) int {
			x, y := extract(a), extract(b)
			switch {
			case x == y:
				return 0
			case y:
				return -1
			default:
				return 1
			}
		},
	)
}

// Of orders elements by a primitive numeric key in its natural order.
// int, uint and uintptr keys use the platform width.
func Of[E any, K Scalar](extract func(E) K) Key[E] {
	f := fieldOf[K]()
	var bits func(E) uint64
	switch {
	case f.Kind == KindFloat && f.Width == 4:
		bits = func(e E) uint64 { return uint64(sortableFloat32(float32(extract(e)))) }
	case f.Kind == KindFloat:
		bits = func(e E) uint64 { return sortableFloat64(float64(extract(e))) }
	case f.Kind == KindSigned:
		width := f.Width
		bits = func(e E) uint64 { return flipSign(uint64(extract(e)), width) }
	default:
		bits = func(e E) uint64 { return uint64(extract(e)) }
	}
	return newKey(
		[]field[E]{{Field: f, bits: bits}},
		func(a, b E) int { return cmp.Compare(extract(a), extract(b)) },
	)
}

// Rune orders elements by a 32-bit character code unit, compared as an
// unsigned value.
func Rune[E any](extract func(E) rune) Key[E] {
	unit := func(e E) uint32 { return uint32(extract(e)) }
	return newKey(
		[]field[E]{{
			Field: Field{Width: 4, Kind: KindUnsigned},
			bits:  func(e E) uint64 { return uint64(unit(e)) },
		}},
		func(a, b E) int { return cmp.Compare(unit(a), unit(b)) },
	)
}

// Identity orders primitive values by themselves.
func Identity[K Scalar]() Key[K] {
	return Of(func(k K) K { return k })
}

// Pair orders by first, then by second among elements equal on first.
func Pair[E any](first, second Key[E]) Key[E] {
	return Tuple(first, second)
}

// Tuple orders lexicographically by keys, the leftmost most significant.
// Nested composites are flattened into one schema.
func Tuple[E any](keys ...Key[E]) Key[E] {
	var fields []field[E]
	for _, k := range keys {
		fields = append(fields, k.fields...)
	}
	keys = slices.Clone(keys)
	return newKey(fields, func(a, b E) int {
		for _, k := range keys {
			if c := k.Compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
}

// Array orders by a fixed-size sequence of sub-keys, index 0 most
// significant. at(i) returns the key of element i of the sequence.
func Array[E any](size int, at func(i int) Key[E]) Key[E] {
	keys := make([]Key[E], size)
	for i := range keys {
		keys[i] = at(i)
	}
	return Tuple(keys...)
}

// Passes returns the estimated number of full traversals of the data a
// radix sort by k costs.
func (k Key[E]) Passes() int {
	return k.passes
}

// Schema returns the fields of k, most significant first.
func (k Key[E]) Schema() []Field {
	schema := make([]Field, len(k.fields))
	for i := range k.fields {
		schema[i] = k.fields[i].Field
	}
	return schema
}

// Compare orders a and b by the natural order of each field,
// lexicographically. A key without fields considers all elements equal.
func (k Key[E]) Compare(a, b E) int {
	if k.compare == nil {
		return 0
	}
	return k.compare(a, b)
}

// Less reports whether a orders before b.
func (k Key[E]) Less(a, b E) bool {
	return k.Compare(a, b) < 0
}
