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
	"math"
	"reflect"
	"unsafe"
)

// Unsigned maps k to an unsigned integer of the same width, zero-extended
// to 64 bits, such that unsigned order matches the natural order of K.
//
//   - unsigned integers: identity
//   - signed integers: the sign bit is flipped, so the most negative value
//     maps to 0 and the most positive to the maximum
//   - floats: positives get the sign bit flipped, negatives get every bit
//     flipped; -Inf < finite values < +Inf and -0 sorts before +0
//
// The position of NaN relative to other values is unspecified.
func Unsigned[K Scalar](k K) uint64 {
	f := fieldOf[K]()
	switch f.Kind {
	case KindFloat:
		if f.Width == 4 {
			return uint64(sortableFloat32(float32(k)))
		}
		return sortableFloat64(float64(k))
	case KindSigned:
		return flipSign(uint64(k), f.Width)
	}
	return uint64(k)
}

// UnsignedBool maps false to 0 and true to 1.
func UnsignedBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// fieldOf describes the primitive type K as a schema field. Named types
// are classified by their underlying kind.
func fieldOf[K Scalar]() Field {
	var zero K
	width := int(unsafe.Sizeof(zero))
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Float32, reflect.Float64:
		return Field{Width: width, Kind: KindFloat}
	}
	if isSigned[K]() {
		return Field{Width: width, Kind: KindSigned}
	}
	return Field{Width: width, Kind: KindUnsigned}
}

// isSigned reports whether decrementing zero goes negative.
func isSigned[K Scalar]() bool {
	var x K
	x--
	return x < 0
}

// flipSign truncates the sign-extended value u to width bytes and flips
// the top bit.
func flipSign(u uint64, width int) uint64 {
	bits := uint(width) * 8
	return (u ^ 1<<(bits-1)) & (1<<bits - 1)
}

// sortableFloat32 transforms float bits to sortable order.
// Positive floats: flip sign bit. Negative floats: flip all bits.
func sortableFloat32(f float32) uint32 {
	u := math.Float32bits(f)
	return u ^ (uint32(int32(u)>>31) | 0x80000000)
}

func sortableFloat64(f float64) uint64 {
	u := math.Float64bits(f)
	return u ^ (uint64(int64(u)>>63) | 0x8000000000000000)
}
