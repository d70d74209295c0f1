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

// Thresholds for picking the histogram counter width.
const (
	maxLen8  = 1 << 8
	maxLen16 = 1 << 16
	maxLen32 = 1 << 32
)

// CountingSort performs one stable counting sort pass: every element of
// src is moved into dst, ordered by the byte digit returns for it.
// Elements with equal digits keep their relative order.
//
// dst must hold at least len(src) elements and must not overlap src.
func CountingSort[E any](src, dst []E, digit func(E) uint8) {
	n := len(src)
	if n == 0 {
		return
	}
	dst = dst[:n]

	switch {
	case n <= maxLen8:
		countingPass[uint8](src, dst, digit)
	case n <= maxLen16:
		countingPass[uint16](src, dst, digit)
	case uint64(n) <= maxLen32:
		countingPass[uint32](src, dst, digit)
	default:
		countingPass[uint64](src, dst, digit)
	}
}

// CountingSortBytes is CountingSort keyed by the elements themselves.
// Signed bytes are ordered numerically.
func CountingSortBytes[K Bytes](src, dst []K) {
	var flip uint8
	if isSigned[K]() {
		flip = 0x80
	}
	CountingSort(src, dst, func(k K) uint8 {
		return uint8(k) ^ flip
	})
}

// countingPass is one histogram, prefix sum and scatter with counters
// of type C. Counters wrap modulo their width; every offset that is read
// back is below len(src), so a wrapped count of exactly 2^8 or 2^16 never
// misplaces an element.
func countingPass[C counter, E any](src, dst []E, digit func(E) uint8) {
	var count [256]C
	for i := range src {
		count[digit(src[i])]++
	}

	var offset C
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for i := range src {
		d := digit(src[i])
		dst[count[d]] = src[i]
		count[d]++
	}
}
