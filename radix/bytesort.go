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

// maxWidth is the widest primitive key in bytes.
const maxWidth = 8

// sortBytes runs one stable counting pass per byte of the width-byte
// unsigned key returned by bits, least significant byte first, moving the
// elements back and forth between data and buf. It reports whether the
// result ended up in buf, which is the case for odd widths.
func sortBytes[E any](data, buf []E, width int, bits func(E) uint64) bool {
	n := len(data)
	switch {
	case n <= maxLen8:
		return bytePasses[uint8](data, buf, width, bits)
	case n <= maxLen16:
		return bytePasses[uint16](data, buf, width, bits)
	case uint64(n) <= maxLen32:
		return bytePasses[uint32](data, buf, width, bits)
	default:
		return bytePasses[uint64](data, buf, width, bits)
	}
}

// bytePasses builds all width histograms in a single traversal, then
// scatters once per byte. Each scatter is stable, and the passes run from
// the least to the most significant byte, so elements that tie on the
// higher bytes keep the order the lower passes gave them.
func bytePasses[C counter, E any](data, buf []E, width int, bits func(E) uint64) bool {
	var count [maxWidth][256]C
	hist := count[:width]

	for i := range data {
		u := bits(data[i])
		for p := range hist {
			hist[p][uint8(u>>(8*p))]++
		}
	}

	for p := range hist {
		var offset C
		for b := range hist[p] {
			c := hist[p][b]
			hist[p][b] = offset
			offset += c
		}
	}

	src, dst := data, buf
	for p := range hist {
		shift := uint(8 * p)
		offs := &hist[p]
		for i := range src {
			d := uint8(bits(src[i]) >> shift)
			dst[offs[d]] = src[i]
			offs[d]++
		}
		src, dst = dst, src
	}
	return width%2 == 1
}
