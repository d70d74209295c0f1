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

// partitionBools is a counting pass with two buckets: false keys go to the
// front of buf, true keys after them, both in their original order. The
// result always lands in buf.
func partitionBools[E any](data, buf []E, bits func(E) uint64) bool {
	falses := 0
	for i := range data {
		if bits(data[i]) == 0 {
			falses++
		}
	}

	f, t := 0, falses
	for i := range data {
		if bits(data[i]) == 0 {
			buf[f] = data[i]
			f++
		} else {
			buf[t] = data[i]
			t++
		}
	}
	return true
}
