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
	"reflect"
	"slices"
	"sync"
)

// RadixSort stably sorts data by key using LSD radix sort, with buf as
// the only scratch space. It reports where the sorted elements are: false
// means data, true means buf[:len(data)]. The contents of the other slice
// are unspecified afterwards.
//
// buf must hold at least len(data) elements and must not overlap data.
// An empty data is left untouched and reports false.
func RadixSort[E any](data, buf []E, key Key[E]) bool {
	if len(data) == 0 {
		return false
	}
	return key.sort(data, buf[:len(data)])
}

// RadixSortScalars is RadixSort with the values themselves as the key.
func RadixSortScalars[K Scalar](data, buf []K) bool {
	return RadixSort(data, buf, identityKey[K]())
}

// sort applies one stable sort per field, least significant field first.
// inBuf tracks which slice holds the live elements; a field whose sort
// lands in its destination flips it.
func (k Key[E]) sort(data, buf []E) bool {
	inBuf := false
	for i := len(k.fields) - 1; i >= 0; i-- {
		src, dst := data, buf
		if inBuf {
			src, dst = buf, data
		}
		if k.fields[i].sort(src, dst) {
			inBuf = !inBuf
		}
	}
	return inBuf
}

// Result returns the slice that holds the sorted elements, given the flag
// returned by RadixSort or LinearSort.
func Result[E any](data, buf []E, inBuf bool) []E {
	if inBuf {
		return buf[:len(data)]
	}
	return data
}

// IsSorted reports whether data is in ascending order by key.
func IsSorted[E any](data []E, key Key[E]) bool {
	return slices.IsSortedFunc(data, key.Compare)
}

// identityKeys caches one identity key per scalar type, so the Scalars
// entry points build their key once per type instead of once per call.
var identityKeys sync.Map

func identityKey[K Scalar]() Key[K] {
	t := reflect.TypeFor[K]()
	if k, ok := identityKeys.Load(t); ok {
		return k.(Key[K])
	}
	k, _ := identityKeys.LoadOrStore(t, Identity[K]())
	return k.(Key[K])
}
