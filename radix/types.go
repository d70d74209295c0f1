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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of primitive key types that map onto an unsigned
// integer of the same width.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Bytes is the set of one-byte key types accepted by CountingSortBytes.
type Bytes interface {
	~uint8 | ~int8
}

// counter is the set of histogram counter types. The narrowest counter
// that can index every element is picked per call.
type counter interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Kind tells how a field's raw value is mapped to its unsigned image.
type Kind uint8

const (
	// KindBool maps false to 0 and true to 1.
	KindBool Kind = iota

	// KindUnsigned is the identity mapping.
	KindUnsigned

	// KindSigned flips the sign bit.
	KindSigned

	// KindFloat flips the sign bit of positives and every bit of negatives.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Field is one entry of a key schema: a primitive sub-key of Width bytes.
// Bool fields have Width 1.
type Field struct {
	Width int
	Kind  Kind
}

// Passes returns the number of full traversals sorting by f costs: one
// histogram traversal plus one scatter per byte.
func (f Field) Passes() int {
	return f.Width + 1
}

func (f Field) String() string {
	if f.Kind == KindBool {
		return "bool"
	}
	return fmt.Sprintf("%s%d", f.Kind, f.Width*8)
}
