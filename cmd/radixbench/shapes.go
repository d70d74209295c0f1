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
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-radix/internal/workerpool"
	"github.com/ajroetker/go-radix/radix"
)

// genChunk is the number of elements generated by one PRNG stream.
const genChunk = 4096

// shape is one element type and key combination the harness can sort.
type shape struct {
	name   string
	schema []radix.Field
	passes int
	run    func(env *benchEnv, n int) ([]result, error)
}

type pairBF struct {
	Flag  bool
	Value float32
}

type tuple2 struct {
	A, B int64
}

type tuple3 struct {
	A, B int32
	C    int64
}

type payload64 struct {
	Key     int64
	Payload [64]byte
}

const arrayLen = 4

var shapes = []shape{
	newShape("int8", radix.Identity[int8](), func(r *rand.Rand) int8 { return int8(r.Uint32()) }),
	newShape("int16", radix.Identity[int16](), func(r *rand.Rand) int16 { return int16(r.Uint32()) }),
	newShape("int32", radix.Identity[int32](), func(r *rand.Rand) int32 { return int32(r.Uint32()) }),
	newShape("int64", radix.Identity[int64](), func(r *rand.Rand) int64 { return int64(r.Uint64()) }),
	newShape("bool", radix.Bool(func(b bool) bool { return b }), func(r *rand.Rand) bool { return r.IntN(2) == 1 }),
	newShape("pair-bool-float32",
		radix.Pair(
			radix.Bool(func(p pairBF) bool { return p.Flag }),
			radix.Of(func(p pairBF) float32 { return p.Value }),
		),
		func(r *rand.Rand) pairBF {
			return pairBF{Flag: r.IntN(2) == 1, Value: r.Float32()*2 - 1}
		}),
	newShape("tuple-int64-int64",
		radix.Pair(
			radix.Of(func(t tuple2) int64 { return t.A }),
			radix.Of(func(t tuple2) int64 { return t.B }),
		),
		func(r *rand.Rand) tuple2 { return tuple2{A: int64(r.Uint64()), B: int64(r.Uint64())} }),
	newShape("tuple-int32-int32-int64",
		radix.Tuple(
			radix.Of(func(t tuple3) int32 { return t.A }),
			radix.Of(func(t tuple3) int32 { return t.B }),
			radix.Of(func(t tuple3) int64 { return t.C }),
		),
		func(r *rand.Rand) tuple3 {
			return tuple3{A: int32(r.Uint32()), B: int32(r.Uint32()), C: int64(r.Uint64())}
		}),
	newShape(fmt.Sprintf("array-int64-%d", arrayLen),
		radix.Array(arrayLen, func(i int) radix.Key[[arrayLen]int64] {
			return radix.Of(func(a [arrayLen]int64) int64 { return a[i] })
		}),
		func(r *rand.Rand) [arrayLen]int64 {
			var a [arrayLen]int64
			for i := range a {
				a[i] = int64(r.Uint64())
			}
			return a
		}),
	newShape("int64-payload64",
		radix.Of(func(p payload64) int64 { return p.Key }),
		func(r *rand.Rand) payload64 {
			p := payload64{Key: int64(r.Uint64())}
			p.Payload[0] = byte(p.Key)
			return p
		}),
}

func findShape(name string) (shape, bool) {
	return lo.Find(shapes, func(s shape) bool { return s.name == name })
}

func shapeNames() []string {
	return lo.Map(shapes, func(s shape, _ int) string { return s.name })
}

func schemaString(fields []radix.Field) string {
	return strings.Join(lo.Map(fields, func(f radix.Field, _ int) string { return f.String() }), ",")
}

// newShape binds an element generator and a key into a runnable shape.
func newShape[E any](name string, key radix.Key[E], gen func(r *rand.Rand) E) shape {
	return shape{
		name:   name,
		schema: key.Schema(),
		passes: key.Passes(),
		run: func(env *benchEnv, n int) ([]result, error) {
			ref := generate(env.pool, env.profile.Seed, n, gen)
			data := make([]E, n)
			buf := make([]E, n)

			out := make([]result, 0, len(env.profile.Algorithms))
			for _, alg := range env.profile.Algorithms {
				sortFn := sorterFor(alg, env.profile.selector(), key)
				inBuf, elapsed, reps := measure(env.profile.MinTime, func() bool {
					copy(data, ref)
					return sortFn(data, buf)
				})
				res := result{
					Shape:     name,
					N:         n,
					Passes:    key.Passes(),
					Algorithm: alg,
					Reps:      reps,
					NsPerOp:   float64(elapsed.Nanoseconds()) / float64(reps),
				}
				if env.profile.Verify {
					sorted := radix.Result(data, buf, inBuf)
					if !radix.IsSorted(sorted, key) {
						return out, fmt.Errorf("%s n=%d %s: output is not sorted", name, n, alg)
					}
					if err := checkPermutation(ref, sorted, key); err != nil {
						return out, fmt.Errorf("%s n=%d %s: %w", name, n, alg, err)
					}
				}
				out = append(out, res)
			}
			return out, nil
		},
	}
}

// generate fills n elements in parallel. Each chunk draws from its own
// PCG stream so the output only depends on seed and n.
func generate[E any](pool *workerpool.Pool, seed uint64, n int, gen func(r *rand.Rand) E) []E {
	data := make([]E, n)
	pool.Chunks(n, genChunk, func(chunk, start, end int) {
		r := rand.New(rand.NewPCG(seed, uint64(chunk)))
		for i := start; i < end; i++ {
			data[i] = gen(r)
		}
	})
	return data
}

// sorterFor returns a function sorting data with buf as scratch and
// reporting whether the result is in buf.
func sorterFor[E any](alg string, sel radix.Selector, key radix.Key[E]) func(data, buf []E) bool {
	switch alg {
	case algRadix:
		return func(data, buf []E) bool { return radix.RadixSort(data, buf, key) }
	case algLinear:
		return func(data, buf []E) bool { return radix.LinearSortWith(sel, data, buf, key) }
	default:
		return func(data, _ []E) bool {
			slices.SortFunc(data, key.Compare)
			return false
		}
	}
}

// checkPermutation compares got against a stable reference sort of ref.
// Elements are compared by key, since comparison sorts are not stable.
func checkPermutation[E any](ref, got []E, key radix.Key[E]) error {
	want := slices.Clone(ref)
	slices.SortStableFunc(want, key.Compare)
	if len(want) != len(got) {
		return fmt.Errorf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if key.Compare(want[i], got[i]) != 0 {
			return fmt.Errorf("element %d differs from reference", i)
		}
	}
	return nil
}
