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
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajroetker/go-radix/internal/workerpool"
	"github.com/ajroetker/go-radix/radix"
)

func testEnv(t *testing.T, p Profile) *benchEnv {
	t.Helper()
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	return &benchEnv{profile: p, pool: pool, log: zap.NewNop()}
}

func smallProfile() Profile {
	p := defaultProfile()
	p.MinSize = 1
	p.MaxSize = 1000
	p.Multiplier = 10
	p.MinTime = 0
	p.Shapes = shapeNames()
	return p
}

func TestEveryShapeSortsAndVerifies(t *testing.T) {
	p := smallProfile()
	require.NoError(t, p.validate())
	env := testEnv(t, p)

	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			for _, n := range p.sizes() {
				res, err := s.run(env, n)
				require.NoError(t, err, "n=%d", n)
				require.Len(t, res, len(allAlgorithms))
				for i, r := range res {
					assert.Equal(t, allAlgorithms[i], r.Algorithm)
					assert.Equal(t, n, r.N)
					assert.Equal(t, s.passes, r.Passes)
					assert.GreaterOrEqual(t, r.Reps, 1)
				}
			}
		})
	}
}

func TestShapePasses(t *testing.T) {
	want := map[string]int{
		"int8":                    2,
		"int32":                   5,
		"int64":                   9,
		"bool":                    2,
		"pair-bool-float32":       7,
		"tuple-int64-int64":       18,
		"tuple-int32-int32-int64": 19,
		"array-int64-4":           36,
		"int64-payload64":         9,
	}
	for name, passes := range want {
		s, ok := findShape(name)
		require.True(t, ok, name)
		assert.Equal(t, passes, s.passes, name)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := func(r *rand.Rand) uint64 { return r.Uint64() }
	pool := workerpool.New(8)
	defer pool.Close()
	single := workerpool.New(1)
	defer single.Close()

	n := 3*genChunk + 17
	a := generate(pool, 42, n, gen)
	b := generate(single, 42, n, gen)
	c := generate(pool, 43, n, gen)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCheckPermutation(t *testing.T) {
	key := radix.Identity[int32]()
	ref := []int32{3, 1, 2}

	assert.NoError(t, checkPermutation(ref, []int32{1, 2, 3}, key))
	assert.Error(t, checkPermutation(ref, []int32{1, 2, 2}, key))
	assert.Error(t, checkPermutation(ref, []int32{1, 2}, key))
}

func TestMeasure(t *testing.T) {
	calls := 0
	last, _, reps := measure(0, func() bool {
		calls++
		return true
	})
	assert.True(t, last)
	assert.Equal(t, 1, reps)
	assert.Equal(t, 1, calls)
}

func TestRunAllStopsOnCancel(t *testing.T) {
	p := smallProfile()
	require.NoError(t, p.validate())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runAll(ctx, testEnv(t, p))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res)
}

func TestWriteTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTable(&out, []result{
		{Shape: "int32", N: 100, Passes: 5, Algorithm: algRadix, Reps: 10, NsPerOp: 500},
	}))
	assert.Contains(t, out.String(), "ALGORITHM")
	assert.Contains(t, out.String(), "int32")
	assert.Contains(t, out.String(), "5.00")
}

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.html")
	results := []result{
		{Shape: "int32", N: 4, Passes: 5, Algorithm: algRadix, Reps: 1, NsPerOp: 40},
		{Shape: "int32", N: 16, Passes: 5, Algorithm: algRadix, Reps: 1, NsPerOp: 80},
		{Shape: "bool", N: 4, Passes: 2, Algorithm: algComparison, Reps: 1, NsPerOp: 12},
	}
	require.NoError(t, writeChart(path, results, []int{4, 16}, []string{algRadix, algComparison}))

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "int32")
	assert.Contains(t, string(html), "bool")
}
