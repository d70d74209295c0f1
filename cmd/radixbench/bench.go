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
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ajroetker/go-radix/internal/workerpool"
)

// benchEnv carries what every shape needs to run.
type benchEnv struct {
	profile Profile
	pool    *workerpool.Pool
	log     *zap.Logger
}

// result is one (shape, size, algorithm) measurement.
type result struct {
	Shape     string
	N         int
	Passes    int
	Algorithm string
	Reps      int
	NsPerOp   float64
}

// NsPerElem is the time per sorted element.
func (r result) NsPerElem() float64 {
	if r.N == 0 {
		return 0
	}
	return r.NsPerOp / float64(r.N)
}

// measure calls fn until minTime has elapsed, doubling the batch size each
// round, and returns the last fn result, the total time and the number of
// calls. fn runs at least once. Reported times include restoring the input.
func measure(minTime time.Duration, fn func() bool) (last bool, elapsed time.Duration, reps int) {
	batch := 1
	for {
		start := time.Now()
		for range batch {
			last = fn()
		}
		elapsed += time.Since(start)
		reps += batch
		if elapsed >= minTime {
			return last, elapsed, reps
		}
		batch *= 2
	}
}

// runAll measures every selected shape at every size. It stops at the
// first verification failure or when ctx is done.
func runAll(ctx context.Context, env *benchEnv) ([]result, error) {
	var all []result
	for _, name := range env.profile.Shapes {
		s, _ := findShape(name)
		for _, n := range env.profile.sizes() {
			if err := ctx.Err(); err != nil {
				return all, err
			}
			res, err := s.run(env, n)
			all = append(all, res...)
			if err != nil {
				return all, err
			}
			for _, r := range res {
				env.log.Debug("measured",
					zap.String("shape", r.Shape),
					zap.Int("n", r.N),
					zap.String("algorithm", r.Algorithm),
					zap.Int("reps", r.Reps),
					zap.Float64("ns_per_elem", r.NsPerElem()),
				)
			}
		}
		env.log.Info("shape done", zap.String("shape", s.name), zap.Int("passes", s.passes))
	}
	return all, nil
}
