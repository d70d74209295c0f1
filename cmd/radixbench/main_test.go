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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "out.html")
	out, err := execute(t,
		"--shapes", "int32,bool",
		"--max-size", "256",
		"--min-time", "0s",
		"--log-level", "error",
		"--chart", chart,
	)
	require.NoError(t, err)

	// Header plus 2 shapes x 4 sizes x 3 algorithms.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+2*4*3)
	assert.FileExists(t, chart)
}

func TestRootCommandProfileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
shapes = ["int8"]
algorithms = ["radix", "linear"]
max_size = 1024
min_time = "0s"
`), 0o644))

	out, err := execute(t, "--config", path, "--max-size", "16", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Sizes 4 and 16, two algorithms.
	assert.Len(t, lines, 1+2*2)
	assert.NotContains(t, out, algComparison)
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, "--shapes", "nope", "--log-level", "error")
	assert.ErrorContains(t, err, "unknown shape")

	_, err = execute(t, "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestShapesCommand(t *testing.T) {
	out, err := execute(t, "shapes")
	require.NoError(t, err)

	for _, name := range shapeNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "bool,float32")
	assert.Contains(t, out, "comparison")
	assert.Contains(t, out, "radix")
}
