package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraphFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// triangle is K3: 3 nodes, label 0, fully connected.
const triangle = "3\n0\n0\n0\n3\n0 1\n0 2\n1 2\n"

// k4 is K4: 4 nodes, fully connected.
const k4 = "4\n0\n0\n0\n0\n6\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n"

func TestSearchSequentialCountsK3IntoK4(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraphFile(t, dir, "pattern.g", triangle)
	target := writeGraphFile(t, dir, "target.g", k4)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	count, _, err := search(pattern, target, "sequential", 1, 0, false, 0, 0, logger)
	require.NoError(t, err)
	assert.EqualValues(t, 24, count)
}

func TestSearchParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraphFile(t, dir, "pattern.g", triangle)
	target := writeGraphFile(t, dir, "target.g", k4)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	count, _, err := search(pattern, target, "parallel", 4, 0, false, 0, 0, logger)
	require.NoError(t, err)
	assert.EqualValues(t, 24, count)
}

func TestSearchWLSMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraphFile(t, dir, "pattern.g", triangle)
	target := writeGraphFile(t, dir, "target.g", k4)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	count, _, err := search(pattern, target, "wls", 4, 0, false, 1, 8, logger)
	require.NoError(t, err)
	assert.EqualValues(t, 24, count)
}

func TestSearchUnknownEngine(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraphFile(t, dir, "pattern.g", triangle)
	target := writeGraphFile(t, dir, "target.g", k4)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	_, _, err := search(pattern, target, "bogus", 1, 0, false, 0, 0, logger)
	assert.Error(t, err)
}

func TestSearchMissingPatternFile(t *testing.T) {
	dir := t.TempDir()
	target := writeGraphFile(t, dir, "target.g", k4)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	_, _, err := search(filepath.Join(dir, "missing.g"), target, "sequential", 1, 0, false, 0, 0, logger)
	assert.Error(t, err)
}

func TestRunRejectsMissingPositionalArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"only-one-arg"}))
}

func TestRunEndToEndViaFlags(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraphFile(t, dir, "pattern.g", triangle)
	target := writeGraphFile(t, dir, "target.g", k4)

	code := run([]string{"--engine", "sequential", pattern, target})
	assert.Equal(t, 0, code)
}

func TestRunLayersConfigFileUnderFlags(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraphFile(t, dir, "pattern.g", triangle)
	target := writeGraphFile(t, dir, "target.g", k4)
	cfgPath := writeGraphFile(t, dir, "subiso.yaml", "engine: sequential\n")

	code := run([]string{"--config", cfgPath, pattern, target})
	assert.Equal(t, 0, code)
}
