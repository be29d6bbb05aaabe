package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetaroute/geom"
)

func TestParseCell_Valid(t *testing.T) {
	c, err := parseCell("5,4")
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{Row: 5, Col: 4}, c)
}

func TestParseCell_Malformed(t *testing.T) {
	_, err := parseCell("not-a-cell")
	assert.Error(t, err)
}

func TestReadGridFile_ParsesZeroOneRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("000\n010\n000\n"), 0o644))

	g, err := readGridFile(path)
	require.NoError(t, err)
	assert.True(t, g.Passable(0, 0))
	assert.False(t, g.Passable(1, 1))
	assert.True(t, g.Passable(2, 2))
}

func TestReadGridFile_MissingFile(t *testing.T) {
	_, err := readGridFile("/nonexistent/grid.txt")
	assert.Error(t, err)
}

func TestRun_FullPipelineWritesBinaryOutput(t *testing.T) {
	dir := t.TempDir()
	gridPath := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(gridPath, []byte("0000\n0000\n0000\n0000\n"), 0o644))
	outPath := filepath.Join(dir, "out.bin")

	code := run([]string{"-start", "0,0", "-goal", "3,3", "-out", outPath, gridPath})
	assert.Equal(t, exitSuccess, code)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_UnreadableInput(t *testing.T) {
	code := run([]string{"-start", "0,0", "-goal", "1,1", "/nonexistent/grid.txt"})
	assert.Equal(t, exitUnreadableInput, code)
}

func TestRun_InvalidEndpoint(t *testing.T) {
	dir := t.TempDir()
	gridPath := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(gridPath, []byte("00\n01\n"), 0o644))

	code := run([]string{"-start", "0,0", "-goal", "1,1", gridPath})
	assert.Equal(t, exitInvalidEndpoints, code)
}

func TestRun_InvalidParameters(t *testing.T) {
	dir := t.TempDir()
	gridPath := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(gridPath, []byte("0000\n0000\n0000\n0000\n"), 0o644))

	code := run([]string{"-start", "0,0", "-goal", "3,3", "-vmin", "200", "-vmax", "150", gridPath})
	assert.Equal(t, exitInvalidParameters, code)
}
