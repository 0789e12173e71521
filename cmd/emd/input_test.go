package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	got, err := parseList("left", " 1, 0.5 ,0,2e-1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0, 0.2}, got)

	got, err = parseList("left", "  ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseList("right", "1,x")
	require.ErrorIs(t, err, errInput)
	assert.Contains(t, err.Error(), "-right entry 1")

	_, err = parseList("left", "1,,2")
	assert.ErrorIs(t, err, errInput)
}

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument([]byte(`{"left":[1,0,0],"right":[0,0,1]}`))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, doc.Left)
	assert.Equal(t, []float64{0, 0, 1}, doc.Right)

	doc, err = decodeDocument([]byte(`{"left":[0.5]}`))
	require.NoError(t, err)
	assert.Equal(t, []float64{}, doc.Right)

	_, err = decodeDocument([]byte(`{"left":[1,`))
	assert.ErrorIs(t, err, errInput)

	_, err = decodeDocument([]byte(`{"left":"1,0"}`))
	assert.ErrorIs(t, err, errInput)
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "masses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"left":[1],"right":[0,1]}`), 0o600))

	doc, err := loadInput(path, "", "")
	require.NoError(t, err)
	assert.Equal(t, document{Left: []float64{1}, Right: []float64{0, 1}}, doc)

	doc, err = loadInput("", "1,0", "0,1")
	require.NoError(t, err)
	assert.Equal(t, document{Left: []float64{1, 0}, Right: []float64{0, 1}}, doc)

	_, err = loadInput(path, "1", "")
	assert.ErrorIs(t, err, errInput)

	_, err = loadInput(filepath.Join(dir, "missing.json"), "", "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
