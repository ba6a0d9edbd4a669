// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Title string
	Pages int
	Tags  []string
}

func TestBytesRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "artifact.bin")
	require.NoError(t, WriteBytes([]byte("payload"), target))

	got, err := ReadBytes(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestWriteBytes_String(t *testing.T) {
	target := filepath.Join(t.TempDir(), "artifact.txt")
	require.NoError(t, WriteBytes("payload", target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestWriteBytes_RejectsRichTypes(t *testing.T) {
	target := filepath.Join(t.TempDir(), "artifact.bin")
	err := WriteBytes(report{Title: "x"}, target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WithWriter")
}

func TestGobRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.gob")
	want := report{Title: "Q3", Pages: 12, Tags: []string{"draft", "internal"}}

	require.NoError(t, GobWriter[report]()(want, target))

	got, err := GobReader[report]()(target)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGobWriter_WrongArtifactType(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.gob")
	err := GobWriter[report]()("not a report", target)
	assert.Error(t, err)
}

func TestGobReader_MissingFile(t *testing.T) {
	_, err := GobReader[report]()(filepath.Join(t.TempDir(), "none.gob"))
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.json")
	want := report{Title: "Q3", Pages: 12, Tags: []string{"draft"}}

	require.NoError(t, JSONWriter[report]()(want, target))

	got, err := JSONReader[report]()(target)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestYAMLRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.yaml")
	want := report{Title: "Q3", Pages: 12, Tags: []string{"draft"}}

	require.NoError(t, YAMLWriter[report]()(want, target))

	got, err := YAMLReader[report]()(target)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONPath(t *testing.T) {
	src := filepath.Join(t.TempDir(), "doc.json")
	doc := `{"config":{"region":"us-east-1","retries":3},"items":[{"name":"a"},{"name":"b"}]}`
	require.NoError(t, os.WriteFile(src, []byte(doc), 0o644))

	val, err := JSONPath("config.region")(src)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", val)

	names, err := JSONPath("items.#.name")(src)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, names)
}

func TestJSONPath_MissingPath(t *testing.T) {
	src := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"a":1}`), 0o644))

	_, err := JSONPath("b.c")(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestJSONPath_InvalidDocument(t *testing.T) {
	src := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(src, []byte(`{not json`), 0o644))

	_, err := JSONPath("a")(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
