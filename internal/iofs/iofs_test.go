package iofs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/pubdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	// second call finds everything in place
	for range 2 {
		require.NoError(t, EnsureDirs(home))
	}

	for _, v := range []string{
		config.ConfigDir(home),
		config.DataDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureDirs(home))
	require.NoError(t, EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))
	assert.Contains(t, ConfigYAML, "publications_num")

	// user edits survive
	custom := "database:\n  driver: postgres\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(home))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

// TestWriteSchema verifies statements are separated by
// an empty line.
func TestWriteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "schema.sql")
	stmts := []string{
		"CREATE TABLE a (id INTEGER)",
		"CREATE TABLE b (id INTEGER)",
	}

	err := WriteSchema(path, stmts)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE a (id INTEGER);\n\nCREATE TABLE b (id INTEGER);\n\n",
		string(content))

	// empty schema gives an empty file
	err = WriteSchema(path, nil)
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

// TestWriteJSON verifies the output is indented and keeps
// non-ASCII characters.
func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	data := []map[string]any{
		{"publication_id": 6, "publication": "Über die Quantenmechanik"},
	}

	err := WriteJSON(path, data)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Über die Quantenmechanik")
	assert.Contains(t, string(content), "\n ",
		"JSON should be indented")

	var res []map[string]any
	require.NoError(t, json.Unmarshal(content, &res))
	assert.Len(t, res, 1)
}

func TestWriteJSON_KeepsHTMLCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	text := "Über <b> & café"
	err := WriteJSON(path, []map[string]any{{"publication": text}})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"Über <b> & café"`)
	assert.NotContains(t, string(content), `\u003c`)
	assert.NotContains(t, string(content), `\u0026`)

	var res []map[string]any
	require.NoError(t, json.Unmarshal(content, &res))
	assert.Equal(t, text, res[0]["publication"])
}

// TestWriteJSON_BadPath verifies write errors are reported.
func TestWriteJSON_BadPath(t *testing.T) {
	dir := t.TempDir()
	// a file in place of a directory
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteJSON(filepath.Join(blocker, "sample.json"), []int{1})
	assert.Error(t, err)
}
