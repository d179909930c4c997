package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnippet(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	path, err := om.WriteSnippet("sub-1", "export default {}\n")
	require.NoError(t, err)
	assert.Equal(t, om.SnippetPath("sub-1"), path)
	assert.Equal(t, filepath.Join(om.BaseOutputDir, "sub-1", SnippetFileName), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export default {}\n", string(content))
}

func TestWriteSnippetOverwrites(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	_, err := om.WriteSnippet("sub-1", "first")
	require.NoError(t, err)
	path, err := om.WriteSnippet("sub-1", "second")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestGetDownloadURL(t *testing.T) {
	om := NewOutputManager("output")
	assert.Equal(t, "/api/v1/submissions/sub-1/snippet", om.GetDownloadURL("sub-1"))
}
