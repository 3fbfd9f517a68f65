package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	tests := map[string]string{
		"logo.png":            "logo.png",
		"my logo (1).jpg":     "my_logo__1_.jpg",
		"../../etc/passwd":    "passwd",
		"C:\\Users\\me\\a.png": "a.png",
		"..":                  "file",
		".hidden":             "hidden",
		"":                    "file",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeFilename(in), "input %q", in)
	}
}

func TestWriteFileExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")

	require.NoError(t, WriteFileExclusive(path, []byte("one")))
	err := WriteFileExclusive(path, []byte("two"))
	require.Error(t, err)
	assert.True(t, IsExist(err))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(b))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
