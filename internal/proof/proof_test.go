package proof

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "regdesk/pkg/domain-errors"
)

// pngHeader is a minimal valid PNG signature; DetectContentType only needs
// the first bytes.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}

var pdfHeader = []byte("%PDF-1.4\n%fake")

func TestCheck(t *testing.T) {
	t.Run("accepts png, jpeg and pdf", func(t *testing.T) {
		cases := []struct {
			data []byte
			ext  string
		}{
			{pngHeader, ".png"},
			{jpegHeader, ".jpg"},
			{pdfHeader, ".pdf"},
		}
		for _, tc := range cases {
			ext, err := Check(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.ext, ext)
		}
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		_, err := Check(nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("rejects text as unsupported media", func(t *testing.T) {
		_, err := Check([]byte("this is a plain text receipt"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnsupportedMedia))
	})

	t.Run("rejects oversized upload before sniffing", func(t *testing.T) {
		big := append(bytes.Clone(pngHeader), make([]byte, MaxSize)...)
		_, err := Check(big)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodePayloadTooLarge))
	})

	t.Run("accepts exactly 5 MiB", func(t *testing.T) {
		data := make([]byte, MaxSize)
		copy(data, pngHeader)
		_, err := Check(data)
		require.NoError(t, err)
	})
}

func TestStorageSave(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	ref, err := storage.Save(pngHeader)
	require.NoError(t, err)
	assert.True(t, filepath.Ext(ref) == ".png")

	stored, err := os.ReadFile(filepath.Join(storage.Dir(), ref))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	ref2, err := storage.Save(pngHeader)
	require.NoError(t, err)
	assert.NotEqual(t, ref, ref2, "each save gets a unique name")
}

func TestStorageSaveRejectsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir)
	require.NoError(t, err)

	_, err = storage.Save([]byte("nope"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not leave files behind")
}
