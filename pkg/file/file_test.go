package file_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rococo-gallery/forms/pkg/file"
)

var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF}
	pdfHeader  = []byte("%PDF-1.4\n")
)

func createFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := &http.Request{
		Method: "POST",
		Header: http.Header{"Content-Type": []string{writer.FormDataContentType()}},
		Body:   io.NopCloser(body),
	}
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestFromHeader(t *testing.T) {
	t.Parallel()

	t.Run("png", func(t *testing.T) {
		t.Parallel()
		meta, err := file.FromHeader(createFileHeader(t, "mona.png", pngHeader))
		require.NoError(t, err)
		assert.Equal(t, "image/png", meta.MIMEType)
		assert.Equal(t, int64(len(pngHeader)), meta.Size)
		assert.Equal(t, "mona.png", meta.Filename)
	})

	t.Run("jpeg", func(t *testing.T) {
		t.Parallel()
		meta, err := file.FromHeader(createFileHeader(t, "mona.jpg", jpegHeader))
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", meta.MIMEType)
	})

	t.Run("renamed pdf is detected by content", func(t *testing.T) {
		t.Parallel()
		meta, err := file.FromHeader(createFileHeader(t, "mona.png", pdfHeader))
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", meta.MIMEType)
	})

	t.Run("path components are stripped", func(t *testing.T) {
		t.Parallel()
		meta, err := file.FromHeader(createFileHeader(t, "../../etc/mona.png", pngHeader))
		require.NoError(t, err)
		assert.Equal(t, "mona.png", meta.Filename)
	})

	t.Run("nil header", func(t *testing.T) {
		t.Parallel()
		_, err := file.FromHeader(nil)
		assert.ErrorIs(t, err, file.ErrNilFileHeader)
	})
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads size and type", func(t *testing.T) {
		path := filepath.Join(dir, "image.png")
		content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 1024)...)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		meta, err := file.FromPath(path)
		require.NoError(t, err)
		assert.Equal(t, "image/png", meta.MIMEType)
		assert.Equal(t, int64(len(content)), meta.Size)
		assert.Equal(t, "image.png", meta.Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := file.FromPath(filepath.Join(dir, "missing.png"))
		assert.ErrorIs(t, err, file.ErrFailedToOpenFile)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := file.FromPath(dir)
		assert.ErrorIs(t, err, file.ErrIsDirectory)
	})
}

func TestDetectMIMEType(t *testing.T) {
	t.Run("drops parameters", func(t *testing.T) {
		mt, err := file.DetectMIMEType(strings.NewReader("plain text"))
		require.NoError(t, err)
		assert.Equal(t, "text/plain", mt)
	})

	t.Run("rewinds seekers", func(t *testing.T) {
		r := bytes.NewReader(pngHeader)
		_, err := file.DetectMIMEType(r)
		require.NoError(t, err)

		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, rest)
	})

	t.Run("empty content", func(t *testing.T) {
		mt, err := file.DetectMIMEType(bytes.NewReader(nil))
		require.NoError(t, err)
		assert.Equal(t, "text/plain", mt)
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"../../../etc/passwd":  "passwd",
		"C:\\Windows\\file.txt": "file.txt",
		"":                     "unnamed",
		"..":                   "unnamed",
		"a\x00b.png":           "ab.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, file.SanitizeFilename(in), in)
	}
}
