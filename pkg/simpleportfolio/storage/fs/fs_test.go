package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/storage/fs"
)

func newTestBackend(t *testing.T) *fs.Backend {
	backend, err := fs.New(fs.Config{BaseDir: t.TempDir()})
	require.NoError(t, err)
	return backend
}

func TestFSBackend_RequiresBaseDir(t *testing.T) {
	_, err := fs.New(fs.Config{})
	assert.Error(t, err)
}

func TestFSBackend_UploadDownload(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	err := backend.Upload(ctx, "m/ab/abc/file.txt", strings.NewReader("hello fs"))
	require.NoError(t, err)

	reader, err := backend.Download(ctx, "m/ab/abc/file.txt")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello fs", string(data))
}

func TestFSBackend_GetUploadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("WithoutPrefix", func(t *testing.T) {
		backend := newTestBackend(t)
		_, err := backend.GetUploadURL(ctx, "m/ab/abc/file.txt")
		assert.Error(t, err)
	})

	t.Run("WithPrefix", func(t *testing.T) {
		backend, err := fs.New(fs.Config{BaseDir: t.TempDir(), URLPrefix: "http://localhost:8080/api/uploads/"})
		require.NoError(t, err)

		url, err := backend.GetUploadURL(ctx, "m/ab/abc/file.txt")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api/uploads/m/ab/abc/file.txt", url)
	})
}

func TestFSBackend_RejectsTraversalKeys(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	err := backend.Upload(ctx, "../outside.txt", strings.NewReader("nope"))
	assert.Error(t, err)

	_, err = backend.Download(ctx, "../../etc/passwd")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, simpleportfolio.ErrObjectNotFound)
}

func TestFSBackend_GetObjectMeta(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	content := "<html><body>hi</body></html>"
	require.NoError(t, backend.Upload(ctx, "page.html", strings.NewReader(content)))

	meta, err := backend.GetObjectMeta(ctx, "page.html")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), meta.Size)
	assert.Contains(t, meta.ContentType, "text/html")
}

func TestFSBackend_DeletePrunesEmptyDirs(t *testing.T) {
	baseDir := t.TempDir()
	backend, err := fs.New(fs.Config{BaseDir: baseDir})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "m/ab/abc/file.txt", strings.NewReader("bye")))
	require.NoError(t, backend.Delete(ctx, "m/ab/abc/file.txt"))

	_, err = backend.Download(ctx, "m/ab/abc/file.txt")
	assert.ErrorIs(t, err, simpleportfolio.ErrObjectNotFound)

	// Emptied shard directories are removed, the base directory stays.
	_, statErr := os.Stat(filepath.Join(baseDir, "m"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(baseDir)
	assert.NoError(t, statErr)
}
