package memory_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/storage/memory"
)

func TestMemoryBackend_UploadDownload(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	err := backend.Upload(ctx, "m/ab/abc/file.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	reader, err := backend.Download(ctx, "m/ab/abc/file.txt")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestMemoryBackend_UploadWithParams(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	err := backend.UploadWithParams(ctx, strings.NewReader("pngbytes"), simpleportfolio.UploadParams{
		ObjectKey: "m/ab/abc/pic.png",
		MimeType:  "image/png",
	})
	require.NoError(t, err)

	meta, err := backend.GetObjectMeta(ctx, "m/ab/abc/pic.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", meta.ContentType)
	assert.Equal(t, int64(len("pngbytes")), meta.Size)
	assert.False(t, meta.UpdatedAt.IsZero())
}

func TestMemoryBackend_GetUploadURLUnsupported(t *testing.T) {
	backend := memory.New()

	_, err := backend.GetUploadURL(context.Background(), "m/ab/abc/file.txt")
	assert.ErrorIs(t, err, simpleportfolio.ErrUploadFailed)
}

func TestMemoryBackend_MissingObject(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	_, err := backend.Download(ctx, "missing")
	assert.ErrorIs(t, err, simpleportfolio.ErrObjectNotFound)

	_, err = backend.GetObjectMeta(ctx, "missing")
	assert.ErrorIs(t, err, simpleportfolio.ErrObjectNotFound)

	err = backend.Delete(ctx, "missing")
	assert.ErrorIs(t, err, simpleportfolio.ErrObjectNotFound)
}

func TestMemoryBackend_Delete(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "key", strings.NewReader("data")))
	require.NoError(t, backend.Delete(ctx, "key"))

	_, err := backend.Download(ctx, "key")
	assert.ErrorIs(t, err, simpleportfolio.ErrObjectNotFound)
}
