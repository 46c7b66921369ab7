package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vetclinic-api/internal/config"
)

func TestLocalSink_Save(t *testing.T) {
	dir := t.TempDir()
	sink := NewLocalSink(dir, "/static/")

	url, err := sink.Save(context.Background(), "products/p1.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/static/products/p1.png", url)

	got, err := os.ReadFile(filepath.Join(dir, "products", "p1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(got))
}

func TestLocalSink_Overwrites(t *testing.T) {
	dir := t.TempDir()
	sink := NewLocalSink(dir, "/static")

	_, err := sink.Save(context.Background(), "products/p1.png", strings.NewReader("old"))
	require.NoError(t, err)
	_, err = sink.Save(context.Background(), "products/p1.png", strings.NewReader("new"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "products", "p1.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestLocalSink_FailedWriteReturnsNoURL(t *testing.T) {
	sink := NewLocalSink(t.TempDir(), "/static")
	readErr := errors.New("connection reset")

	url, err := sink.Save(context.Background(), "products/p1.png", iotest.ErrReader(readErr))
	assert.ErrorIs(t, err, readErr)
	assert.Empty(t, url)
}

func TestNew_PicksSinkFromConfig(t *testing.T) {
	_, isLocal := New(&config.Config{StaticDir: t.TempDir(), StaticURLPrefix: "/static"}).(*LocalSink)
	assert.True(t, isLocal)

	s3Sink, isS3 := New(&config.Config{S3Bucket: "pets", S3Region: "us-east-1"}).(*S3Sink)
	require.True(t, isS3)
	assert.Equal(t, "https://pets.s3.us-east-1.amazonaws.com", s3Sink.publicURL)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", contentType("products/a.png"))
	assert.Equal(t, "application/octet-stream", contentType("products/a"))
}
