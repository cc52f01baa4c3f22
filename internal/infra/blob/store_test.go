package blob

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"bdgaraj/config"
	domainerrors "bdgaraj/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestStore(t *testing.T, maxSize int64) *store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newStore(bucket, &config.UploadsConfig{
		PublicPrefix: "/uploads/",
		MaxSizeBytes: maxSize,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	})
}

func TestStore_StoreAndOpen(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 5<<20)
	data := pngBytes(t)

	p, err := s.Store(ctx, "products", data, "image/png", "bike.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "/uploads/products/"), p)
	assert.True(t, strings.HasSuffix(p, ".png"), p)

	obj, err := s.Open(ctx, strings.TrimPrefix(p, "/uploads/"))
	require.NoError(t, err)
	defer obj.Close()

	got, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len(data)), obj.Size)
}

func TestStore_RejectsBeforeWriting(t *testing.T) {
	ctx := context.Background()
	data := pngBytes(t)

	tests := []struct {
		name     string
		maxSize  int64
		data     []byte
		mimeType string
		wantErr  error
	}{
		{"declared text", 5 << 20, []byte("hello"), "text/plain", domainerrors.ErrUnsupportedFileType},
		{"image declared, text content", 5 << 20, []byte("just some text"), "image/png", domainerrors.ErrUnsupportedFileType},
		{"too large", int64(len(data) - 1), data, "image/png", domainerrors.ErrFileTooLarge},
		{"empty", 5 << 20, nil, "image/png", domainerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, tt.maxSize)

			_, err := s.Store(ctx, "services", tt.data, tt.mimeType, "file.png")
			assert.ErrorIs(t, err, tt.wantErr)

			iter := s.bucket.List(nil)
			_, err = iter.Next(ctx)
			assert.ErrorIs(t, err, io.EOF, "nothing must be written")
		})
	}
}

func TestStore_DeclaredTypeWithParameters(t *testing.T) {
	s := newTestStore(t, 5<<20)

	_, err := s.Store(context.Background(), "services", pngBytes(t), "image/PNG; charset=binary", "x")
	assert.NoError(t, err)
}

func TestStore_OpenMissing(t *testing.T) {
	s := newTestStore(t, 5<<20)

	for _, key := range []string{"services/nope.png", "", "../etc/passwd"} {
		_, err := s.Open(context.Background(), key)
		assert.ErrorIs(t, err, domainerrors.ErrUploadNotFound, key)
	}
}
