package storage_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"travel-service/config"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func png(size int) []byte {
	if size < len(pngHeader) {
		size = len(pngHeader)
	}
	return append(append([]byte(nil), pngHeader...), bytes.Repeat([]byte{0}, size-len(pngHeader))...)
}

type retrierSpy struct {
	mu   sync.Mutex
	keys []string
}

func (r *retrierSpy) EnqueueDelete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return nil
}

func newUploader(maxSize int64) (*storage.Uploader, *storage.MemoryBucket) {
	bucket := storage.NewMemoryBucket()
	cfg := &config.StorageConfig{PublicURL: "https://assets.example.com/", MaxFileSize: maxSize}
	return storage.NewUploader(bucket, cfg, log_internal.Nop()), bucket
}

func TestValidate(t *testing.T) {
	u, _ := newUploader(64)

	testCases := []struct {
		name     string
		file     storage.File
		wantType string
		wantErr  bool
	}{
		{"png accepted", storage.File{Filename: "a.png", Data: png(32)}, "image/png", false},
		{"empty", storage.File{Filename: "a.png"}, "", true},
		{"oversized", storage.File{Filename: "big.png", Data: png(65)}, "", true},
		{"not an image", storage.File{Filename: "a.png", Data: []byte("%PDF-1.4 fake")}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := u.Validate(tc.file)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, errors.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, got)
		})
	}
}

func TestUploadImage(t *testing.T) {
	u, bucket := newUploader(1024)

	url, err := u.UploadImage(context.Background(), "tours", storage.File{Filename: "Beach.PNG", Data: png(64)})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://assets.example.com/tours/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.True(t, bucket.Has(storage.KeyFromURL(url)))
}

func TestUploadImagesPartialFailure(t *testing.T) {
	u, bucket := newUploader(128)

	files := []storage.File{
		{Filename: "1.png", Data: png(64)},
		{Filename: "2.png", Data: png(512)},
		{Filename: "3.png", Data: png(64)},
	}

	urls, err := u.UploadImages(context.Background(), "tours", files)

	assert.Error(t, err)
	assert.Len(t, urls, 2)
	// no rollback: the two valid files stay uploaded
	assert.Len(t, bucket.Keys(), 2)
	for _, url := range urls {
		assert.True(t, bucket.Has(storage.KeyFromURL(url)))
	}
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "tours/abc.jpg", storage.KeyFromURL("https://pub-xxxxx.r2.dev/tours/abc.jpg"))
	// deeper folders lose their prefix
	assert.Equal(t, "2024/abc.jpg", storage.KeyFromURL("https://cdn.example.com/tours/2024/abc.jpg"))
	assert.Equal(t, "", storage.KeyFromURL("abc.jpg"))
}

func TestDeleteImage(t *testing.T) {
	u, bucket := newUploader(1024)
	spy := &retrierSpy{}
	u.SetRetrier(spy)
	ctx := context.Background()

	url, err := u.UploadImage(ctx, "content", storage.File{Filename: "a.png", Data: png(16)})
	require.NoError(t, err)

	assert.True(t, u.DeleteImage(ctx, url))
	assert.False(t, bucket.Has(storage.KeyFromURL(url)))

	// second delete fails in the bucket and is handed to the retrier
	assert.False(t, u.DeleteImage(ctx, url))
	assert.Equal(t, []string{storage.KeyFromURL(url)}, spy.keys)

	assert.False(t, u.DeleteImage(ctx, "nonsense"))
}

func TestDeleteImages(t *testing.T) {
	u, bucket := newUploader(1024)
	ctx := context.Background()

	urls, err := u.UploadImages(ctx, "services", []storage.File{
		{Filename: "a.png", Data: png(16)},
		{Filename: "b.png", Data: png(16)},
	})
	require.NoError(t, err)

	deleted := u.DeleteImages(ctx, append(urls, "https://assets.example.com/services/missing.png"))
	assert.Equal(t, 2, deleted)
	assert.Empty(t, bucket.Keys())
}
