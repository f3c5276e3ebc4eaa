// Package storage is the object-storage shim used for tour, service and
// content images.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"travel-service/config"
	"travel-service/internal/pkg/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultMaxFileSize = 5 * 1024 * 1024

var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type File struct {
	Filename string
	Data     []byte
}

// Retrier takes over asset deletions that failed inline.
type Retrier interface {
	EnqueueDelete(ctx context.Context, key string) error
}

type Uploader struct {
	bucket      Bucket
	publicURL   string
	maxFileSize int64
	retrier     Retrier
	log         *otelzap.Logger
}

func NewUploader(bucket Bucket, cfg *config.StorageConfig, log *otelzap.Logger) *Uploader {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Uploader{
		bucket:      bucket,
		publicURL:   strings.TrimRight(cfg.PublicURL, "/"),
		maxFileSize: maxSize,
		log:         log,
	}
}

func (u *Uploader) SetRetrier(r Retrier) {
	u.retrier = r
}

// Validate checks the size ceiling and the sniffed MIME type.
func (u *Uploader) Validate(file File) (string, error) {
	if len(file.Data) == 0 {
		return "", errors.BadRequest("empty file")
	}
	if int64(len(file.Data)) > u.maxFileSize {
		return "", errors.BadRequest(fmt.Sprintf("file %s exceeds %d bytes", file.Filename, u.maxFileSize))
	}

	mime := mimetype.Detect(file.Data)
	for _, allowed := range AllowedImageTypes {
		if mime.Is(allowed) {
			return allowed, nil
		}
	}
	return "", errors.BadRequest(fmt.Sprintf("file type %s is not allowed", mime.String()))
}

// UploadImage stores file under folder with a generated name and returns its
// public URL.
func (u *Uploader) UploadImage(ctx context.Context, folder string, file File) (string, error) {
	contentType, err := u.Validate(file)
	if err != nil {
		return "", err
	}

	key := folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(file.Filename))
	if err := u.bucket.Put(ctx, key, file.Data, contentType); err != nil {
		u.log.Ctx(ctx).Error("upload failed", zap.String("key", key), zap.Error(err))
		return "", errors.InternalServerError("failed to upload image")
	}

	return u.PublicURL(key), nil
}

// UploadImages uploads every file concurrently. There is no rollback: files
// that succeeded stay in the bucket when another one fails. The returned URLs
// keep input order and omit failed entries.
func (u *Uploader) UploadImages(ctx context.Context, folder string, files []File) ([]string, error) {
	urls := make([]string, len(files))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			url, err := u.UploadImage(ctx, folder, file)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	err := g.Wait()

	out := make([]string, 0, len(urls))
	for _, url := range urls {
		if url != "" {
			out = append(out, url)
		}
	}
	return out, err
}

func (u *Uploader) PublicURL(key string) string {
	return u.publicURL + "/" + key
}

// KeyFromURL takes the last two path segments of url as the object key. It
// only holds for URLs shaped domain/folder/filename.
func KeyFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[len(parts)-2:], "/")
}

// DeleteImage removes the asset behind url. Failures are logged and handed to
// the retrier, never returned.
func (u *Uploader) DeleteImage(ctx context.Context, url string) bool {
	key := KeyFromURL(url)
	if key == "" {
		u.log.Ctx(ctx).Warn("cannot derive object key", zap.String("url", url))
		return false
	}

	if err := u.bucket.Delete(ctx, key); err != nil {
		u.log.Ctx(ctx).Error("delete failed", zap.String("key", key), zap.Error(err))
		if u.retrier != nil {
			if err := u.retrier.EnqueueDelete(ctx, key); err != nil {
				u.log.Ctx(ctx).Error("enqueue delete retry failed", zap.String("key", key), zap.Error(err))
			}
		}
		return false
	}
	return true
}

// DeleteImages deletes concurrently and reports how many were removed.
func (u *Uploader) DeleteImages(ctx context.Context, urls []string) int {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		deleted int
	)
	for _, url := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			if u.DeleteImage(ctx, url) {
				mu.Lock()
				deleted++
				mu.Unlock()
			}
		}(url)
	}
	wg.Wait()
	return deleted
}

// DeleteKey removes an object by key. Used by the deferred cleanup task.
func (u *Uploader) DeleteKey(ctx context.Context, key string) error {
	return u.bucket.Delete(ctx, key)
}
