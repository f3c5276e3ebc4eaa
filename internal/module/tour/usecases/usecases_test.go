package usecases_test

import (
	"bytes"
	"context"
	"testing"

	"travel-service/config"
	"travel-service/internal/module/tour/mocks"
	"travel-service/internal/module/tour/models/entity"
	"travel-service/internal/module/tour/models/request"
	"travel-service/internal/module/tour/models/response"
	"travel-service/internal/module/tour/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/jsoncol"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/redis"
	"travel-service/internal/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	uploader *storage.Uploader
	bucket   *storage.MemoryBucket
)

const maxFileSize = 1024

func setup() {
	repoMock = new(mocks.Repositories)
	bucket = storage.NewMemoryBucket()
	uploader = storage.NewUploader(bucket, &config.StorageConfig{
		PublicURL:   "https://pub-xxxxx.r2.dev",
		MaxFileSize: maxFileSize,
	}, log_internal.Nop())
	uc = usecases.New(repoMock, uploader, redis.NoopLocker{}, log_internal.Nop())
}

func teardown() {
	repoMock = nil
	uploader = nil
	bucket = nil
	uc = nil
}

func png(size int) []byte {
	header := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	return append(header, bytes.Repeat([]byte{0}, size-len(header))...)
}

func seedImages(t *testing.T, n int) []string {
	t.Helper()
	urls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		url, err := uploader.UploadImage(context.Background(), "tours", storage.File{Filename: "old.png", Data: png(64)})
		require.NoError(t, err)
		urls = append(urls, url)
	}
	return urls
}

func TestCreate(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	payload := &request.Tour{
		Title:     "Bali Beach Escape",
		Price:     120,
		Itinerary: map[string]interface{}{"day1": "Arrival"},
		Included:  []string{"Hotel"},
	}

	repoMock.On("Save", ctx, mock.MatchedBy(func(t *entity.Tour) bool {
		return t.ID != "" && t.Status == entity.StatusDraft && t.Title == payload.Title && t.CreatedAt != ""
	})).Return(nil)

	got, err := uc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "Bali Beach Escape", got.Title)
	assert.Equal(t, entity.StatusDraft, got.Status)
	assert.Equal(t, []string{}, got.Images)
	assert.Equal(t, map[string]interface{}{"day1": "Arrival"}, got.Itinerary)
	repoMock.AssertExpectations(t)
}

func TestGet(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repoMock.On("FindByID", ctx, "t1").Return(&entity.Tour{ID: "t1", Images: jsoncol.Array[string]{"a.jpg"}}, nil).Once()

		got, err := uc.Get(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg"}, got.Images)
	})

	t.Run("not found", func(t *testing.T) {
		repoMock.On("FindByID", ctx, "missing").Return(nil, nil).Once()

		_, err := uc.Get(ctx, "missing")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestList(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	filter := entity.Filter{Status: entity.StatusActive, Limit: 10}

	repoMock.On("FindAll", ctx, filter).Return([]entity.Tour{{ID: "t1"}, {ID: "t2"}}, nil)
	repoMock.On("Count", ctx, filter).Return(int64(12), nil)

	tours, total, err := uc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, tours, 2)
	assert.Equal(t, int64(12), total)
}

func TestUpdateImages(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	old := seedImages(t, 2)

	repoMock.On("FindByID", ctx, "t1").Return(&entity.Tour{ID: "t1", Images: old}, nil)
	repoMock.On("UpdateImages", ctx, "t1", mock.AnythingOfType("[]string"), mock.AnythingOfType("string")).Return(nil)

	got, err := uc.UpdateImages(ctx, "t1", []storage.File{
		{Filename: "new1.png", Data: png(64)},
		{Filename: "new2.png", Data: png(64)},
	})
	require.NoError(t, err)

	assert.Len(t, got.Images, 2)
	for _, url := range old {
		assert.False(t, bucket.Has(storage.KeyFromURL(url)))
	}
	for _, url := range got.Images {
		assert.True(t, bucket.Has(storage.KeyFromURL(url)))
	}
	repoMock.AssertExpectations(t)
}

// Two old images, three new files, the second one oversized. Nothing is rolled
// back: both old assets are gone, new #1 and #3 are orphaned in the bucket and
// the row is never rewritten, so it still points at the deleted URLs.
func TestUpdateImagesPartialFailure(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	old := seedImages(t, 2)

	repoMock.On("FindByID", ctx, "t1").Return(&entity.Tour{ID: "t1", Images: old}, nil)

	_, err := uc.UpdateImages(ctx, "t1", []storage.File{
		{Filename: "new1.png", Data: png(64)},
		{Filename: "new2.png", Data: png(maxFileSize + 1)},
		{Filename: "new3.png", Data: png(64)},
	})

	require.Error(t, err)
	assert.Equal(t, 400, errors.StatusCode(err))

	for _, url := range old {
		assert.False(t, bucket.Has(storage.KeyFromURL(url)))
	}
	assert.Len(t, bucket.Keys(), 2)
	repoMock.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	old := seedImages(t, 1)

	repoMock.On("FindByID", ctx, "t1").Return(&entity.Tour{ID: "t1", Images: append(old, "broken")}, nil)
	repoMock.On("Delete", ctx, "t1").Return(nil)

	require.NoError(t, uc.Delete(ctx, "t1"))
	assert.Empty(t, bucket.Keys())
	repoMock.AssertExpectations(t)
}

func TestUpdateStatus(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("UpdateStatus", ctx, "missing", entity.StatusActive, mock.AnythingOfType("string")).
		Return(errors.NotFound("tour not found"))

	err := uc.UpdateStatus(ctx, "missing", &request.UpdateStatus{Status: entity.StatusActive})
	assert.True(t, errors.IsNotFound(err))
}

func TestStats(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("Stats", ctx).Return(entity.Stats{Total: 3, Active: 2, AveragePrice: 99.5}, nil)

	got, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, response.Stats{Total: 3, Active: 2, AveragePrice: 99.5}, got)
}
