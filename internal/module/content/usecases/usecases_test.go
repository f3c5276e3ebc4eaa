package usecases_test

import (
	"bytes"
	"context"
	"testing"

	"travel-service/config"
	"travel-service/internal/module/content/mocks"
	"travel-service/internal/module/content/models/entity"
	"travel-service/internal/module/content/models/request"
	"travel-service/internal/module/content/usecases"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"
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

func setup() {
	repoMock = new(mocks.Repositories)
	bucket = storage.NewMemoryBucket()
	uploader = storage.NewUploader(bucket, &config.StorageConfig{
		PublicURL:   "https://pub-xxxxx.r2.dev",
		MaxFileSize: 1024,
	}, log_internal.Nop())
	uc = usecases.New(repoMock, uploader, log_internal.Nop())
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

func TestCreate(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("slug derived from title", func(t *testing.T) {
		payload := &request.Content{Type: entity.TypePage, Title: "About Us!"}
		repoMock.On("FindBySlug", ctx, "about-us").Return(nil, nil).Once()
		repoMock.On("Save", ctx, mock.MatchedBy(func(c *entity.Content) bool {
			return c.ID != "" && c.Slug == "about-us" && c.Status == entity.StatusDraft
		})).Return(nil).Once()

		got, err := uc.Create(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, "about-us", got.Slug)
		assert.Equal(t, entity.StatusDraft, got.Status)
	})

	t.Run("explicit slug is normalised", func(t *testing.T) {
		payload := &request.Content{Type: entity.TypeBlog, Title: "x", Slug: "Top 10 Beaches", Status: entity.StatusPublished}
		repoMock.On("FindBySlug", ctx, "top-10-beaches").Return(nil, nil).Once()
		repoMock.On("Save", ctx, mock.Anything).Return(nil).Once()

		got, err := uc.Create(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, "top-10-beaches", got.Slug)
		assert.Equal(t, entity.StatusPublished, got.Status)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		payload := &request.Content{Type: entity.TypePage, Title: "FAQ"}
		repoMock.On("FindBySlug", ctx, "faq").Return(&entity.Content{ID: "other"}, nil).Once()

		_, err := uc.Create(ctx, payload)

		assert.Equal(t, 409, errors.StatusCode(err))
	})

	t.Run("title without slug characters", func(t *testing.T) {
		_, err := uc.Create(ctx, &request.Content{Type: entity.TypePage, Title: "!!!"})

		assert.Equal(t, 400, errors.StatusCode(err))
	})

	repoMock.AssertExpectations(t)
}

func TestUpdateKeepsOwnSlug(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	existing := &entity.Content{ID: "c1", Slug: "about-us", Status: entity.StatusPublished}
	repoMock.On("FindByID", ctx, "c1").Return(existing, nil)
	repoMock.On("FindBySlug", ctx, "about-us").Return(existing, nil)
	repoMock.On("Update", ctx, mock.MatchedBy(func(c *entity.Content) bool {
		return c.Title == "About" && c.Status == entity.StatusPublished
	})).Return(nil)

	got, err := uc.Update(ctx, "c1", &request.Content{Type: entity.TypePage, Title: "About", Slug: "about-us"})

	require.NoError(t, err)
	assert.Equal(t, "About", got.Title)
	repoMock.AssertExpectations(t)
}

func TestGetBySlugNotFound(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindBySlug", ctx, "missing").Return(nil, nil)

	_, err := uc.GetBySlug(ctx, "missing")

	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateImage(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	oldURL, err := uploader.UploadImage(ctx, "content", storage.File{Filename: "old.png", Data: png(64)})
	require.NoError(t, err)

	t.Run("replaces old image", func(t *testing.T) {
		repoMock.On("FindByID", ctx, "c1").Return(&entity.Content{ID: "c1", ImageURL: oldURL}, nil).Once()
		repoMock.On("UpdateImage", ctx, "c1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()

		got, err := uc.UpdateImage(ctx, "c1", storage.File{Filename: "new.png", Data: png(64)})

		require.NoError(t, err)
		assert.NotEqual(t, oldURL, got.ImageURL)
		assert.Equal(t, []string{storage.KeyFromURL(got.ImageURL)}, bucket.Keys())
	})

	t.Run("rejected file keeps current image", func(t *testing.T) {
		current := bucket.Keys()
		repoMock.On("FindByID", ctx, "c2").Return(&entity.Content{ID: "c2", ImageURL: "https://pub-xxxxx.r2.dev/" + current[0]}, nil).Once()

		_, err := uc.UpdateImage(ctx, "c2", storage.File{Filename: "huge.png", Data: png(4096)})

		assert.Equal(t, 400, errors.StatusCode(err))
		assert.Equal(t, current, bucket.Keys())
		repoMock.AssertNotCalled(t, "UpdateImage", ctx, "c2", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	url, err := uploader.UploadImage(ctx, "content", storage.File{Filename: "a.png", Data: png(64)})
	require.NoError(t, err)

	repoMock.On("FindByID", ctx, "c1").Return(&entity.Content{ID: "c1", ImageURL: url}, nil)
	repoMock.On("Delete", ctx, "c1").Return(nil)
	repoMock.On("FindByID", ctx, "missing").Return(nil, nil)

	require.NoError(t, uc.Delete(ctx, "c1"))
	assert.Empty(t, bucket.Keys())

	assert.True(t, errors.IsNotFound(uc.Delete(ctx, "missing")))
	repoMock.AssertNotCalled(t, "Delete", ctx, "missing")
}
