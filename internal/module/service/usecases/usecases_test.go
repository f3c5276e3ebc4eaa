package usecases_test

import (
	"context"
	"testing"

	"travel-service/config"
	"travel-service/internal/module/service/mocks"
	"travel-service/internal/module/service/models/entity"
	"travel-service/internal/module/service/models/request"
	"travel-service/internal/module/service/usecases"
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
	bucket   *storage.MemoryBucket
)

func setup() {
	repoMock = new(mocks.Repositories)
	bucket = storage.NewMemoryBucket()
	uploader := storage.NewUploader(bucket, &config.StorageConfig{PublicURL: "https://pub-xxxxx.r2.dev"}, log_internal.Nop())
	uc = usecases.New(repoMock, uploader, redis.NoopLocker{}, log_internal.Nop())
}

func teardown() {
	repoMock = nil
	bucket = nil
	uc = nil
}

func TestCreate(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	payload := &request.Service{
		Title:     "Airport transfer",
		Category:  entity.CategoryTransport,
		Featured:  true,
		Itinerary: []map[string]interface{}{{"title": "Pickup"}},
	}

	repoMock.On("Save", ctx, mock.MatchedBy(func(s *entity.Service) bool {
		return s.ID != "" && bool(s.Featured) && s.Status == entity.StatusDraft && len(s.Itinerary) == 1
	})).Return(nil)

	got, err := uc.Create(ctx, payload)
	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, []map[string]interface{}{{"title": "Pickup"}}, got.Itinerary)
	assert.Equal(t, []string{}, got.Videos)
}

func TestFeatured(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	testCases := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit", 3, 3},
		{"default", 0, usecases.DefaultFeaturedLimit},
		{"too large", 1000, usecases.DefaultFeaturedLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repoMock.On("FindFeatured", ctx, tc.want).Return([]entity.Service{{ID: "s1", Featured: true}}, nil).Once()

			got, err := uc.Featured(ctx, tc.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
	repoMock.AssertExpectations(t)
}

func TestUpdateNotFound(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindByID", ctx, "missing").Return(nil, nil)

	_, err := uc.Update(ctx, "missing", &request.Service{Title: "x", Category: entity.CategoryOther})
	assert.True(t, errors.IsNotFound(err))
	repoMock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateImagesKeepsRowOnFailure(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindByID", ctx, "s1").Return(&entity.Service{ID: "s1", Images: jsoncol.Array[string]{}}, nil)

	_, err := uc.UpdateImages(ctx, "s1", []storage.File{{Filename: "doc.pdf", Data: []byte("%PDF-1.4")}})

	assert.Equal(t, 400, errors.StatusCode(err))
	assert.Empty(t, bucket.Keys())
	repoMock.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
