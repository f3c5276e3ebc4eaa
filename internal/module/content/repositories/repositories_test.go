package repositories_test

import (
	"context"
	"testing"

	"travel-service/internal/module/content/models/entity"
	"travel-service/internal/module/content/repositories"
	"travel-service/internal/pkg/database/databasetest"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContent(id, typ, slug, status, createdAt string) *entity.Content {
	return &entity.Content{
		ID:        id,
		Type:      typ,
		Title:     slug,
		Slug:      slug,
		Content:   "<p>hello</p>",
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestSaveAndFind(t *testing.T) {
	repo := repositories.New(databasetest.New(t), log_internal.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newContent("c1", entity.TypePage, "about-us", entity.StatusPublished, "2024-05-01T10:00:00Z")))

	byID, err := repo.FindByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "about-us", byID.Slug)
	assert.Equal(t, "<p>hello</p>", byID.Content)

	bySlug, err := repo.FindBySlug(ctx, "about-us")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, "c1", bySlug.ID)

	missing, err := repo.FindBySlug(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateSlugRejected(t *testing.T) {
	repo := repositories.New(databasetest.New(t), log_internal.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newContent("c1", entity.TypePage, "faq", entity.StatusDraft, "2024-05-01T10:00:00Z")))
	err := repo.Save(ctx, newContent("c2", entity.TypeFAQ, "faq", entity.StatusDraft, "2024-05-02T10:00:00Z"))
	assert.Equal(t, 500, errors.StatusCode(err))
}

func TestFindAllFilters(t *testing.T) {
	repo := repositories.New(databasetest.New(t), log_internal.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newContent("c1", entity.TypeBlog, "first-post", entity.StatusPublished, "2024-05-01T10:00:00Z")))
	require.NoError(t, repo.Save(ctx, newContent("c2", entity.TypeBlog, "second-post", entity.StatusPublished, "2024-05-03T10:00:00Z")))
	require.NoError(t, repo.Save(ctx, newContent("c3", entity.TypeBlog, "unfinished", entity.StatusDraft, "2024-05-04T10:00:00Z")))
	require.NoError(t, repo.Save(ctx, newContent("c4", entity.TypeBanner, "summer", entity.StatusPublished, "2024-05-05T10:00:00Z")))

	filter := entity.Filter{Type: entity.TypeBlog, Status: entity.StatusPublished}
	items, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// newest first
	assert.Equal(t, "c2", items[0].ID)
	assert.Equal(t, "c1", items[1].ID)

	total, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	page, err := repo.FindAll(ctx, entity.Filter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c2", page[0].ID)

	all, err := repo.Count(ctx, entity.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := repositories.New(databasetest.New(t), log_internal.Nop())
	ctx := context.Background()

	c := newContent("c1", entity.TypePage, "about", entity.StatusDraft, "2024-05-01T10:00:00Z")
	require.NoError(t, repo.Save(ctx, c))

	c.Title = "About Us"
	c.Slug = "about-us"
	c.Status = entity.StatusPublished
	c.UpdatedAt = "2024-05-02T10:00:00Z"
	require.NoError(t, repo.Update(ctx, c))
	require.NoError(t, repo.UpdateImage(ctx, "c1", "https://pub-xxxxx.r2.dev/content/a.png", "2024-05-03T10:00:00Z"))

	got, err := repo.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "About Us", got.Title)
	assert.Equal(t, "about-us", got.Slug)
	assert.Equal(t, entity.StatusPublished, got.Status)
	assert.Equal(t, "https://pub-xxxxx.r2.dev/content/a.png", got.ImageURL)
	assert.Equal(t, "2024-05-03T10:00:00Z", got.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, "c1"))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, "c1")))
	assert.True(t, errors.IsNotFound(repo.UpdateImage(ctx, "c1", "x", "y")))
}
