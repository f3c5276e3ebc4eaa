package usecases

import (
	"context"
	"fmt"

	"travel-service/internal/module/content/models/entity"
	"travel-service/internal/module/content/models/request"
	"travel-service/internal/module/content/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/storage"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const imageFolder = "content"

type usecase struct {
	repo     repositories.Repositories
	uploader *storage.Uploader
	log      *otelzap.Logger
}

type Usecase interface {
	List(ctx context.Context, filter entity.Filter) ([]entity.Content, int64, error)
	Get(ctx context.Context, id string) (entity.Content, error)
	GetBySlug(ctx context.Context, slug string) (entity.Content, error)
	Create(ctx context.Context, payload *request.Content) (entity.Content, error)
	Update(ctx context.Context, id string, payload *request.Content) (entity.Content, error)
	UpdateImage(ctx context.Context, id string, file storage.File) (entity.Content, error)
	Delete(ctx context.Context, id string) error
}

func New(repo repositories.Repositories, uploader *storage.Uploader, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:     repo,
		uploader: uploader,
		log:      log,
	}
}

func (u *usecase) List(ctx context.Context, filter entity.Filter) ([]entity.Content, int64, error) {
	items, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (u *usecase) find(ctx context.Context, id string) (*entity.Content, error) {
	content, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, errors.NotFound("content not found")
	}
	return content, nil
}

func (u *usecase) Get(ctx context.Context, id string) (entity.Content, error) {
	content, err := u.find(ctx, id)
	if err != nil {
		return entity.Content{}, err
	}
	return *content, nil
}

func (u *usecase) GetBySlug(ctx context.Context, slug string) (entity.Content, error) {
	content, err := u.repo.FindBySlug(ctx, slug)
	if err != nil {
		return entity.Content{}, err
	}
	if content == nil {
		return entity.Content{}, errors.NotFound("content not found")
	}
	return *content, nil
}

// slug derives the slug from the title when none is given and makes sure no
// other row holds it.
func (u *usecase) slug(ctx context.Context, payload *request.Content, id string) (string, error) {
	slug := helpers.Slugify(payload.Slug)
	if slug == "" {
		slug = helpers.Slugify(payload.Title)
	}
	if slug == "" {
		return "", errors.BadRequest("slug cannot be derived from title")
	}

	existing, err := u.repo.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.ID != id {
		return "", errors.Conflict(fmt.Sprintf("slug %q already exists", slug))
	}
	return slug, nil
}

func (u *usecase) Create(ctx context.Context, payload *request.Content) (entity.Content, error) {
	slug, err := u.slug(ctx, payload, "")
	if err != nil {
		return entity.Content{}, err
	}

	now := helpers.Now()
	content := entity.Content{
		ID:        helpers.GenerateID(),
		Type:      payload.Type,
		Title:     payload.Title,
		Slug:      slug,
		Content:   payload.Content,
		Status:    payload.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if content.Status == "" {
		content.Status = entity.StatusDraft
	}

	if err := u.repo.Save(ctx, &content); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save content: %v", err))
		return entity.Content{}, err
	}
	return content, nil
}

func (u *usecase) Update(ctx context.Context, id string, payload *request.Content) (entity.Content, error) {
	content, err := u.find(ctx, id)
	if err != nil {
		return entity.Content{}, err
	}

	slug, err := u.slug(ctx, payload, id)
	if err != nil {
		return entity.Content{}, err
	}

	content.Type = payload.Type
	content.Title = payload.Title
	content.Slug = slug
	content.Content = payload.Content
	if payload.Status != "" {
		content.Status = payload.Status
	}
	content.UpdatedAt = helpers.Now()

	if err := u.repo.Update(ctx, content); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update content: %v", err))
		return entity.Content{}, err
	}
	return *content, nil
}

// UpdateImage uploads the new image before dropping the old one, so a
// rejected file leaves the current image in place.
func (u *usecase) UpdateImage(ctx context.Context, id string, file storage.File) (entity.Content, error) {
	content, err := u.find(ctx, id)
	if err != nil {
		return entity.Content{}, err
	}

	url, err := u.uploader.UploadImage(ctx, imageFolder, file)
	if err != nil {
		return entity.Content{}, err
	}

	content.UpdatedAt = helpers.Now()
	if err := u.repo.UpdateImage(ctx, id, url, content.UpdatedAt); err != nil {
		u.uploader.DeleteImage(ctx, url)
		return entity.Content{}, err
	}

	if content.ImageURL != "" {
		u.uploader.DeleteImage(ctx, content.ImageURL)
	}
	content.ImageURL = url
	return *content, nil
}

func (u *usecase) Delete(ctx context.Context, id string) error {
	content, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if content.ImageURL != "" {
		u.uploader.DeleteImage(ctx, content.ImageURL)
	}

	return u.repo.Delete(ctx, id)
}
