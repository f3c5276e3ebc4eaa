package usecases

import (
	"context"
	"fmt"

	"travel-service/internal/module/tour/models/entity"
	"travel-service/internal/module/tour/models/request"
	"travel-service/internal/module/tour/models/response"
	"travel-service/internal/module/tour/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/jsoncol"
	"travel-service/internal/pkg/redis"
	"travel-service/internal/pkg/storage"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const imageFolder = "tours"

type usecase struct {
	repo     repositories.Repositories
	uploader *storage.Uploader
	locker   redis.Locker
	log      *otelzap.Logger
}

type Usecase interface {
	List(ctx context.Context, filter entity.Filter) ([]response.Tour, int64, error)
	Get(ctx context.Context, id string) (response.Tour, error)
	Create(ctx context.Context, payload *request.Tour) (response.Tour, error)
	Update(ctx context.Context, id string, payload *request.Tour) (response.Tour, error)
	UpdateStatus(ctx context.Context, id string, payload *request.UpdateStatus) error
	UpdateImages(ctx context.Context, id string, files []storage.File) (response.Tour, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (response.Stats, error)
}

func New(repo repositories.Repositories, uploader *storage.Uploader, locker redis.Locker, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:     repo,
		uploader: uploader,
		locker:   locker,
		log:      log,
	}
}

func (u *usecase) List(ctx context.Context, filter entity.Filter) ([]response.Tour, int64, error) {
	tours, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return response.NewTours(tours), total, nil
}

func (u *usecase) find(ctx context.Context, id string) (*entity.Tour, error) {
	tour, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, errors.NotFound("tour not found")
	}
	return tour, nil
}

func (u *usecase) Get(ctx context.Context, id string) (response.Tour, error) {
	tour, err := u.find(ctx, id)
	if err != nil {
		return response.Tour{}, err
	}
	return response.NewTour(*tour), nil
}

func (u *usecase) Create(ctx context.Context, payload *request.Tour) (response.Tour, error) {
	now := helpers.Now()
	tour := entity.Tour{
		ID:        helpers.GenerateID(),
		Status:    entity.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&tour, payload)

	if err := u.repo.Save(ctx, &tour); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save tour: %v", err))
		return response.Tour{}, err
	}

	return response.NewTour(tour), nil
}

func (u *usecase) Update(ctx context.Context, id string, payload *request.Tour) (response.Tour, error) {
	tour, err := u.find(ctx, id)
	if err != nil {
		return response.Tour{}, err
	}

	apply(tour, payload)
	tour.UpdatedAt = helpers.Now()

	if err := u.repo.Update(ctx, tour); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update tour: %v", err))
		return response.Tour{}, err
	}

	return response.NewTour(*tour), nil
}

func (u *usecase) UpdateStatus(ctx context.Context, id string, payload *request.UpdateStatus) error {
	return u.repo.UpdateStatus(ctx, id, payload.Status, helpers.Now())
}

// UpdateImages replaces every image of the tour. Old assets are deleted before
// the new ones are uploaded and nothing is rolled back: when an upload fails
// the old assets are already gone, the uploads that did succeed stay in the
// bucket, and the row keeps its previous URLs.
func (u *usecase) UpdateImages(ctx context.Context, id string, files []storage.File) (response.Tour, error) {
	release, err := u.locker.Acquire(ctx, "tour:"+id)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error acquire tour lock: %v", err))
		return response.Tour{}, errors.Conflict("tour images are being updated")
	}
	defer release()

	tour, err := u.find(ctx, id)
	if err != nil {
		return response.Tour{}, err
	}

	u.uploader.DeleteImages(ctx, tour.Images)

	urls, err := u.uploader.UploadImages(ctx, imageFolder, files)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error upload tour images: %v", err))
		return response.Tour{}, err
	}

	tour.Images = urls
	tour.UpdatedAt = helpers.Now()
	if err := u.repo.UpdateImages(ctx, id, urls, tour.UpdatedAt); err != nil {
		return response.Tour{}, err
	}

	return response.NewTour(*tour), nil
}

// Delete removes the image assets first and then the row. Asset failures do
// not stop the row delete.
func (u *usecase) Delete(ctx context.Context, id string) error {
	tour, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	u.uploader.DeleteImages(ctx, tour.Images)

	return u.repo.Delete(ctx, id)
}

func (u *usecase) Stats(ctx context.Context) (response.Stats, error) {
	stats, err := u.repo.Stats(ctx)
	if err != nil {
		return response.Stats{}, err
	}
	return response.Stats(stats), nil
}

func apply(t *entity.Tour, p *request.Tour) {
	t.Title = p.Title
	t.Description = p.Description
	t.Location = p.Location
	t.Price = p.Price
	t.Duration = p.Duration
	t.MaxTravelers = p.MaxTravelers
	t.Difficulty = p.Difficulty
	t.Included = p.Included
	t.Excluded = p.Excluded
	if p.Itinerary != nil {
		t.Itinerary = jsoncol.NewObject(entity.Itinerary(p.Itinerary))
	} else {
		t.Itinerary = jsoncol.Object[entity.Itinerary]{}
	}
	if p.Status != "" {
		t.Status = p.Status
	}
}
