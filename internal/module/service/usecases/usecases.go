package usecases

import (
	"context"
	"fmt"

	"travel-service/internal/module/service/models/entity"
	"travel-service/internal/module/service/models/request"
	"travel-service/internal/module/service/models/response"
	"travel-service/internal/module/service/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/jsoncol"
	"travel-service/internal/pkg/redis"
	"travel-service/internal/pkg/storage"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	imageFolder = "services"

	DefaultFeaturedLimit = 6
)

type usecase struct {
	repo     repositories.Repositories
	uploader *storage.Uploader
	locker   redis.Locker
	log      *otelzap.Logger
}

type Usecase interface {
	List(ctx context.Context, filter entity.Filter) ([]response.Service, int64, error)
	Get(ctx context.Context, id string) (response.Service, error)
	Featured(ctx context.Context, limit int) ([]response.Service, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, payload *request.Service) (response.Service, error)
	Update(ctx context.Context, id string, payload *request.Service) (response.Service, error)
	UpdateStatus(ctx context.Context, id string, payload *request.UpdateStatus) error
	UpdateImages(ctx context.Context, id string, files []storage.File) (response.Service, error)
	Delete(ctx context.Context, id string) error
}

func New(repo repositories.Repositories, uploader *storage.Uploader, locker redis.Locker, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:     repo,
		uploader: uploader,
		locker:   locker,
		log:      log,
	}
}

func (u *usecase) List(ctx context.Context, filter entity.Filter) ([]response.Service, int64, error) {
	services, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return response.NewServices(services), total, nil
}

func (u *usecase) find(ctx context.Context, id string) (*entity.Service, error) {
	service, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.NotFound("service not found")
	}
	return service, nil
}

func (u *usecase) Get(ctx context.Context, id string) (response.Service, error) {
	service, err := u.find(ctx, id)
	if err != nil {
		return response.Service{}, err
	}
	return response.NewService(*service), nil
}

func (u *usecase) Featured(ctx context.Context, limit int) ([]response.Service, error) {
	if limit <= 0 || limit > helpers.MaxLimit {
		limit = DefaultFeaturedLimit
	}

	services, err := u.repo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return response.NewServices(services), nil
}

func (u *usecase) Categories(ctx context.Context) ([]entity.Category, error) {
	return u.repo.Categories(ctx)
}

func (u *usecase) Create(ctx context.Context, payload *request.Service) (response.Service, error) {
	now := helpers.Now()
	service := entity.Service{
		ID:        helpers.GenerateID(),
		Status:    entity.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&service, payload)

	if err := u.repo.Save(ctx, &service); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save service: %v", err))
		return response.Service{}, err
	}

	return response.NewService(service), nil
}

func (u *usecase) Update(ctx context.Context, id string, payload *request.Service) (response.Service, error) {
	service, err := u.find(ctx, id)
	if err != nil {
		return response.Service{}, err
	}

	apply(service, payload)
	service.UpdatedAt = helpers.Now()

	if err := u.repo.Update(ctx, service); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update service: %v", err))
		return response.Service{}, err
	}

	return response.NewService(*service), nil
}

func (u *usecase) UpdateStatus(ctx context.Context, id string, payload *request.UpdateStatus) error {
	return u.repo.UpdateStatus(ctx, id, payload.Status, helpers.Now())
}

// UpdateImages follows the same non-atomic replace as tours: old assets go
// first, failed uploads leave the row untouched.
func (u *usecase) UpdateImages(ctx context.Context, id string, files []storage.File) (response.Service, error) {
	release, err := u.locker.Acquire(ctx, "service:"+id)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error acquire service lock: %v", err))
		return response.Service{}, errors.Conflict("service images are being updated")
	}
	defer release()

	service, err := u.find(ctx, id)
	if err != nil {
		return response.Service{}, err
	}

	u.uploader.DeleteImages(ctx, service.Images)

	urls, err := u.uploader.UploadImages(ctx, imageFolder, files)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error upload service images: %v", err))
		return response.Service{}, err
	}

	service.Images = urls
	service.UpdatedAt = helpers.Now()
	if err := u.repo.UpdateImages(ctx, id, urls, service.UpdatedAt); err != nil {
		return response.Service{}, err
	}

	return response.NewService(*service), nil
}

func (u *usecase) Delete(ctx context.Context, id string) error {
	service, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	u.uploader.DeleteImages(ctx, service.Images)

	return u.repo.Delete(ctx, id)
}

func apply(s *entity.Service, p *request.Service) {
	s.Title = p.Title
	s.Description = p.Description
	s.Category = p.Category
	s.Price = p.Price
	s.Included = p.Included
	s.Excluded = p.Excluded
	s.Videos = p.Videos
	s.Featured = jsoncol.Flag(p.Featured)

	s.Itinerary = make(jsoncol.Array[entity.Step], 0, len(p.Itinerary))
	for _, step := range p.Itinerary {
		s.Itinerary = append(s.Itinerary, step)
	}
	if p.Status != "" {
		s.Status = p.Status
	}
}
