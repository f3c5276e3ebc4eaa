package usecases

import (
	"context"
	"fmt"

	"travel-service/internal/module/review/models/entity"
	"travel-service/internal/module/review/models/request"
	"travel-service/internal/module/review/models/response"
	"travel-service/internal/module/review/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	ListByTour(ctx context.Context, filter entity.Filter) (response.TourReviews, int64, error)
	List(ctx context.Context, filter entity.Filter) ([]entity.Review, int64, error)
	Create(ctx context.Context, userID, tourID string, payload *request.Review) (entity.Review, error)
	// Delete removes a review written by userID, or any review when admin is
	// set.
	Delete(ctx context.Context, id, userID string, admin bool) error
	Stats(ctx context.Context) (entity.Rating, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ListByTour(ctx context.Context, filter entity.Filter) (response.TourReviews, int64, error) {
	reviews, err := u.repo.FindByTour(ctx, filter)
	if err != nil {
		return response.TourReviews{}, 0, err
	}

	rating, err := u.repo.TourRating(ctx, filter.TourID)
	if err != nil {
		return response.TourReviews{}, 0, err
	}

	return response.TourReviews{Reviews: reviews, Rating: rating}, rating.Count, nil
}

func (u *usecase) List(ctx context.Context, filter entity.Filter) ([]entity.Review, int64, error) {
	reviews, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (u *usecase) Create(ctx context.Context, userID, tourID string, payload *request.Review) (entity.Review, error) {
	exists, err := u.repo.TourExists(ctx, tourID)
	if err != nil {
		return entity.Review{}, err
	}
	if !exists {
		return entity.Review{}, errors.NotFound("tour not found")
	}

	existing, err := u.repo.FindByUserAndTour(ctx, userID, tourID)
	if err != nil {
		return entity.Review{}, err
	}
	if existing != nil {
		return entity.Review{}, errors.Conflict("you have already reviewed this tour")
	}

	review := entity.Review{
		ID:        helpers.GenerateID(),
		UserID:    userID,
		TourID:    tourID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
		CreatedAt: helpers.Now(),
	}

	if err := u.repo.Save(ctx, &review); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save review: %v", err))
		return entity.Review{}, err
	}
	return review, nil
}

func (u *usecase) Delete(ctx context.Context, id, userID string, admin bool) error {
	review, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return errors.NotFound("review not found")
	}

	if !admin && review.UserID != userID {
		return errors.ForbiddenError("cannot delete another user's review")
	}

	return u.repo.Delete(ctx, id)
}

func (u *usecase) Stats(ctx context.Context) (entity.Rating, error) {
	return u.repo.TourRating(ctx, "")
}
