package usecases

import (
	"context"

	"travel-service/internal/module/admin/models/response"
	bookingUsecases "travel-service/internal/module/booking/usecases"
	reviewUsecases "travel-service/internal/module/review/usecases"
	serviceEntity "travel-service/internal/module/service/models/entity"
	serviceRepositories "travel-service/internal/module/service/repositories"
	tourUsecases "travel-service/internal/module/tour/usecases"
	userEntity "travel-service/internal/module/user/models/entity"
	userRepositories "travel-service/internal/module/user/repositories"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/sync/errgroup"
)

type usecase struct {
	tours    tourUsecases.Usecase
	services serviceRepositories.Repositories
	bookings bookingUsecases.Usecase
	reviews  reviewUsecases.Usecase
	users    userRepositories.Repositories
	log      *otelzap.Logger
}

type Usecase interface {
	Dashboard(ctx context.Context) (response.Dashboard, error)
}

func New(
	tours tourUsecases.Usecase,
	services serviceRepositories.Repositories,
	bookings bookingUsecases.Usecase,
	reviews reviewUsecases.Usecase,
	users userRepositories.Repositories,
	log *otelzap.Logger,
) Usecase {
	return &usecase{
		tours:    tours,
		services: services,
		bookings: bookings,
		reviews:  reviews,
		users:    users,
		log:      log,
	}
}

// Dashboard runs every aggregate concurrently and fails on the first error.
func (u *usecase) Dashboard(ctx context.Context) (response.Dashboard, error) {
	var out response.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Tours, err = u.tours.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Services.Total, err = u.services.Count(gctx, serviceEntity.Filter{})
		return err
	})
	g.Go(func() (err error) {
		out.Services.Active, err = u.services.Count(gctx, serviceEntity.Filter{Status: serviceEntity.StatusActive})
		return err
	})
	g.Go(func() (err error) {
		out.Bookings, err = u.bookings.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Reviews, err = u.reviews.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Users, err = u.users.Count(gctx, userEntity.Filter{})
		return err
	})

	if err := g.Wait(); err != nil {
		return response.Dashboard{}, err
	}
	return out, nil
}
