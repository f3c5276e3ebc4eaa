package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/module/review/models/entity"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const columns = "r.id, r.user_id, r.tour_id, r.rating, r.comment, r.created_at"

type repositories struct {
	db  database.Client
	log *otelzap.Logger
}

type Repositories interface {
	// FindByTour lists a tour's reviews with the author name.
	FindByTour(ctx context.Context, filter entity.Filter) ([]entity.Review, error)
	// FindAll lists reviews with tour title and author name for moderation.
	FindAll(ctx context.Context, filter entity.Filter) ([]entity.Review, error)
	Count(ctx context.Context, filter entity.Filter) (int64, error)
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	FindByUserAndTour(ctx context.Context, userID, tourID string) (*entity.Review, error)
	TourExists(ctx context.Context, tourID string) (bool, error)
	Save(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
	// TourRating averages the ratings of one tour, or of every review when
	// tourID is empty.
	TourRating(ctx context.Context, tourID string) (entity.Rating, error)
}

func New(db database.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func where(filter entity.Filter) *database.Where {
	w := &database.Where{}
	return w.Eq("r.tour_id", filter.TourID)
}

func (r *repositories) find(ctx context.Context, query string, params ...interface{}) ([]entity.Review, error) {
	res := r.db.Query(ctx, query, params...)
	if !res.Success {
		return nil, errors.InternalServerError("error find reviews")
	}

	reviews, err := database.DecodeAll[entity.Review](res.Data)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode reviews: %v", err))
		return nil, errors.InternalServerError("error find reviews")
	}
	return reviews, nil
}

func (r *repositories) findOne(ctx context.Context, query string, params ...interface{}) (*entity.Review, error) {
	reviews, err := r.find(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}
	return &reviews[0], nil
}

func (r *repositories) FindByTour(ctx context.Context, filter entity.Filter) ([]entity.Review, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+", COALESCE(u.name, '') AS user_name FROM reviews r"+
			" LEFT JOIN users u ON u.id = r.user_id"+w.String()+" ORDER BY r.created_at DESC, r.id",
		w.Params(), filter.Limit, filter.Offset,
	)
	return r.find(ctx, query, params...)
}

func (r *repositories) FindAll(ctx context.Context, filter entity.Filter) ([]entity.Review, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+", COALESCE(u.name, '') AS user_name, COALESCE(t.title, '') AS tour_title FROM reviews r"+
			" LEFT JOIN users u ON u.id = r.user_id LEFT JOIN tours t ON t.id = r.tour_id"+
			w.String()+" ORDER BY r.created_at DESC, r.id",
		w.Params(), filter.Limit, filter.Offset,
	)
	return r.find(ctx, query, params...)
}

func (r *repositories) Count(ctx context.Context, filter entity.Filter) (int64, error) {
	w := where(filter)
	res := r.db.Query(ctx, "SELECT COUNT(*) AS total FROM reviews r"+w.String(), w.Params()...)
	if !res.Success {
		return 0, errors.InternalServerError("error count reviews")
	}
	if len(res.Data) == 0 {
		return 0, nil
	}
	return database.Int(res.Data[0], "total"), nil
}

func (r *repositories) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM reviews r WHERE r.id = ?", id)
}

func (r *repositories) FindByUserAndTour(ctx context.Context, userID, tourID string) (*entity.Review, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM reviews r WHERE r.user_id = ? AND r.tour_id = ?", userID, tourID)
}

func (r *repositories) TourExists(ctx context.Context, tourID string) (bool, error) {
	res := r.db.Query(ctx, "SELECT id FROM tours WHERE id = ?", tourID)
	if !res.Success {
		return false, errors.InternalServerError("error find tour")
	}
	return len(res.Data) > 0, nil
}

func (r *repositories) Save(ctx context.Context, review *entity.Review) error {
	res := r.db.Run(ctx, `INSERT INTO reviews (id, user_id, tour_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		review.ID, review.UserID, review.TourID, review.Rating, review.Comment, review.CreatedAt)
	if !res.Success {
		return errors.InternalServerError("error save review")
	}
	return nil
}

func (r *repositories) Delete(ctx context.Context, id string) error {
	res := r.db.Run(ctx, "DELETE FROM reviews WHERE id = ?", id)
	return database.Affected(res, "review")
}

func (r *repositories) TourRating(ctx context.Context, tourID string) (entity.Rating, error) {
	w := where(entity.Filter{TourID: tourID})
	res := r.db.Query(ctx, `SELECT COUNT(*) AS total,
		CAST(AVG(r.rating) AS DOUBLE PRECISION) AS average
		FROM reviews r`+w.String(), w.Params()...)
	if !res.Success {
		return entity.Rating{}, errors.InternalServerError("error get tour rating")
	}
	if len(res.Data) == 0 {
		return entity.Rating{}, nil
	}

	row := res.Data[0]
	return entity.Rating{
		Average: database.Float(row, "average"),
		Count:   database.Int(row, "total"),
	}, nil
}
