package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/module/tour/models/entity"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/jsoncol"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const columns = `id, title, description, location, price, duration, max_travelers, difficulty,
	images, itinerary, included, excluded, status, created_at, updated_at`

type repositories struct {
	db  database.Client
	log *otelzap.Logger
}

type Repositories interface {
	FindAll(ctx context.Context, filter entity.Filter) ([]entity.Tour, error)
	Count(ctx context.Context, filter entity.Filter) (int64, error)
	// FindByID returns nil when the tour does not exist.
	FindByID(ctx context.Context, id string) (*entity.Tour, error)
	Save(ctx context.Context, tour *entity.Tour) error
	Update(ctx context.Context, tour *entity.Tour) error
	UpdateStatus(ctx context.Context, id, status, updatedAt string) error
	UpdateImages(ctx context.Context, id string, images []string, updatedAt string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (entity.Stats, error)
}

func New(db database.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func where(filter entity.Filter) *database.Where {
	w := &database.Where{}
	return w.Eq("status", filter.Status).Search(filter.Search, "title", "description", "location")
}

func (r *repositories) FindAll(ctx context.Context, filter entity.Filter) ([]entity.Tour, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+" FROM tours"+w.String()+" ORDER BY created_at DESC, id",
		w.Params(), filter.Limit, filter.Offset,
	)

	res := r.db.Query(ctx, query, params...)
	if !res.Success {
		return nil, errors.InternalServerError("error find tours")
	}

	tours, err := database.DecodeAll[entity.Tour](res.Data)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode tours: %v", err))
		return nil, errors.InternalServerError("error find tours")
	}
	return tours, nil
}

func (r *repositories) Count(ctx context.Context, filter entity.Filter) (int64, error) {
	w := where(filter)
	res := r.db.Query(ctx, "SELECT COUNT(*) AS total FROM tours"+w.String(), w.Params()...)
	if !res.Success {
		return 0, errors.InternalServerError("error count tours")
	}
	if len(res.Data) == 0 {
		return 0, nil
	}
	return database.Int(res.Data[0], "total"), nil
}

func (r *repositories) FindByID(ctx context.Context, id string) (*entity.Tour, error) {
	res := r.db.Query(ctx, "SELECT "+columns+" FROM tours WHERE id = ?", id)
	if !res.Success {
		return nil, errors.InternalServerError("error find tour")
	}
	if len(res.Data) == 0 {
		return nil, nil
	}

	tour, err := database.Decode[entity.Tour](res.Data[0])
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode tour: %v", err))
		return nil, errors.InternalServerError("error find tour")
	}
	return &tour, nil
}

func (r *repositories) Save(ctx context.Context, t *entity.Tour) error {
	res := r.db.Run(ctx, `INSERT INTO tours (`+columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Location, t.Price, t.Duration, t.MaxTravelers, t.Difficulty,
		t.Images, t.Itinerary, t.Included, t.Excluded, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if !res.Success {
		return errors.InternalServerError("error save tour")
	}
	return nil
}

func (r *repositories) Update(ctx context.Context, t *entity.Tour) error {
	res := r.db.Run(ctx, `UPDATE tours SET title = ?, description = ?, location = ?, price = ?,
		duration = ?, max_travelers = ?, difficulty = ?, itinerary = ?, included = ?, excluded = ?,
		status = ?, updated_at = ? WHERE id = ?`,
		t.Title, t.Description, t.Location, t.Price, t.Duration, t.MaxTravelers, t.Difficulty,
		t.Itinerary, t.Included, t.Excluded, t.Status, t.UpdatedAt, t.ID,
	)
	return database.Affected(res, "tour")
}

func (r *repositories) UpdateStatus(ctx context.Context, id, status, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE tours SET status = ?, updated_at = ? WHERE id = ?", status, updatedAt, id)
	return database.Affected(res, "tour")
}

func (r *repositories) UpdateImages(ctx context.Context, id string, images []string, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE tours SET images = ?, updated_at = ? WHERE id = ?",
		jsoncol.Array[string](images), updatedAt, id)
	return database.Affected(res, "tour")
}

func (r *repositories) Delete(ctx context.Context, id string) error {
	res := r.db.Run(ctx, "DELETE FROM tours WHERE id = ?", id)
	return database.Affected(res, "tour")
}

func (r *repositories) Stats(ctx context.Context) (entity.Stats, error) {
	res := r.db.Query(ctx, `SELECT COUNT(*) AS total,
		SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS active,
		CAST(AVG(price) AS DOUBLE PRECISION) AS average_price
		FROM tours`, entity.StatusActive)
	if !res.Success {
		return entity.Stats{}, errors.InternalServerError("error get tour stats")
	}
	if len(res.Data) == 0 {
		return entity.Stats{}, nil
	}

	row := res.Data[0]
	return entity.Stats{
		Total:        database.Int(row, "total"),
		Active:       database.Int(row, "active"),
		AveragePrice: database.Float(row, "average_price"),
	}, nil
}
