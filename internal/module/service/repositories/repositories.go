package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/module/service/models/entity"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/jsoncol"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const columns = `id, title, description, category, price, itinerary, included, excluded,
	images, videos, featured, status, created_at, updated_at`

type repositories struct {
	db  database.Client
	log *otelzap.Logger
}

type Repositories interface {
	FindAll(ctx context.Context, filter entity.Filter) ([]entity.Service, error)
	Count(ctx context.Context, filter entity.Filter) (int64, error)
	// FindByID returns nil when the service does not exist.
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	FindFeatured(ctx context.Context, limit int) ([]entity.Service, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	Save(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	UpdateStatus(ctx context.Context, id, status, updatedAt string) error
	UpdateImages(ctx context.Context, id string, images []string, updatedAt string) error
	Delete(ctx context.Context, id string) error
}

func New(db database.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func where(filter entity.Filter) *database.Where {
	w := &database.Where{}
	w.Eq("category", filter.Category).Eq("status", filter.Status)
	if filter.Featured != nil {
		w.Add("featured = ?", jsoncol.Flag(*filter.Featured))
	}
	return w.Search(filter.Search, "title", "description")
}

func (r *repositories) find(ctx context.Context, query string, params ...interface{}) ([]entity.Service, error) {
	res := r.db.Query(ctx, query, params...)
	if !res.Success {
		return nil, errors.InternalServerError("error find services")
	}

	services, err := database.DecodeAll[entity.Service](res.Data)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode services: %v", err))
		return nil, errors.InternalServerError("error find services")
	}
	return services, nil
}

func (r *repositories) FindAll(ctx context.Context, filter entity.Filter) ([]entity.Service, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+" FROM services"+w.String()+" ORDER BY featured DESC, created_at DESC, id",
		w.Params(), filter.Limit, filter.Offset,
	)
	return r.find(ctx, query, params...)
}

func (r *repositories) Count(ctx context.Context, filter entity.Filter) (int64, error) {
	w := where(filter)
	res := r.db.Query(ctx, "SELECT COUNT(*) AS total FROM services"+w.String(), w.Params()...)
	if !res.Success {
		return 0, errors.InternalServerError("error count services")
	}
	if len(res.Data) == 0 {
		return 0, nil
	}
	return database.Int(res.Data[0], "total"), nil
}

func (r *repositories) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	services, err := r.find(ctx, "SELECT "+columns+" FROM services WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, nil
	}
	return &services[0], nil
}

func (r *repositories) FindFeatured(ctx context.Context, limit int) ([]entity.Service, error) {
	return r.find(ctx, "SELECT "+columns+` FROM services
		WHERE featured = ? AND status = ? ORDER BY created_at DESC, id LIMIT ?`,
		jsoncol.Flag(true), entity.StatusActive, limit)
}

func (r *repositories) Categories(ctx context.Context) ([]entity.Category, error) {
	res := r.db.Query(ctx, `SELECT category, COUNT(*) AS count FROM services
		WHERE status = ? GROUP BY category ORDER BY category`, entity.StatusActive)
	if !res.Success {
		return nil, errors.InternalServerError("error find service categories")
	}

	categories := make([]entity.Category, 0, len(res.Data))
	for _, row := range res.Data {
		name, _ := row["category"].(string)
		categories = append(categories, entity.Category{Category: name, Count: database.Int(row, "count")})
	}
	return categories, nil
}

func (r *repositories) Save(ctx context.Context, s *entity.Service) error {
	res := r.db.Run(ctx, `INSERT INTO services (`+columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Description, s.Category, s.Price, s.Itinerary, s.Included, s.Excluded,
		s.Images, s.Videos, s.Featured, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if !res.Success {
		return errors.InternalServerError("error save service")
	}
	return nil
}

func (r *repositories) Update(ctx context.Context, s *entity.Service) error {
	res := r.db.Run(ctx, `UPDATE services SET title = ?, description = ?, category = ?, price = ?,
		itinerary = ?, included = ?, excluded = ?, videos = ?, featured = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		s.Title, s.Description, s.Category, s.Price, s.Itinerary, s.Included, s.Excluded,
		s.Videos, s.Featured, s.Status, s.UpdatedAt, s.ID,
	)
	return database.Affected(res, "service")
}

func (r *repositories) UpdateStatus(ctx context.Context, id, status, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE services SET status = ?, updated_at = ? WHERE id = ?", status, updatedAt, id)
	return database.Affected(res, "service")
}

func (r *repositories) UpdateImages(ctx context.Context, id string, images []string, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE services SET images = ?, updated_at = ? WHERE id = ?",
		jsoncol.Array[string](images), updatedAt, id)
	return database.Affected(res, "service")
}

func (r *repositories) Delete(ctx context.Context, id string) error {
	res := r.db.Run(ctx, "DELETE FROM services WHERE id = ?", id)
	return database.Affected(res, "service")
}
