package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/module/content/models/entity"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const columns = "id, type, title, slug, content, image_url, status, created_at, updated_at"

type repositories struct {
	db  database.Client
	log *otelzap.Logger
}

type Repositories interface {
	FindAll(ctx context.Context, filter entity.Filter) ([]entity.Content, error)
	Count(ctx context.Context, filter entity.Filter) (int64, error)
	// FindByID and FindBySlug return nil when nothing matches.
	FindByID(ctx context.Context, id string) (*entity.Content, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Content, error)
	Save(ctx context.Context, content *entity.Content) error
	Update(ctx context.Context, content *entity.Content) error
	UpdateImage(ctx context.Context, id, imageURL, updatedAt string) error
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
	return w.Eq("type", filter.Type).Eq("status", filter.Status)
}

func (r *repositories) find(ctx context.Context, query string, params ...interface{}) ([]entity.Content, error) {
	res := r.db.Query(ctx, query, params...)
	if !res.Success {
		return nil, errors.InternalServerError("error find content")
	}

	items, err := database.DecodeAll[entity.Content](res.Data)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode content: %v", err))
		return nil, errors.InternalServerError("error find content")
	}
	return items, nil
}

func (r *repositories) findOne(ctx context.Context, query string, params ...interface{}) (*entity.Content, error) {
	items, err := r.find(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repositories) FindAll(ctx context.Context, filter entity.Filter) ([]entity.Content, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+" FROM content"+w.String()+" ORDER BY created_at DESC, id",
		w.Params(), filter.Limit, filter.Offset,
	)
	return r.find(ctx, query, params...)
}

func (r *repositories) Count(ctx context.Context, filter entity.Filter) (int64, error) {
	w := where(filter)
	res := r.db.Query(ctx, "SELECT COUNT(*) AS total FROM content"+w.String(), w.Params()...)
	if !res.Success {
		return 0, errors.InternalServerError("error count content")
	}
	if len(res.Data) == 0 {
		return 0, nil
	}
	return database.Int(res.Data[0], "total"), nil
}

func (r *repositories) FindByID(ctx context.Context, id string) (*entity.Content, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM content WHERE id = ?", id)
}

func (r *repositories) FindBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM content WHERE slug = ?", slug)
}

func (r *repositories) Save(ctx context.Context, c *entity.Content) error {
	res := r.db.Run(ctx, `INSERT INTO content (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Type, c.Title, c.Slug, c.Content, c.ImageURL, c.Status, c.CreatedAt, c.UpdatedAt)
	if !res.Success {
		return errors.InternalServerError("error save content")
	}
	return nil
}

func (r *repositories) Update(ctx context.Context, c *entity.Content) error {
	res := r.db.Run(ctx, `UPDATE content SET type = ?, title = ?, slug = ?, content = ?, status = ?,
		updated_at = ? WHERE id = ?`,
		c.Type, c.Title, c.Slug, c.Content, c.Status, c.UpdatedAt, c.ID)
	return database.Affected(res, "content")
}

func (r *repositories) UpdateImage(ctx context.Context, id, imageURL, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE content SET image_url = ?, updated_at = ? WHERE id = ?", imageURL, updatedAt, id)
	return database.Affected(res, "content")
}

func (r *repositories) Delete(ctx context.Context, id string) error {
	res := r.db.Run(ctx, "DELETE FROM content WHERE id = ?", id)
	return database.Affected(res, "content")
}
