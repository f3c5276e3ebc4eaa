package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/jsoncol"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const columns = "id, name, email, password, role, preferences, created_at, updated_at"

type repositories struct {
	db  database.Client
	log *otelzap.Logger
}

type Repositories interface {
	FindAll(ctx context.Context, filter entity.Filter) ([]entity.User, error)
	Count(ctx context.Context, filter entity.Filter) (int64, error)
	// FindByID and FindByEmail return nil when nothing matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Save(ctx context.Context, user *entity.User) error
	UpdatePreferences(ctx context.Context, id string, prefs entity.Preferences, updatedAt string) error
	UpdateRole(ctx context.Context, id, role, updatedAt string) error
}

func New(db database.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func where(filter entity.Filter) *database.Where {
	w := &database.Where{}
	return w.Eq("role", filter.Role).Search(filter.Search, "name", "email")
}

func (r *repositories) find(ctx context.Context, query string, params ...interface{}) ([]entity.User, error) {
	res := r.db.Query(ctx, query, params...)
	if !res.Success {
		return nil, errors.InternalServerError("error find users")
	}

	users, err := database.DecodeAll[entity.User](res.Data)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode users: %v", err))
		return nil, errors.InternalServerError("error find users")
	}
	return users, nil
}

func (r *repositories) findOne(ctx context.Context, query string, params ...interface{}) (*entity.User, error) {
	users, err := r.find(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *repositories) FindAll(ctx context.Context, filter entity.Filter) ([]entity.User, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+" FROM users"+w.String()+" ORDER BY created_at DESC, id",
		w.Params(), filter.Limit, filter.Offset,
	)
	return r.find(ctx, query, params...)
}

func (r *repositories) Count(ctx context.Context, filter entity.Filter) (int64, error) {
	w := where(filter)
	res := r.db.Query(ctx, "SELECT COUNT(*) AS total FROM users"+w.String(), w.Params()...)
	if !res.Success {
		return 0, errors.InternalServerError("error count users")
	}
	if len(res.Data) == 0 {
		return 0, nil
	}
	return database.Int(res.Data[0], "total"), nil
}

func (r *repositories) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM users WHERE id = ?", id)
}

func (r *repositories) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM users WHERE LOWER(email) = LOWER(?)", email)
}

func (r *repositories) Save(ctx context.Context, u *entity.User) error {
	res := r.db.Run(ctx, `INSERT INTO users (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.Preferences, u.CreatedAt, u.UpdatedAt)
	if !res.Success {
		return errors.InternalServerError("error save user")
	}
	return nil
}

func (r *repositories) UpdatePreferences(ctx context.Context, id string, prefs entity.Preferences, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE users SET preferences = ?, updated_at = ? WHERE id = ?",
		jsoncol.NewObject(prefs), updatedAt, id)
	return database.Affected(res, "user")
}

func (r *repositories) UpdateRole(ctx context.Context, id, role, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE users SET role = ?, updated_at = ? WHERE id = ?", role, updatedAt, id)
	return database.Affected(res, "user")
}
