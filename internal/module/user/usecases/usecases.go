package usecases

import (
	"context"
	"fmt"
	"strings"

	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/module/user/models/request"
	"travel-service/internal/module/user/models/response"
	"travel-service/internal/module/user/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/jsoncol"
	"travel-service/internal/pkg/middleware"
	"travel-service/internal/pkg/token"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/crypto/bcrypt"
)

type usecase struct {
	repo       repositories.Repositories
	tokens     *token.Manager
	bcryptCost int
	log        *otelzap.Logger
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.Auth, error)
	Login(ctx context.Context, payload *request.Login) (response.Auth, error)
	Me(ctx context.Context, id string) (response.User, error)
	UpdatePreferences(ctx context.Context, id string, payload *request.UpdatePreferences) (response.User, error)
	List(ctx context.Context, filter entity.Filter) ([]response.User, int64, error)
	UpdateRole(ctx context.Context, id string, payload *request.UpdateRole) error
}

func New(repo repositories.Repositories, tokens *token.Manager, bcryptCost int, log *otelzap.Logger) Usecase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &usecase{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

func (u *usecase) issue(ctx context.Context, user entity.User) (response.Auth, error) {
	signed, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error issue token: %v", err))
		return response.Auth{}, errors.InternalServerError("error issue token")
	}
	return response.Auth{Token: signed, User: response.NewUser(user)}, nil
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.Auth, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	existing, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		return response.Auth{}, err
	}
	if existing != nil {
		return response.Auth{}, errors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), u.bcryptCost)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error hash password: %v", err))
		return response.Auth{}, errors.InternalServerError("error register user")
	}

	now := helpers.Now()
	user := entity.User{
		ID:          helpers.GenerateID(),
		Name:        payload.Name,
		Email:       email,
		Password:    string(hash),
		Role:        middleware.RoleCustomer,
		Preferences: jsoncol.NewObject(entity.Preferences{}),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.repo.Save(ctx, &user); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save user: %v", err))
		return response.Auth{}, err
	}

	return u.issue(ctx, user)
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Auth, error) {
	user, err := u.repo.FindByEmail(ctx, strings.TrimSpace(payload.Email))
	if err != nil {
		return response.Auth{}, err
	}
	if user == nil {
		return response.Auth{}, errors.UnauthorizedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return response.Auth{}, errors.UnauthorizedError("invalid email or password")
	}

	return u.issue(ctx, *user)
}

func (u *usecase) find(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("user not found")
	}
	return user, nil
}

func (u *usecase) Me(ctx context.Context, id string) (response.User, error) {
	user, err := u.find(ctx, id)
	if err != nil {
		return response.User{}, err
	}
	return response.NewUser(*user), nil
}

// UpdatePreferences merges payload keys over the stored preferences.
func (u *usecase) UpdatePreferences(ctx context.Context, id string, payload *request.UpdatePreferences) (response.User, error) {
	user, err := u.find(ctx, id)
	if err != nil {
		return response.User{}, err
	}

	prefs := entity.Preferences{}
	for k, v := range user.Preferences.V {
		prefs[k] = v
	}
	for k, v := range payload.Preferences {
		prefs[k] = v
	}

	user.UpdatedAt = helpers.Now()
	if err := u.repo.UpdatePreferences(ctx, id, prefs, user.UpdatedAt); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update preferences: %v", err))
		return response.User{}, err
	}

	user.Preferences = jsoncol.NewObject(prefs)
	return response.NewUser(*user), nil
}

func (u *usecase) List(ctx context.Context, filter entity.Filter) ([]response.User, int64, error) {
	users, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return response.NewUsers(users), total, nil
}

func (u *usecase) UpdateRole(ctx context.Context, id string, payload *request.UpdateRole) error {
	return u.repo.UpdateRole(ctx, id, payload.Role, helpers.Now())
}
