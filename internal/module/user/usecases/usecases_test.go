package usecases_test

import (
	"context"
	"testing"
	"time"

	"travel-service/internal/module/user/mocks"
	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/module/user/models/request"
	"travel-service/internal/module/user/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/jsoncol"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	tokens   *token.Manager
)

func setup() {
	repoMock = new(mocks.Repositories)
	tokens = token.NewManager("testsecret", time.Hour)
	uc = usecases.New(repoMock, tokens, bcrypt.MinCost, log_internal.Nop())
}

func teardown() {
	repoMock = nil
	tokens = nil
	uc = nil
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var saved *entity.User
		repoMock.On("FindByEmail", ctx, "alice@example.com").Return(nil, nil).Once()
		repoMock.On("Save", ctx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.User) }).
			Return(nil).Once()

		auth, err := uc.Register(ctx, &request.Register{Name: "Alice", Email: " Alice@Example.com", Password: "secret123"})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "alice@example.com", saved.Email)
		assert.Equal(t, "customer", saved.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret123")))

		claims, err := tokens.Parse(auth.Token)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)
		assert.Equal(t, map[string]interface{}{}, auth.User.Preferences)
	})

	t.Run("email taken", func(t *testing.T) {
		repoMock.On("FindByEmail", ctx, "taken@example.com").Return(&entity.User{ID: "u1"}, nil).Once()

		_, err := uc.Register(ctx, &request.Register{Name: "X", Email: "taken@example.com", Password: "secret123"})

		assert.Equal(t, 409, errors.StatusCode(err))
	})
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "alice@example.com", Password: hashed(t, "secret123"), Role: "editor"}
	repoMock.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	repoMock.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

	auth, err := uc.Login(ctx, &request.Login{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	claims, err := tokens.Parse(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.Role)

	_, err = uc.Login(ctx, &request.Login{Email: "alice@example.com", Password: "wrong"})
	assert.Equal(t, 401, errors.StatusCode(err))

	_, err = uc.Login(ctx, &request.Login{Email: "ghost@example.com", Password: "secret123"})
	assert.Equal(t, 401, errors.StatusCode(err))
}

func TestUpdatePreferencesMerges(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindByID", ctx, "u1").Return(&entity.User{
		ID:          "u1",
		Preferences: jsoncol.NewObject(entity.Preferences{"currency": "IDR", "language": "id"}),
	}, nil)
	want := entity.Preferences{"currency": "USD", "language": "id"}
	repoMock.On("UpdatePreferences", ctx, "u1", want, mock.AnythingOfType("string")).Return(nil)

	got, err := uc.UpdatePreferences(ctx, "u1", &request.UpdatePreferences{Preferences: map[string]interface{}{"currency": "USD"}})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"currency": "USD", "language": "id"}, got.Preferences)
	repoMock.AssertExpectations(t)
}

func TestMeNotFound(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindByID", ctx, "ghost").Return(nil, nil)

	_, err := uc.Me(ctx, "ghost")

	assert.True(t, errors.IsNotFound(err))
}
