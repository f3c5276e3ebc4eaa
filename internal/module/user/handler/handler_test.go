package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"travel-service/internal/module/user/handler"
	"travel-service/internal/module/user/mocks"
	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/module/user/models/request"
	"travel-service/internal/module/user/models/response"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var (
	h   *handler.UserHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.UserHandler{
		Log:       log_internal.Nop(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Get("/admin/users", h.AdminListUsers)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func post(t *testing.T, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("Register", mock.Anything, &request.Register{Name: "Alice", Email: "alice@example.com", Password: "secret123"}).
		Return(response.Auth{Token: "tok", User: response.User{ID: "u1"}}, nil)

	assert.Equal(t, fiber.StatusCreated, post(t, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`))
	assert.Equal(t, fiber.StatusBadRequest, post(t, "/auth/register", `{"name":"Alice","email":"not-an-email","password":"secret123"}`))
	assert.Equal(t, fiber.StatusBadRequest, post(t, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"short"}`))
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("Login", mock.Anything, &request.Login{Email: "alice@example.com", Password: "wrong"}).
		Return(response.Auth{}, errors.UnauthorizedError("invalid email or password"))

	assert.Equal(t, fiber.StatusUnauthorized, post(t, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`))
}

func TestAdminListUsers(t *testing.T) {
	setup()
	defer teardown()

	filter := entity.Filter{Role: "editor", Limit: 10}
	ucm.On("List", mock.Anything, filter).Return([]response.User{{ID: "u2"}}, int64(1), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/users?role=editor", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestUpdateRole(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.UpdateRole{Role: "editor"}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("PUT")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", "admin-1")

		ucm.On("UpdateRole", mock.Anything, "", &payload).Return(nil).Once()

		err := h.UpdateRole(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("invalid role", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("PUT")
		ctx.Request().SetBody([]byte(`{"role":"root"}`))

		err := h.UpdateRole(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}
