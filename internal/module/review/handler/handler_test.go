package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"travel-service/internal/module/review/handler"
	"travel-service/internal/module/review/mocks"
	"travel-service/internal/module/review/models/entity"
	"travel-service/internal/module/review/models/request"
	"travel-service/internal/module/review/models/response"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.ReviewHandler
	ucm *mocks.Usecase
	app *fiber.App
)

// asUser stands in for the token middleware.
func asUser(id, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", id)
		c.Locals("role", role)
		return c.Next()
	}
}

func setup(userID, role string) {
	ucm = &mocks.Usecase{}
	h = &handler.ReviewHandler{
		Log:       log_internal.Nop(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Get("/tours/:id/reviews", h.ListTourReviews)
	app.Post("/tours/:id/reviews", asUser(userID, role), h.CreateReview)
	app.Delete("/reviews/:id", asUser(userID, role), h.DeleteReview)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestListTourReviews(t *testing.T) {
	setup("", "")
	defer teardown()

	filter := entity.Filter{TourID: "t1", Limit: 10}
	ucm.On("ListByTour", mock.Anything, filter).
		Return(response.TourReviews{Reviews: []entity.Review{{ID: "r1"}}, Rating: entity.Rating{Average: 5, Count: 1}}, int64(1), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/tours/t1/reviews", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestCreateReview(t *testing.T) {
	setup("u1", middleware.RoleCustomer)
	defer teardown()

	ucm.On("Create", mock.Anything, "u1", "t1", &request.Review{Rating: 4, Comment: "good"}).Return(entity.Review{ID: "r1"}, nil)
	ucm.On("Create", mock.Anything, "u1", "t2", &request.Review{Rating: 4}).Return(entity.Review{}, errors.Conflict("you have already reviewed this tour"))

	testCases := []struct {
		name string
		path string
		body string
		code int
	}{
		{"created", "/tours/t1/reviews", `{"rating":4,"comment":"good"}`, fiber.StatusCreated},
		{"duplicate", "/tours/t2/reviews", `{"rating":4}`, fiber.StatusConflict},
		{"rating too high", "/tours/t1/reviews", `{"rating":6}`, fiber.StatusBadRequest},
		{"rating missing", "/tours/t1/reviews", `{"comment":"meh"}`, fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}

func TestDeleteReviewPassesAdminFlag(t *testing.T) {
	setup("boss", middleware.RoleAdmin)
	defer teardown()

	ucm.On("Delete", mock.Anything, "r1", "boss", true).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/reviews/r1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestDeleteReviewForbidden(t *testing.T) {
	setup("u2", middleware.RoleCustomer)
	defer teardown()

	ucm.On("Delete", mock.Anything, "r1", "u2", false).Return(errors.ForbiddenError("cannot delete another user's review"))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/reviews/r1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
