package usecases_test

import (
	"context"
	"testing"

	"travel-service/internal/module/review/mocks"
	"travel-service/internal/module/review/models/entity"
	"travel-service/internal/module/review/models/request"
	"travel-service/internal/module/review/usecases"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.Nop())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreate(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	payload := &request.Review{Rating: 5, Comment: "Amazing"}

	t.Run("success", func(t *testing.T) {
		repoMock.On("TourExists", ctx, "t1").Return(true, nil).Once()
		repoMock.On("FindByUserAndTour", ctx, "u1", "t1").Return(nil, nil).Once()
		repoMock.On("Save", ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.ID != "" && r.UserID == "u1" && r.TourID == "t1" && r.Rating == 5 && r.CreatedAt != ""
		})).Return(nil).Once()

		got, err := uc.Create(ctx, "u1", "t1", payload)

		require.NoError(t, err)
		assert.Equal(t, "Amazing", got.Comment)
	})

	t.Run("second review for the same tour", func(t *testing.T) {
		repoMock.On("TourExists", ctx, "t1").Return(true, nil).Once()
		repoMock.On("FindByUserAndTour", ctx, "u1", "t1").Return(&entity.Review{ID: "r1"}, nil).Once()

		_, err := uc.Create(ctx, "u1", "t1", payload)

		assert.Equal(t, 409, errors.StatusCode(err))
	})

	t.Run("unknown tour", func(t *testing.T) {
		repoMock.On("TourExists", ctx, "nope").Return(false, nil).Once()

		_, err := uc.Create(ctx, "u1", "nope", payload)

		assert.True(t, errors.IsNotFound(err))
	})

	repoMock.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindByID", ctx, "r1").Return(&entity.Review{ID: "r1", UserID: "owner"}, nil)
	repoMock.On("FindByID", ctx, "missing").Return(nil, nil)
	repoMock.On("Delete", ctx, "r1").Return(nil)

	testCases := []struct {
		name   string
		id     string
		userID string
		admin  bool
		code   int
	}{
		{"owner", "r1", "owner", false, 0},
		{"admin", "r1", "someone", true, 0},
		{"stranger", "r1", "someone", false, 403},
		{"missing", "missing", "owner", false, 404},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Delete(ctx, tc.id, tc.userID, tc.admin)
			if tc.code == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.code, errors.StatusCode(err))
		})
	}

	repoMock.AssertNumberOfCalls(t, "Delete", 2)
}

func TestListByTour(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	filter := entity.Filter{TourID: "t1", Limit: 10}
	repoMock.On("FindByTour", ctx, filter).Return([]entity.Review{{ID: "r1"}}, nil)
	repoMock.On("TourRating", ctx, "t1").Return(entity.Rating{Average: 4.5, Count: 2}, nil)

	got, total, err := uc.ListByTour(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, 4.5, got.Rating.Average)
	assert.Len(t, got.Reviews, 1)
}
