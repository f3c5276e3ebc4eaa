package repositories_test

import (
	"context"
	"testing"

	"travel-service/internal/module/review/models/entity"
	"travel-service/internal/module/review/repositories"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/database/databasetest"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = "2024-05-01T10:00:00Z"

func seed(t *testing.T, db database.Client) {
	t.Helper()
	ctx := context.Background()
	for _, u := range [][]string{{"u1", "Alice"}, {"u2", "Budi"}} {
		res := db.Run(ctx, `INSERT INTO users (id, name, email, password, role, created_at, updated_at)
			VALUES (?, ?, ?, 'x', 'customer', ?, ?)`, u[0], u[1], u[0]+"@example.com", ts, ts)
		require.True(t, res.Success, res.Error)
	}
	for _, tour := range [][]string{{"t1", "Ubud Rice Terraces"}, {"t2", "Komodo Cruise"}} {
		res := db.Run(ctx, `INSERT INTO tours (id, title, status, created_at, updated_at)
			VALUES (?, ?, 'active', ?, ?)`, tour[0], tour[1], ts, ts)
		require.True(t, res.Success, res.Error)
	}
}

func newReview(id, userID, tourID string, rating int, createdAt string) *entity.Review {
	return &entity.Review{ID: id, UserID: userID, TourID: tourID, Rating: rating, Comment: "nice", CreatedAt: createdAt}
}

func TestFindByTourJoinsAuthor(t *testing.T) {
	db := databasetest.New(t)
	seed(t, db)
	repo := repositories.New(db, log_internal.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newReview("r1", "u1", "t1", 5, "2024-05-01T10:00:00Z")))
	require.NoError(t, repo.Save(ctx, newReview("r2", "u2", "t1", 3, "2024-05-02T10:00:00Z")))
	require.NoError(t, repo.Save(ctx, newReview("r3", "u1", "t2", 4, "2024-05-03T10:00:00Z")))

	reviews, err := repo.FindByTour(ctx, entity.Filter{TourID: "t1"})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r2", reviews[0].ID)
	assert.Equal(t, "Budi", reviews[0].UserName)
	assert.Equal(t, 3, reviews[0].Rating)
	assert.Empty(t, reviews[0].TourTitle)

	all, err := repo.FindAll(ctx, entity.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Komodo Cruise", all[0].TourTitle)
	assert.Equal(t, "Alice", all[0].UserName)

	total, err := repo.Count(ctx, entity.Filter{TourID: "t2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTourRating(t *testing.T) {
	db := databasetest.New(t)
	seed(t, db)
	repo := repositories.New(db, log_internal.Nop())
	ctx := context.Background()

	empty, err := repo.TourRating(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.Rating{}, empty)

	require.NoError(t, repo.Save(ctx, newReview("r1", "u1", "t1", 5, ts)))
	require.NoError(t, repo.Save(ctx, newReview("r2", "u2", "t1", 4, ts)))
	require.NoError(t, repo.Save(ctx, newReview("r3", "u1", "t2", 1, ts)))

	rating, err := repo.TourRating(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rating.Count)
	assert.InDelta(t, 4.5, rating.Average, 0.001)

	overall, err := repo.TourRating(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), overall.Count)
	assert.InDelta(t, 10.0/3, overall.Average, 0.001)
}

func TestFindByUserAndTourAndDelete(t *testing.T) {
	db := databasetest.New(t)
	seed(t, db)
	repo := repositories.New(db, log_internal.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newReview("r1", "u1", "t1", 5, ts)))

	got, err := repo.FindByUserAndTour(ctx, "u1", "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)

	none, err := repo.FindByUserAndTour(ctx, "u2", "t1")
	require.NoError(t, err)
	assert.Nil(t, none)

	exists, err := repo.TourExists(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.TourExists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Delete(ctx, "r1"))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, "r1")))
}
