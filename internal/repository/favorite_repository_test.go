package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteRepoMock(t *testing.T) (FavoriteRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewFavoriteRepository(sqlxDB), mock, func() { db.Close() }
}

func TestFavoriteRepository_Exists(t *testing.T) {
	repo, mock, closeDB := newFavoriteRepoMock(t)
	defer closeDB()

	ctx := context.Background()
	query := `SELECT COUNT(*) FROM user_favorites WHERE user_id = $1 AND article_id = $2`

	t.Run("favorited", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user-1", int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.Exists(ctx, "user-1", 5)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not favorited", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user-1", int64(6)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.Exists(ctx, "user-1", 6)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_CreateAndDelete(t *testing.T) {
	repo, mock, closeDB := newFavoriteRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO user_favorites (user_id, article_id) VALUES ($1, $2)`).
		WithArgs("user-1", int64(5)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(ctx, "user-1", 5))

	mock.ExpectExec(`DELETE FROM user_favorites WHERE user_id = $1 AND article_id = $2`).
		WithArgs("user-1", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(ctx, "user-1", 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_GetArticleIDs(t *testing.T) {
	repo, mock, closeDB := newFavoriteRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT article_id FROM user_favorites WHERE user_id = $1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"article_id"}).AddRow(int64(3)).AddRow(int64(8)))

	ids, err := repo.GetArticleIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 8}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
