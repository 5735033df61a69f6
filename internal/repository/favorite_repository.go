package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, articleID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM user_favorites WHERE user_id = $1 AND article_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return count > 0, nil
}

func (r *favoriteRepository) Create(ctx context.Context, userID string, articleID int64) error {
	query := `INSERT INTO user_favorites (user_id, article_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, userID, articleID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID string, articleID int64) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND article_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, articleID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) GetArticleIDs(ctx context.Context, userID string) ([]int64, error) {
	query := `SELECT article_id FROM user_favorites WHERE user_id = $1`

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	return ids, nil
}
