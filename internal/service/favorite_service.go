package service

import (
	"context"

	"youthive/internal/repository"
)

type FavoriteService interface {
	Toggle(ctx context.Context, userID string, articleID int64) (bool, error)
	ArticleIDs(ctx context.Context, userID string) ([]int64, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	articleRepo  repository.ArticleRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, articleRepo repository.ArticleRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		articleRepo:  articleRepo,
	}
}

// Toggle checks current membership and flips it. Returns whether the
// article is a favorite after the call.
func (s *favoriteService) Toggle(ctx context.Context, userID string, articleID int64) (bool, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, articleID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.Delete(ctx, userID, articleID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.favoriteRepo.Create(ctx, userID, articleID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *favoriteService) ArticleIDs(ctx context.Context, userID string) ([]int64, error) {
	return s.favoriteRepo.GetArticleIDs(ctx, userID)
}
