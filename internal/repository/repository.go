package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"youthive/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, username, fullName string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	SetResetToken(ctx context.Context, userID, resetToken string, expiryTime time.Time) error
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, articleID int64) (*models.Article, error)
	GetApproved(ctx context.Context) ([]models.Article, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Article, error)
	Search(ctx context.Context, q ArticleQuery) ([]models.Article, error)
	Update(ctx context.Context, req UpdateArticleRequest) error
	UpdateStatus(ctx context.Context, articleID int64, status string) error
	Delete(ctx context.Context, articleID int64) error
	IncrementViewCount(ctx context.Context, articleID int64) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetTopLevel(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID int64) (*models.Category, error)
}

type FavoriteRepository interface {
	Exists(ctx context.Context, userID string, articleID int64) (bool, error)
	Create(ctx context.Context, userID string, articleID int64) error
	Delete(ctx context.Context, userID string, articleID int64) error
	GetArticleIDs(ctx context.Context, userID string) ([]int64, error)
}

type Repository struct {
	User     UserRepository
	Article  ArticleRepository
	Category CategoryRepository
	Favorite FavoriteRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Article:  NewArticleRepository(db),
		Category: NewCategoryRepository(db),
		Favorite: NewFavoriteRepository(db),
	}
}
