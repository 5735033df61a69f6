package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"youthive/internal/models"
)

var ErrArticleNotFound = errors.New("article not found")

type articleRepository struct {
	db *sqlx.DB
}

// ArticleQuery narrows the editor listing with equality filters; zero
// values mean "no filter". Search over titles stays client-side.
type ArticleQuery struct {
	Status     string
	CategoryID int64
	Oldest     bool
}

type UpdateArticleRequest struct {
	ArticleID  int64  `json:"articleId"`
	Title      string `json:"title"`
	Abstract   string `json:"abstract"`
	CategoryID int64  `json:"categoryId"`
	Slug       string `json:"slug"`
}

func NewArticleRepository(db *sqlx.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// articleColumns expands author and category display fields into the
// article row the way every read path needs them.
const articleColumns = `
		a.id, a.title, a.slug, a.abstract, a.category_id, a.author_id,
		a.pdf_url, a.file_name, a.file_size, a.status, a.view_count, a.created_at,
		u.full_name AS author_name, u.username AS author_username,
		c.name AS category_name`

const articleJoins = `
		FROM articles a
		JOIN users u ON u.user_id = a.author_id
		JOIN categories c ON c.id = a.category_id`

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles
		(title, slug, abstract, category_id, author_id, pdf_url, file_name, file_size, status, view_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
		RETURNING id, created_at
	`

	if article.Status == "" {
		article.Status = models.StatusPending
	}

	err := r.db.QueryRowxContext(ctx, query,
		article.Title,
		article.Slug,
		article.Abstract,
		article.CategoryID,
		article.AuthorID,
		article.PDFURL,
		article.FileName,
		article.FileSize,
		article.Status,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, articleID int64) (*models.Article, error) {
	query := `SELECT` + articleColumns + articleJoins + `
		WHERE a.id = $1`

	var article models.Article
	err := r.db.GetContext(ctx, &article, query, articleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return &article, nil
}

func (r *articleRepository) GetApproved(ctx context.Context) ([]models.Article, error) {
	query := `SELECT` + articleColumns + articleJoins + `
		WHERE a.status = $1
		ORDER BY a.created_at DESC`

	var articles []models.Article
	err := r.db.SelectContext(ctx, &articles, query, models.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved articles: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Article, error) {
	query := `SELECT` + articleColumns + articleJoins + `
		WHERE a.author_id = $1
		ORDER BY a.created_at DESC`

	var articles []models.Article
	err := r.db.SelectContext(ctx, &articles, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get author articles: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) Search(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	query := `SELECT` + articleColumns + articleJoins + `
		WHERE ($1 = '' OR a.status = $1)
		AND ($2 = 0 OR a.category_id = $2)`

	if q.Oldest {
		query += `
		ORDER BY a.created_at ASC`
	} else {
		query += `
		ORDER BY a.created_at DESC`
	}

	var articles []models.Article
	err := r.db.SelectContext(ctx, &articles, query, q.Status, q.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, req UpdateArticleRequest) error {
	query := `
		UPDATE articles SET
			title = :title,
			abstract = :abstract,
			category_id = :category_id,
			slug = :slug
		WHERE id = :article_id
	`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"title":       req.Title,
		"abstract":    req.Abstract,
		"category_id": req.CategoryID,
		"slug":        req.Slug,
		"article_id":  req.ArticleID,
	})
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

func (r *articleRepository) UpdateStatus(ctx context.Context, articleID int64, status string) error {
	query := `UPDATE articles SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, articleID)
	if err != nil {
		return fmt.Errorf("failed to update article status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, articleID int64) error {
	query := `DELETE FROM articles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// IncrementViewCount is a single atomic statement, never a client-side
// read-modify-write.
func (r *articleRepository) IncrementViewCount(ctx context.Context, articleID int64) error {
	query := `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, articleID)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrArticleNotFound
	}

	return nil
}
